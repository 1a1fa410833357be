package tancalc

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// DefaultMaxInputSize bounds raw input at the serving surfaces.
	// An angle in degrees never needs more than a handful of bytes.
	DefaultMaxInputSize = 256
	// EnvMaxInputSize is the environment variable to override the default.
	EnvMaxInputSize = "TANCALC_MAX_INPUT_SIZE"
)

var (
	ErrInputTooLarge = errors.New("input exceeds maximum allowed size")
	ErrInvalidUTF8   = errors.New("input contains invalid UTF-8 sequences")
)

// SanitizeInput cleans raw input arriving over a serving surface by
// enforcing the size limit, validating UTF-8 and stripping control
// characters. The parser in pkg/trig stays strict; this guard only keeps
// hostile payloads out of logs and stores.
func SanitizeInput(input string) (string, error) {
	// 1. Enforce Size Limit
	limit := maxInputSize()
	if len(input) > limit {
		// Reject rather than truncate so behavior stays deterministic.
		return "", fmt.Errorf("%w: size=%d limit=%d", ErrInputTooLarge, len(input), limit)
	}

	// 2. Validate UTF-8
	if !utf8.ValidString(input) {
		return "", ErrInvalidUTF8
	}

	// 3. Strip Control Characters
	// Newline, tab and carriage return survive as whitespace; ESC, NULL,
	// BEL and friends are removed to prevent log poisoning and terminal
	// corruption.

	// Fast path: if no control chars, return as is.
	clean := true
	for _, r := range input {
		if unicode.IsControl(r) && !isSafeControl(r) {
			clean = false
			break
		}
	}
	if clean {
		return input, nil
	}

	// Slow path: build clean string
	var b strings.Builder
	b.Grow(len(input))
	for _, r := range input {
		if !unicode.IsControl(r) || isSafeControl(r) {
			b.WriteRune(r)
		}
	}
	return b.String(), nil
}

func isSafeControl(r rune) bool {
	return r == '\n' || r == '\t' || r == '\r'
}

func maxInputSize() int {
	if val := os.Getenv(EnvMaxInputSize); val != "" {
		if size, err := strconv.Atoi(val); err == nil && size > 0 {
			return size
		}
	}
	return DefaultMaxInputSize
}

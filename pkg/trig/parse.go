package trig

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseInput converts raw user text into a finite float64 in degrees.
// Leading and trailing whitespace is ignored. Empty input, text that is
// not a number, and values that parse to NaN or an infinity all return
// an error wrapping ErrInvalidInput.
//
// ParseInput is the single source of truth for input validation: the CLI,
// the HTTP API and the MCP tools all delegate here rather than keeping
// their own rules.
func ParseInput(input string) (float64, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return 0, fmt.Errorf("%w: empty input", ErrInvalidInput)
	}

	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: not a number: %q", ErrInvalidInput, trimmed)
	}

	// ParseFloat accepts the NaN and Inf spellings, which are numbers
	// but not angles anyone can take a tangent of.
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("%w: not finite: %q", ErrInvalidInput, trimmed)
	}

	return value, nil
}

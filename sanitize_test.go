package tancalc

import (
	"strings"
	"testing"
)

func TestSanitizeInput_SizeLimit(t *testing.T) {
	limit := DefaultMaxInputSize

	tests := []struct {
		name      string
		inputSize int
		wantErr   bool
	}{
		{"Under Limit", limit - 1, false},
		{"Exact Limit", limit, false},
		{"Over Limit", limit + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := strings.Repeat("9", tt.inputSize)
			_, err := SanitizeInput(input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("SanitizeInput() expected error for size %d, got nil", tt.inputSize)
				}
			} else {
				if err != nil {
					t.Errorf("SanitizeInput() unexpected error: %v", err)
				}
			}
		})
	}
}

func TestSanitizeInput_ControlChars(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Plain Angle", "45.5", "45.5"},
		{"Safe Controls", "45\t", "45\t"},
		{"ANSI Code", "\x1b[31m45\x1b[0m", "[31m45[0m"}, // ESC removed
		{"Null Byte", "4\x005", "45"},                   // NULL removed
		{"Bell", "90\x07", "90"},                        // BEL removed
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SanitizeInput(tt.input)
			if err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestSanitizeInput_EnvOverride(t *testing.T) {
	t.Setenv(EnvMaxInputSize, "10")

	// Input len 11 -> Should fail
	if _, err := SanitizeInput("12345678901"); err == nil {
		t.Error("Expected error for input > 10 when env var is set")
	}

	// Input len 5 -> Should pass
	if _, err := SanitizeInput("12345"); err != nil {
		t.Error("Unexpected error for valid input")
	}
}

func TestSanitizeInput_InvalidUTF8(t *testing.T) {
	input := "\xbd\xb2\x3d\xbc"
	if _, err := SanitizeInput(input); err != ErrInvalidUTF8 {
		t.Errorf("Expected ErrInvalidUTF8, got %v", err)
	}
}

package trig

import (
	"errors"
	"testing"
)

func TestParseInputValid(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  float64
	}{
		{"integer", "45", 45},
		{"zero", "0", 0},
		{"negative", "-90", -90},
		{"decimal", "12.5", 12.5},
		{"surrounding whitespace", "  30  ", 30},
		{"scientific notation", "1e2", 100},
		{"leading plus", "+60", 60},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseInput(tc.input)
			if err != nil {
				t.Fatalf("ParseInput(%q) returned error: %v", tc.input, err)
			}
			if got != tc.want {
				t.Errorf("ParseInput(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestParseInputInvalid(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"letters", "abc"},
		{"mixed", "45deg"},
		{"double dot", "12.34.56"},
		{"embedded space", "4 5"},
		{"nan literal", "NaN"},
		{"inf literal", "Inf"},
		{"negative infinity", "-Infinity"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseInput(tc.input)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("ParseInput(%q) error = %v, want ErrInvalidInput", tc.input, err)
			}
		})
	}
}

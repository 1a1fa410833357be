package domain

import (
	"errors"

	"github.com/hardikgohil73253/SEP-D3/pkg/trig"
)

// Outcome classifies how a calculation finished.
type Outcome string

const (
	OutcomeOK               Outcome = "ok"
	OutcomeInvalidInput     Outcome = "invalid_input"
	OutcomeUndefinedTangent Outcome = "undefined_tangent"
	// OutcomeError covers failures outside the two defined domain
	// conditions, such as a sanitizer rejection at a serving boundary.
	OutcomeError Outcome = "error"
)

// OutcomeForError maps an error from the calculation pipeline to its
// outcome. A nil error is OutcomeOK.
func OutcomeForError(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, trig.ErrInvalidInput):
		return OutcomeInvalidInput
	case errors.Is(err, trig.ErrUndefinedTangent):
		return OutcomeUndefinedTangent
	default:
		return OutcomeError
	}
}

package tui

import (
	"fmt"

	"github.com/muesli/termenv"

	"github.com/hardikgohil73253/SEP-D3/pkg/domain"
)

// Display colors match the desktop calculator this engine grew out of:
// results in blue, failure states in red.
const (
	resultColor = "#0000FF"
	errorColor  = "#FF0000"
)

// FormatResult renders a successful calculation: six decimal places, blue.
func FormatResult(value float64) string {
	p := termenv.ColorProfile()
	text := fmt.Sprintf("Result: %.6f", value)
	return termenv.String(text).Foreground(p.Color(resultColor)).String()
}

// FormatError renders a failed calculation in red using the display state
// for its outcome: UNDEFINED, INVALID INPUT or ERROR.
func FormatError(err error) string {
	p := termenv.ColorProfile()
	text := "Result: " + outcomeLabel(domain.OutcomeForError(err))
	return termenv.String(text).Foreground(p.Color(errorColor)).String()
}

// FormatHistoryLine renders one record for the repl history tape.
func FormatHistoryLine(calc domain.Calculation) string {
	ts := calc.At.Format("15:04:05")
	if calc.Outcome == domain.OutcomeOK {
		return fmt.Sprintf("%s  tan(%s) = %.6f", ts, calc.Input, calc.Result)
	}
	return fmt.Sprintf("%s  tan(%s) = %s", ts, calc.Input, outcomeLabel(calc.Outcome))
}

func outcomeLabel(outcome domain.Outcome) string {
	switch outcome {
	case domain.OutcomeUndefinedTangent:
		return "UNDEFINED"
	case domain.OutcomeInvalidInput:
		return "INVALID INPUT"
	default:
		return "ERROR"
	}
}

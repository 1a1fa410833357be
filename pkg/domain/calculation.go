package domain

import "time"

// Calculation is one finished calculation as recorded on the history tape.
// Result is only meaningful when Outcome is OutcomeOK.
type Calculation struct {
	Input   string    `json:"input"`
	Result  float64   `json:"result"`
	Outcome Outcome   `json:"outcome"`
	At      time.Time `json:"at"`
}

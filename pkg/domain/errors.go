package domain

import "errors"

// ErrNoHistory is returned when history is requested from an engine that
// has no history store configured.
var ErrNoHistory = errors.New("history not configured")

package domain

import (
	"context"
	"time"
)

// CalculationEvent describes one pass through the calculation pipeline.
type CalculationEvent struct {
	Timestamp time.Time     `json:"timestamp"`
	Input     string        `json:"input"`
	Result    float64       `json:"result,omitempty"`
	Outcome   Outcome       `json:"outcome"`
	Duration  time.Duration `json:"duration"`
}

// LifecycleHooks defines callbacks for engine observability.
type LifecycleHooks struct {
	OnCalculate func(context.Context, *CalculationEvent)
}

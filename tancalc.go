package tancalc

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/hardikgohil73253/SEP-D3/pkg/domain"
	"github.com/hardikgohil73253/SEP-D3/pkg/ports"
	"github.com/hardikgohil73253/SEP-D3/pkg/trig"
)

// Engine is the high-level entry point for the tancalc library.
// It wraps the pure pkg/trig pipeline and provides a managed API for
// consumers: logging, lifecycle hooks and optional history recording.
//
// The numeric result always comes from pkg/trig alone. Hooks and the
// history tape observe calculations; they never influence them.
type Engine struct {
	logger  *slog.Logger
	hooks   domain.LifecycleHooks
	history ports.HistoryStore
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithHistory attaches a calculation history store.
func WithHistory(store ports.HistoryStore) Option {
	return func(e *Engine) {
		e.history = store
	}
}

// New initializes a new Engine.
func New(opts ...Option) *Engine {
	eng := &Engine{}

	for _, opt := range opts {
		opt(eng)
	}

	// Ensure logger is initialized so the engine never logs through nil.
	if eng.logger == nil {
		eng.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	return eng
}

// Calculate runs the tangent pipeline on raw user input and reports the
// result to the configured hooks and history store.
func (e *Engine) Calculate(ctx context.Context, input string) (float64, error) {
	started := time.Now()
	result, err := trig.Calculate(input)
	elapsed := time.Since(started)
	outcome := domain.OutcomeForError(err)

	if err != nil {
		e.logger.Warn("calculation failed", "input", input, "outcome", string(outcome), "error", err)
	} else {
		e.logger.Debug("calculation finished", "input", input, "result", result, "duration", elapsed)
	}

	if e.hooks.OnCalculate != nil {
		e.hooks.OnCalculate(ctx, &domain.CalculationEvent{
			Timestamp: started,
			Input:     input,
			Result:    result,
			Outcome:   outcome,
			Duration:  elapsed,
		})
	}

	if e.history != nil {
		calc := domain.Calculation{
			Input:   input,
			Result:  result,
			Outcome: outcome,
			At:      started,
		}
		// A broken tape must not break the calculation.
		if recErr := e.history.Record(ctx, calc); recErr != nil {
			e.logger.Warn("failed to record calculation", "error", recErr)
		}
	}

	return result, err
}

// History returns up to limit recent calculations, newest first.
// It returns domain.ErrNoHistory when no store is attached.
func (e *Engine) History(ctx context.Context, limit int) ([]domain.Calculation, error) {
	if e.history == nil {
		return nil, domain.ErrNoHistory
	}
	return e.history.Recent(ctx, limit)
}

// ClearHistory empties the attached history store.
// It returns domain.ErrNoHistory when no store is attached.
func (e *Engine) ClearHistory(ctx context.Context) error {
	if e.history == nil {
		return domain.ErrNoHistory
	}
	return e.history.Clear(ctx)
}

package tancalc_test

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	tancalc "github.com/hardikgohil73253/SEP-D3"
	"github.com/hardikgohil73253/SEP-D3/pkg/adapters/memory"
	"github.com/hardikgohil73253/SEP-D3/pkg/domain"
	"github.com/hardikgohil73253/SEP-D3/pkg/trig"
)

func TestEngineCalculate(t *testing.T) {
	engine := tancalc.New()
	ctx := context.Background()

	result, err := engine.Calculate(ctx, "45")
	if err != nil {
		t.Fatalf("Calculate(45) returned error: %v", err)
	}
	if math.Abs(result-1) > 1e-6 {
		t.Errorf("Calculate(45) = %v, want 1", result)
	}

	if _, err := engine.Calculate(ctx, "90"); !errors.Is(err, trig.ErrUndefinedTangent) {
		t.Errorf("Calculate(90) error = %v, want ErrUndefinedTangent", err)
	}

	if _, err := engine.Calculate(ctx, "abc"); !errors.Is(err, trig.ErrInvalidInput) {
		t.Errorf("Calculate(abc) error = %v, want ErrInvalidInput", err)
	}
}

func TestEngineLifecycleHooks(t *testing.T) {
	var events []domain.CalculationEvent
	hooks := domain.LifecycleHooks{
		OnCalculate: func(_ context.Context, ev *domain.CalculationEvent) {
			events = append(events, *ev)
		},
	}

	engine := tancalc.New(tancalc.WithLifecycleHooks(hooks))
	ctx := context.Background()

	_, _ = engine.Calculate(ctx, "45")
	_, _ = engine.Calculate(ctx, "90")
	_, _ = engine.Calculate(ctx, "nope")

	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	if events[0].Outcome != domain.OutcomeOK || events[0].Input != "45" {
		t.Errorf("first event = %+v", events[0])
	}
	if events[1].Outcome != domain.OutcomeUndefinedTangent {
		t.Errorf("second event outcome = %q", events[1].Outcome)
	}
	if events[2].Outcome != domain.OutcomeInvalidInput {
		t.Errorf("third event outcome = %q", events[2].Outcome)
	}
}

func TestEngineHistory(t *testing.T) {
	store := memory.NewStore()
	engine := tancalc.New(tancalc.WithHistory(store))
	ctx := context.Background()

	_, _ = engine.Calculate(ctx, "45")
	_, _ = engine.Calculate(ctx, "90")

	recs, err := engine.History(ctx, 10)
	if err != nil {
		t.Fatalf("History returned error: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if recs[0].Input != "90" || recs[0].Outcome != domain.OutcomeUndefinedTangent {
		t.Errorf("newest record = %+v", recs[0])
	}
	if recs[1].Input != "45" || recs[1].Outcome != domain.OutcomeOK {
		t.Errorf("oldest record = %+v", recs[1])
	}

	if err := engine.ClearHistory(ctx); err != nil {
		t.Fatalf("ClearHistory returned error: %v", err)
	}
	recs, err = engine.History(ctx, 10)
	if err != nil {
		t.Fatalf("History after clear returned error: %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("expected empty tape after clear, got %d records", len(recs))
	}
}

func TestEngineHistoryNotConfigured(t *testing.T) {
	engine := tancalc.New()
	ctx := context.Background()

	if _, err := engine.History(ctx, 10); !errors.Is(err, domain.ErrNoHistory) {
		t.Errorf("History error = %v, want ErrNoHistory", err)
	}
	if err := engine.ClearHistory(ctx); !errors.Is(err, domain.ErrNoHistory) {
		t.Errorf("ClearHistory error = %v, want ErrNoHistory", err)
	}
}

// brokenStore fails every write to verify the engine shrugs it off.
type brokenStore struct{}

func (brokenStore) Record(context.Context, domain.Calculation) error {
	return errors.New("tape jammed")
}

func (brokenStore) Recent(context.Context, int) ([]domain.Calculation, error) {
	return nil, errors.New("tape jammed")
}

func (brokenStore) Clear(context.Context) error {
	return errors.New("tape jammed")
}

func TestEngineSurvivesBrokenHistory(t *testing.T) {
	engine := tancalc.New(tancalc.WithHistory(brokenStore{}))

	result, err := engine.Calculate(context.Background(), "45")
	if err != nil {
		t.Fatalf("Calculate should not fail on a broken store: %v", err)
	}
	if math.Abs(result-1) > 1e-6 {
		t.Errorf("Calculate(45) = %v, want 1", result)
	}
}

func TestVersionEmbedded(t *testing.T) {
	if strings.TrimSpace(tancalc.Version) != "1.0.0" {
		t.Errorf("Version = %q, want 1.0.0", tancalc.Version)
	}
}

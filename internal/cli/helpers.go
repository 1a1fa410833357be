// Package cli holds the logic behind the tancalc commands. The command
// definitions under cmd/tancalc stay thin: parse flags, call into here.
package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"github.com/hardikgohil73253/SEP-D3/internal/logging"
	"github.com/hardikgohil73253/SEP-D3/pkg/domain"
)

// SignalContext wires OS interrupt signals to context cancellation so
// long-running commands unwind cleanly on Ctrl+C.
type SignalContext struct {
	ctx    context.Context
	cancel context.CancelFunc
	ch     chan os.Signal
	once   sync.Once
	stop   sync.Once
}

// NewSignalContext starts listening for SIGINT and SIGTERM immediately.
func NewSignalContext(parent context.Context) *SignalContext {
	ctx, cancel := context.WithCancel(parent)
	sc := &SignalContext{ctx: ctx, cancel: cancel, ch: make(chan os.Signal, 1)}
	sc.once.Do(func() {
		signal.Notify(sc.ch, os.Interrupt, syscall.SIGTERM)
		go func() {
			select {
			case <-sc.ch:
				sc.cancel()
			case <-sc.ctx.Done():
			}
		}()
	})
	return sc
}

// Context returns the cancellable context.
func (sc *SignalContext) Context() context.Context { return sc.ctx }

// Stop releases the signal handler and cancels the context.
func (sc *SignalContext) Stop() {
	sc.stop.Do(func() {
		signal.Stop(sc.ch)
		sc.cancel()
	})
}

// CreateLogger returns a debug-level logger when verbose output is
// requested and a no-op logger otherwise. Interactive commands stay
// quiet by default; the serve command builds its own leveled logger.
func CreateLogger(debug bool) *slog.Logger {
	if debug {
		return logging.New(slog.LevelDebug)
	}
	return logging.NewNop()
}

// DebugHooks logs every calculation event, for troubleshooting sessions.
func DebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnCalculate: func(ctx context.Context, ev *domain.CalculationEvent) {
			logger.Debug("calculation event",
				"input", ev.Input,
				"outcome", ev.Outcome,
				"duration", ev.Duration,
			)
		},
	}
}

// MergeHooks fans each calculation event out to every hook set in order.
func MergeHooks(hooks ...domain.LifecycleHooks) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnCalculate: func(ctx context.Context, ev *domain.CalculationEvent) {
			for _, h := range hooks {
				if h.OnCalculate != nil {
					h.OnCalculate(ctx, ev)
				}
			}
		},
	}
}

// InterruptibleReader wraps a reader so a pending read reports an
// interrupt once the done channel closes, instead of blocking the
// shutdown path behind a stalled os.Stdin.
type InterruptibleReader struct {
	r    io.Reader
	done <-chan struct{}
}

// NewInterruptibleReader ties reads on r to the done channel.
func NewInterruptibleReader(r io.Reader, done <-chan struct{}) *InterruptibleReader {
	return &InterruptibleReader{r: r, done: done}
}

// Read checks for cancellation before and after delegating to the
// wrapped reader.
func (ir *InterruptibleReader) Read(p []byte) (int, error) {
	select {
	case <-ir.done:
		return 0, errInterrupted
	default:
	}
	n, err := ir.r.Read(p)
	select {
	case <-ir.done:
		return n, errInterrupted
	default:
	}
	return n, err
}

var errInterrupted = errors.New("interrupted")

// IsInterrupted reports whether err stems from signal-driven shutdown
// rather than a genuine failure.
func IsInterrupted(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, errInterrupted) || errors.Is(err, context.Canceled) {
		return true
	}
	return strings.Contains(err.Error(), errInterrupted.Error())
}

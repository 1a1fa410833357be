package cli

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/term"

	tancalc "github.com/hardikgohil73253/SEP-D3"
	"github.com/hardikgohil73253/SEP-D3/internal/config"
)

// ReplOptions configures an interactive calculator session.
type ReplOptions struct {
	// Debug enables calculation event logging to stderr.
	Debug bool
	// History selects the tape backend for the session. The zero value
	// keeps an in-memory tape so the history keyword works out of the
	// box; "none" disables the tape entirely.
	History config.HistoryConfig
}

// RunRepl drives the read-eval-print loop until the user exits or the
// process receives an interrupt.
func RunRepl(opts ReplOptions) error {
	logger := CreateLogger(opts.Debug)

	hist := opts.History
	if hist.Backend == "" {
		hist.Backend = "memory"
	}
	store, closeStore, err := BuildHistoryStore(hist)
	if err != nil {
		return err
	}
	defer func() { _ = closeStore() }()

	engineOpts := []tancalc.Option{
		tancalc.WithLogger(logger),
		tancalc.WithHistory(store),
	}
	if opts.Debug {
		engineOpts = append(engineOpts, tancalc.WithLifecycleHooks(DebugHooks(logger)))
	}
	engine := tancalc.New(engineOpts...)

	sc := NewSignalContext(context.Background())
	defer sc.Stop()

	runner := tancalc.NewRunner()
	runner.Input = NewInterruptibleReader(os.Stdin, sc.Context().Done())
	runner.Output = os.Stdout
	runner.Interactive = term.IsTerminal(int(os.Stdin.Fd()))

	if err := runner.Run(sc.Context(), engine); err != nil {
		if IsInterrupted(err) {
			fmt.Fprintln(os.Stdout)
			return nil
		}
		return err
	}
	return nil
}

package tancalc

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/hardikgohil73253/SEP-D3/internal/presentation/tui"
	"github.com/hardikgohil73253/SEP-D3/pkg/domain"
)

// historyPageSize is how many records the repl "history" keyword shows.
const historyPageSize = 10

// Runner handles the interactive calculation loop using provided IO.
// This allows for easy testing and integration with different frontends.
//
// Each line is treated as an angle in degrees, except for three keywords
// (matched case-insensitively): "exit" ends the session, "clear" wipes
// the screen, "history" prints the recent tape.
type Runner struct {
	Input  io.Reader
	Output io.Writer

	// Interactive enables the banner and the "> " prompt. Leave it false
	// for piped input so the output stays machine-readable.
	Interactive bool
}

// NewRunner creates a Runner with unset IO. Callers must assign Input and
// Output (typically os.Stdin and os.Stdout) before Run.
func NewRunner() *Runner {
	return &Runner{}
}

// Run executes the calculation loop until "exit" or EOF.
func (r *Runner) Run(ctx context.Context, engine *Engine) error {
	if r.Input == nil {
		return fmt.Errorf("input reader must be set (use os.Stdin)")
	}
	if r.Output == nil {
		return fmt.Errorf("output writer must be set (use os.Stdout)")
	}

	lineReader := bufio.NewReader(r.Input)
	writer := r.Output

	if r.Interactive {
		tui.PrintBanner(writer, strings.TrimSpace(Version))
		fmt.Fprintln(writer, `Type an angle in degrees, or "history", "clear", "exit".`)
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if r.Interactive {
			fmt.Fprint(writer, "> ")
		}

		text, err := lineReader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				// Graceful exit on EOF; a trailing line without a
				// newline still gets computed.
				if line := strings.TrimSpace(text); line != "" {
					r.handleLine(ctx, engine, writer, line)
				}
				return nil
			}
			return fmt.Errorf("input error: %w", err)
		}

		line := strings.TrimSpace(text)
		switch {
		case strings.EqualFold(line, "exit"), strings.EqualFold(line, "quit"):
			fmt.Fprintln(writer, "Bye!")
			return nil
		case strings.EqualFold(line, "clear"):
			tui.Clear(writer)
			if r.Interactive {
				tui.PrintBanner(writer, strings.TrimSpace(Version))
			}
			continue
		case strings.EqualFold(line, "history"):
			r.printHistory(ctx, engine, writer)
			continue
		}

		r.handleLine(ctx, engine, writer, line)
	}
}

func (r *Runner) handleLine(ctx context.Context, engine *Engine, w io.Writer, line string) {
	input, err := SanitizeInput(line)
	if err == nil {
		var result float64
		result, err = engine.Calculate(ctx, input)
		if err == nil {
			fmt.Fprintln(w, tui.FormatResult(result))
			return
		}
	}
	fmt.Fprintln(w, tui.FormatError(err))
}

func (r *Runner) printHistory(ctx context.Context, engine *Engine, w io.Writer) {
	recs, err := engine.History(ctx, historyPageSize)
	if err != nil {
		if errors.Is(err, domain.ErrNoHistory) {
			fmt.Fprintln(w, "History is not enabled for this session.")
			return
		}
		fmt.Fprintln(w, tui.FormatError(err))
		return
	}

	if len(recs) == 0 {
		fmt.Fprintln(w, "No calculations yet.")
		return
	}
	for _, calc := range recs {
		fmt.Fprintln(w, tui.FormatHistoryLine(calc))
	}
}

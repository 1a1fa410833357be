package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	tancalc "github.com/hardikgohil73253/SEP-D3"
	"github.com/hardikgohil73253/SEP-D3/internal/cli"
	"github.com/hardikgohil73253/SEP-D3/pkg/domain"
	"github.com/hardikgohil73253/SEP-D3/pkg/trig"
	"github.com/spf13/cobra"
)

// computeCmd represents the compute command
var computeCmd = &cobra.Command{
	Use:   "compute [degrees]",
	Short: "Calculate the tangent of one angle and exit",
	Long: `Computes tan(degrees) once, for scripts and pipelines. Exits 1 when
the input is not a finite number and 2 when the tangent is undefined.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		debug, _ := cmd.Flags().GetBool("debug")
		jsonMode, _ := cmd.Flags().GetBool("json")
		os.Exit(runCompute(cmd.Context(), args[0], debug, jsonMode))
	},
}

func init() {
	rootCmd.AddCommand(computeCmd)

	computeCmd.Flags().Bool("json", false, "Emit the result as a JSON envelope")
}

// runCompute returns the process exit code: 0 on success, 1 for invalid
// input and 2 for an undefined tangent.
func runCompute(ctx context.Context, raw string, debug, jsonMode bool) int {
	logger := cli.CreateLogger(debug)
	engine := tancalc.New(tancalc.WithLogger(logger))

	input, err := tancalc.SanitizeInput(raw)
	if err == nil {
		var result float64
		if result, err = engine.Calculate(ctx, input); err == nil {
			if jsonMode {
				json.NewEncoder(os.Stdout).Encode(map[string]any{
					"input":   input,
					"result":  result,
					"outcome": domain.OutcomeOK,
				})
			} else {
				fmt.Printf("%.6f\n", result)
			}
			return 0
		}
	}

	if jsonMode {
		json.NewEncoder(os.Stdout).Encode(map[string]string{
			"input":   raw,
			"outcome": string(domain.OutcomeForError(err)),
			"error":   err.Error(),
		})
	} else {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	if errors.Is(err, trig.ErrUndefinedTangent) {
		return 2
	}
	return 1
}

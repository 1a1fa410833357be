package main

import (
	"fmt"
	"os"

	"github.com/hardikgohil73253/SEP-D3/internal/cli"
	"github.com/spf13/cobra"
)

// replCmd represents the repl command
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive calculator",
	Long: `Starts a read-eval-print loop. Type an angle in degrees to see its
tangent, "history" for the session tape, "clear" to repaint the screen
and "exit" or "quit" to leave.`,
	Run: func(cmd *cobra.Command, args []string) {
		debug, _ := cmd.Flags().GetBool("debug")

		opts := cli.ReplOptions{Debug: debug}
		opts.History.Backend, _ = cmd.Flags().GetString("history")
		opts.History.Path, _ = cmd.Flags().GetString("history-path")
		opts.History.Limit, _ = cmd.Flags().GetInt("history-limit")

		if err := cli.RunRepl(opts); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(replCmd)

	replCmd.Flags().String("history", "memory", "History backend: memory, file, redis or none")
	replCmd.Flags().String("history-path", "", "History file path (file backend only)")
	replCmd.Flags().Int("history-limit", 0, "Maximum calculations to retain (0 for the backend default)")

	// Launching tancalc without a subcommand drops into the calculator.
	rootCmd.Run = replCmd.Run
}

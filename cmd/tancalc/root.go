package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tancalc",
	Short: "tancalc is a tangent calculator",
	Long: `tancalc computes the tangent of angles given in degrees, evaluating
sine and cosine with its own Maclaurin series and reporting undefined
tangents instead of overflowing near the poles.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
}

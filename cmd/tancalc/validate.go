package main

import (
	"fmt"
	"os"

	tancalc "github.com/hardikgohil73253/SEP-D3"
	"github.com/hardikgohil73253/SEP-D3/pkg/trig"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [input]",
	Short: "Check whether an input parses as a finite angle",
	Long:  `Applies the calculator's input rules to a string without computing anything.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runValidate(args[0]); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Input is valid! ✅")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(raw string) error {
	input, err := tancalc.SanitizeInput(raw)
	if err != nil {
		return err
	}
	if _, err := trig.ParseInput(input); err != nil {
		return err
	}
	return nil
}

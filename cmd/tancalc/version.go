package main

import (
	"fmt"
	"strings"

	tancalc "github.com/hardikgohil73253/SEP-D3"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of tancalc",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tancalc version %s\n", strings.TrimSpace(tancalc.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

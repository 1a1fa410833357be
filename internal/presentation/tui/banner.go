package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the ASCII art banner for the interactive calculator.
func PrintBanner(w io.Writer, version string) {
	p := termenv.ColorProfile()
	// Blue-to-green gradient, one color per row.
	rows := []string{
		` _                                _       `,
		`| |_   __ _  _ __    ___   __ _ | |  ___  `,
		`| __| / _' || '_ \  / __| / _' || | / __| `,
		`| |_ | (_| || | | || (__ | (_| || || (__  `,
		` \__| \__,_||_| |_| \___| \__,_||_| \___| `,
	}
	colors := []string{"#60a5fa", "#38bdf8", "#22d3ee", "#2dd4bf", "#34d399"}

	fmt.Fprintln(w)
	for i, row := range rows {
		fmt.Fprintln(w, termenv.String(row).Foreground(p.Color(colors[i])))
	}
	fmt.Fprintf(w, "  tangent calculator v%s\n\n", version)
}

// Clear wipes the terminal attached to w.
func Clear(w io.Writer) {
	termenv.NewOutput(w).ClearScreen()
}

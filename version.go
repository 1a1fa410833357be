package tancalc

import _ "embed"

// Version is the release version, embedded from the VERSION file.
// It carries a trailing newline; trim it before display.
//
//go:embed VERSION
var Version string

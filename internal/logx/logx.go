// Package logx is the CLI's minimal verbose-logging helper, lifted out of
// the teacher's cmd/root.go logVerbose closure so every subcommand can
// share one verbosity flag without a package-level cobra variable.
package logx

import (
	"fmt"
	"os"
)

var verbose bool

// SetVerbose toggles whether Verbose writes anything. Called once from
// the root command's persistent flag binding.
func SetVerbose(v bool) { verbose = v }

// Verbose writes a formatted line to stderr iff verbose output is
// enabled.
func Verbose(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}

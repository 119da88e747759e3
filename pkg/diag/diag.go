// Package diag writes diagnostic messages for the bridge. Stdout belongs to
// the JSON envelope the calling server parses, so every human-readable line
// goes to stderr.
package diag

import (
	"fmt"
	"io"
	"os"
)

// Output is the destination for diagnostic lines. Defaults to stderr.
var Output io.Writer = os.Stderr

// Logf writes a formatted diagnostic line.
func Logf(format string, args ...any) {
	fmt.Fprintf(Output, format+"\n", args...)
}

// Warnf writes a formatted diagnostic line prefixed with "warning:".
func Warnf(format string, args ...any) {
	fmt.Fprintf(Output, "warning: "+format+"\n", args...)
}

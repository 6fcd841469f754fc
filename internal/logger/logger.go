package logger

import (
	"io"
	"os"

	"github.com/fatih/color" // Import the fatih/color package for colored console output
)

// Define colorized printing functions for different log levels using fatih/color.
// These are package-level variables holding functions that behave like fmt.Printf,
// but write colored text to the diagnostic stream chosen in Init.
//
// Standard output may be the declaration sink, so nothing here ever writes to it.

// Info logs informational messages in green color.
var Info = printer(color.FgGreen, os.Stderr)

// Warn logs warning messages in bright magenta color.
// Used for non-fatal data warnings; processing continues after a Warn.
var Warn = printer(color.FgHiMagenta, os.Stderr)

// Error logs error messages in red color.
var Error = printer(color.FgRed, os.Stderr)

// Debug logs debug messages in cyan color if enabled, otherwise is a no-op.
var Debug = func(format string, a ...any) {}

// Init rebinds every level to w and enables or disables debug logging.
// Parameters:
// - w: destination for all log output (normally the process error stream).
// - enableDebug: when true, Debug prints cyan messages; otherwise it is a no-op.
func Init(w io.Writer, enableDebug bool) {
	Info = printer(color.FgGreen, w)
	Warn = printer(color.FgHiMagenta, w)
	Error = printer(color.FgRed, w)

	if enableDebug {
		Debug = printer(color.FgCyan, w)
	} else {
		Debug = func(format string, a ...any) {}
	}
}

// DisableColor turns off ANSI colors for every level.
func DisableColor() {
	color.NoColor = true
}

func printer(attr color.Attribute, w io.Writer) func(format string, a ...any) {
	c := color.New(attr)
	return func(format string, a ...any) {
		_, _ = c.Fprintf(w, format, a...)
	}
}

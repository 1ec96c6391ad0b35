package encode

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

type EncodeOption func(*EncState)

// Indent enables pretty output with n spaces per nesting level.
// Output is compact when unset.
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// EscapeSolidus escapes '/' as \/ in string content and keys.
func EscapeSolidus() EncodeOption {
	return func(es *EncState) { es.solidus = true }
}

// AnyRoot permits any value at the top level instead of requiring an
// object.
func AnyRoot() EncodeOption {
	return func(es *EncState) { es.anyRoot = true }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// AutoColors enables terminal colors when w is a terminal. Colored
// output is for display only and does not parse back.
func AutoColors(w io.Writer) EncodeOption {
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return EncodeColors(NewColors())
	}
	return func(es *EncState) {}
}

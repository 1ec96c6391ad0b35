package encode

import (
	"fmt"

	"github.com/laxfmt/laxjson/ir"
)

type ErrKind int

const (
	// BadTopLevel reports an outermost value that is not an object.
	BadTopLevel ErrKind = iota
	// BadKey reports an object pair whose key is not a string.
	BadKey
	// BadTerm reports a value with no encodable shape.
	BadTerm
)

func (k ErrKind) String() string {
	switch k {
	case BadTopLevel:
		return "bad top level"
	case BadKey:
		return "bad key"
	case BadTerm:
		return "bad term"
	}
	return "<unknown kind>"
}

// EncodeError is a structural encoding error. Node carries the
// offending term for diagnostics. Encoding is not recoverable
// mid-document; the whole Encode call fails.
type EncodeError struct {
	Kind ErrKind
	Node *ir.Node
}

func (e *EncodeError) Error() string {
	if e.Node == nil {
		return fmt.Sprintf("encode: %s", e.Kind)
	}
	return fmt.Sprintf("encode: %s at %s (%s)", e.Kind, e.Node.Path(), e.Node.Type)
}

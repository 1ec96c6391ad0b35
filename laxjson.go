// Package laxjson converts between a lenient JSON text form and a
// tagged value tree, and back.
//
// The dialect deviates from RFC 8259 deliberately: a trailing comma
// in objects and arrays is tolerated, any byte outside printable
// 7-bit ASCII counts as whitespace between tokens, string content is
// an opaque byte sequence in which only \" is special (no escape
// sequences are interpreted on decode), numbers with a fraction or
// exponent keep their exact source text, and the document root must
// be an object. See the parse and encode packages for the knobs that
// relax the root rule.
//
//	node, err := laxjson.Decode([]byte(`{"a":1,}`))
//	...
//	out, err := laxjson.EncodeBytes(node)
package laxjson

import (
	"io"

	"github.com/laxfmt/laxjson/encode"
	"github.com/laxfmt/laxjson/ir"
	"github.com/laxfmt/laxjson/parse"
)

// Decode parses d into a value tree.
func Decode(d []byte, opts ...parse.ParseOption) (*ir.Node, error) {
	return parse.Parse(d, opts...)
}

// DecodeFile reads the whole file at path into memory and decodes it.
func DecodeFile(path string, opts ...parse.ParseOption) (*ir.Node, error) {
	return parse.ParseFile(path, opts...)
}

// Encode writes node as text to w.
func Encode(node *ir.Node, w io.Writer, opts ...encode.EncodeOption) error {
	return encode.Encode(node, w, opts...)
}

// EncodeBytes encodes node into a byte slice.
func EncodeBytes(node *ir.Node, opts ...encode.EncodeOption) ([]byte, error) {
	return encode.Bytes(node, opts...)
}

package encode

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	"github.com/laxfmt/laxjson/debug"
	"github.com/laxfmt/laxjson/ir"
	"github.com/laxfmt/laxjson/token"
)

type EncState struct {
	col, depth int
	indent     int
	solidus    bool
	anyRoot    bool

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node as laxjson text. The outermost node must be an
// object unless AnyRoot is given. Output is compact by default; see
// Indent. The input tree is never mutated.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	if node == nil || !es.anyRoot && node.Type != ir.ObjectType {
		err := &EncodeError{Kind: BadTopLevel, Node: node}
		if debug.Encode() {
			debug.Logf("%v", err)
		}
		return err
	}
	if err := encode(node, w, es); err != nil {
		if debug.Encode() {
			debug.Logf("%v", err)
		}
		return err
	}
	return nil
}

// Bytes encodes node into a byte slice.
func Bytes(node *ir.Node, opts ...EncodeOption) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func writeNL(w io.Writer, es *EncState) error {
	if es.indent == 0 {
		return nil
	}
	indentString := strings.Repeat(" ", es.indent*es.depth)
	if err := writeString(w, "\n"+indentString); err != nil {
		return err
	}
	es.col = len(indentString)
	return nil
}

func writeToken(w io.Writer, es *EncState, t ir.Type, attr ColorAttr, s string) error {
	es.col += len(s)
	if es.Color != nil {
		s = es.Color(t, attr, s)
	}
	return writeString(w, s)
}

func writeField(w io.Writer, f string, es *EncState) error {
	q := "\"" + token.Escape(f, es.solidus) + "\""
	sep := ":"
	if es.indent > 0 {
		sep = ": "
	}
	es.col += len(q) + len(sep)
	if es.Color != nil {
		q = es.Color(ir.ObjectType, FieldColor, q)
		sep = es.Color(ir.ObjectType, SepColor, sep)
	}
	return writeString(w, q+sep)
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	if node == nil {
		return &EncodeError{Kind: BadTerm}
	}
	switch node.Type {
	case ir.ObjectType:
		return encodeObject(node, w, es)
	case ir.ArrayType:
		return encodeArray(node, w, es)
	case ir.StringType:
		return encodeString(node, w, es)
	case ir.IntType:
		return encodeInt(node, w, es)
	case ir.DecimalType:
		return encodeDecimal(node, w, es)
	case ir.BoolType:
		return encodeBool(node, w, es)
	case ir.NullType:
		return encodeNull(node, w, es)
	default:
		return &EncodeError{Kind: BadTerm, Node: node}
	}
}

func encodeObject(node *ir.Node, w io.Writer, es *EncState) error {
	if len(node.Fields) != len(node.Values) {
		return &EncodeError{Kind: BadTerm, Node: node}
	}
	if len(node.Fields) == 0 {
		return writeToken(w, es, ir.ObjectType, SepColor, "{}")
	}
	if err := writeToken(w, es, ir.ObjectType, SepColor, "{"); err != nil {
		return err
	}
	es.depth++
	for i, yField := range node.Fields {
		if i > 0 {
			if err := writeToken(w, es, ir.ObjectType, SepColor, ","); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if yField == nil || yField.Type != ir.StringType {
			offending := yField
			if offending == nil {
				offending = node
			}
			return &EncodeError{Kind: BadKey, Node: offending}
		}
		if err := writeField(w, yField.String, es); err != nil {
			return err
		}
		val := node.Values[i]
		if val == nil {
			return &EncodeError{Kind: BadTerm, Node: node}
		}
		if err := encode(val, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeToken(w, es, ir.ObjectType, SepColor, "}")
}

func encodeArray(node *ir.Node, w io.Writer, es *EncState) error {
	if len(node.Values) == 0 {
		return writeToken(w, es, ir.ArrayType, SepColor, "[]")
	}
	if err := writeToken(w, es, ir.ArrayType, SepColor, "["); err != nil {
		return err
	}
	es.depth++
	for i, v := range node.Values {
		if i > 0 {
			if err := writeToken(w, es, ir.ArrayType, SepColor, ","); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if v == nil {
			return &EncodeError{Kind: BadTerm, Node: node}
		}
		if err := encode(v, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeToken(w, es, ir.ArrayType, SepColor, "]")
}

func encodeString(node *ir.Node, w io.Writer, es *EncState) error {
	v := "\"" + token.Escape(node.String, es.solidus) + "\""
	return writeToken(w, es, ir.StringType, ValueColor, v)
}

func encodeInt(node *ir.Node, w io.Writer, es *EncState) error {
	if node.Int == nil {
		return &EncodeError{Kind: BadTerm, Node: node}
	}
	return writeToken(w, es, ir.IntType, ValueColor, node.Int.String())
}

func encodeDecimal(node *ir.Node, w io.Writer, es *EncState) error {
	if node.Decimal == "" {
		return &EncodeError{Kind: BadTerm, Node: node}
	}
	return writeToken(w, es, ir.DecimalType, ValueColor, node.Decimal)
}

func encodeBool(node *ir.Node, w io.Writer, es *EncState) error {
	return writeToken(w, es, ir.BoolType, ValueColor, strconv.FormatBool(node.Bool))
}

func encodeNull(node *ir.Node, w io.Writer, es *EncState) error {
	return writeToken(w, es, ir.NullType, ValueColor, "null")
}

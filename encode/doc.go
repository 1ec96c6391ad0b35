// Package encode encodes ir nodes to laxjson text.
//
// # Usage
//
//	node := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: ir.FromString("name"), Val: ir.FromString("alice")},
//	    {Key: ir.FromString("age"), Val: ir.FromInt(30)},
//	})
//	var buf bytes.Buffer
//	err := encode.Encode(node, &buf)
//
//	// Pretty output
//	err = encode.Encode(node, &buf, encode.Indent(2))
//
// Structural problems fail the whole call with an *EncodeError whose
// Kind is BadTopLevel, BadKey or BadTerm and which carries the
// offending node.
//
// # Related Packages
//
//   - github.com/laxfmt/laxjson/ir - value model
//   - github.com/laxfmt/laxjson/parse - parse text to ir
package encode

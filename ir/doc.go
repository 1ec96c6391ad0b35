// Package ir provides the in-memory value model for laxjson documents.
//
// A document is a tree of [Node] values, a recursive tagged union with
// one variant per JSON shape. Strings and arrays are distinct at the
// type level, and the two numeric variants keep decoded numbers exact:
// integers are arbitrary precision ([math/big.Int]) and numbers with a
// fraction or exponent keep their normalized source text rather than
// being converted to a binary float.
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	node := ir.FromString("hello")
//	num := ir.FromInt(42)
//	dec := ir.FromDecimal("3.14")
//	obj := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: ir.FromString("age"), Val: ir.FromInt(49)},
//	})
//
// For ObjectType nodes, Fields[i] is the key for the value at
// Values[i]; there are always the same number of fields as values.
// Duplicate keys are permitted and preserved in order. Object pair
// order is kept for round-trips but is not significant for [Equal].
//
// Nodes are treated as immutable once constructed: parsing produces a
// fresh tree per call and encoding never mutates its input. Node
// structures are not synchronized; clone per goroutine if shared.
//
// # Related Packages
//
//   - github.com/laxfmt/laxjson/parse - parses text into ir nodes
//   - github.com/laxfmt/laxjson/encode - encodes ir nodes to text
//   - github.com/laxfmt/laxjson/gomap - converts ir nodes to and from Go values
package ir

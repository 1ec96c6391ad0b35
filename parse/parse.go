// Package parse provides laxjson parsing support.
package parse

import (
	"fmt"
	"math/big"
	"os"

	"github.com/laxfmt/laxjson/debug"
	"github.com/laxfmt/laxjson/ir"
	"github.com/laxfmt/laxjson/token"
)

// DefaultMaxDepth bounds container nesting unless overridden with
// MaxDepth.
const DefaultMaxDepth = 10000

// Parse decodes d into an ir tree. The document root must be an
// object unless AnyRoot is given. Bytes after a fully matched root are
// ignored, so a valid prefix decodes successfully.
//
// Each grammar rule tries alternatives in a fixed order against the
// current cursor and commits to the first whose prefix matches; a
// committed rule that later fails is not retried against earlier
// alternatives. A trailing comma inside an object or array is
// tolerated and dropped.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	i := token.SkipWS(d, 0)
	var (
		res *ir.Node
		ok  bool
	)
	if pOpts.anyRoot {
		res, ok = parseValue(d, &i, 0, pOpts)
	} else {
		res, ok = parseObject(d, &i, 0, pOpts)
	}
	if !ok {
		if debug.Parse() {
			debug.Logf("parse: no match at offset %d", i)
		}
		if pOpts.anyRoot {
			return nil, fmt.Errorf("%w: no value at document start", ErrParse)
		}
		return nil, fmt.Errorf("%w: no object at document start", ErrParse)
	}
	return res, nil
}

// ParseFile reads the whole file at path and parses it.
func ParseFile(path string, opts ...ParseOption) (*ir.Node, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(d, opts...)
}

// Every rule below either consumes a prefix, advancing *pi, or
// reports false with *pi unchanged.

func parseValue(d []byte, pi *int, depth int, opts *parseOpts) (*ir.Node, bool) {
	if v, next, ok := token.ScanString(d, *pi); ok {
		*pi = next
		return ir.FromString(v), true
	}
	if text, decimal, next, ok := token.ScanNumber(d, *pi); ok {
		*pi = next
		if decimal {
			return ir.FromDecimal(text), true
		}
		i, ok := new(big.Int).SetString(text, 10)
		if !ok {
			// scanner output is always digits
			panic("unreachable")
		}
		return &ir.Node{Type: ir.IntType, Int: i}, true
	}
	if lit, ok := parseLiteral(d, pi); ok {
		return lit, true
	}
	if obj, ok := parseObject(d, pi, depth, opts); ok {
		return obj, true
	}
	return parseArray(d, pi, depth, opts)
}

func parseLiteral(d []byte, pi *int) (*ir.Node, bool) {
	switch {
	case hasPrefix(d, *pi, "true"):
		*pi += len("true")
		return ir.FromBool(true), true
	case hasPrefix(d, *pi, "false"):
		*pi += len("false")
		return ir.FromBool(false), true
	case hasPrefix(d, *pi, "null"):
		*pi += len("null")
		return ir.Null(), true
	}
	return nil, false
}

func hasPrefix(d []byte, i int, s string) bool {
	return len(d)-i >= len(s) && string(d[i:i+len(s)]) == s
}

func parseObject(d []byte, pi *int, depth int, opts *parseOpts) (*ir.Node, bool) {
	if depth > opts.maxDepth {
		return nil, false
	}
	start := *pi
	if *pi >= len(d) || d[*pi] != '{' {
		return nil, false
	}
	*pi = token.SkipWS(d, *pi+1)
	if *pi < len(d) && d[*pi] == '}' {
		*pi++
		return ir.FromKeyVals(nil), true
	}
	kvs := []ir.KeyVal{}
	for {
		kv, ok := parsePair(d, pi, depth+1, opts)
		if !ok {
			*pi = start
			return nil, false
		}
		kvs = append(kvs, kv)
		*pi = token.SkipWS(d, *pi)
		if *pi >= len(d) {
			*pi = start
			return nil, false
		}
		switch d[*pi] {
		case ',':
			*pi = token.SkipWS(d, *pi+1)
			if *pi < len(d) && d[*pi] == '}' {
				// dangling comma dropped
				*pi++
				return ir.FromKeyVals(kvs), true
			}
		case '}':
			*pi++
			return ir.FromKeyVals(kvs), true
		default:
			*pi = start
			return nil, false
		}
	}
}

func parsePair(d []byte, pi *int, depth int, opts *parseOpts) (ir.KeyVal, bool) {
	start := *pi
	key, next, ok := token.ScanString(d, *pi)
	if !ok {
		return ir.KeyVal{}, false
	}
	*pi = token.SkipWS(d, next)
	if *pi >= len(d) || d[*pi] != ':' {
		*pi = start
		return ir.KeyVal{}, false
	}
	*pi = token.SkipWS(d, *pi+1)
	val, ok := parseValue(d, pi, depth, opts)
	if !ok {
		*pi = start
		return ir.KeyVal{}, false
	}
	return ir.KeyVal{Key: ir.FromString(key), Val: val}, true
}

func parseArray(d []byte, pi *int, depth int, opts *parseOpts) (*ir.Node, bool) {
	if depth > opts.maxDepth {
		return nil, false
	}
	start := *pi
	if *pi >= len(d) || d[*pi] != '[' {
		return nil, false
	}
	*pi = token.SkipWS(d, *pi+1)
	if *pi < len(d) && d[*pi] == ']' {
		*pi++
		return ir.FromSlice(nil), true
	}
	elts := []*ir.Node{}
	for {
		elt, ok := parseValue(d, pi, depth+1, opts)
		if !ok {
			*pi = start
			return nil, false
		}
		elts = append(elts, elt)
		*pi = token.SkipWS(d, *pi)
		if *pi >= len(d) {
			*pi = start
			return nil, false
		}
		switch d[*pi] {
		case ',':
			*pi = token.SkipWS(d, *pi+1)
			if *pi < len(d) && d[*pi] == ']' {
				// dangling comma dropped
				*pi++
				return ir.FromSlice(elts), true
			}
		case ']':
			*pi++
			return ir.FromSlice(elts), true
		default:
			*pi = start
			return nil, false
		}
	}
}

package parse

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/laxfmt/laxjson/encode"
	"github.com/laxfmt/laxjson/ir"
)

type parseTest struct {
	in string
	e  error
}

func TestParseOK(t *testing.T) {
	pts := []parseTest{
		{
			in: `{}`,
		},
		{
			in: ` { } `,
		},
		{
			in: `{"a":1}`,
		},
		{
			in: `{"a": 1, "b": 2}`,
		},
		{
			in: `{"a":1,}`,
		},
		{
			in: `{"a":[],}`,
		},
		{
			in: `{"a":[1,2,]}`,
		},
		{
			in: `{"a":{"b":{"c":null}}}`,
		},
		{
			in: `{"s":"a\"b"}`,
		},
		{
			in: `{"s":"\n\t\u0041"}`,
		},
		{
			in: `{"mixed":[1,"two",3.0,true,false,null,{},[]]}`,
		},
		{
			in: `{"pi":3.14,"e":1e5,"neg":-0.5}`,
		},
		{
			in: `{"big":123456789012345678901234567890}`,
		},
		{
			in: "{\n\t\"a\"\n:\n1\n}",
		},
		// trailing bytes after a matched object are ignored
		{
			in: `{"a":1} trailing garbage`,
		},
		{
			in: `{"a":1}}}`,
		},
		// duplicate keys are permitted
		{
			in: `{"a":1,"a":2}`,
		},
		// bytes past 7-bit ASCII count as whitespace between tokens
		{
			in: "\x80{\xff\"a\"\x7f:\x011}",
		},
	}
	for _, pt := range pts {
		if _, err := Parse([]byte(pt.in)); err != nil {
			t.Errorf("%q: %v", pt.in, err)
		}
	}
}

func TestParseFail(t *testing.T) {
	pts := []parseTest{
		{in: ``},
		{in: `   `},
		// only objects at the document root
		{in: `[1]`},
		{in: `"x"`},
		{in: `42`},
		{in: `true`},
		{in: `{`},
		{in: `{{}`},
		{in: `{"a"}`},
		{in: `{"a":}`},
		{in: `{"a":1`},
		{in: `{"a" 1}`},
		{in: `{,}`},
		{in: `{"a":1,,}`},
		{in: `{"a":1 "b":2}`},
		{in: `{a:1}`},
		// multi-digit integers may not have a leading zero
		{in: `{"a":01}`},
		{in: `{"a":+1}`},
		{in: `{"a":tru}`},
		{in: `{"a":"unterminated}`},
		{in: `{"a":[1,2}`},
		{in: `{"a":[1 2]}`},
	}
	for _, pt := range pts {
		_, err := Parse([]byte(pt.in))
		if err == nil {
			t.Errorf("%q: expected error", pt.in)
			continue
		}
		if !errors.Is(err, ErrParse) {
			t.Errorf("%q: error %v does not wrap ErrParse", pt.in, err)
		}
	}
}

func TestParseAnyRoot(t *testing.T) {
	for _, in := range []string{`[1,2,]`, `"x"`, `3.14`, `true`, `null`, `{}`} {
		if _, err := Parse([]byte(in), AnyRoot()); err != nil {
			t.Errorf("%q: %v", in, err)
		}
	}
	// the bare-number grammar consumes "0" only; the rest is trailing
	node, err := Parse([]byte(`01`), AnyRoot())
	if err != nil {
		t.Fatal(err)
	}
	if node.Type != ir.IntType || node.Int.Int64() != 0 {
		t.Errorf("got %s, want Int 0", node.Type)
	}
}

func TestTrailingComma(t *testing.T) {
	node, err := Parse([]byte(`{"a":1,}`))
	if err != nil {
		t.Fatal(err)
	}
	want := ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.FromString("a"), Val: ir.FromInt(1)},
	})
	if !ir.Equal(node, want) {
		t.Errorf("got %s", encode.MustString(node))
	}
}

func TestEmptyContainers(t *testing.T) {
	node, err := Parse([]byte(`{}`))
	if err != nil {
		t.Fatal(err)
	}
	if node.Type != ir.ObjectType || len(node.Fields) != 0 {
		t.Errorf("got %s with %d fields", node.Type, len(node.Fields))
	}
	node, err = Parse([]byte(`{"a":[]}`))
	if err != nil {
		t.Fatal(err)
	}
	arr := ir.Get(node, "a")
	if arr == nil || arr.Type != ir.ArrayType || len(arr.Values) != 0 {
		t.Errorf("got %v", arr)
	}
}

func TestNumberPreservation(t *testing.T) {
	node, err := Parse([]byte(`{"pi":3.14,"e":1e5,"big":123456789012345678901234567890}`))
	if err != nil {
		t.Fatal(err)
	}
	pi := ir.Get(node, "pi")
	if pi.Type != ir.DecimalType || pi.Decimal != "3.14" {
		t.Errorf("pi: got %s %q", pi.Type, pi.Decimal)
	}
	e := ir.Get(node, "e")
	if e.Type != ir.DecimalType || e.Decimal != "1.E+5" {
		t.Errorf("e: got %s %q", e.Type, e.Decimal)
	}
	bn := ir.Get(node, "big")
	if bn.Type != ir.IntType || bn.Int.String() != "123456789012345678901234567890" {
		t.Errorf("big: got %s %v", bn.Type, bn.Int)
	}
}

func TestEscapePassthrough(t *testing.T) {
	node, err := Parse([]byte(`{"s":"a\"b"}`))
	if err != nil {
		t.Fatal(err)
	}
	s := ir.Get(node, "s")
	if s.Type != ir.StringType || s.String != `a\"b` {
		t.Errorf("got %q", s.String)
	}
	// standard escapes are not interpreted either
	node, err = Parse([]byte(`{"s":"a\nb"}`))
	if err != nil {
		t.Fatal(err)
	}
	if got := ir.Get(node, "s").String; got != `a\nb` {
		t.Errorf("got %q", got)
	}
}

func TestMaxDepth(t *testing.T) {
	deep := `{"a":`
	for i := 0; i < 20; i++ {
		deep += `[`
	}
	for i := 0; i < 20; i++ {
		deep += `]`
	}
	deep += `}`
	if _, err := Parse([]byte(deep)); err != nil {
		t.Fatal(err)
	}
	if _, err := Parse([]byte(deep), MaxDepth(10)); err == nil {
		t.Error("expected depth failure")
	}
}

func TestDuplicateKeysPreserved(t *testing.T) {
	node, err := Parse([]byte(`{"a":1,"a":2}`))
	if err != nil {
		t.Fatal(err)
	}
	if len(node.Fields) != 2 {
		t.Fatalf("got %d fields", len(node.Fields))
	}
	if node.Values[0].Int.Int64() != 1 || node.Values[1].Int.Int64() != 2 {
		t.Errorf("got %s", encode.MustString(node))
	}
}

func TestRoundTrip(t *testing.T) {
	docs := []string{
		`{}`,
		`{"a":1}`,
		`{"a":[1,"two",3.5,true,null]}`,
		`{"status":42,"keys":{"k1":1,"k2":{"z":{"age":49}}}}`,
		`{"pi":3.14,"e":1e5}`,
		`{"dup":1,"dup":2}`,
	}
	for _, doc := range docs {
		v, err := Parse([]byte(doc))
		if err != nil {
			t.Fatalf("%q: %v", doc, err)
		}
		out, err := encode.Bytes(v)
		if err != nil {
			t.Fatalf("%q: %v", doc, err)
		}
		v2, err := Parse(out)
		if err != nil {
			t.Fatalf("%q -> %q: %v", doc, out, err)
		}
		if !ir.Equal(v, v2) {
			t.Errorf("%q: round trip changed value: %q", doc, out)
		}
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.json")
	if err := os.WriteFile(path, []byte(`{"a":1}`), 0o644); err != nil {
		t.Fatal(err)
	}
	node, err := ParseFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if ir.Get(node, "a") == nil {
		t.Error("missing field a")
	}
	if _, err := ParseFile(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("expected I/O error")
	}
}

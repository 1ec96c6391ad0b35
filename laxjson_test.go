package laxjson

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/laxfmt/laxjson/ir"
)

func TestDecodeEncodeScenario(t *testing.T) {
	in := `{"status": 42, "keys": {"k1": 1, "k2": {"z": {"age": 49}}},}`
	node, err := Decode([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	out, err := EncodeBytes(node)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"status":42,"keys":{"k1":1,"k2":{"z":{"age":49}}}}`
	if string(out) != want {
		t.Errorf("got %s, want %s", out, want)
	}
	node2, err := Decode(out)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(node, node2) {
		t.Error("round trip changed value")
	}
}

func TestDecodeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	if err := os.WriteFile(path, []byte(`{"a":[1,2,]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	node, err := DecodeFile(path)
	if err != nil {
		t.Fatal(err)
	}
	arr := ir.Get(node, "a")
	if arr == nil || arr.Type != ir.ArrayType || len(arr.Values) != 2 {
		t.Errorf("got %v", arr)
	}
}

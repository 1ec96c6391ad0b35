package token

import "testing"

func TestScanString(t *testing.T) {
	tests := []struct {
		in   string
		val  string
		next int
		ok   bool
	}{
		{in: `""`, val: "", next: 2, ok: true},
		{in: `"abc"`, val: "abc", next: 5, ok: true},
		{in: `"abc" tail`, val: "abc", next: 5, ok: true},
		// escaped quote keeps both bytes and does not terminate
		{in: `"a\"b"`, val: `a\"b`, next: 6, ok: true},
		// other escapes pass through as literal source bytes
		{in: `"a\nb"`, val: `a\nb`, next: 6, ok: true},
		{in: `"a\u0041b"`, val: `a\u0041b`, next: 10, ok: true},
		// opaque passthrough of non-ASCII bytes
		{in: "\"héllo\"", val: "héllo", next: 8, ok: true},
		{in: `"unterminated`, ok: false},
		{in: `"trailing\"`, ok: false},
		{in: `abc`, ok: false},
		{in: ``, ok: false},
	}
	for _, tc := range tests {
		val, next, ok := ScanString([]byte(tc.in), 0)
		if ok != tc.ok {
			t.Errorf("%q: ok=%v, want %v", tc.in, ok, tc.ok)
			continue
		}
		if !ok {
			continue
		}
		if val != tc.val || next != tc.next {
			t.Errorf("%q: got (%q, %d), want (%q, %d)", tc.in, val, next, tc.val, tc.next)
		}
	}
}

func TestEscape(t *testing.T) {
	tests := []struct {
		in      string
		solidus bool
		want    string
	}{
		{in: "abc", want: "abc"},
		{in: `a"b`, want: `a\"b`},
		{in: `a\b`, want: `a\\b`},
		{in: "a\nb\tc", want: `a\nb\tc`},
		{in: "\b\f\r", want: `\b\f\r`},
		{in: "héllo", want: "héllo"},
		{in: "a/b", want: "a/b"},
		{in: "a/b", solidus: true, want: `a\/b`},
	}
	for _, tc := range tests {
		if got := Escape(tc.in, tc.solidus); got != tc.want {
			t.Errorf("%q: got %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSkipWS(t *testing.T) {
	if got := SkipWS([]byte("  \t\n x"), 0); got != 5 {
		t.Errorf("got %d, want 5", got)
	}
	if got := SkipWS([]byte("x"), 0); got != 0 {
		t.Errorf("got %d, want 0", got)
	}
	if got := SkipWS([]byte("   "), 0); got != 3 {
		t.Errorf("got %d, want 3", got)
	}
	// bytes past 7-bit ASCII are insignificant too
	if got := SkipWS([]byte{0x7f, 0xc3, 'x'}, 0); got != 2 {
		t.Errorf("got %d, want 2", got)
	}
}

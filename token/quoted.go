package token

// ScanString scans a double-quoted string at d[i]. Every byte except
// '"' is taken literally; the two-byte sequence \" is consumed with
// both bytes kept, so an escaped quote does not terminate the string.
// No other escape sequence is interpreted: \n, \t, \uXXXX and friends
// pass through as their literal source bytes.
func ScanString(d []byte, i int) (val string, next int, ok bool) {
	if i >= len(d) || d[i] != '"' {
		return "", i, false
	}
	j := i + 1
	for j < len(d) {
		switch {
		case d[j] == '\\' && j+1 < len(d) && d[j+1] == '"':
			j += 2
		case d[j] == '"':
			return string(d[i+1 : j]), j + 1, true
		default:
			j++
		}
	}
	// unterminated
	return "", i, false
}

// Escape maps v to its JSON-text escape form. Only the quote, the
// backslash and the C0 whitespace controls are escaped; all other
// bytes pass through unchanged, including non-ASCII bytes. No \uXXXX
// escaping is produced. When solidus is set, '/' is escaped as \/ as
// well.
func Escape(v string, solidus bool) string {
	return string(AppendEscape(make([]byte, 0, len(v)+2), v, solidus))
}

func AppendEscape(d []byte, v string, solidus bool) []byte {
	for i := 0; i < len(v); i++ {
		c := v[i]
		switch c {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		case '/':
			if solidus {
				d = append(d, '\\', '/')
			} else {
				d = append(d, c)
			}
		default:
			d = append(d, c)
		}
	}
	return d
}

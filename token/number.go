package token

import "strconv"

// ScanNumber scans a numeric literal at d[i]. On a match it returns
// the normalized text, whether the literal is a decimal (had a
// fraction and/or exponent), and the index just past the literal.
//
// The integer part is an optional '-' followed by either a nonzero
// digit and a digit run, or a bare single digit. "01" therefore scans
// as the single-digit number "0"; the '1' is not consumed.
//
// Decimal text is normalized as intpart "." fracdigits marker
// expdigits, where the exponent marker is always two characters, "E+"
// or "E-" ("e", "E", "e+" and "E+" all normalize to "E+"). The text
// of a decimal always contains a '.', even when the source had only
// an exponent.
func ScanNumber(d []byte, i int) (text string, decimal bool, next int, ok bool) {
	j := integerEnd(d, i)
	if j == i {
		return "", false, i, false
	}
	intText := string(d[i:j])
	fracDigits, j, hasFrac := fract(d, j)
	marker, expDigits, j := exp(d, j)
	if !hasFrac && marker == "" {
		return intText, false, j, true
	}
	return intText + "." + fracDigits + marker + expDigits, true, j, true
}

// integerEnd returns the index just past the integer part at d[i], or
// i when there is none.
func integerEnd(d []byte, i int) int {
	j := i
	if j < len(d) && d[j] == '-' {
		j++
	}
	if j >= len(d) || !asciiDigit(d[j]) {
		return i
	}
	if d[j] == '0' {
		return j + 1
	}
	j++
	for j < len(d) && asciiDigit(d[j]) {
		j++
	}
	return j
}

// fract consumes '.' and a possibly empty digit run. The empty run is
// what lets normalized exponent-only decimals such as "1.E+5" scan
// back in, keeping decode(encode(v)) = v for them. It reports whether
// a fraction was present at all, since the digits may be empty.
func fract(d []byte, i int) (string, int, bool) {
	if i >= len(d) || d[i] != '.' {
		return "", i, false
	}
	j := i + 1
	for j < len(d) && asciiDigit(d[j]) {
		j++
	}
	return string(d[i+1 : j]), j, true
}

func exp(d []byte, i int) (string, string, int) {
	if i >= len(d) {
		return "", "", i
	}
	switch d[i] {
	case 'e', 'E':
	default:
		return "", "", i
	}
	marker := "E+"
	j := i + 1
	if j < len(d) {
		switch d[j] {
		case '+':
			j++
		case '-':
			marker = "E-"
			j++
		}
	}
	start := j
	for j < len(d) && asciiDigit(d[j]) {
		j++
	}
	if j == start {
		return "", "", i
	}
	return marker, string(d[start:j]), j
}

func asciiDigit(c byte) bool {
	switch c {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return true
	default:
		return false
	}
}

// DecimalFromFloat renders f in the normalized decimal text form used
// by DecimalType nodes. f must be finite.
func DecimalFromFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	text, decimal, next, ok := ScanNumber([]byte(s), 0)
	if !ok || next != len(s) {
		return s
	}
	if decimal {
		return text
	}
	return text + ".0"
}

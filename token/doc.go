// Package token provides the lexical layer shared by parse and
// encode: the whitespace classifier and skipper, the number scanner
// and its normalized decimal text form, the string scanner, and the
// escaper used when encoding string content.
package token

package parse

import "errors"

// ErrParse wraps every decode failure. The grammar reports no
// positions; rules either match a prefix or fail as a whole.
var ErrParse = errors.New("parse error")

package parse

import "errors"

// ErrMalformed is wrapped by every parse failure in this package.
var ErrMalformed = errors.New("parse: malformed input")

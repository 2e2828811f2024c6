package hazyerr

import "errors"

var (
	ErrNotFound       = errors.New("entity not found")
	ErrMalformedInput = errors.New("malformed input")
)

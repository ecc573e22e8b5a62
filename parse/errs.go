package parse

import "errors"

var (
	ErrParse        = errors.New("parse error")
	ErrDuplicateKey = errors.New("duplicate key")
	ErrTooDeep      = errors.New("maximum nesting depth exceeded")
)

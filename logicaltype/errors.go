package logicaltype

import "errors"

var (
	// ErrInvalidType is returned when a type string cannot be parsed.
	ErrInvalidType = errors.New("invalid logical type")
	// ErrUnknownRoot is returned when a type string names no known root.
	ErrUnknownRoot = errors.New("unknown logical type root")
	// ErrInvalidParameter is returned when a precision, scale or length is out of range.
	ErrInvalidParameter = errors.New("invalid logical type parameter")
)

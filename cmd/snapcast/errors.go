package main

import "errors"

// Sentinel errors for command operations
var (
	ErrUnknownFormat        = errors.New("unknown output format")
	ErrInvalidFunctionName  = errors.New("invalid function name")
	ErrPreviewNotSupported  = errors.New("preview is only supported for timestamp to string casts")
	ErrInvalidPreviewValue  = errors.New("invalid preview value")
	ErrUnsupportedInputType = errors.New("no Go type for input type")
)

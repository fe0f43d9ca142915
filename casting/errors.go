package casting

import "errors"

var (
	// ErrNoCastRule is returned when no registered rule matches a type pair.
	ErrNoCastRule = errors.New("no cast rule matches")
	// ErrNotCodeGenerator is returned when the matching rule cannot emit inline code.
	ErrNotCodeGenerator = errors.New("cast rule does not generate code")
	// ErrDuplicateRule is returned when two rules share a name in one registry.
	ErrDuplicateRule = errors.New("duplicate cast rule")
	// ErrUnknownRule is returned when a restriction names a rule that is not registered.
	ErrUnknownRule = errors.New("unknown cast rule")
	// ErrInvalidCondition is returned when a CEL condition fails to compile.
	ErrInvalidCondition = errors.New("invalid cast rule condition")
)

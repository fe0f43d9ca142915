package casting

import (
	"slices"
	"strings"
)

// CodeBlock is the result of a conversion: statements to splice into the
// generated function, the term holding the converted value and the term
// holding its null flag. Terms may alias the input terms.
type CodeBlock struct {
	statements []string
	returnTerm string
	isNullTerm string
}

func NewCodeBlock(statements []string, returnTerm, isNullTerm string) CodeBlock {
	return CodeBlock{
		statements: slices.Clone(statements),
		returnTerm: returnTerm,
		isNullTerm: isNullTerm,
	}
}

// Statements returns a copy of the emitted statements
func (b CodeBlock) Statements() []string {
	return slices.Clone(b.statements)
}

func (b CodeBlock) ReturnTerm() string { return b.returnTerm }

func (b CodeBlock) IsNullTerm() string { return b.isNullTerm }

// IsEmpty reports whether the block emits no statements
func (b CodeBlock) IsEmpty() bool { return len(b.statements) == 0 }

// Code joins the statements with newlines
func (b CodeBlock) Code() string {
	return strings.Join(b.statements, "\n")
}

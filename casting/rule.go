package casting

import "github.com/shibukawa/snapcast/logicaltype"

// CastRule pairs an applicability predicate with a conversion behaviour.
// Rules are stateless and immutable once constructed.
type CastRule interface {
	// Name identifies the rule in registries, configuration and diagnostics
	Name() string
	Predicate() Predicate
}

// CodeGeneratorCastRule is a rule that converts by emitting inline Go code.
type CodeGeneratorCastRule interface {
	CastRule

	// GenerateCodeBlock emits the conversion of the value held in inputTerm.
	// Callers must only invoke it when Predicate().Matches(input, target) holds;
	// rules do not re-check and may panic otherwise.
	GenerateCodeBlock(ctx Context, inputTerm, inputIsNullTerm string, input, target logicaltype.LogicalType) CodeBlock
}

// StringExpressionRule is a code generating rule whose conversion is a single
// expression producing the textual value of the input.
type StringExpressionRule interface {
	CodeGeneratorCastRule

	// GenerateStringExpression returns an expression evaluating to the string
	// value. It assumes the input is not null.
	GenerateStringExpression(ctx Context, inputTerm string, input, target logicaltype.LogicalType) string
}

// Context is what rules may use while generating code: session lookups and
// identifier allocation. It carries no rule state.
type Context interface {
	// SessionTimeZoneTerm returns an expression evaluating to the session's
	// *time.Location at run time
	SessionTimeZoneTerm() string
	// NewName allocates a fresh identifier starting with prefix
	NewName(prefix string) string
	// StaticField returns an expression referencing a package-level value of
	// the runtime support package
	StaticField(name string) string
	// StaticCall returns a call expression to a function of the runtime support package
	StaticCall(function string, args ...any) string
}

package casting

import (
	"fmt"

	"github.com/google/cel-go/cel"

	"github.com/shibukawa/snapcast/logicaltype"
)

// CompileCondition compiles a CEL expression into a PredicateFunc.
//
// The expression sees two variables, input and target, each a map with keys:
//
//	root      string        e.g. "TIMESTAMP_WITH_LOCAL_TIME_ZONE"
//	families  list(string)  e.g. ["PREDEFINED", "DATETIME", "TIMESTAMP"]
//	precision int           -1 when the type has no precision
//	length    int           -1 when the type has no length
//	nullable  bool
//
// Example: `input.root == "TIMESTAMP_WITH_LOCAL_TIME_ZONE" && input.precision > 6`
//
// Compilation problems are reported here; evaluation failures at match time
// make the condition false so that matching stays total.
func CompileCondition(expression string) (PredicateFunc, error) {
	env, err := cel.NewEnv(
		cel.Variable("input", cel.MapType(cel.StringType, cel.DynType)),
		cel.Variable("target", cel.MapType(cel.StringType, cel.DynType)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create condition environment: %w", err)
	}

	ast, issues := env.Compile(expression)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidCondition, expression, issues.Err())
	}

	outputType := ast.OutputType()
	if !outputType.IsExactType(cel.BoolType) && !outputType.IsExactType(cel.DynType) {
		return nil, fmt.Errorf("%w: %q must evaluate to bool, got %s", ErrInvalidCondition, expression, outputType)
	}

	program, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidCondition, expression, err)
	}

	return func(input, target logicaltype.LogicalType) bool {
		result, _, err := program.Eval(map[string]any{
			"input":  typeAttributes(input),
			"target": typeAttributes(target),
		})
		if err != nil {
			return false
		}

		matched, ok := result.Value().(bool)

		return ok && matched
	}, nil
}

func typeAttributes(t logicaltype.LogicalType) map[string]any {
	families := t.Families()
	familyNames := make([]string, len(families))

	for i, family := range families {
		familyNames[i] = family.String()
	}

	precision := int64(-1)
	if logicaltype.HasPrecision(t) {
		precision = int64(logicaltype.Precision(t))
	}

	length := int64(-1)
	if logicaltype.HasLength(t) {
		length = int64(logicaltype.Length(t))
	}

	return map[string]any{
		"root":      t.Root().String(),
		"families":  familyNames,
		"precision": precision,
		"length":    length,
		"nullable":  t.IsNullable(),
	}
}

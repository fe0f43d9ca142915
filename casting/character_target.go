package casting

import "github.com/shibukawa/snapcast/logicaltype"

// StringExpressionFunc produces the expression converting inputTerm to a string
type StringExpressionFunc func(ctx Context, inputTerm string, input, target logicaltype.LogicalType) string

// CharacterFamilyTargetRule converts any matching input to a CHARACTER_STRING
// target by binding a single expression to a fresh result term. Textual
// conversion never changes nullability, so the input null term is reused.
type CharacterFamilyTargetRule struct {
	name       string
	predicate  Predicate
	expression StringExpressionFunc
}

var _ StringExpressionRule = CharacterFamilyTargetRule{}

// NewCharacterFamilyTargetRule builds a rule from its input criteria.
// The target criterion is always CHARACTER_STRING; target criteria already
// on the builder are replaced.
func NewCharacterFamilyTargetRule(name string, input PredicateBuilder, expression StringExpressionFunc) CharacterFamilyTargetRule {
	return CharacterFamilyTargetRule{
		name:       name,
		predicate:  input.withTargetFamilies(logicaltype.FamilyCharacterString).Build(),
		expression: expression,
	}
}

func (r CharacterFamilyTargetRule) Name() string { return r.name }

func (r CharacterFamilyTargetRule) Predicate() Predicate { return r.predicate }

func (r CharacterFamilyTargetRule) GenerateStringExpression(ctx Context, inputTerm string, input, target logicaltype.LogicalType) string {
	return r.expression(ctx, inputTerm, input, target)
}

func (r CharacterFamilyTargetRule) GenerateCodeBlock(ctx Context, inputTerm, inputIsNullTerm string, input, target logicaltype.LogicalType) CodeBlock {
	expr := r.GenerateStringExpression(ctx, inputTerm, input, target)
	resultTerm := ctx.NewName("result")

	return NewCodeBlock([]string{resultTerm + " := " + expr}, resultTerm, inputIsNullTerm)
}

package casting

import "github.com/shibukawa/snapcast/logicaltype"

// IdentityCastRule handles casts that need no runtime work. The generated
// block is empty and its terms are the input terms themselves.
var IdentityCastRule CodeGeneratorCastRule = identityCastRule{
	predicate: NewPredicateBuilder().Func(isIdentityCast).Build(),
}

type identityCastRule struct {
	predicate Predicate
}

func isIdentityCast(input, target logicaltype.LogicalType) bool {
	// TODO: string to string casts ignore the declared length and behave like
	// an identity cast; revisit once FLINK-24413 defines length-aware string casting.
	if input.IsFamily(logicaltype.FamilyCharacterString) && target.IsFamily(logicaltype.FamilyCharacterString) {
		return true
	}

	return logicaltype.SupportsAvoidingCast(input, target)
}

func (identityCastRule) Name() string { return "identity" }

func (r identityCastRule) Predicate() Predicate { return r.predicate }

func (identityCastRule) GenerateCodeBlock(_ Context, inputTerm, inputIsNullTerm string, _, _ logicaltype.LogicalType) CodeBlock {
	return NewCodeBlock(nil, inputTerm, inputIsNullTerm)
}

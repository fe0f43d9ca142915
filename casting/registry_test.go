package casting

import (
	"sync"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/shibukawa/snapcast/logicaltype"
)

type matchOnlyRule struct {
	name string
}

func (r matchOnlyRule) Name() string { return r.name }

func (matchOnlyRule) Predicate() Predicate {
	return NewPredicateBuilder().InputFamily(logicaltype.FamilyNumeric).Build()
}

func TestRegistry_Resolve(t *testing.T) {
	registry := DefaultRegistry()

	rule, ok := registry.Resolve(logicaltype.NewTimestamp(3), logicaltype.NewString())
	assert.True(t, ok)
	assert.Equal(t, "timestamp_to_string", rule.Name())

	rule, ok = registry.Resolve(logicaltype.NewString(), logicaltype.NewChar(5))
	assert.True(t, ok)
	assert.Equal(t, "identity", rule.Name())

	_, ok = registry.Resolve(logicaltype.NewInt(), logicaltype.NewBoolean())
	assert.False(t, ok)
}

func TestRegistry_ProbeOrder(t *testing.T) {
	registry, err := NewRegistry([]CastRule{
		IdentityCastRule,
		NewCharacterFamilyTargetRule("catch_all", NewPredicateBuilder(), func(_ Context, inputTerm string, _, _ logicaltype.LogicalType) string {
			return "fmt.Sprint(" + inputTerm + ")"
		}),
	})
	assert.NoError(t, err)

	rule, ok := registry.Resolve(logicaltype.NewVarChar(3), logicaltype.NewVarChar(5))
	assert.True(t, ok)
	assert.Equal(t, "identity", rule.Name())

	matched := registry.Matching(logicaltype.NewVarChar(3), logicaltype.NewVarChar(5))
	assert.Equal(t, 2, len(matched))
	assert.Equal(t, "catch_all", matched[1].Name())

	block, err := registry.GenerateCodeBlock(NewGeneratorContext(), "in", "inIsNull", logicaltype.NewInt(), logicaltype.NewString())
	assert.NoError(t, err)
	assert.Equal(t, "result0 := fmt.Sprint(in)", block.Code())

	_, ok = registry.Resolve(logicaltype.NewInt(), logicaltype.NewBigInt())
	assert.False(t, ok, "catch_all only targets character strings")
}

func TestRegistry_Errors(t *testing.T) {
	_, err := DefaultRegistry().GenerateCodeBlock(NewGeneratorContext(), "in", "inIsNull", logicaltype.NewInt(), logicaltype.NewBoolean())
	assert.IsError(t, err, ErrNoCastRule)
	assert.Contains(t, err.Error(), "INT to BOOLEAN")

	registry, err := NewRegistry([]CastRule{matchOnlyRule{name: "numeric"}})
	assert.NoError(t, err)

	_, err = registry.GenerateCodeBlock(NewGeneratorContext(), "in", "inIsNull", logicaltype.NewInt(), logicaltype.NewBoolean())
	assert.IsError(t, err, ErrNotCodeGenerator)

	_, err = NewRegistry([]CastRule{IdentityCastRule, IdentityCastRule})
	assert.IsError(t, err, ErrDuplicateRule)

	_, err = NewRegistry(BuiltinRules(), Restriction{Rule: "unknown", When: func(_, _ logicaltype.LogicalType) bool { return true }})
	assert.IsError(t, err, ErrUnknownRule)
}

func TestRegistry_Restrictions(t *testing.T) {
	highPrecision, err := CompileCondition(`input.precision > 6`)
	assert.NoError(t, err)

	registry, err := NewRegistry(BuiltinRules(),
		Restriction{Rule: "timestamp_to_string", When: highPrecision},
		Restriction{Rule: "numeric", When: nil},
		Restriction{Rule: "identity", When: nil},
	)
	assert.IsError(t, err, ErrUnknownRule)
	assert.Zero(t, registry)

	registry, err = NewRegistry(BuiltinRules(), Restriction{Rule: "timestamp_to_string", When: highPrecision})
	assert.NoError(t, err)

	_, ok := registry.Resolve(logicaltype.NewTimestamp(9), logicaltype.NewString())
	assert.False(t, ok)

	rule, ok := registry.Resolve(logicaltype.NewTimestamp(3), logicaltype.NewString())
	assert.True(t, ok)

	generator, ok := rule.(CodeGeneratorCastRule)
	assert.True(t, ok, "restricted rules keep their code generation capability")
	assert.Equal(t, "timestamp_to_string", generator.Name())

	// the base rule and the default registry are untouched
	assert.True(t, TimestampToStringCastRule.Predicate().Matches(logicaltype.NewTimestamp(9), logicaltype.NewString()))

	_, ok = DefaultRegistry().Resolve(logicaltype.NewTimestamp(9), logicaltype.NewString())
	assert.True(t, ok)
}

func TestRegistry_RulesReturnsCopy(t *testing.T) {
	rules := DefaultRegistry().Rules()
	rules[0] = matchOnlyRule{name: "replaced"}

	assert.Equal(t, "identity", DefaultRegistry().Rules()[0].Name())
}

func TestRegistry_ConcurrentUse(t *testing.T) {
	registry := DefaultRegistry()

	var wg sync.WaitGroup

	results := make([]string, 32)

	for i := range results {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()

			block, err := registry.GenerateCodeBlock(NewGeneratorContext(), "in", "inIsNull",
				logicaltype.NewLocalZonedTimestamp(i%10), logicaltype.NewString())
			if err == nil {
				results[i] = block.ReturnTerm()
			}
		}(i)
	}

	wg.Wait()

	for _, result := range results {
		assert.Equal(t, "result0", result)
	}
}

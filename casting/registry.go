package casting

import (
	"fmt"
	"slices"

	"github.com/shibukawa/snapcast/logicaltype"
)

// Restriction stops the named rule from matching whenever When holds
type Restriction struct {
	Rule string
	When PredicateFunc
}

// Registry probes rules in a fixed order and dispatches to the first match.
// It is immutable after construction and safe for concurrent use.
type Registry struct {
	rules []CastRule
}

var defaultRegistry = mustRegistry(NewRegistry(BuiltinRules()))

// BuiltinRules returns the built-in rules in probe order
func BuiltinRules() []CastRule {
	return []CastRule{
		IdentityCastRule,
		TimestampToStringCastRule,
	}
}

// DefaultRegistry returns the registry of built-in rules
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// NewRegistry creates a registry probing rules in the given order.
// Restricted rules are replaced by copies whose predicate also requires the
// restriction not to hold; the given rule values are left untouched.
func NewRegistry(rules []CastRule, restrictions ...Restriction) (*Registry, error) {
	index := make(map[string]int, len(rules))
	ordered := make([]CastRule, len(rules))

	for i, rule := range rules {
		if _, exists := index[rule.Name()]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateRule, rule.Name())
		}

		index[rule.Name()] = i
		ordered[i] = rule
	}

	for _, restriction := range restrictions {
		i, ok := index[restriction.Rule]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownRule, restriction.Rule)
		}

		ordered[i] = restrict(ordered[i], restriction.When)
	}

	return &Registry{rules: ordered}, nil
}

func mustRegistry(r *Registry, err error) *Registry {
	if err != nil {
		panic(err)
	}

	return r
}

// Rules returns the rules in probe order
func (r *Registry) Rules() []CastRule {
	return slices.Clone(r.rules)
}

// Resolve returns the first rule whose predicate matches
func (r *Registry) Resolve(input, target logicaltype.LogicalType) (CastRule, bool) {
	for _, rule := range r.rules {
		if rule.Predicate().Matches(input, target) {
			return rule, true
		}
	}

	return nil, false
}

// Matching returns every rule whose predicate matches, in probe order
func (r *Registry) Matching(input, target logicaltype.LogicalType) []CastRule {
	var matched []CastRule

	for _, rule := range r.rules {
		if rule.Predicate().Matches(input, target) {
			matched = append(matched, rule)
		}
	}

	return matched
}

// GenerateCodeBlock resolves the rule for the type pair and emits its code
func (r *Registry) GenerateCodeBlock(ctx Context, inputTerm, inputIsNullTerm string, input, target logicaltype.LogicalType) (CodeBlock, error) {
	rule, ok := r.Resolve(input, target)
	if !ok {
		return CodeBlock{}, fmt.Errorf("%w: cannot cast %s to %s", ErrNoCastRule, input, target)
	}

	generator, ok := rule.(CodeGeneratorCastRule)
	if !ok {
		return CodeBlock{}, fmt.Errorf("%w: %s (%s to %s)", ErrNotCodeGenerator, rule.Name(), input, target)
	}

	return generator.GenerateCodeBlock(ctx, inputTerm, inputIsNullTerm, input, target), nil
}

func restrict(rule CastRule, when PredicateFunc) CastRule {
	if when == nil {
		return rule
	}

	predicate := rule.Predicate().And(func(input, target logicaltype.LogicalType) bool {
		return !when(input, target)
	})

	if generator, ok := rule.(CodeGeneratorCastRule); ok {
		return restrictedCodeGeneratorRule{CodeGeneratorCastRule: generator, predicate: predicate}
	}

	return restrictedRule{CastRule: rule, predicate: predicate}
}

type restrictedRule struct {
	CastRule
	predicate Predicate
}

func (r restrictedRule) Predicate() Predicate { return r.predicate }

type restrictedCodeGeneratorRule struct {
	CodeGeneratorCastRule
	predicate Predicate
}

func (r restrictedCodeGeneratorRule) Predicate() Predicate { return r.predicate }

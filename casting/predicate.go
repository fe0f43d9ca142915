package casting

import (
	"slices"
	"strings"

	"github.com/shibukawa/snapcast/logicaltype"
)

// PredicateFunc is a custom condition over an (input, target) type pair.
// Implementations must be pure and must not panic.
type PredicateFunc func(input, target logicaltype.LogicalType) bool

// Predicate decides whether a cast rule applies to an (input, target) pair.
// Every configured criterion must hold; criteria that were never configured
// are satisfied by any type. A zero Predicate matches everything.
//
// Predicate values are immutable and safe for concurrent use.
type Predicate struct {
	inputFamilies  []logicaltype.Family
	targetFamilies []logicaltype.Family
	inputRoots     []logicaltype.Root
	targetRoots    []logicaltype.Root
	fn             PredicateFunc
}

// Matches reports whether the predicate holds for the type pair
func (p Predicate) Matches(input, target logicaltype.LogicalType) bool {
	if len(p.inputFamilies) > 0 && !inAnyFamily(input, p.inputFamilies) {
		return false
	}

	if len(p.targetFamilies) > 0 && !inAnyFamily(target, p.targetFamilies) {
		return false
	}

	if len(p.inputRoots) > 0 && !slices.Contains(p.inputRoots, input.Root()) {
		return false
	}

	if len(p.targetRoots) > 0 && !slices.Contains(p.targetRoots, target.Root()) {
		return false
	}

	if p.fn != nil && !p.fn(input, target) {
		return false
	}

	return true
}

// And returns a predicate that additionally requires fn to hold
func (p Predicate) And(fn PredicateFunc) Predicate {
	if fn == nil {
		return p
	}

	base := p.fn
	if base == nil {
		p.fn = fn
		return p
	}

	p.fn = func(input, target logicaltype.LogicalType) bool {
		return base(input, target) && fn(input, target)
	}

	return p
}

// String describes the configured criteria, e.g.
// "input family TIMESTAMP, target family CHARACTER_STRING"
func (p Predicate) String() string {
	var parts []string

	if len(p.inputFamilies) > 0 {
		parts = append(parts, "input family "+joinNames(p.inputFamilies))
	}

	if len(p.inputRoots) > 0 {
		parts = append(parts, "input root "+joinNames(p.inputRoots))
	}

	if len(p.targetFamilies) > 0 {
		parts = append(parts, "target family "+joinNames(p.targetFamilies))
	}

	if len(p.targetRoots) > 0 {
		parts = append(parts, "target root "+joinNames(p.targetRoots))
	}

	if p.fn != nil {
		parts = append(parts, "custom condition")
	}

	if len(parts) == 0 {
		return "any"
	}

	return strings.Join(parts, ", ")
}

func inAnyFamily(t logicaltype.LogicalType, families []logicaltype.Family) bool {
	for _, family := range families {
		if t.IsFamily(family) {
			return true
		}
	}

	return false
}

func joinNames[T interface{ String() string }](values []T) string {
	names := make([]string, len(values))
	for i, v := range values {
		names[i] = v.String()
	}

	return strings.Join(names, "|")
}

// PredicateBuilder assembles a Predicate. It is a value type: every method
// returns a new builder, so a partially configured builder can be shared.
type PredicateBuilder struct {
	p Predicate
}

func NewPredicateBuilder() PredicateBuilder {
	return PredicateBuilder{}
}

// InputFamily accepts inputs belonging to any of the families
func (b PredicateBuilder) InputFamily(families ...logicaltype.Family) PredicateBuilder {
	b.p.inputFamilies = slices.Concat(b.p.inputFamilies, families)
	return b
}

// TargetFamily accepts targets belonging to any of the families
func (b PredicateBuilder) TargetFamily(families ...logicaltype.Family) PredicateBuilder {
	b.p.targetFamilies = slices.Concat(b.p.targetFamilies, families)
	return b
}

// InputRoot accepts inputs whose root is any of the roots
func (b PredicateBuilder) InputRoot(roots ...logicaltype.Root) PredicateBuilder {
	b.p.inputRoots = slices.Concat(b.p.inputRoots, roots)
	return b
}

// TargetRoot accepts targets whose root is any of the roots
func (b PredicateBuilder) TargetRoot(roots ...logicaltype.Root) PredicateBuilder {
	b.p.targetRoots = slices.Concat(b.p.targetRoots, roots)
	return b
}

// Func sets the custom condition, replacing any previous one
func (b PredicateBuilder) Func(fn PredicateFunc) PredicateBuilder {
	b.p.fn = fn
	return b
}

func (b PredicateBuilder) withTargetFamilies(families ...logicaltype.Family) PredicateBuilder {
	b.p.targetFamilies = slices.Clone(families)
	b.p.targetRoots = nil

	return b
}

// Build returns the immutable predicate
func (b PredicateBuilder) Build() Predicate {
	return Predicate{
		inputFamilies:  slices.Clone(b.p.inputFamilies),
		targetFamilies: slices.Clone(b.p.targetFamilies),
		inputRoots:     slices.Clone(b.p.inputRoots),
		targetRoots:    slices.Clone(b.p.targetRoots),
		fn:             b.p.fn,
	}
}

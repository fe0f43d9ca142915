package casting

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/shibukawa/snapcast/logicaltype"
)

func TestPredicate_Matches(t *testing.T) {
	timestamp := logicaltype.NewTimestamp(3)
	ltz := logicaltype.NewLocalZonedTimestamp(3)
	varchar := logicaltype.NewVarChar(10)
	bigint := logicaltype.NewBigInt()

	tests := []struct {
		name      string
		predicate Predicate
		input     logicaltype.LogicalType
		target    logicaltype.LogicalType
		expected  bool
	}{
		{"empty predicate matches everything", NewPredicateBuilder().Build(), bigint, timestamp, true},
		{"zero predicate matches everything", Predicate{}, varchar, bigint, true},
		{"input family", NewPredicateBuilder().InputFamily(logicaltype.FamilyTimestamp).Build(), ltz, bigint, true},
		{"input family mismatch", NewPredicateBuilder().InputFamily(logicaltype.FamilyTimestamp).Build(), varchar, bigint, false},
		{"any of input families", NewPredicateBuilder().InputFamily(logicaltype.FamilyNumeric, logicaltype.FamilyTimestamp).Build(), bigint, varchar, true},
		{"target family", NewPredicateBuilder().TargetFamily(logicaltype.FamilyCharacterString).Build(), bigint, varchar, true},
		{"target family mismatch", NewPredicateBuilder().TargetFamily(logicaltype.FamilyCharacterString).Build(), varchar, bigint, false},
		{"input root", NewPredicateBuilder().InputRoot(logicaltype.RootTimestampWithLocalTimeZone).Build(), ltz, varchar, true},
		{"input root mismatch", NewPredicateBuilder().InputRoot(logicaltype.RootTimestampWithLocalTimeZone).Build(), timestamp, varchar, false},
		{"target root", NewPredicateBuilder().TargetRoot(logicaltype.RootVarChar).Build(), timestamp, varchar, true},
		{"target root mismatch", NewPredicateBuilder().TargetRoot(logicaltype.RootChar).Build(), timestamp, varchar, false},
		{
			"all criteria must hold",
			NewPredicateBuilder().
				InputFamily(logicaltype.FamilyTimestamp).
				InputRoot(logicaltype.RootTimestampWithoutTimeZone).
				TargetFamily(logicaltype.FamilyCharacterString).
				Build(),
			ltz, varchar, false,
		},
		{
			"custom function",
			NewPredicateBuilder().Func(func(input, target logicaltype.LogicalType) bool {
				return input.Root() == target.Root()
			}).Build(),
			varchar, logicaltype.NewVarChar(3), true,
		},
		{
			"custom function combined with family",
			NewPredicateBuilder().
				InputFamily(logicaltype.FamilyTimestamp).
				Func(func(_, _ logicaltype.LogicalType) bool { return false }).
				Build(),
			timestamp, varchar, false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.predicate.Matches(tt.input, tt.target))
		})
	}
}

func TestPredicateBuilder_IsImmutable(t *testing.T) {
	base := NewPredicateBuilder().InputFamily(logicaltype.FamilyTimestamp)
	toString := base.TargetFamily(logicaltype.FamilyCharacterString).Build()
	toNumber := base.TargetFamily(logicaltype.FamilyNumeric).Build()
	anyTarget := base.Build()

	ts := logicaltype.NewTimestamp(3)

	assert.True(t, toString.Matches(ts, logicaltype.NewString()))
	assert.False(t, toString.Matches(ts, logicaltype.NewBigInt()))
	assert.True(t, toNumber.Matches(ts, logicaltype.NewBigInt()))
	assert.False(t, toNumber.Matches(ts, logicaltype.NewString()))
	assert.True(t, anyTarget.Matches(ts, logicaltype.NewDate()))
}

func TestPredicate_And(t *testing.T) {
	base := NewPredicateBuilder().InputFamily(logicaltype.FamilyTimestamp).Build()
	highPrecision := func(input, _ logicaltype.LogicalType) bool {
		return logicaltype.Precision(input) > 6
	}
	restricted := base.And(highPrecision)

	target := logicaltype.NewString()

	assert.True(t, base.Matches(logicaltype.NewTimestamp(3), target))
	assert.False(t, restricted.Matches(logicaltype.NewTimestamp(3), target))
	assert.True(t, restricted.Matches(logicaltype.NewTimestamp(9), target))
	assert.False(t, restricted.Matches(logicaltype.NewVarChar(3), target), "family check runs before the custom function")

	both := restricted.And(func(input, _ logicaltype.LogicalType) bool {
		return input.Is(logicaltype.RootTimestampWithLocalTimeZone)
	})
	assert.False(t, both.Matches(logicaltype.NewTimestamp(9), target))
	assert.True(t, both.Matches(logicaltype.NewLocalZonedTimestamp(9), target))
}

func TestPredicate_String(t *testing.T) {
	assert.Equal(t, "any", NewPredicateBuilder().Build().String())
	assert.Equal(t,
		"input family TIMESTAMP, target family CHARACTER_STRING",
		TimestampToStringCastRule.Predicate().String())
	assert.Equal(t, "custom condition", IdentityCastRule.Predicate().String())
	assert.Equal(t,
		"input root CHAR|VARCHAR, target root BIGINT",
		NewPredicateBuilder().
			InputRoot(logicaltype.RootChar, logicaltype.RootVarChar).
			TargetRoot(logicaltype.RootBigInt).
			Build().String())
}

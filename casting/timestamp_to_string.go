package casting

import "github.com/shibukawa/snapcast/logicaltype"

// TimestampToStringCastRule formats TIMESTAMP family values as text.
//
// Values with local time zone are rendered in the session time zone, which is
// only known at run time. Zone-naive timestamps are rendered in UTC, i.e.
// verbatim. The declared precision selects the number of fractional digits.
var TimestampToStringCastRule = NewCharacterFamilyTargetRule(
	"timestamp_to_string",
	NewPredicateBuilder().InputFamily(logicaltype.FamilyTimestamp),
	timestampToStringExpression,
)

func timestampToStringExpression(ctx Context, inputTerm string, input, _ logicaltype.LogicalType) string {
	zone := ctx.StaticField("UTCZone")
	if input.Is(logicaltype.RootTimestampWithLocalTimeZone) {
		zone = ctx.SessionTimeZoneTerm()
	}

	return ctx.StaticCall("TimestampToString", inputTerm, zone, logicaltype.Precision(input))
}

package castruntime

import (
	"strconv"
	"strings"
	"time"
)

// UTCZone is the zone used for timestamps without time zone. Their wall clock
// is stored as UTC, so formatting in UTCZone renders them verbatim.
var UTCZone = time.UTC

const timestampLayout = "2006-01-02 15:04:05"

// TimestampToString formats ts in zone as "yyyy-MM-dd HH:mm:ss" followed by
// exactly precision fractional-second digits. Extra digits are truncated,
// missing digits are zero padded, precision 0 omits the fraction entirely.
// Precision is clamped to 0..9 and a nil zone means UTC.
func TimestampToString(ts time.Time, zone *time.Location, precision int) string {
	if zone == nil {
		zone = UTCZone
	}

	precision = min(max(precision, 0), 9)

	local := ts.In(zone)

	var b strings.Builder

	b.Grow(len(timestampLayout) + 1 + precision)
	b.WriteString(local.Format(timestampLayout))

	if precision > 0 {
		nanos := strconv.Itoa(local.Nanosecond())
		b.WriteByte('.')
		b.WriteString(strings.Repeat("0", 9-len(nanos)))
		b.WriteString(nanos)

		s := b.String()

		return s[:len(s)-(9-precision)]
	}

	return b.String()
}

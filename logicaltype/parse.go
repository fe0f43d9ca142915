package logicaltype

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type keywordRule struct {
	root      Root
	maxParams int
	first     int // default for the first parameter (length or precision)
	second    int // default for the second parameter (scale)
}

// keywords maps normalized SQL type names to roots and parameter defaults
var keywords = map[string]keywordRule{
	"CHAR":                           {root: RootChar, maxParams: 1, first: DefaultLength},
	"CHARACTER":                      {root: RootChar, maxParams: 1, first: DefaultLength},
	"VARCHAR":                        {root: RootVarChar, maxParams: 1, first: DefaultLength},
	"CHAR VARYING":                   {root: RootVarChar, maxParams: 1, first: DefaultLength},
	"CHARACTER VARYING":              {root: RootVarChar, maxParams: 1, first: DefaultLength},
	"STRING":                         {root: RootVarChar, first: MaxLength},
	"BOOLEAN":                        {root: RootBoolean},
	"BOOL":                           {root: RootBoolean},
	"BINARY":                         {root: RootBinary, maxParams: 1, first: DefaultLength},
	"VARBINARY":                      {root: RootVarBinary, maxParams: 1, first: DefaultLength},
	"BINARY VARYING":                 {root: RootVarBinary, maxParams: 1, first: DefaultLength},
	"BYTES":                          {root: RootVarBinary, first: MaxLength},
	"DECIMAL":                        {root: RootDecimal, maxParams: 2, first: DefaultDecimalPrecision, second: DefaultDecimalScale},
	"DEC":                            {root: RootDecimal, maxParams: 2, first: DefaultDecimalPrecision, second: DefaultDecimalScale},
	"NUMERIC":                        {root: RootDecimal, maxParams: 2, first: DefaultDecimalPrecision, second: DefaultDecimalScale},
	"TINYINT":                        {root: RootTinyInt},
	"SMALLINT":                       {root: RootSmallInt},
	"INT":                            {root: RootInteger},
	"INTEGER":                        {root: RootInteger},
	"BIGINT":                         {root: RootBigInt},
	"FLOAT":                          {root: RootFloat},
	"DOUBLE":                         {root: RootDouble},
	"DOUBLE PRECISION":               {root: RootDouble},
	"DATE":                           {root: RootDate},
	"TIME":                           {root: RootTimeWithoutTimeZone, maxParams: 1, first: DefaultTimePrecision},
	"TIME WITHOUT TIME ZONE":         {root: RootTimeWithoutTimeZone, maxParams: 1, first: DefaultTimePrecision},
	"TIMESTAMP":                      {root: RootTimestampWithoutTimeZone, maxParams: 1, first: DefaultTimestampPrecision},
	"TIMESTAMP WITHOUT TIME ZONE":    {root: RootTimestampWithoutTimeZone, maxParams: 1, first: DefaultTimestampPrecision},
	"TIMESTAMP WITH TIME ZONE":       {root: RootTimestampWithTimeZone, maxParams: 1, first: DefaultTimestampPrecision},
	"TIMESTAMP WITH LOCAL TIME ZONE": {root: RootTimestampWithLocalTimeZone, maxParams: 1, first: DefaultTimestampPrecision},
	"TIMESTAMP_LTZ":                  {root: RootTimestampWithLocalTimeZone, maxParams: 1, first: DefaultTimestampPrecision},
	"NULL":                           {root: RootNull},
}

var parameterPattern = regexp.MustCompile(`\(\s*(\d+)\s*(?:,\s*(\d+)\s*)?\)`)

var upper = cases.Upper(language.Und)

// Parse converts a SQL type string such as "TIMESTAMP(3) WITH LOCAL TIME ZONE"
// or "varchar(20) not null" into a LogicalType.
func Parse(s string) (LogicalType, error) {
	text := strings.Join(strings.Fields(upper.String(s)), " ")
	if text == "" {
		return LogicalType{}, fmt.Errorf("%w: empty type string", ErrInvalidType)
	}

	nullable := true

	if strings.HasSuffix(text, " NOT NULL") {
		nullable = false
		text = strings.TrimSuffix(text, " NOT NULL")
	} else if text != "NULL" && strings.HasSuffix(text, " NULL") {
		text = strings.TrimSuffix(text, " NULL")
	}

	var params []int

	if m := parameterPattern.FindStringSubmatch(text); m != nil {
		for _, raw := range m[1:] {
			if raw == "" {
				continue
			}

			value, err := strconv.Atoi(raw)
			if err != nil {
				return LogicalType{}, fmt.Errorf("%w: %q in %q", ErrInvalidParameter, raw, s)
			}

			params = append(params, value)
		}

		text = strings.Replace(text, m[0], " ", 1)
	}

	if strings.ContainsAny(text, "(),") {
		return LogicalType{}, fmt.Errorf("%w: malformed parameters in %q", ErrInvalidType, s)
	}

	keyword := strings.Join(strings.Fields(text), " ")

	rule, ok := keywords[keyword]
	if !ok {
		return LogicalType{}, fmt.Errorf("%w: %q", ErrUnknownRoot, keyword)
	}

	if len(params) > rule.maxParams {
		return LogicalType{}, fmt.Errorf("%w: %s accepts at most %d parameter(s), got %d", ErrInvalidParameter, keyword, rule.maxParams, len(params))
	}

	first, second := rule.first, rule.second
	if len(params) > 0 {
		first = params[0]
	}

	if len(params) > 1 {
		second = params[1]
	}

	var (
		t   LogicalType
		err error
	)

	if HasLength(LogicalType{root: rule.root}) {
		t, err = newType(rule.root, 0, 0, first)
	} else {
		t, err = newType(rule.root, first, second, 0)
	}

	if err != nil {
		return LogicalType{}, err
	}

	return t.WithNullable(nullable), nil
}

// MustParse is like Parse but panics on error. Intended for tests and static tables.
func MustParse(s string) LogicalType {
	return mustType(Parse(s))
}

package logicaltype

// Root identifies a concrete SQL type within the type system
type Root int

const (
	_ Root = iota // zero value is not a valid root

	RootChar
	RootVarChar
	RootBoolean
	RootBinary
	RootVarBinary
	RootDecimal
	RootTinyInt
	RootSmallInt
	RootInteger
	RootBigInt
	RootFloat
	RootDouble
	RootDate
	RootTimeWithoutTimeZone
	RootTimestampWithoutTimeZone
	RootTimestampWithTimeZone
	RootTimestampWithLocalTimeZone
	RootNull
)

var rootNames = map[Root]string{
	RootChar:                       "CHAR",
	RootVarChar:                    "VARCHAR",
	RootBoolean:                    "BOOLEAN",
	RootBinary:                     "BINARY",
	RootVarBinary:                  "VARBINARY",
	RootDecimal:                    "DECIMAL",
	RootTinyInt:                    "TINYINT",
	RootSmallInt:                   "SMALLINT",
	RootInteger:                    "INTEGER",
	RootBigInt:                     "BIGINT",
	RootFloat:                      "FLOAT",
	RootDouble:                     "DOUBLE",
	RootDate:                       "DATE",
	RootTimeWithoutTimeZone:        "TIME_WITHOUT_TIME_ZONE",
	RootTimestampWithoutTimeZone:   "TIMESTAMP_WITHOUT_TIME_ZONE",
	RootTimestampWithTimeZone:      "TIMESTAMP_WITH_TIME_ZONE",
	RootTimestampWithLocalTimeZone: "TIMESTAMP_WITH_LOCAL_TIME_ZONE",
	RootNull:                       "NULL",
}

// String returns the upper snake case name of the root
func (r Root) String() string {
	if name, ok := rootNames[r]; ok {
		return name
	}

	return "INVALID"
}

// Families returns the families the root belongs to, most general first
func (r Root) Families() []Family {
	families := rootFamilies[r]
	result := make([]Family, len(families))
	copy(result, families)

	return result
}

// Family groups related roots (e.g. every string-like root is a CHARACTER_STRING)
type Family int

const (
	_ Family = iota

	FamilyPredefined
	FamilyCharacterString
	FamilyBinaryString
	FamilyNumeric
	FamilyIntegerNumeric
	FamilyExactNumeric
	FamilyApproximateNumeric
	FamilyDatetime
	FamilyTime
	FamilyTimestamp
	FamilyExtension
)

var familyNames = map[Family]string{
	FamilyPredefined:         "PREDEFINED",
	FamilyCharacterString:    "CHARACTER_STRING",
	FamilyBinaryString:       "BINARY_STRING",
	FamilyNumeric:            "NUMERIC",
	FamilyIntegerNumeric:     "INTEGER_NUMERIC",
	FamilyExactNumeric:       "EXACT_NUMERIC",
	FamilyApproximateNumeric: "APPROXIMATE_NUMERIC",
	FamilyDatetime:           "DATETIME",
	FamilyTime:               "TIME",
	FamilyTimestamp:          "TIMESTAMP",
	FamilyExtension:          "EXTENSION",
}

func (f Family) String() string {
	if name, ok := familyNames[f]; ok {
		return name
	}

	return "INVALID"
}

var rootFamilies = map[Root][]Family{
	RootChar:                       {FamilyPredefined, FamilyCharacterString},
	RootVarChar:                    {FamilyPredefined, FamilyCharacterString},
	RootBoolean:                    {FamilyPredefined},
	RootBinary:                     {FamilyPredefined, FamilyBinaryString},
	RootVarBinary:                  {FamilyPredefined, FamilyBinaryString},
	RootDecimal:                    {FamilyPredefined, FamilyNumeric, FamilyExactNumeric},
	RootTinyInt:                    {FamilyPredefined, FamilyNumeric, FamilyIntegerNumeric, FamilyExactNumeric},
	RootSmallInt:                   {FamilyPredefined, FamilyNumeric, FamilyIntegerNumeric, FamilyExactNumeric},
	RootInteger:                    {FamilyPredefined, FamilyNumeric, FamilyIntegerNumeric, FamilyExactNumeric},
	RootBigInt:                     {FamilyPredefined, FamilyNumeric, FamilyIntegerNumeric, FamilyExactNumeric},
	RootFloat:                      {FamilyPredefined, FamilyNumeric, FamilyApproximateNumeric},
	RootDouble:                     {FamilyPredefined, FamilyNumeric, FamilyApproximateNumeric},
	RootDate:                       {FamilyPredefined, FamilyDatetime},
	RootTimeWithoutTimeZone:        {FamilyPredefined, FamilyDatetime, FamilyTime},
	RootTimestampWithoutTimeZone:   {FamilyPredefined, FamilyDatetime, FamilyTimestamp},
	RootTimestampWithTimeZone:      {FamilyPredefined, FamilyDatetime, FamilyTimestamp},
	RootTimestampWithLocalTimeZone: {FamilyPredefined, FamilyDatetime, FamilyTimestamp, FamilyExtension},
	RootNull:                       {FamilyExtension},
}

// IsFamily reports whether the root belongs to the family
func (r Root) IsFamily(f Family) bool {
	for _, family := range rootFamilies[r] {
		if family == f {
			return true
		}
	}

	return false
}

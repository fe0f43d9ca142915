package logicaltype

import (
	"fmt"
	"math"
	"strconv"
)

const (
	MinTemporalPrecision      = 0
	MaxTemporalPrecision      = 9
	DefaultTimestampPrecision = 6
	DefaultTimePrecision      = 0

	MinDecimalPrecision     = 1
	MaxDecimalPrecision     = 38
	DefaultDecimalPrecision = 10
	DefaultDecimalScale     = 0

	MinLength     = 1
	MaxLength     = math.MaxInt32
	DefaultLength = 1
)

// LogicalType describes a SQL type independent of its physical representation.
// Values are immutable and comparable with ==.
type LogicalType struct {
	root      Root
	notNull   bool
	precision int
	scale     int
	length    int
}

func newType(root Root, precision, scale, length int) (LogicalType, error) {
	if _, ok := rootNames[root]; !ok {
		return LogicalType{}, fmt.Errorf("%w: %d", ErrUnknownRoot, int(root))
	}

	t := LogicalType{root: root}

	switch root {
	case RootChar, RootVarChar, RootBinary, RootVarBinary:
		if length < MinLength || length > MaxLength {
			return LogicalType{}, fmt.Errorf("%w: %s length must be between %d and %d, got %d", ErrInvalidParameter, root, MinLength, MaxLength, length)
		}

		t.length = length
	case RootDecimal:
		if precision < MinDecimalPrecision || precision > MaxDecimalPrecision {
			return LogicalType{}, fmt.Errorf("%w: DECIMAL precision must be between %d and %d, got %d", ErrInvalidParameter, MinDecimalPrecision, MaxDecimalPrecision, precision)
		}

		if scale < 0 || scale > precision {
			return LogicalType{}, fmt.Errorf("%w: DECIMAL scale must be between 0 and %d, got %d", ErrInvalidParameter, precision, scale)
		}

		t.precision = precision
		t.scale = scale
	case RootTimeWithoutTimeZone, RootTimestampWithoutTimeZone, RootTimestampWithTimeZone, RootTimestampWithLocalTimeZone:
		if precision < MinTemporalPrecision || precision > MaxTemporalPrecision {
			return LogicalType{}, fmt.Errorf("%w: %s precision must be between %d and %d, got %d", ErrInvalidParameter, root, MinTemporalPrecision, MaxTemporalPrecision, precision)
		}

		t.precision = precision
	}

	return t, nil
}

func mustType(t LogicalType, err error) LogicalType {
	if err != nil {
		panic(err)
	}

	return t
}

// New creates a nullable type of the given root. Parameters that do not apply
// to the root are ignored. It returns an error when a parameter is out of range.
func New(root Root, precision, scale, length int) (LogicalType, error) {
	return newType(root, precision, scale, length)
}

// NewChar panics when length is out of range; so do the other parameterized constructors.
func NewChar(length int) LogicalType {
	return mustType(newType(RootChar, 0, 0, length))
}

func NewVarChar(length int) LogicalType {
	return mustType(newType(RootVarChar, 0, 0, length))
}

// NewString returns VARCHAR with the maximum length
func NewString() LogicalType {
	return NewVarChar(MaxLength)
}

func NewBoolean() LogicalType { return LogicalType{root: RootBoolean} }

func NewBinary(length int) LogicalType {
	return mustType(newType(RootBinary, 0, 0, length))
}

func NewVarBinary(length int) LogicalType {
	return mustType(newType(RootVarBinary, 0, 0, length))
}

// NewBytes returns VARBINARY with the maximum length
func NewBytes() LogicalType {
	return NewVarBinary(MaxLength)
}

func NewDecimal(precision, scale int) LogicalType {
	return mustType(newType(RootDecimal, precision, scale, 0))
}

func NewTinyInt() LogicalType  { return LogicalType{root: RootTinyInt} }
func NewSmallInt() LogicalType { return LogicalType{root: RootSmallInt} }
func NewInt() LogicalType      { return LogicalType{root: RootInteger} }
func NewBigInt() LogicalType   { return LogicalType{root: RootBigInt} }
func NewFloat() LogicalType    { return LogicalType{root: RootFloat} }
func NewDouble() LogicalType   { return LogicalType{root: RootDouble} }
func NewDate() LogicalType     { return LogicalType{root: RootDate} }
func NewNull() LogicalType     { return LogicalType{root: RootNull} }

func NewTime(precision int) LogicalType {
	return mustType(newType(RootTimeWithoutTimeZone, precision, 0, 0))
}

// NewTimestamp returns a zone-naive TIMESTAMP(precision)
func NewTimestamp(precision int) LogicalType {
	return mustType(newType(RootTimestampWithoutTimeZone, precision, 0, 0))
}

func NewZonedTimestamp(precision int) LogicalType {
	return mustType(newType(RootTimestampWithTimeZone, precision, 0, 0))
}

// NewLocalZonedTimestamp returns TIMESTAMP(precision) WITH LOCAL TIME ZONE.
// Values are instants rendered in the session time zone.
func NewLocalZonedTimestamp(precision int) LogicalType {
	return mustType(newType(RootTimestampWithLocalTimeZone, precision, 0, 0))
}

func (t LogicalType) Root() Root { return t.root }

// Families returns the families of the type's root
func (t LogicalType) Families() []Family { return t.root.Families() }

// Is reports whether the type has the given root
func (t LogicalType) Is(root Root) bool { return t.root == root }

// IsFamily reports whether the type's root belongs to the family
func (t LogicalType) IsFamily(f Family) bool { return t.root.IsFamily(f) }

func (t LogicalType) IsNullable() bool { return !t.notNull }

// WithNullable returns a copy of the type with the given nullability.
// The NULL type is always nullable.
func (t LogicalType) WithNullable(nullable bool) LogicalType {
	if t.root == RootNull {
		return t
	}

	t.notNull = !nullable

	return t
}

// HasPrecision reports whether the type declares a precision
func HasPrecision(t LogicalType) bool {
	switch t.root {
	case RootDecimal, RootTimeWithoutTimeZone, RootTimestampWithoutTimeZone, RootTimestampWithTimeZone, RootTimestampWithLocalTimeZone:
		return true
	default:
		return false
	}
}

// Precision returns the declared precision. For temporal types this is the
// number of fractional-second digits.
// It panics when the type has no precision.
func Precision(t LogicalType) int {
	if !HasPrecision(t) {
		panic(fmt.Sprintf("logical type %s has no precision", t))
	}

	return t.precision
}

// Scale returns the declared scale of a DECIMAL type and panics for other types
func Scale(t LogicalType) int {
	if t.root != RootDecimal {
		panic(fmt.Sprintf("logical type %s has no scale", t))
	}

	return t.scale
}

// HasLength reports whether the type declares a length
func HasLength(t LogicalType) bool {
	switch t.root {
	case RootChar, RootVarChar, RootBinary, RootVarBinary:
		return true
	default:
		return false
	}
}

// Length returns the declared length of a string or binary type and panics for other types
func Length(t LogicalType) int {
	if !HasLength(t) {
		panic(fmt.Sprintf("logical type %s has no length", t))
	}

	return t.length
}

// String renders the type as SQL, e.g. "TIMESTAMP(3) NOT NULL" or "VARCHAR(10)"
func (t LogicalType) String() string {
	var s string

	switch t.root {
	case RootChar, RootBinary:
		s = t.root.String() + "(" + strconv.Itoa(t.length) + ")"
	case RootVarChar:
		if t.length == MaxLength {
			s = "STRING"
		} else {
			s = "VARCHAR(" + strconv.Itoa(t.length) + ")"
		}
	case RootVarBinary:
		if t.length == MaxLength {
			s = "BYTES"
		} else {
			s = "VARBINARY(" + strconv.Itoa(t.length) + ")"
		}
	case RootDecimal:
		s = fmt.Sprintf("DECIMAL(%d, %d)", t.precision, t.scale)
	case RootInteger:
		s = "INT"
	case RootTimeWithoutTimeZone:
		s = "TIME(" + strconv.Itoa(t.precision) + ")"
	case RootTimestampWithoutTimeZone:
		s = "TIMESTAMP(" + strconv.Itoa(t.precision) + ")"
	case RootTimestampWithTimeZone:
		s = "TIMESTAMP(" + strconv.Itoa(t.precision) + ") WITH TIME ZONE"
	case RootTimestampWithLocalTimeZone:
		s = "TIMESTAMP_LTZ(" + strconv.Itoa(t.precision) + ")"
	default:
		s = t.root.String()
	}

	if t.notNull {
		s += " NOT NULL"
	}

	return s
}

package logicaltype

// SupportsAvoidingCast reports whether a value of the source type can be used
// as a value of the target type without any conversion, i.e. both share the
// same runtime representation.
//
// Covered cases:
//   - identical types, including types differing only in nullability as long as
//     a nullable source is not narrowed to a NOT NULL target;
//   - VARCHAR(n) to VARCHAR(m) and VARBINARY(n) to VARBINARY(m) with m >= n.
func SupportsAvoidingCast(source, target LogicalType) bool {
	if source.IsNullable() && !target.IsNullable() {
		return false
	}

	s := source.WithNullable(true)
	t := target.WithNullable(true)

	if s == t {
		return true
	}

	switch {
	case s.root == RootVarChar && t.root == RootVarChar:
		return t.length >= s.length
	case s.root == RootVarBinary && t.root == RootVarBinary:
		return t.length >= s.length
	}

	return false
}

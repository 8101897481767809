package semantic

// DataType is a member of MeowScript's small type lattice.
type DataType int

const (
	// Unknown is the bottom type: an uninferred function return, or the
	// result of an expression whose own operands already errored.
	Unknown DataType = iota
	Int
	Float
	Str
	Void
)

func (t DataType) String() string {
	switch t {
	case Int:
		return "treats"
	case Float:
		return "whiskers"
	case Str:
		return "yarn"
	case Void:
		return "void"
	default:
		return "unknown"
	}
}

// compatible reports whether a value of type b may be assigned to, or
// compared against, a variable of type a. Identical types are always
// compatible; Int and Float are mutually compatible (numeric
// widening); everything else is not.
func compatible(a, b DataType) bool {
	if a == b {
		return true
	}
	isNumeric := func(t DataType) bool { return t == Int || t == Float }
	return isNumeric(a) && isNumeric(b)
}

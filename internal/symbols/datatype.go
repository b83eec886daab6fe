package symbols

// Datatype is the set of scalar types the language supports.
type Datatype uint8

const (
	// Unset marks a symbol or expression whose type has not been
	// computed yet.
	Unset Datatype = iota
	Int
	Real
	Bool
	Char
)

func (d Datatype) String() string {
	switch d {
	case Unset:
		return "invalid"
	case Int:
		return "int"
	case Real:
		return "real"
	case Bool:
		return "bool"
	case Char:
		return "char"
	default:
		return "invalid"
	}
}

// Compare reports whether a and b are compatible datatypes: equal, or
// one CHAR and the other INT (CHAR promotes to INT for arithmetic,
// indexing, assignment and return). REAL is never compatible with
// INT or CHAR. Compare is symmetric.
func Compare(a, b Datatype) bool {
	if a == b {
		return true
	}
	if a == Char && b == Int {
		return true
	}
	if a == Int && b == Char {
		return true
	}
	return false
}

// CoerceForArithmetic returns the type a value of datatype d is
// treated as once it participates in an arithmetic, relational,
// indexing, or return-value position: CHAR promotes to INT, every
// other datatype passes through unchanged.
func CoerceForArithmetic(d Datatype) Datatype {
	if d == Char {
		return Int
	}
	return d
}

package ir

// Equal reports whether a and b are structurally equal: the same variant
// with recursively equal contents. Object field order is ignored. An
// integer never equals a float, so 1 and 1.0 differ.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case NullType:
		return true
	case BoolType:
		return a.Bool == b.Bool
	case StringType:
		return a.String == b.String
	case NumberType:
		return equalNumbers(a, b)
	case ArrayType:
		if len(a.Values) != len(b.Values) {
			return false
		}
		for i := range a.Values {
			if !Equal(a.Values[i], b.Values[i]) {
				return false
			}
		}
		return true
	case ObjectType:
		if len(a.Fields) != len(b.Fields) {
			return false
		}
		for i, f := range a.Fields {
			j := b.Index(f.String)
			if j == -1 {
				return false
			}
			if !Equal(a.Values[i], b.Values[j]) {
				return false
			}
		}
		return true
	}
	return false
}

// equalNumbers compares by decoded value when both sides have one of the
// same kind, and by literal text for numbers which only have text.
func equalNumbers(a, b *Node) bool {
	switch {
	case a.Int64 != nil || b.Int64 != nil:
		return a.Int64 != nil && b.Int64 != nil && *a.Int64 == *b.Int64
	case a.Float64 != nil || b.Float64 != nil:
		return a.Float64 != nil && b.Float64 != nil && *a.Float64 == *b.Float64
	}
	return a.Number == b.Number
}

package psi

// Arity is a method or macro's accepted positional-plus-named argument
// count range. Max is meaningless when Unbounded is true (a
// splat parameter makes the upper bound unlimited).
type Arity struct {
	Min       int
	Max       int
	Unbounded bool
}

// Matches reports whether n positional-plus-named arguments satisfy the
// arity, i.e. min <= n <= max (or max is unbounded).
func (a Arity) Matches(n int) bool {
	if n < a.Min {
		return false
	}
	if a.Unbounded {
		return true
	}
	return n <= a.Max
}

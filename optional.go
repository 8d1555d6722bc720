package parsita

type optParser[E, V any] struct {
	parser Parser[E, V]
}

// Opt matches the parser zero or one time. On a match it returns a
// one-element slice; otherwise it succeeds with an empty slice at the
// original cursor, consuming nothing. The discarded failure still counts
// toward the farthest-failure report of the enclosing parse.
func Opt[E, V any](parser Parser[E, V]) Parser[E, []V] {
	return optParser[E, V]{parser: parser}
}

func (p optParser[E, V]) eval(tr *trace[E], cur Cursor[E]) ([]V, Cursor[E], bool) {
	if value, next, ok := p.parser.eval(tr, cur); ok {
		return []V{value}, next, true
	}
	return nil, cur, true
}

func (p optParser[E, V]) String() string {
	return "opt(" + p.parser.String() + ")"
}

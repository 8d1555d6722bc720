package parsita

// ---- conversion ----

type mapParser[E, A, B any] struct {
	parser  Parser[E, A]
	convert func(A) B
}

// Map matches the parser and applies convert to its value. The conversion
// is total; a conversion that can reject its input belongs in Bind with a
// Fail result instead.
func Map[E, A, B any](parser Parser[E, A], convert func(A) B) Parser[E, B] {
	return mapParser[E, A, B]{parser: parser, convert: convert}
}

func (p mapParser[E, A, B]) eval(tr *trace[E], cur Cursor[E]) (B, Cursor[E], bool) {
	a, next, ok := p.parser.eval(tr, cur)
	if !ok {
		var zero B
		return zero, cur, false
	}
	return p.convert(a), next, true
}

func (p mapParser[E, A, B]) String() string {
	return p.parser.String()
}

// ---- monadic bind ----

type bindParser[E, A, B any] struct {
	parser    Parser[E, A]
	transform func(A) Parser[E, B]
}

// Bind matches the parser, calls transform with its value to obtain a new
// parser, and continues with that parser from where the first match ended.
// Returning Succeed or Fail from transform expresses fallible conversions;
// returning a grammar fragment expresses input-dependent parsing.
func Bind[E, A, B any](parser Parser[E, A], transform func(A) Parser[E, B]) Parser[E, B] {
	return bindParser[E, A, B]{parser: parser, transform: transform}
}

func (p bindParser[E, A, B]) eval(tr *trace[E], cur Cursor[E]) (B, Cursor[E], bool) {
	a, mid, ok := p.parser.eval(tr, cur)
	if !ok {
		var zero B
		return zero, cur, false
	}
	return p.transform(a).eval(tr, mid)
}

func (p bindParser[E, A, B]) String() string {
	return p.parser.String()
}

// ---- predicate ----

type predParser[E, V any] struct {
	parser      Parser[E, V]
	predicate   func(V) bool
	description string
}

// Pred matches the parser and then requires its value to satisfy the
// predicate. A rejected value fails with the given description at the
// cursor where the inner match began, so the error points at the start of
// the offending span rather than past it.
func Pred[E, V any](parser Parser[E, V], predicate func(V) bool, description string) Parser[E, V] {
	return predParser[E, V]{parser: parser, predicate: predicate, description: description}
}

func (p predParser[E, V]) eval(tr *trace[E], cur Cursor[E]) (V, Cursor[E], bool) {
	value, next, ok := p.parser.eval(tr, cur)
	if !ok {
		var zero V
		return zero, cur, false
	}
	if !p.predicate(value) {
		tr.register(p.description, cur)
		var zero V
		return zero, cur, false
	}
	return value, next, true
}

func (p predParser[E, V]) String() string {
	return "pred(" + p.parser.String() + ", " + p.description + ")"
}

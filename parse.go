package parsita

// ParseText is the primary entry point for text grammars. It runs the
// parser against source from the beginning and requires it to consume the
// whole input: an implicit end-of-input check follows the parser, so a
// grammar that matches only a prefix fails with "end of source" among the
// expectations. Each call uses a fresh cursor and failure trace; the
// grammar itself is never mutated, so one grammar may be used from many
// goroutines at once.
func ParseText[V any](parser Parser[rune, V], source string) Result[V] {
	return run[rune, V](ThenSkip(parser, EOF[rune]()), NewTextCursor(source))
}

// Parse runs the parser against a token sequence, with the same
// whole-input requirement as ParseText. Failure positions are reported by
// index, since token sequences have no lines.
func Parse[E, V any](parser Parser[E, V], input []E) Result[V] {
	return run[E, V](ThenSkip(parser, EOF[E]()), NewSliceCursor(input))
}

// ParseCursor runs the parser from an existing cursor, for callers that
// bring their own input representation.
func ParseCursor[E, V any](parser Parser[E, V], cur Cursor[E]) Result[V] {
	return run[E, V](ThenSkip(parser, EOF[E]()), cur)
}

func run[E, V any](whole Parser[E, V], start Cursor[E]) Result[V] {
	tr := &trace[E]{}
	value, _, ok := whole.eval(tr, start)
	if !ok {
		return failureResult[V](newParseError(tr, start))
	}
	return successResult(value)
}

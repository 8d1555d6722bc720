package parsita

// Parser is one node of a grammar: a unit that either matches a prefix of
// the input, producing a value of type V and the cursor past the match, or
// fails, recording what it expected on the parse's failure trace. Parsers
// are built once with the constructor functions in this package, wired up
// (every Forward defined), and then evaluated any number of times; a parser
// never mutates itself during evaluation.
//
// The variant set is closed: eval is unexported so that all node types live
// in this package and the evaluator can rely on their documented semantics.
type Parser[E, V any] interface {
	// eval attempts this parser at cur. On a match it returns the produced
	// value, the cursor after the match, and true. On a non-match it returns
	// false after registering the expectation on tr; the zero value and cur
	// returned alongside carry no meaning.
	eval(tr *trace[E], cur Cursor[E]) (V, Cursor[E], bool)

	// String renders the parser for debugging output.
	String() string
}

// trace accumulates the farthest failure of one top-level parse call. Every
// non-matching attempt registers the position it failed at and a
// description of what would have matched there; only registrations at the
// deepest position seen so far survive. Failures that a combinator later
// discards (an Optional falling back, a losing alternation branch, the
// attempt that ends a repetition) still contribute here, which is what
// makes the final message point at the deepest point of failure rather
// than the last combinator to give up.
type trace[E any] struct {
	farthest Cursor[E]
	expected []string
}

func (t *trace[E]) register(expected string, at Cursor[E]) {
	if t.farthest == nil || t.farthest.Position() < at.Position() {
		t.farthest = at
		t.expected = t.expected[:0]
		t.expected = append(t.expected, expected)
	} else if t.farthest.Position() == at.Position() {
		t.expected = append(t.expected, expected)
	}
}

// uniqueExpected deduplicates the expected set, keeping first-seen order.
func (t *trace[E]) uniqueExpected() []string {
	seen := make(map[string]struct{}, len(t.expected))
	unique := make([]string, 0, len(t.expected))
	for _, e := range t.expected {
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		unique = append(unique, e)
	}
	return unique
}

package parsita

import "strings"

type firstParser[E, V any] struct {
	parsers []Parser[E, V]
}

// First matches the first of the given parsers to succeed, trying them in
// order against the same starting cursor and not attempting the rest once
// one matches. If every branch fails, the failure reported is the merged
// farthest failure across the branches.
func First[E, V any](parsers ...Parser[E, V]) Parser[E, V] {
	if len(parsers) == 0 {
		panic("parsita: First requires at least one parser")
	}
	return firstParser[E, V]{parsers: parsers}
}

func (p firstParser[E, V]) eval(tr *trace[E], cur Cursor[E]) (V, Cursor[E], bool) {
	for _, branch := range p.parsers {
		if value, next, ok := branch.eval(tr, cur); ok {
			return value, next, true
		}
	}
	var zero V
	return zero, cur, false
}

func (p firstParser[E, V]) String() string {
	return joinNames(p.parsers, " | ")
}

type longestParser[E, V any] struct {
	parsers []Parser[E, V]
}

// Longest matches the parser that consumes the most input, evaluating every
// branch against the same starting cursor. Every branch is always
// evaluated, even after one succeeds: the tie-break and the merged failure
// both require comparing all outcomes. When two branches consume equally
// much, the earlier one wins.
func Longest[E, V any](parsers ...Parser[E, V]) Parser[E, V] {
	if len(parsers) == 0 {
		panic("parsita: Longest requires at least one parser")
	}
	return longestParser[E, V]{parsers: parsers}
}

func (p longestParser[E, V]) eval(tr *trace[E], cur Cursor[E]) (V, Cursor[E], bool) {
	var (
		bestValue V
		bestNext  Cursor[E]
		matched   bool
	)
	for _, branch := range p.parsers {
		value, next, ok := branch.eval(tr, cur)
		if ok && (!matched || next.Position() > bestNext.Position()) {
			bestValue, bestNext, matched = value, next, true
		}
	}
	if !matched {
		var zero V
		return zero, cur, false
	}
	return bestValue, bestNext, true
}

func (p longestParser[E, V]) String() string {
	return "longest(" + joinNames(p.parsers, ", ") + ")"
}

func joinNames[E, V any](parsers []Parser[E, V], sep string) string {
	names := make([]string, len(parsers))
	for i, parser := range parsers {
		names[i] = parser.String()
	}
	return strings.Join(names, sep)
}

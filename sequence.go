package parsita

import (
	"fmt"
	"strings"
)

// ---- homogeneous sequence ----

type seqParser[E, V any] struct {
	parsers []Parser[E, V]
}

// Seq matches every parser in order, each continuing from the cursor left
// by its predecessor, and returns the produced values as a slice. The first
// non-matching member fails the whole sequence.
func Seq[E, V any](parsers ...Parser[E, V]) Parser[E, []V] {
	return seqParser[E, V]{parsers: parsers}
}

func (p seqParser[E, V]) eval(tr *trace[E], cur Cursor[E]) ([]V, Cursor[E], bool) {
	values := make([]V, 0, len(p.parsers))
	for _, member := range p.parsers {
		value, next, ok := member.eval(tr, cur)
		if !ok {
			return nil, cur, false
		}
		values = append(values, value)
		cur = next
	}
	return values, cur, true
}

func (p seqParser[E, V]) String() string {
	names := make([]string, len(p.parsers))
	for i, member := range p.parsers {
		names[i] = member.String()
	}
	return strings.Join(names, " & ")
}

// ---- heterogeneous pair ----

// Pair holds the two values of a Then match.
type Pair[A, B any] struct {
	First  A
	Second B
}

type thenParser[E, A, B any] struct {
	left  Parser[E, A]
	right Parser[E, B]
}

// Then matches left and then right, returning both values as a Pair. It is
// the two-typed form of Seq.
func Then[E, A, B any](left Parser[E, A], right Parser[E, B]) Parser[E, Pair[A, B]] {
	return thenParser[E, A, B]{left: left, right: right}
}

func (p thenParser[E, A, B]) eval(tr *trace[E], cur Cursor[E]) (Pair[A, B], Cursor[E], bool) {
	a, mid, ok := p.left.eval(tr, cur)
	if !ok {
		return Pair[A, B]{}, cur, false
	}
	b, next, ok := p.right.eval(tr, mid)
	if !ok {
		return Pair[A, B]{}, cur, false
	}
	return Pair[A, B]{First: a, Second: b}, next, true
}

func (p thenParser[E, A, B]) String() string {
	return p.left.String() + " & " + p.right.String()
}

// ---- discarding sequences ----

type skipThenParser[E, A, B any] struct {
	left  Parser[E, A]
	right Parser[E, B]
}

// SkipThen matches left and then right, keeping only right's value.
func SkipThen[E, A, B any](left Parser[E, A], right Parser[E, B]) Parser[E, B] {
	return skipThenParser[E, A, B]{left: left, right: right}
}

func (p skipThenParser[E, A, B]) eval(tr *trace[E], cur Cursor[E]) (B, Cursor[E], bool) {
	_, mid, ok := p.left.eval(tr, cur)
	if !ok {
		var zero B
		return zero, cur, false
	}
	return p.right.eval(tr, mid)
}

func (p skipThenParser[E, A, B]) String() string {
	return fmt.Sprintf("%s >> %s", p.left.String(), p.right.String())
}

type thenSkipParser[E, A, B any] struct {
	left  Parser[E, A]
	right Parser[E, B]
}

// ThenSkip matches left and then right, keeping only left's value.
func ThenSkip[E, A, B any](left Parser[E, A], right Parser[E, B]) Parser[E, A] {
	return thenSkipParser[E, A, B]{left: left, right: right}
}

func (p thenSkipParser[E, A, B]) eval(tr *trace[E], cur Cursor[E]) (A, Cursor[E], bool) {
	a, mid, ok := p.left.eval(tr, cur)
	if !ok {
		var zero A
		return zero, cur, false
	}
	_, next, ok := p.right.eval(tr, mid)
	if !ok {
		var zero A
		return zero, cur, false
	}
	return a, next, true
}

func (p thenSkipParser[E, A, B]) String() string {
	return fmt.Sprintf("%s << %s", p.left.String(), p.right.String())
}

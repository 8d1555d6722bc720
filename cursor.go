package parsita

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

// Cursor is an immutable position marker over an input sequence. Advancing a
// cursor yields a new cursor; the underlying sequence is shared, never
// copied. The concrete cursor types live in this package so that the
// evaluator can assume a closed set of input representations.
type Cursor[E any] interface {
	// Position is the index of the next element; for text cursors it is a
	// byte offset into the source string.
	Position() int
	// AtEnd reports whether the cursor has consumed the whole input.
	AtEnd() bool
	// Peek returns the element at the current position, or false at the end
	// of the input.
	Peek() (E, bool)
	// Advance returns a cursor positioned just past the current element. It
	// must not be called at the end of the input.
	Advance() Cursor[E]

	// describeNext renders the upcoming input for error messages.
	describeNext() string
	// window returns the elements between two positions.
	window(from, to int) []E
}

// SliceCursor reads a slice of arbitrary token elements.
type SliceCursor[E any] struct {
	elems []E
	pos   int
}

// NewSliceCursor returns a cursor at the start of elems.
func NewSliceCursor[E any](elems []E) SliceCursor[E] {
	return SliceCursor[E]{elems: elems}
}

func (c SliceCursor[E]) Position() int { return c.pos }

func (c SliceCursor[E]) AtEnd() bool { return c.pos >= len(c.elems) }

func (c SliceCursor[E]) Peek() (E, bool) {
	if c.AtEnd() {
		var zero E
		return zero, false
	}
	return c.elems[c.pos], true
}

func (c SliceCursor[E]) Advance() Cursor[E] {
	return SliceCursor[E]{elems: c.elems, pos: c.pos + 1}
}

func (c SliceCursor[E]) describeNext() string {
	if c.AtEnd() {
		return "end of source"
	}
	return fmt.Sprintf("%v", c.elems[c.pos])
}

func (c SliceCursor[E]) window(from, to int) []E {
	return c.elems[from:to]
}

// nextTokenPattern groups the upcoming text into a human-recognizable chunk
// (a bracket, a word, a punctuation run, or a whitespace run) so that error
// messages can say what was found instead of quoting one character.
var nextTokenPattern = regexp.MustCompile(`^([\(\)\[\]\{\}"']|\w+|[^\w\s\(\)\[\]\{\}"']+|\s+)`)

// TextCursor reads a string. Positions are byte offsets; Peek decodes one
// rune at a time, which lets the same grammar mix rune-level combinators
// with string-level terminals such as Literal and Regex.
type TextCursor struct {
	source string
	pos    int
}

// NewTextCursor returns a cursor at the start of source.
func NewTextCursor(source string) TextCursor {
	return TextCursor{source: source}
}

// Source returns the full text being read.
func (c TextCursor) Source() string { return c.source }

func (c TextCursor) Position() int { return c.pos }

func (c TextCursor) AtEnd() bool { return c.pos >= len(c.source) }

func (c TextCursor) Peek() (rune, bool) {
	if c.AtEnd() {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(c.source[c.pos:])
	return r, true
}

func (c TextCursor) Advance() Cursor[rune] {
	_, size := utf8.DecodeRuneInString(c.source[c.pos:])
	return TextCursor{source: c.source, pos: c.pos + size}
}

// drop returns a cursor advanced by n bytes. Terminals that match a known
// span use this instead of repeated Advance calls.
func (c TextCursor) drop(n int) TextCursor {
	return TextCursor{source: c.source, pos: c.pos + n}
}

func (c TextCursor) describeNext() string {
	if c.AtEnd() {
		return "end of source"
	}
	if m := nextTokenPattern.FindString(c.source[c.pos:]); m != "" {
		return fmt.Sprintf("%q", m)
	}
	r, _ := utf8.DecodeRuneInString(c.source[c.pos:])
	return fmt.Sprintf("%q", string(r))
}

func (c TextCursor) window(from, to int) []rune {
	return []rune(c.source[from:to])
}

// asText rejects token-sequence cursors from text-only terminals. This is a
// grammar defect (a Literal or Regex was composed into a token grammar), so
// it fails loudly rather than as a parse failure.
func asText(cur Cursor[rune], parser string) TextCursor {
	tc, ok := cur.(TextCursor)
	if !ok {
		panic(fmt.Sprintf("parsita: %s requires text input, got %T", parser, cur))
	}
	return tc
}

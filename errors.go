package parsita

import (
	"fmt"
	"strings"

	"github.com/drhagen/parsita/internal/textpos"
)

// ParseError is the failure of a top-level parse: the farthest point any
// attempt reached and everything that would have been accepted there.
type ParseError struct {
	// Expected lists the descriptions of what would have matched at the
	// failure position, deduplicated, in the order they were first tried.
	Expected []string
	// Found describes the input at the failure position, or "end of source".
	Found string
	// Position is the index of the failure; a byte offset for text input.
	Position int
	// Line and Column are 0-based and only set for text input; both are -1
	// for token-sequence input.
	Line   int
	Column int
	// LineText is the text of the offending line, without its line break.
	// It is empty for token-sequence input.
	LineText string
}

// Message is the one-line form of the error: what was expected and what was
// found instead.
func (e *ParseError) Message() string {
	return fmt.Sprintf("Expected %s but found %s", strings.Join(e.Expected, " or "), e.Found)
}

// Error renders the message and, for text input, the offending line with a
// caret beneath the failing column.
func (e *ParseError) Error() string {
	if e.Line < 0 {
		return fmt.Sprintf("%s at index %d", e.Message(), e.Position)
	}
	return fmt.Sprintf("%s\nLine %d, character %d\n\n%s\n%s",
		e.Message(), e.Line, e.Column, e.LineText, textpos.Caret(e.Column))
}

// newParseError reads the farthest failure off the trace. The start cursor
// stands in when nothing was registered, which only happens for grammars
// that fail without attempting anything (such as Rep with min above max).
func newParseError[E any](tr *trace[E], start Cursor[E]) *ParseError {
	at := tr.farthest
	expected := tr.uniqueExpected()
	if at == nil {
		at = start
		expected = []string{"nothing parseable"}
	}
	e := &ParseError{
		Expected: expected,
		Found:    at.describeNext(),
		Position: at.Position(),
		Line:     -1,
		Column:   -1,
	}
	if tc, ok := any(at).(TextCursor); ok {
		loc := textpos.Locate(tc.Source(), tc.Position())
		e.Line = loc.Line
		e.Column = loc.Column
		e.LineText = loc.LineText
	}
	return e
}

// Package textpos computes line and column information for byte offsets
// into a source string. It is only used when rendering errors, keeping the
// success path free of position bookkeeping.
package textpos

import "strings"

// Location is a resolved position within a text source.
type Location struct {
	Line     int // 0-based
	Column   int // 0-based, in bytes from the start of the line
	LineText string
}

// Locate resolves a byte offset to its line, column, and line text. Offsets
// at or past the end of the source resolve to the last line; line breaks
// are "\n" and the trailing newline is not part of LineText.
func Locate(source string, pos int) Location {
	if pos > len(source) {
		pos = len(source)
	}
	lineStart := strings.LastIndexByte(source[:pos], '\n') + 1
	lineEnd := strings.IndexByte(source[lineStart:], '\n')
	if lineEnd < 0 {
		lineEnd = len(source)
	} else {
		lineEnd += lineStart
	}
	line := strings.Count(source[:lineStart], "\n")
	return Location{
		Line:     line,
		Column:   pos - lineStart,
		LineText: source[lineStart:lineEnd],
	}
}

// Caret renders a pointer line for the given column, for printing beneath
// the offending line text.
func Caret(column int) string {
	return strings.Repeat(" ", column) + "^"
}

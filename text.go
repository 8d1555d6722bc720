package parsita

// TextGrammar builds text terminals that share a whitespace policy. The
// policy is attached to each terminal at composition time, so grammars with
// different policies coexist freely and a sub-parser keeps the policy it
// was built under no matter where it is later reused.
//
// Terminals built through a TextGrammar consume the policy both before and
// after their match. The trailing consumption is what keeps sequence
// boundaries and the implicit end-of-input check of ParseText
// whitespace-insensitive without any global state.
type TextGrammar struct {
	whitespace Parser[rune, string]
}

// Text returns a grammar whose terminals skip runs of Unicode whitespace.
func Text() *TextGrammar {
	return &TextGrammar{whitespace: Regex(`\s*`)}
}

// TextWith returns a grammar with the given whitespace policy. The policy
// should match the empty string (a zero-or-more pattern); a nil policy
// disables skipping entirely, same as the package-level terminal
// constructors.
func TextWith(whitespace Parser[rune, string]) *TextGrammar {
	return &TextGrammar{whitespace: whitespace}
}

// Literal is Literal with this grammar's whitespace policy.
func (g *TextGrammar) Literal(texts ...string) Parser[rune, string] {
	if len(texts) == 0 {
		panic("parsita: Literal requires at least one text")
	}
	return literalParser{texts: texts, ws: g.whitespace}
}

// Regex is Regex with this grammar's whitespace policy.
func (g *TextGrammar) Regex(pattern string) Parser[rune, string] {
	return regexParser{re: compileAnchored(pattern), pattern: pattern, ws: g.whitespace}
}

// EOF is EOF with this grammar's whitespace policy: it matches when only
// whitespace remains.
func (g *TextGrammar) EOF() Parser[rune, struct{}] {
	return endParser[rune]{ws: g.whitespace}
}

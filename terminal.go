package parsita

import (
	"fmt"
	"regexp"
	"strings"
)

// skipPolicy consumes as much of the whitespace policy as matches, leaving
// the cursor untouched when the policy is absent or does not match. A
// conventional policy is a zero-or-more pattern and therefore always
// matches.
func skipPolicy[E any](tr *trace[E], cur Cursor[E], ws Parser[E, string]) Cursor[E] {
	if ws == nil {
		return cur
	}
	if _, next, ok := ws.eval(tr, cur); ok {
		return next
	}
	return cur
}

// ---- literal ----

type literalParser struct {
	texts []string
	ws    Parser[rune, string]
}

// Literal matches one of the given texts, tried in order, returning the
// text that matched. Terminals built through a TextGrammar additionally
// consume the grammar's whitespace around the match; the package-level
// constructor consumes nothing but the text itself.
func Literal(texts ...string) Parser[rune, string] {
	if len(texts) == 0 {
		panic("parsita: Literal requires at least one text")
	}
	return literalParser{texts: texts}
}

func (p literalParser) eval(tr *trace[rune], cur Cursor[rune]) (string, Cursor[rune], bool) {
	cur = skipPolicy(tr, cur, p.ws)
	tc := asText(cur, "Literal")
	for _, text := range p.texts {
		if strings.HasPrefix(tc.source[tc.pos:], text) {
			var next Cursor[rune] = tc.drop(len(text))
			next = skipPolicy(tr, next, p.ws)
			return text, next, true
		}
	}
	for _, text := range p.texts {
		tr.register(fmt.Sprintf("%q", text), cur)
	}
	return "", cur, false
}

func (p literalParser) String() string {
	quoted := make([]string, len(p.texts))
	for i, text := range p.texts {
		quoted[i] = fmt.Sprintf("%q", text)
	}
	return strings.Join(quoted, "|")
}

// ---- regex ----

type regexParser struct {
	re      *regexp.Regexp
	pattern string
	ws      Parser[rune, string]
}

// Regex matches the regular expression anchored at the cursor and returns
// the matched text. The pattern is greedy; backtracking in the combinators
// does not extend into the regular expression.
func Regex(pattern string) Parser[rune, string] {
	return regexParser{re: compileAnchored(pattern), pattern: pattern}
}

func compileAnchored(pattern string) *regexp.Regexp {
	return regexp.MustCompile(`^(?:` + pattern + `)`)
}

func (p regexParser) eval(tr *trace[rune], cur Cursor[rune]) (string, Cursor[rune], bool) {
	cur = skipPolicy(tr, cur, p.ws)
	tc := asText(cur, "Regex")
	loc := p.re.FindStringIndex(tc.source[tc.pos:])
	if loc == nil {
		tr.register("/"+p.pattern+"/", cur)
		return "", cur, false
	}
	value := tc.source[tc.pos : tc.pos+loc[1]]
	var next Cursor[rune] = tc.drop(loc[1])
	next = skipPolicy(tr, next, p.ws)
	return value, next, true
}

func (p regexParser) String() string {
	return "/" + p.pattern + "/"
}

// ---- token-element literal ----

type elemParser[E comparable] struct {
	elems []E
}

// Elem matches a single input element equal to one of the given candidates,
// tried in order, and returns it. It is the token-sequence counterpart of
// Literal.
func Elem[E comparable](elems ...E) Parser[E, E] {
	if len(elems) == 0 {
		panic("parsita: Elem requires at least one element")
	}
	return elemParser[E]{elems: elems}
}

func (p elemParser[E]) eval(tr *trace[E], cur Cursor[E]) (E, Cursor[E], bool) {
	if next, ok := cur.Peek(); ok {
		for _, e := range p.elems {
			if next == e {
				return e, cur.Advance(), true
			}
		}
	}
	for _, e := range p.elems {
		tr.register(fmt.Sprintf("%v", e), cur)
	}
	var zero E
	return zero, cur, false
}

func (p elemParser[E]) String() string {
	parts := make([]string, len(p.elems))
	for i, e := range p.elems {
		parts[i] = fmt.Sprintf("%v", e)
	}
	return strings.Join(parts, "|")
}

// ---- any element ----

type anyParser[E any] struct{}

// Any matches any single element and returns it. It fails only at the end
// of the input. It is useful together with Pred when validation of the
// element is deferred.
func Any[E any]() Parser[E, E] {
	return anyParser[E]{}
}

func (p anyParser[E]) eval(tr *trace[E], cur Cursor[E]) (E, Cursor[E], bool) {
	if e, ok := cur.Peek(); ok {
		return e, cur.Advance(), true
	}
	tr.register("any element", cur)
	var zero E
	return zero, cur, false
}

func (p anyParser[E]) String() string { return "any" }

// ---- end of input ----

type endParser[E any] struct {
	ws Parser[E, string]
}

// EOF matches only at the end of the input, consuming nothing. The
// top-level parse entry points append it implicitly; composing it by hand
// is only needed for partial parses inside a larger grammar.
func EOF[E any]() Parser[E, struct{}] {
	return endParser[E]{}
}

func (p endParser[E]) eval(tr *trace[E], cur Cursor[E]) (struct{}, Cursor[E], bool) {
	cur = skipPolicy(tr, cur, p.ws)
	if cur.AtEnd() {
		return struct{}{}, cur, true
	}
	tr.register("end of source", cur)
	return struct{}{}, cur, false
}

func (p endParser[E]) String() string { return "eof" }

// ---- constant success and failure ----

type succeedParser[E, V any] struct {
	value V
}

// Succeed always matches, consuming nothing and producing value. It is
// useful for injecting values into Bind chains.
func Succeed[E, V any](value V) Parser[E, V] {
	return succeedParser[E, V]{value: value}
}

func (p succeedParser[E, V]) eval(tr *trace[E], cur Cursor[E]) (V, Cursor[E], bool) {
	return p.value, cur, true
}

func (p succeedParser[E, V]) String() string {
	return fmt.Sprintf("succeed(%v)", p.value)
}

type failParser[E, V any] struct {
	expected string
}

// Fail always fails, consuming nothing, reporting the given expectation.
// Returning it from a Bind function turns a value-level rejection into an
// ordinary parse failure.
func Fail[E, V any](expected string) Parser[E, V] {
	return failParser[E, V]{expected: expected}
}

func (p failParser[E, V]) eval(tr *trace[E], cur Cursor[E]) (V, Cursor[E], bool) {
	tr.register(p.expected, cur)
	var zero V
	return zero, cur, false
}

func (p failParser[E, V]) String() string {
	return fmt.Sprintf("fail(%q)", p.expected)
}

// Package jsonvalue ships an RFC 7159 JSON grammar built on parsita. It
// exists both as a usable parser and as the reference grammar exercising
// every engine feature: forward-referenced recursion, separated
// repetition, alternation, conversion, and mixed whitespace policies
// (structural tokens skip whitespace, string internals must not).
package jsonvalue

import (
	"strconv"
	"strings"

	"github.com/drhagen/parsita"
)

// Values are decoded with the conventional Go JSON mapping: objects become
// map[string]any, arrays []any, numbers float64, and null nil.

var valueParser = buildParser()

// Parser returns the grammar for a single JSON value.
func Parser() parsita.Parser[rune, any] {
	return valueParser
}

// Parse decodes one JSON document. The whole input must be consumed; the
// returned error is a *parsita.ParseError.
func Parse(source string) (any, error) {
	return parsita.ParseText(valueParser, source).Get()
}

func buildParser() parsita.Parser[rune, any] {
	g := parsita.TextWith(parsita.Regex(`[ \t\n\r]*`))

	forward := parsita.NewForward[rune, any]()
	var value parsita.Parser[rune, any] = forward

	number := parsita.Map(
		g.Regex(`-?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][-+]?[0-9]+)?`),
		func(s string) any {
			f, _ := strconv.ParseFloat(s, 64)
			return f
		})

	boolTrue := parsita.Map(g.Literal("true"), func(string) any { return true })
	boolFalse := parsita.Map(g.Literal("false"), func(string) any { return false })
	null := parsita.Map(g.Literal("null"), func(string) any { return nil })

	str := stringParser()
	strValue := parsita.Map(str, func(s string) any { return s })

	array := parsita.Map(
		parsita.SkipThen(g.Literal("["),
			parsita.ThenSkip(parsita.RepSep(value, g.Literal(",")), g.Literal("]"))),
		func(items []any) any {
			if items == nil {
				return []any{}
			}
			return items
		})

	entry := parsita.Then(parsita.ThenSkip(str, g.Literal(":")), value)
	object := parsita.Map(
		parsita.SkipThen(g.Literal("{"),
			parsita.ThenSkip(parsita.RepSep(entry, g.Literal(",")), g.Literal("}"))),
		func(entries []parsita.Pair[string, any]) any {
			m := make(map[string]any, len(entries))
			for _, e := range entries {
				m[e.First] = e.Second
			}
			return m
		})

	forward.Define(parsita.First(number, boolFalse, boolTrue, null, strValue, array, object))

	// Structural terminals already swallow trailing whitespace, but a
	// document that ends in a bare string does not; one explicit skip keeps
	// `"x" ` parseable at the top level.
	return parsita.ThenSkip(value, parsita.Regex(`[ \t\n\r]*`))
}

// stringParser matches a JSON string. The interior runs without any
// whitespace policy, so spaces inside quotes survive; the optional leading
// whitespace is consumed explicitly, which is what lets the string parser
// appear in object-key position where no other terminal has skipped ahead
// of it.
func stringParser() parsita.Parser[rune, string] {
	escape := parsita.First(
		parsita.Map(parsita.Literal(`\"`), func(string) string { return "\"" }),
		parsita.Map(parsita.Literal(`\\`), func(string) string { return "\\" }),
		parsita.Map(parsita.Literal(`\/`), func(string) string { return "/" }),
		parsita.Map(parsita.Literal(`\b`), func(string) string { return "\b" }),
		parsita.Map(parsita.Literal(`\f`), func(string) string { return "\f" }),
		parsita.Map(parsita.Literal(`\n`), func(string) string { return "\n" }),
		parsita.Map(parsita.Literal(`\r`), func(string) string { return "\r" }),
		parsita.Map(parsita.Literal(`\t`), func(string) string { return "\t" }),
		parsita.Map(parsita.Regex(`\\u[0-9a-fA-F]{4}`), func(s string) string {
			n, _ := strconv.ParseUint(s[2:], 16, 32)
			return string(rune(n))
		}),
	)
	unescaped := parsita.Regex(`[^"\\\x00-\x1f]+`)

	body := parsita.Map(
		parsita.Rep(parsita.First(escape, unescaped)),
		func(pieces []string) string { return strings.Join(pieces, "") })

	quoted := parsita.SkipThen(parsita.Literal(`"`),
		parsita.ThenSkip(body, parsita.Literal(`"`)))

	return parsita.SkipThen(parsita.Regex(`[ \t\n\r]*`), quoted)
}

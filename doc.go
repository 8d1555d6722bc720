// Package parsita provides:
//
// - A generic parser-combinator algebra: Parser[E, V] nodes built by
//   constructor functions (Literal, Regex, Seq, First, Longest, Rep, ...)
// - Deterministic alternation semantics (first match or longest match with
//   source-order tie-breaks) and farthest-failure error aggregation
// - Recursive and mutually recursive grammars via Forward declarations
// - Whitespace-aware text grammars via TextGrammar, decorating terminals
//   at composition time rather than through global state
//
// Design policy:
// - Keep only public APIs in the root package; put detailed implementations
//   under internal/.
// - Place shipped grammars under their own packages (jsonvalue/), runnable
//   demos under examples/, and the CLI under cmd/jsonlint.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	g := parsita.Text()
//	number := parsita.Map(g.Regex(`-?\d+`), func(s string) int { n, _ := strconv.Atoi(s); return n })
//	pair := parsita.Then(parsita.SkipThen(g.Literal("("), number),
//		parsita.SkipThen(g.Literal(","), parsita.ThenSkip(number, g.Literal(")"))))
//	result := parsita.ParseText(pair, "(4, 3)")
//	v, err := result.Get()
//
// A constructed grammar is immutable once every Forward is defined and may
// be evaluated concurrently from any number of call sites.
package parsita

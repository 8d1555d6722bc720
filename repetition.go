package parsita

import "fmt"

// RepOption bounds a repetition built by Rep or RepSep.
type RepOption func(*repConfig)

type repConfig struct {
	min int
	max int // negative means unbounded
}

// Min requires at least n matches for the repetition to succeed.
func Min(n int) RepOption {
	return func(c *repConfig) { c.min = n }
}

// Max stops the repetition after n matches.
func Max(n int) RepOption {
	return func(c *repConfig) { c.max = n }
}

func applyRepOptions(opts []RepOption) repConfig {
	c := repConfig{min: 0, max: -1}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// guardProgress panics when a repetition iteration consumed nothing. Such a
// grammar would loop forever, so this is treated as a grammar defect, not a
// parse failure.
func guardProgress[E any](parser fmt.Stringer, before, after Cursor[E]) {
	if before.Position() == after.Position() {
		panic(fmt.Sprintf(
			"parsita: infinite recursion in %s: empty match at position %d would repeat forever",
			parser.String(), before.Position()))
	}
}

type repParser[E, V any] struct {
	parser Parser[E, V]
	repConfig
}

// Rep matches the parser zero or more times (or as bounded by Min and Max)
// and returns the collected values. With no matches it succeeds with an
// empty slice.
func Rep[E, V any](parser Parser[E, V], opts ...RepOption) Parser[E, []V] {
	return repParser[E, V]{parser: parser, repConfig: applyRepOptions(opts)}
}

// Rep1 matches the parser one or more times. It is Rep with Min(1).
func Rep1[E, V any](parser Parser[E, V]) Parser[E, []V] {
	return Rep(parser, Min(1))
}

func (p repParser[E, V]) eval(tr *trace[E], cur Cursor[E]) ([]V, Cursor[E], bool) {
	var values []V
	for p.max < 0 || len(values) < p.max {
		value, next, ok := p.parser.eval(tr, cur)
		if !ok {
			break
		}
		guardProgress[E](p, cur, next)
		values = append(values, value)
		cur = next
	}
	if len(values) < p.min {
		return nil, cur, false
	}
	return values, cur, true
}

func (p repParser[E, V]) String() string {
	return repName("rep", p.parser.String(), "", p.repConfig)
}

type repSepParser[E, V, S any] struct {
	parser    Parser[E, V]
	separator Parser[E, S]
	repConfig
}

// RepSep matches the parser zero or more times separated by the separator,
// returning the parser's values and discarding the separator's. A separator
// match followed by a parser failure is rolled back: the trailing separator
// is left unconsumed.
func RepSep[E, V, S any](parser Parser[E, V], separator Parser[E, S], opts ...RepOption) Parser[E, []V] {
	return repSepParser[E, V, S]{parser: parser, separator: separator, repConfig: applyRepOptions(opts)}
}

// Rep1Sep matches the parser one or more times separated by the separator.
// It is RepSep with Min(1).
func Rep1Sep[E, V, S any](parser Parser[E, V], separator Parser[E, S]) Parser[E, []V] {
	return RepSep(parser, separator, Min(1))
}

func (p repSepParser[E, V, S]) eval(tr *trace[E], cur Cursor[E]) ([]V, Cursor[E], bool) {
	var values []V
	if value, next, ok := p.parser.eval(tr, cur); ok {
		values = append(values, value)
		cur = next
		for p.max < 0 || len(values) < p.max {
			// The cursor only moves once both the separator and the next
			// entry match; a separator followed by a failed entry leaves the
			// cursor at the end of the previous entry.
			_, afterSep, ok := p.separator.eval(tr, cur)
			if !ok {
				break
			}
			value, next, ok := p.parser.eval(tr, afterSep)
			if !ok {
				break
			}
			guardProgress[E](p, cur, next)
			values = append(values, value)
			cur = next
		}
	}
	if len(values) < p.min {
		return nil, cur, false
	}
	return values, cur, true
}

func (p repSepParser[E, V, S]) String() string {
	return repName("repsep", p.parser.String(), p.separator.String(), p.repConfig)
}

func repName(kind, parser, separator string, c repConfig) string {
	s := kind + "(" + parser
	if separator != "" {
		s += ", " + separator
	}
	if c.min > 0 {
		s += fmt.Sprintf(", min=%d", c.min)
	}
	if c.max >= 0 {
		s += fmt.Sprintf(", max=%d", c.max)
	}
	return s + ")"
}

package parsita

import (
	"fmt"
	"os"
)

// DebugOption configures a Debug wrapper.
type DebugOption[E, V any] func(*debugParser[E, V])

// Verbose logs the upcoming input before the wrapped parser runs and its
// outcome afterwards, on standard error.
func Verbose[E, V any]() DebugOption[E, V] {
	return func(p *debugParser[E, V]) { p.verbose = true }
}

// Callback invokes fn with the wrapped parser and the current cursor just
// before the parser runs, for breakpoints or state inspection. Callbacks
// that mutate shared state forfeit the grammar's concurrency safety.
func Callback[E, V any](fn func(Parser[E, V], Cursor[E])) DebugOption[E, V] {
	return func(p *debugParser[E, V]) { p.callback = fn }
}

type debugParser[E, V any] struct {
	parser   Parser[E, V]
	verbose  bool
	callback func(Parser[E, V], Cursor[E])
}

// Debug wraps a parser transparently: the outcome is always exactly the
// wrapped parser's outcome, with optional logging and a hook around the
// evaluation.
func Debug[E, V any](parser Parser[E, V], opts ...DebugOption[E, V]) Parser[E, V] {
	p := &debugParser[E, V]{parser: parser}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *debugParser[E, V]) eval(tr *trace[E], cur Cursor[E]) (V, Cursor[E], bool) {
	if p.verbose {
		fmt.Fprintf(os.Stderr, "evaluating %s at %s\n", p.parser.String(), cur.describeNext())
	}
	if p.callback != nil {
		p.callback(p.parser, cur)
	}
	value, next, ok := p.parser.eval(tr, cur)
	if p.verbose {
		if ok {
			fmt.Fprintf(os.Stderr, "matched %v up to position %d\n", value, next.Position())
		} else {
			fmt.Fprintf(os.Stderr, "no match\n")
		}
	}
	return value, next, ok
}

func (p *debugParser[E, V]) String() string {
	return "debug(" + p.parser.String() + ")"
}

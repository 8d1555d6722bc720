package parsita

// Forward is a placeholder parser whose target is assigned after
// construction, which is what lets recursive and mutually recursive
// grammars be written: declare the Forward, use it inside other parsers,
// then Define it once.
//
// Define must be called exactly once, and before the grammar is first
// evaluated; violating either is a defect in the grammar and panics rather
// than surfacing as a parse failure.
type Forward[E, V any] struct {
	target Parser[E, V]
}

// NewForward declares a parser to be defined later.
func NewForward[E, V any]() *Forward[E, V] {
	return &Forward[E, V]{}
}

// Define assigns the target this Forward delegates to. It panics when
// called a second time.
func (p *Forward[E, V]) Define(target Parser[E, V]) {
	if p.target != nil {
		panic("parsita: Forward defined twice")
	}
	if target == nil {
		panic("parsita: Forward defined with nil parser")
	}
	p.target = target
}

func (p *Forward[E, V]) eval(tr *trace[E], cur Cursor[E]) (V, Cursor[E], bool) {
	if p.target == nil {
		panic("parsita: Forward evaluated before Define")
	}
	return p.target.eval(tr, cur)
}

func (p *Forward[E, V]) String() string {
	if p.target == nil {
		return "forward(undefined)"
	}
	return p.target.String()
}

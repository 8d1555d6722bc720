package parsita

type untilParser[E, X any] struct {
	parser Parser[E, X]
}

// Until matches everything up to the first position where the given parser
// succeeds, returning the skipped elements and leaving the cursor at the
// start of that match without consuming it. It fails only when the end of
// the input is reached without the parser ever succeeding.
func Until[E, X any](parser Parser[E, X]) Parser[E, []E] {
	return untilParser[E, X]{parser: parser}
}

func (p untilParser[E, X]) eval(tr *trace[E], cur Cursor[E]) ([]E, Cursor[E], bool) {
	start := cur
	for {
		if _, _, ok := p.parser.eval(tr, cur); ok {
			break
		}
		if cur.AtEnd() {
			return nil, start, false
		}
		cur = cur.Advance()
	}
	return cur.window(start.Position(), cur.Position()), cur, true
}

func (p untilParser[E, X]) String() string {
	return "until(" + p.parser.String() + ")"
}

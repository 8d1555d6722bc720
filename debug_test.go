package parsita_test

import (
	"testing"

	"github.com/drhagen/parsita"
)

func TestDebugIsTransparent(t *testing.T) {
	var at []int
	cb := parsita.Callback[rune, string](func(_ parsita.Parser[rune, string], cur parsita.Cursor[rune]) {
		at = append(at, cur.Position())
	})

	p := parsita.Then(
		parsita.Debug(parsita.Literal("a"), cb),
		parsita.Debug(parsita.Literal("b"), cb),
	)
	got := parsita.ParseText(p, "ab").Unwrap()
	if got.First != "a" || got.Second != "b" {
		t.Errorf("got %+v", got)
	}
	if len(at) != 2 || at[0] != 0 || at[1] != 1 {
		t.Errorf("callback positions = %v", at)
	}

	// A failure passes through untouched as well.
	at = nil
	if result := parsita.ParseText(parsita.Debug(parsita.Literal("a"), cb), "x"); result.IsSuccess() {
		t.Error("expected failure")
	}
	if len(at) != 1 {
		t.Errorf("callback ran %d times", len(at))
	}
}

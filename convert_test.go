package parsita_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/drhagen/parsita"
)

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func TestMap(t *testing.T) {
	p := parsita.Map(parsita.Regex(`[0-9]+`), atoi)
	if got := parsita.ParseText(p, "17").Unwrap(); got != 17 {
		t.Errorf("got %d", got)
	}
}

func TestMapPropagatesFailure(t *testing.T) {
	p := parsita.Map(parsita.Regex(`[0-9]+`), atoi)
	if result := parsita.ParseText(p, "x"); result.IsSuccess() {
		t.Error("expected failure")
	}
}

func TestBindAsFallibleConversion(t *testing.T) {
	even := parsita.Bind(
		parsita.Map(parsita.Regex(`[0-9]+`), atoi),
		func(n int) parsita.Parser[rune, int] {
			if n%2 == 0 {
				return parsita.Succeed[rune](n)
			}
			return parsita.Fail[rune, int]("an even number")
		})

	if got := parsita.ParseText(even, "4").Unwrap(); got != 4 {
		t.Errorf("got %d", got)
	}

	_, err := parsita.ParseText(even, "3").Get()
	if err == nil || !strings.Contains(err.Error(), "an even number") {
		t.Errorf("got %v", err)
	}
}

func TestBindInputDependentGrammar(t *testing.T) {
	// A digit announces how many "a"s follow.
	counted := parsita.Bind(
		parsita.Map(parsita.Regex(`[0-9]`), atoi),
		func(n int) parsita.Parser[rune, []string] {
			return parsita.Rep(parsita.Literal("a"), parsita.Min(n), parsita.Max(n))
		})

	if got := parsita.ParseText(counted, "2aa").Unwrap(); len(got) != 2 {
		t.Errorf("got %v", got)
	}
	if result := parsita.ParseText(counted, "2a"); result.IsSuccess() {
		t.Error("expected failure for too few elements")
	}
}

func TestPredFiltersValues(t *testing.T) {
	below100 := parsita.Pred(parsita.Regex(`[0-9]+`),
		func(s string) bool { return len(s) <= 2 }, "a number below 100")

	if got := parsita.ParseText(below100, "99").Unwrap(); got != "99" {
		t.Errorf("got %q", got)
	}

	_, err := parsita.ParseText(below100, "123").Get()
	if err == nil {
		t.Fatal("expected failure")
	}
	perr := err.(*parsita.ParseError)
	// The failure points at the start of the offending span, not past it.
	if perr.Position != 0 || perr.Column != 0 {
		t.Errorf("Position = %d, Column = %d, want 0, 0", perr.Position, perr.Column)
	}
	if !strings.Contains(perr.Message(), "a number below 100") {
		t.Errorf("got %q", perr.Message())
	}
}

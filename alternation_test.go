package parsita_test

import (
	"strings"
	"testing"

	"github.com/drhagen/parsita"
)

// consumeRest runs p and then swallows whatever input remains, so that the
// implicit end-of-input check does not disturb what is being observed.
func consumeRest[V any](p parsita.Parser[rune, V]) parsita.Parser[rune, V] {
	return parsita.ThenSkip(p, parsita.Rep(parsita.Any[rune]()))
}

func TestLongestPicksFarthestBranch(t *testing.T) {
	p := parsita.Longest(parsita.Literal("a"), parsita.Literal("abc"))
	if got := parsita.ParseText(p, "abc").Unwrap(); got != "abc" {
		t.Errorf("got %q, want %q", got, "abc")
	}
}

func TestLongestTieBreaksBySourceOrder(t *testing.T) {
	p := parsita.Longest(
		parsita.Map(parsita.Literal("ab"), func(string) string { return "first" }),
		parsita.Map(parsita.Regex(`ab`), func(string) string { return "second" }),
	)
	if got := parsita.ParseText(p, "ab").Unwrap(); got != "first" {
		t.Errorf("got %q, want %q", got, "first")
	}
}

func TestLongestEvaluatesEveryBranch(t *testing.T) {
	var calls []string
	note := func(name string) parsita.DebugOption[rune, string] {
		return parsita.Callback[rune, string](func(parsita.Parser[rune, string], parsita.Cursor[rune]) {
			calls = append(calls, name)
		})
	}
	p := parsita.Longest(
		parsita.Debug(parsita.Literal("abc"), note("long")),
		parsita.Debug(parsita.Literal("a"), note("short")),
	)
	if got := parsita.ParseText(consumeRest(p), "abc").Unwrap(); got != "abc" {
		t.Fatalf("got %q", got)
	}
	if len(calls) != 2 {
		t.Errorf("longest evaluated %v, want both branches", calls)
	}
}

func TestFirstShortCircuits(t *testing.T) {
	var calls []string
	note := func(name string) parsita.DebugOption[rune, string] {
		return parsita.Callback[rune, string](func(parsita.Parser[rune, string], parsita.Cursor[rune]) {
			calls = append(calls, name)
		})
	}
	p := parsita.First(
		parsita.Debug(parsita.Literal("a"), note("short")),
		parsita.Debug(parsita.Literal("ab"), note("long")),
	)
	got := parsita.ParseText(consumeRest(p), "ab").Unwrap()
	if got != "a" {
		t.Errorf("got %q, want %q even though the second branch matches more", got, "a")
	}
	if len(calls) != 1 || calls[0] != "short" {
		t.Errorf("first evaluated %v, want only the winning branch", calls)
	}
}

func TestAlternationMergesFailures(t *testing.T) {
	p := parsita.First(parsita.Literal("a"), parsita.Literal("b"))
	_, err := parsita.ParseText(p, "c").Get()
	if err == nil {
		t.Fatal("expected failure")
	}
	want := `Expected "a" or "b" but found "c"`
	if !strings.HasPrefix(err.Error(), want) {
		t.Errorf("got %q, want prefix %q", err.Error(), want)
	}
}

func TestMergeKeepsOnlyDeepestFailures(t *testing.T) {
	// The first branch gets one element further before failing; the second
	// branch's shallower expectation is dropped from the report.
	p := parsita.First(
		parsita.SkipThen(parsita.Literal("a"), parsita.Literal("x")),
		parsita.Literal("b"),
	)
	_, err := parsita.ParseText(p, "ay").Get()
	if err == nil {
		t.Fatal("expected failure")
	}
	msg := err.Error()
	if !strings.Contains(msg, `"x"`) || strings.Contains(msg, `"b"`) {
		t.Errorf("got %q, want only the deepest expectation", msg)
	}
}

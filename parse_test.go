package parsita_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/drhagen/parsita"
)

func TestResultAccessors(t *testing.T) {
	ok := parsita.ParseText(parsita.Literal("a"), "a")
	if !ok.IsSuccess() {
		t.Fatal("expected success")
	}
	if v, err := ok.Get(); err != nil || v != "a" {
		t.Errorf("Get = %q, %v", v, err)
	}
	if ok.Err() != nil {
		t.Errorf("Err = %v", ok.Err())
	}

	bad := parsita.ParseText(parsita.Literal("a"), "b")
	if bad.IsSuccess() {
		t.Fatal("expected failure")
	}
	var perr *parsita.ParseError
	if !errors.As(bad.Err(), &perr) {
		t.Fatalf("Err is %T", bad.Err())
	}
}

func TestUnwrapPanicsWithParseError(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		if _, ok := r.(*parsita.ParseError); !ok {
			t.Fatalf("panicked with %T", r)
		}
	}()
	parsita.ParseText(parsita.Literal("a"), "b").Unwrap()
}

func TestParseCursor(t *testing.T) {
	got, err := parsita.ParseCursor[rune, string](parsita.Literal("ab"), parsita.NewTextCursor("ab")).Get()
	if err != nil {
		t.Fatalf("ParseCursor: %v", err)
	}
	if got != "ab" {
		t.Errorf("got %q", got)
	}
}

func TestGrammarIsConcurrencySafe(t *testing.T) {
	expr := sums()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				got, err := parsita.ParseText(expr, "2+(1+2)+3").Get()
				if err != nil || got != 8 {
					t.Errorf("got %d, %v", got, err)
					return
				}
			}
		}()
	}
	wg.Wait()
}

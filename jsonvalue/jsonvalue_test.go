package jsonvalue_test

import (
	"errors"
	"reflect"
	"testing"

	json "github.com/goccy/go-json"

	"github.com/drhagen/parsita"
	"github.com/drhagen/parsita/jsonvalue"
)

var documents = []string{
	`"name"`,
	`""`,
	`"tab\tand\nnewline"`,
	`"unicode é and €"`,
	`-12.40e2`,
	`0`,
	`true`,
	`false`,
	`null`,
	`[]`,
	`[false, true, null]`,
	`[[1, 2], [3]]`,
	`{}`,
	`{"__class__" : "Point", "x" : 2.3, "y" : -1.6}`,
	`{"outer": {"inner": [1.5, {"deep": null}]}, "flag": true}`,
	"{\n\t\"pretty\": [1,\n\t\t2]\n}",
	`{"text" : ""}`,
}

// TestAgainstGoJSON checks every document against go-json as an oracle:
// the grammar must accept exactly the values the conventional decoder
// produces.
func TestAgainstGoJSON(t *testing.T) {
	for _, doc := range documents {
		got, err := jsonvalue.Parse(doc)
		if err != nil {
			t.Fatalf("Parse(%q): %v", doc, err)
		}
		var want any
		if err := json.Unmarshal([]byte(doc), &want); err != nil {
			t.Fatalf("go-json rejected fixture %q: %v", doc, err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Parse(%q) = %#v, go-json = %#v", doc, got, want)
		}
	}
}

func TestRejectsMalformed(t *testing.T) {
	for _, doc := range []string{
		``,
		`{`,
		`[1, 2`,
		`{"a": }`,
		`{"a" 1}`,
		`[1, 2,]`,
		`"unterminated`,
		`truex`,
		`01`,
	} {
		if _, err := jsonvalue.Parse(doc); err == nil {
			t.Errorf("Parse(%q) unexpectedly succeeded", doc)
		}
	}
}

func TestFailurePointsAtOffendingEntry(t *testing.T) {
	_, err := jsonvalue.Parse(`{"a": 1, "b" 2}`)
	if err == nil {
		t.Fatal("expected failure")
	}
	var perr *parsita.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error is %T, want *parsita.ParseError", err)
	}
	// The deepest point reached is the missing colon after "b".
	if perr.Column != 13 {
		t.Errorf("Column = %d, want 13: %v", perr.Column, perr)
	}
	if perr.Found != `"2"` {
		t.Errorf("Found = %q, want %q", perr.Found, `"2"`)
	}
}

func TestWhitespaceInsideStringsSurvives(t *testing.T) {
	got, err := jsonvalue.Parse(`{ "a b" : " c  d " }`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := map[string]any{"a b": " c  d "}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}

// Command jsonlint validates JSON documents with the jsonvalue grammar and
// reports farthest-failure diagnostics with the offending line and a caret
// under the failing column. With -c it re-emits the accepted document in
// canonical form.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	json "github.com/goccy/go-json"

	"github.com/drhagen/parsita"
	"github.com/drhagen/parsita/jsonvalue"
)

func main() {
	canonical := flag.Bool("c", false, "print the canonical form of valid documents")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage:\n  jsonlint [-c] [file ...]\n\nReads standard input when no files are given.")
	}
	flag.Parse()

	exit := 0
	if flag.NArg() == 0 {
		if !lint("<stdin>", os.Stdin, *canonical) {
			exit = 1
		}
	}
	for _, name := range flag.Args() {
		f, err := os.Open(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "jsonlint: %v\n", err)
			exit = 1
			continue
		}
		if !lint(name, f, *canonical) {
			exit = 1
		}
		f.Close()
	}
	os.Exit(exit)
}

func lint(name string, r io.Reader, canonical bool) bool {
	source, err := io.ReadAll(r)
	if err != nil {
		fmt.Fprintf(os.Stderr, "jsonlint: %s: %v\n", name, err)
		return false
	}

	value, err := jsonvalue.Parse(string(source))
	if err != nil {
		report(name, err)
		return false
	}

	if canonical {
		out, err := json.Marshal(value)
		if err != nil {
			fmt.Fprintf(os.Stderr, "jsonlint: %s: %v\n", name, err)
			return false
		}
		fmt.Printf("%s\n", out)
	} else {
		fmt.Printf("%s: OK\n", name)
	}
	return true
}

func report(name string, err error) {
	var perr *parsita.ParseError
	if !errors.As(err, &perr) {
		fmt.Fprintf(os.Stderr, "jsonlint: %s: %v\n", name, err)
		return
	}

	header := color.New(color.FgRed, color.Bold)
	caret := color.New(color.FgYellow, color.Bold)

	header.Fprintf(os.Stderr, "%s:%d:%d: %s\n", name, perr.Line, perr.Column, perr.Message())
	if perr.LineText != "" {
		fmt.Fprintf(os.Stderr, "  %s\n", perr.LineText)
		caret.Fprintf(os.Stderr, "  %*s\n", perr.Column+1, "^")
	}
}

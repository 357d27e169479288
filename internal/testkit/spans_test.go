package testkit

import (
	"strings"
	"testing"

	"keyzone/internal/dts"
	"keyzone/internal/source"
)

func parse(input string) *dts.Document {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("t.keymap", []byte(input)))
	return dts.Parse(file, dts.Options{})
}

func TestCheckSpanInvariantsAcceptsParsedDocument(t *testing.T) {
	doc := parse("/ { keymap { base { bindings = <&kp A &mo 1>, \"s\"; }; }; };")
	if err := CheckSpanInvariants(doc); err != nil {
		t.Fatal(err)
	}
}

func TestCheckSpanInvariantsRejectsBrokenTree(t *testing.T) {
	doc := parse("/ { a { x = <1>; }; };")
	root := doc.Nodes[0]
	child := root.Children[0]

	child.Span.End = root.Span.End + 1
	err := CheckSpanInvariants(doc)
	if err == nil || !strings.Contains(err.Error(), "node a") {
		t.Fatalf("child outside parent not reported: %v", err)
	}

	child.Span = root.Span
	child.Props[0].Span.End = child.Props[0].Span.Start
	err = CheckSpanInvariants(doc)
	if err == nil || !strings.Contains(err.Error(), "empty span") {
		t.Fatalf("empty property span not reported: %v", err)
	}
}

func TestCheckSpanInvariantsNil(t *testing.T) {
	if err := CheckSpanInvariants(nil); err == nil {
		t.Fatal("expected error for nil document")
	}
}

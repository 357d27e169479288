// Package testkit holds assertions shared by parser and fuzz tests.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"keyzone/internal/dts"
	"keyzone/internal/source"
)

// CheckSpanInvariants verifies the spans of a parsed document:
//  1. node and property spans are non-empty and inside the file content
//  2. every child node lies within its parent
//  3. properties lie within their node and values within their property
func CheckSpanInvariants(doc *dts.Document) error {
	if doc == nil || doc.File == nil {
		return fmt.Errorf("nil document or file")
	}
	lenContent, err := safecast.Conv[uint32](len(doc.File.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	whole := source.Span{File: doc.File.ID, Start: 0, End: lenContent}
	for _, n := range doc.Nodes {
		if err := checkNode(n, whole); err != nil {
			return err
		}
	}
	return nil
}

func checkNode(n *dts.Node, parent source.Span) error {
	if err := checkSpan("node "+n.Name, n.Span, parent); err != nil {
		return err
	}
	for _, p := range n.Props {
		if err := checkSpan("property "+p.Name, p.Span, n.Span); err != nil {
			return err
		}
		for i, v := range p.Values {
			if v.Span.File != p.Span.File || !p.Span.Contains(v.Span) {
				return fmt.Errorf("value %d of %s at %v is outside %v", i, p.Name, v.Span, p.Span)
			}
		}
	}
	for _, c := range n.Children {
		if err := checkNode(c, n.Span); err != nil {
			return err
		}
	}
	return nil
}

func checkSpan(what string, sp, outer source.Span) error {
	if sp.End <= sp.Start {
		return fmt.Errorf("%s has empty span %v", what, sp)
	}
	if sp.File != outer.File {
		return fmt.Errorf("%s span file mismatch: got=%d want=%d", what, sp.File, outer.File)
	}
	if !outer.Contains(sp) {
		return fmt.Errorf("%s span %v is outside %v", what, sp, outer)
	}
	return nil
}

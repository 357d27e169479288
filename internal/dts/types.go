package dts

import (
	"strings"

	"keyzone/internal/source"
	"keyzone/internal/token"
)

type ValueKind uint8

const (
	// ValueString is a "quoted" string; Text holds it without quotes.
	ValueString ValueKind = iota
	// ValueCells is a <...> list; Text is the source between the brackets
	// with every comment or line break collapsed to one space.
	ValueCells
	// ValueBytes is a [...] byte string.
	ValueBytes
	// ValueRef is a bare &label reference; Text is the label.
	ValueRef
)

func (k ValueKind) String() string {
	switch k {
	case ValueString:
		return "string"
	case ValueCells:
		return "cells"
	case ValueBytes:
		return "bytes"
	case ValueRef:
		return "ref"
	}
	return "value(?)"
}

type Value struct {
	Kind ValueKind
	Text string
	Span source.Span
}

type Property struct {
	Name   string
	Values []Value
	Span   source.Span
}

// Node is one `[label:] name[@unit] { ... };` block. Reference overrides
// (`&kp { ... };`) keep the ampersand in Name; the root node is named "/".
type Node struct {
	Label    string
	Name     string
	Unit     string
	Props    []Property
	Children []*Node
	Span     source.Span
}

// Document is the parse result for one file. Tokens is the full lexer
// stream, EOF included, kept for callers that need to scan malformed input.
type Document struct {
	File   *source.File
	Nodes  []*Node
	Tokens []token.Token
}

// Prop returns the named property or nil.
func (n *Node) Prop(name string) *Property {
	for i := range n.Props {
		if n.Props[i].Name == name {
			return &n.Props[i]
		}
	}
	return nil
}

func (n *Node) Has(name string) bool {
	return n.Prop(name) != nil
}

// StringValue returns the first string value of the property.
func (p *Property) StringValue() (string, bool) {
	if p == nil {
		return "", false
	}
	for _, v := range p.Values {
		if v.Kind == ValueString {
			return v.Text, true
		}
	}
	return "", false
}

// CellsText joins every <...> value with a single space.
func (p *Property) CellsText() string {
	if p == nil {
		return ""
	}
	parts := make([]string, 0, len(p.Values))
	for _, v := range p.Values {
		if v.Kind == ValueCells && v.Text != "" {
			parts = append(parts, v.Text)
		}
	}
	return strings.Join(parts, " ")
}

// Walk visits nodes depth-first in source order. Returning false from visit
// skips the node's children.
func Walk(nodes []*Node, visit func(n *Node) bool) {
	for _, n := range nodes {
		if visit(n) {
			Walk(n.Children, visit)
		}
	}
}

// Walk visits every node of the document.
func (d *Document) Walk(visit func(n *Node) bool) {
	Walk(d.Nodes, visit)
}

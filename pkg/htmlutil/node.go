package htmlutil

import (
	"bytes"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Node is the narrow view of a parsed document that extraction code depends on.
// Selectors are CSS selectors, searches only look at descendants.
type Node interface {
	// First returns the first descendant matching the selector.
	First(selector string) (Node, bool)
	// All returns every descendant matching the selector in document order.
	All(selector string) []Node
	// Text returns the normalized text content (see NormalizeText).
	Text() string
	// Attr returns the value of an attribute on the node itself.
	Attr(name string) (string, bool)
}

type selectionNode struct {
	sel *goquery.Selection
}

// Parse parses an HTML document into a Node.
func Parse(r io.Reader) (Node, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}
	return selectionNode{sel: doc.Selection}, nil
}

func ParseBytes(body []byte) (Node, error) {
	return Parse(bytes.NewReader(body))
}

func ParseString(body string) (Node, error) {
	return Parse(strings.NewReader(body))
}

func (n selectionNode) First(selector string) (Node, bool) {
	found := n.sel.Find(selector).First()
	if found.Length() == 0 {
		return nil, false
	}
	return selectionNode{sel: found}, true
}

func (n selectionNode) All(selector string) []Node {
	found := n.sel.Find(selector)
	nodes := make([]Node, 0, found.Length())
	found.Each(func(_ int, s *goquery.Selection) {
		nodes = append(nodes, selectionNode{sel: s})
	})
	return nodes
}

func (n selectionNode) Text() string {
	var out strings.Builder
	for _, node := range n.sel.Nodes {
		out.WriteString(GetText(node))
	}
	return NormalizeText(out.String())
}

func (n selectionNode) Attr(name string) (string, bool) {
	return n.sel.Attr(name)
}

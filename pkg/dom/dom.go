// Package dom wraps parsed HTML nodes with the handful of operations tests
// need: reading text and attributes, walking children, appending, and
// attaching the scope an element was linked against.
package dom

import (
	"errors"
	"strings"

	"github.com/aretw0/easytest/pkg/scope"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrNoElement is returned when markup holds no element node.
var ErrNoElement = errors.New("markup contains no element")

// store is per-tree element data shared by every wrapper of the tree.
type store struct {
	scopes map[*html.Node]*scope.Scope
}

func newStore() *store {
	return &store{scopes: make(map[*html.Node]*scope.Scope)}
}

// Element is a handle on an element node.
type Element struct {
	node *html.Node
	data *store
}

// Parse parses markup as a body fragment and returns its first element.
func Parse(markup string) (*Element, error) {
	nodes, err := ParseFragment(markup)
	if err != nil {
		return nil, err
	}
	for _, n := range nodes {
		if n.Type == html.ElementNode {
			return Wrap(n), nil
		}
	}
	return nil, ErrNoElement
}

// ParseFragment parses markup in a body context and returns the detached
// top-level nodes.
func ParseFragment(markup string) ([]*html.Node, error) {
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	return html.ParseFragment(strings.NewReader(markup), body)
}

// Wrap returns an Element for n with its own data store.
func Wrap(n *html.Node) *Element {
	return &Element{node: n, data: newStore()}
}

// Handle returns an Element for n that shares e's data store. n should
// belong to the same tree as e.
func (e *Element) Handle(n *html.Node) *Element {
	return &Element{node: n, data: e.data}
}

// Node returns the underlying node.
func (e *Element) Node() *html.Node { return e.node }

// Tag returns the lower-case tag name.
func (e *Element) Tag() string { return e.node.Data }

// Text returns the concatenated text of every descendant text node.
func (e *Element) Text() string {
	return TextContent(e.node)
}

// TextContent returns the concatenated text of every descendant of n.
func TextContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

// Attr returns the value of the named attribute.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.node.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr sets or replaces an attribute.
func (e *Element) SetAttr(name, value string) {
	for i, a := range e.node.Attr {
		if a.Key == name {
			e.node.Attr[i].Val = value
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: name, Val: value})
}

// HasAttr reports whether the element has attr, and when val is given,
// whether the attribute's value equals val[0].
func (e *Element) HasAttr(attr string, val ...string) bool {
	return HasAttr(e.node, attr, val...)
}

// HasAttr is Element.HasAttr for a bare node.
func HasAttr(n *html.Node, attr string, val ...string) bool {
	if n == nil || n.Type != html.ElementNode {
		return false
	}
	for _, a := range n.Attr {
		if a.Key == attr && (len(val) == 0 || a.Val == val[0]) {
			return true
		}
	}
	return false
}

// Children returns the element children.
func (e *Element) Children() []*Element {
	var out []*Element
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, e.Handle(c))
		}
	}
	return out
}

// Parent returns the parent element, or nil.
func (e *Element) Parent() *Element {
	p := e.node.Parent
	if p == nil || p.Type != html.ElementNode {
		return nil
	}
	return e.Handle(p)
}

// Append moves child under e. Data attached to child's tree comes along.
func (e *Element) Append(child *Element) {
	if child.node.Parent != nil {
		child.node.Parent.RemoveChild(child.node)
	}
	e.node.AppendChild(child.node)

	if child.data != e.data {
		for n, s := range child.data.scopes {
			e.data.scopes[n] = s
		}
		child.data = e.data
	}
}

// ReplaceChildren removes every child and appends nodes in order.
func (e *Element) ReplaceChildren(nodes []*html.Node) {
	for c := e.node.FirstChild; c != nil; {
		next := c.NextSibling
		e.node.RemoveChild(c)
		c = next
	}
	for _, n := range nodes {
		if n.Parent != nil {
			n.Parent.RemoveChild(n)
		}
		e.node.AppendChild(n)
	}
}

// SetScope records the scope the element was linked against.
func (e *Element) SetScope(s *scope.Scope) {
	e.data.scopes[e.node] = s
}

// Scope returns the scope recorded on the element or its closest ancestor.
func (e *Element) Scope() *scope.Scope {
	for n := e.node; n != nil; n = n.Parent {
		if s, ok := e.data.scopes[n]; ok {
			return s
		}
	}
	return nil
}

// OuterHTML renders the element itself.
func (e *Element) OuterHTML() string {
	var b strings.Builder
	_ = html.Render(&b, e.node)
	return b.String()
}

// InnerHTML renders the element's children.
func (e *Element) InnerHTML() string {
	var b strings.Builder
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		_ = html.Render(&b, c)
	}
	return b.String()
}

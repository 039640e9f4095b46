// Package fixture hand-builds syntax.Node trees for tests. The parser
// is an external collaborator, so tests construct the tagged tree
// directly instead of parsing source text.
package fixture

import "github.com/viant/semindex/syntax"

// Node is a mutable syntax.Node implementation with a chainable builder
// surface. Field-addressed children are also positional children, the
// tree-sitter convention the walkers rely on.
type Node struct {
	kind     syntax.Kind
	text     string
	loc      syntax.Location
	nameLoc  *syntax.Location
	children []*Node
	fields   map[string][]*Node
	flags    map[string]bool
	doc      string
	hasDoc   bool
}

// New starts a node of the given kind.
func New(kind syntax.Kind) *Node {
	return &Node{kind: kind, fields: map[string][]*Node{}, flags: map[string]bool{}}
}

// WithText sets the node's raw source text.
func (n *Node) WithText(s string) *Node {
	n.text = s
	return n
}

// At sets the node's full range as (startLine, startChar, endLine, endChar).
func (n *Node) At(sl, sc, el, ec int) *Node {
	n.loc = syntax.Location{
		Start: syntax.Position{Line: sl, Character: sc},
		End:   syntax.Position{Line: el, Character: ec},
	}
	return n
}

// NameAt sets the node's distinct name range.
func (n *Node) NameAt(sl, sc, el, ec int) *Node {
	loc := syntax.Location{
		Start: syntax.Position{Line: sl, Character: sc},
		End:   syntax.Position{Line: el, Character: ec},
	}
	n.nameLoc = &loc
	return n
}

// WithDoc attaches a doc comment.
func (n *Node) WithDoc(doc string) *Node {
	n.doc = doc
	n.hasDoc = true
	return n
}

// WithFlag sets a boolean attribute.
func (n *Node) WithFlag(name string) *Node {
	n.flags[name] = true
	return n
}

// Add appends positional children.
func (n *Node) Add(children ...*Node) *Node {
	for _, c := range children {
		if c != nil {
			n.children = append(n.children, c)
		}
	}
	return n
}

// Set attaches child under a field name (and as a positional child).
func (n *Node) Set(field string, child *Node) *Node {
	if child == nil {
		return n
	}
	n.fields[field] = append(n.fields[field], child)
	n.children = append(n.children, child)
	return n
}

// SetAll attaches several children under one repeatable field name.
func (n *Node) SetAll(field string, children ...*Node) *Node {
	for _, c := range children {
		n.Set(field, c)
	}
	return n
}

// syntax.Node implementation.

func (n *Node) Kind() syntax.Kind         { return n.kind }
func (n *Node) Location() syntax.Location { return n.loc }
func (n *Node) Text() string              { return n.text }
func (n *Node) ChildCount() int           { return len(n.children) }

func (n *Node) NameLocation() (syntax.Location, bool) {
	if n.nameLoc == nil {
		return syntax.Location{}, false
	}
	return *n.nameLoc, true
}

func (n *Node) Child(i int) syntax.Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

func (n *Node) Field(name string) syntax.Node {
	fs := n.fields[name]
	if len(fs) == 0 {
		return nil
	}
	return fs[0]
}

func (n *Node) Fields(name string) []syntax.Node {
	fs := n.fields[name]
	out := make([]syntax.Node, 0, len(fs))
	for _, f := range fs {
		out = append(out, f)
	}
	return out
}

func (n *Node) Flag(name string) bool { return n.flags[name] }

func (n *Node) Doc() (string, bool) { return n.doc, n.hasDoc }

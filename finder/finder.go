// Package finder locates the innermost syntax node under a cursor
// position together with its ancestor chain and enclosing scope context. It performs no resolution of its own; resolve/typeenv/query
// consume its Result.
package finder

import "github.com/viant/semindex/syntax"

// Result is everything the resolver, type environment, and query packages
// need about a cursor position's place in the tree.
type Result struct {
	// Node is the innermost node whose name range (preferred) or full
	// range (fallback) contains the cursor; nil if the cursor falls
	// outside the tree entirely.
	Node syntax.Node
	// NodePath is the ancestor stack leading to Node, outermost first,
	// Node itself last.
	NodePath []syntax.Node

	// PreviousNode is the node with the largest end-location less than or
	// equal to the cursor, used when the cursor is past the last
	// syntactic token (e.g. immediately after `Foo.`).
	PreviousNode     syntax.Node
	PreviousNodePath []syntax.Node

	// EnclosingDef is the innermost Def ancestor, if any.
	EnclosingDef syntax.Node
	// EnclosingClass is the innermost Module/Class/Enum ancestor, if any.
	EnclosingClass syntax.Node
	// ContextPath is the qualified name of the innermost Module/Class/Enum
	// ancestor chain, reset whenever a nested declaration's own name
	// already contains `::`.
	ContextPath string
}

// Find walks tree recording the node finder's outputs for pos.
func Find(tree syntax.Node, pos syntax.Position) Result {
	w := &walker{pos: pos}
	w.visit(tree, nil, "")
	// When nothing contains the cursor (it sits just past a token, e.g.
	// after `Foo.`), the enclosing context comes from the previous node's
	// ancestry instead.
	scopePath := w.bestPath
	if w.best == nil {
		scopePath = w.prevPath
	}
	return Result{
		Node:             w.best,
		NodePath:         w.bestPath,
		PreviousNode:     w.prev,
		PreviousNodePath: w.prevPath,
		EnclosingDef:     w.enclosingDef(scopePath),
		EnclosingClass:   w.enclosingClass(scopePath),
		ContextPath:      w.contextOf(scopePath),
	}
}

type walker struct {
	pos syntax.Position

	best     syntax.Node
	bestPath []syntax.Node

	prev     syntax.Node
	prevPath []syntax.Node
	prevEnd  syntax.Position
	havePrev bool
}

// nameRange prefers a node's name location; falls back to its full range.
func nameRange(n syntax.Node) syntax.Location {
	if loc, ok := n.NameLocation(); ok {
		return loc
	}
	return n.Location()
}

func (w *walker) visit(n syntax.Node, path []syntax.Node, scope string) {
	if n == nil {
		return
	}
	loc := n.Location()
	nextPath := append(append([]syntax.Node{}, path...), n)

	// A matching node is always replaced by a deeper match (last writer
	// wins on the way down, since children are visited after this check);
	// a When branch does not early-stop the descent even if its own
	// range "loses" to a sibling, so we always continue regardless of
	// whether this node itself matched.
	if nameRange(n).Contains(w.pos) {
		w.best = n
		w.bestPath = nextPath
	}

	if !loc.Zero() && loc.End.LessEqual(w.pos) {
		if !w.havePrev || w.prevEnd.LessEqual(loc.End) {
			w.prev = n
			w.prevPath = nextPath
			w.prevEnd = loc.End
			w.havePrev = true
		}
	}

	for _, c := range syntax.Children(n) {
		w.visit(c, nextPath, scope)
	}
}

// enclosingDef returns the innermost Def ancestor in path (path's own
// last element included).
func (w *walker) enclosingDef(path []syntax.Node) syntax.Node {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i].Kind() == syntax.KindDef {
			return path[i]
		}
	}
	return nil
}

// enclosingClass returns the innermost Module/Class/Enum ancestor.
func (w *walker) enclosingClass(path []syntax.Node) syntax.Node {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i].Kind().IsTypeDef() {
			return path[i]
		}
	}
	return nil
}

// contextOf rebuilds the qualified context path by walking the ancestor
// chain from outermost to innermost, applying the same "absolute name
// resets context" rule the skeleton pass uses when it qualifies a nested
// declaration.
func (w *walker) contextOf(path []syntax.Node) string {
	context := ""
	for _, n := range path {
		if !n.Kind().IsTypeDef() {
			continue
		}
		name := ""
		if f := n.Field(syntax.FieldName); f != nil {
			name = f.Text()
		}
		if containsScope(name) {
			context = name
			continue
		}
		if context == "" {
			context = name
		} else {
			context = context + "::" + name
		}
	}
	return context
}

func containsScope(name string) bool {
	for i := 0; i+1 < len(name); i++ {
		if name[i] == ':' && name[i+1] == ':' {
			return true
		}
	}
	return false
}

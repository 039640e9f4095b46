package query

import (
	"github.com/viant/semindex/finder"
	"github.com/viant/semindex/syntax"
)

// Highlights collects every same-name occurrence range for the symbol
// under the cursor: Var/Arg within the enclosing method
// body, InstanceVar/ClassVar within the enclosing class body, Path
// occurrences across the whole document. Ranges are deduplicated.
func (e *Engine) Highlights(tree syntax.Node, pos syntax.Position) []syntax.Location {
	res := finder.Find(tree, pos)
	if res.Node == nil {
		return nil
	}
	switch res.Node.Kind() {
	case syntax.KindVar, syntax.KindArg:
		if res.EnclosingDef == nil {
			return nil
		}
		return dedupeRanges(collectOccurrences(res.EnclosingDef, res.Node.Text(), varKinds, methodScopeSkip))
	case syntax.KindInstanceVar, syntax.KindClassVar:
		scope := res.EnclosingClass
		if scope == nil {
			scope = tree
		}
		return dedupeRanges(collectOccurrences(scope, res.Node.Text(), map[syntax.Kind]bool{res.Node.Kind(): true}, classScopeSkip))
	case syntax.KindPath:
		want := res.Node.Text()
		global := res.Node.Flag(syntax.FlagGlobal)
		var out []syntax.Location
		walkAll(tree, func(n syntax.Node) {
			if n.Kind() == syntax.KindPath && n.Text() == want && n.Flag(syntax.FlagGlobal) == global {
				out = append(out, highlightRange(n))
			}
		})
		return dedupeRanges(out)
	}
	return nil
}

var varKinds = map[syntax.Kind]bool{syntax.KindVar: true, syntax.KindArg: true}

// methodScopeSkip bounds a method-body scan: nested methods, types, and
// macros are out of scope for a local variable.
var methodScopeSkip = map[syntax.Kind]bool{
	syntax.KindDef:    true,
	syntax.KindMacro:  true,
	syntax.KindModule: true,
	syntax.KindClass:  true,
	syntax.KindEnum:   true,
}

// classScopeSkip bounds a class-body scan: an ivar/cvar occurs throughout
// the class's own methods, so Defs are descended; only nested types and
// macros are out of scope.
var classScopeSkip = map[syntax.Kind]bool{
	syntax.KindMacro:  true,
	syntax.KindModule: true,
	syntax.KindClass:  true,
	syntax.KindEnum:   true,
}

// collectOccurrences walks scope for nodes of the wanted kinds with the
// wanted text, never descending into the skip kinds (the scope node
// itself excepted).
func collectOccurrences(scope syntax.Node, name string, kinds, skip map[syntax.Kind]bool) []syntax.Location {
	var out []syntax.Location
	var walk func(n syntax.Node, root bool)
	walk = func(n syntax.Node, root bool) {
		if n == nil {
			return
		}
		if !root && skip[n.Kind()] {
			return
		}
		if kinds[n.Kind()] && n.Text() == name {
			out = append(out, highlightRange(n))
		}
		for _, c := range syntax.Children(n) {
			walk(c, false)
		}
	}
	walk(scope, true)
	return out
}

func walkAll(n syntax.Node, fn func(syntax.Node)) {
	if n == nil {
		return
	}
	fn(n)
	for _, c := range syntax.Children(n) {
		walkAll(c, fn)
	}
}

func highlightRange(n syntax.Node) syntax.Location {
	if loc, ok := n.NameLocation(); ok {
		return loc
	}
	return n.Location()
}

func dedupeRanges(in []syntax.Location) []syntax.Location {
	seen := map[syntax.Location]bool{}
	out := in[:0:0]
	for _, r := range in {
		if !seen[r] {
			seen[r] = true
			out = append(out, r)
		}
	}
	return out
}

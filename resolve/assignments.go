package resolve

import "github.com/viant/semindex/syntax"

// firstAssignment and lastAssignment both scan body (a Def's body, or a
// class body) for Assign statements whose LHS is a kind-and-name match,
// never descending into nested Def/ClassDef/ModuleDef/Macro nodes, the
// same collector discipline typeenv applies. cursor, when non-nil, excludes
// any assignment ending after it.

func firstAssignment(body syntax.Node, kind syntax.Kind, name string, cursor *syntax.Position) syntax.Node {
	matches := collectAssignTargets(body, kind, name, cursor)
	if len(matches) == 0 {
		return nil
	}
	return matches[0]
}

func lastAssignment(body syntax.Node, kind syntax.Kind, name string, cursor *syntax.Position) syntax.Node {
	matches := collectAssignTargets(body, kind, name, cursor)
	if len(matches) == 0 {
		return nil
	}
	return matches[len(matches)-1]
}

func collectAssignTargets(body syntax.Node, kind syntax.Kind, name string, cursor *syntax.Position) []syntax.Node {
	if body == nil {
		return nil
	}
	var out []syntax.Node
	var walk func(n syntax.Node)
	walk = func(n syntax.Node) {
		if n == nil {
			return
		}
		switch n.Kind() {
		case syntax.KindDef, syntax.KindMacro, syntax.KindModule, syntax.KindClass, syntax.KindEnum:
			return
		}
		if cursor != nil {
			loc := n.Location()
			if !loc.Zero() && cursor.Less(loc.End) {
				return
			}
		}
		if n.Kind() == syntax.KindAssign {
			if lhs := n.Field(syntax.FieldLHS); lhs != nil && lhs.Kind() == kind && lhs.Text() == name {
				out = append(out, lhs)
			}
		}
		for _, c := range syntax.Children(n) {
			walk(c)
		}
	}
	for _, stmt := range syntax.Children(body) {
		walk(stmt)
	}
	return out
}

package complete

import (
	"github.com/viant/semindex/finder"
	"github.com/viant/semindex/infer"
	"github.com/viant/semindex/psi"
	"github.com/viant/semindex/syntax"
)

const maxOwnerAliasDepth = 6

// completeMembers lists instance- or class-method members on the receiver
// for the dot. The receiver is the call's obj when a
// prefix has been typed after the dot, or the node before the cursor
// itself when the cursor is exactly at the dot with no partial name.
func (e *Engine) completeMembers(c Context, res finder.Result) []Item {
	recv := dotReceiver(res)
	if recv == nil {
		return nil
	}

	if isTypePosition(recv) {
		name := recv.Text()
		if head := recv.Field(syntax.FieldHead); head != nil {
			name = head.Text()
		}
		owner, ok := e.Idx.ResolveInContext(res.ContextPath, name)
		if !ok {
			return nil
		}
		if resolved, ok := e.Idx.ResolveOwnerType(owner, maxOwnerAliasDepth); ok {
			owner = resolved
		}
		return e.memberItems(owner, true)
	}

	env := buildEnv(res, c.Pos)
	ref, ok := e.Infer.Infer(recv, infer.Context{OwnerContext: res.ContextPath, Env: env})
	if !ok {
		return nil
	}
	owner, ok := e.ownerOf(ref, res.ContextPath)
	if !ok {
		return nil
	}
	return e.memberItems(owner, false)
}

// dotReceiver picks the expression node the dot applies to.
func dotReceiver(res finder.Result) syntax.Node {
	if n := res.Node; n != nil && n.Kind() == syntax.KindCall {
		// A prefix typed after the dot parses as a Call carrying the
		// dotted expression in `obj`.
		if obj := n.Field(syntax.FieldObj); obj != nil {
			return obj
		}
	}
	// With the cursor exactly at the dot, the node ending before the
	// cursor is the receiver.
	if res.PreviousNode != nil {
		return res.PreviousNode
	}
	return res.Node
}

// memberItems lists every method on owner's ancestor chain matching the
// class/instance discipline, first definition of a name wins (the BFS
// ancestor order already puts the most-derived definition first).
func (e *Engine) memberItems(owner string, classMethod bool) []Item {
	var out []Item
	seen := map[string]bool{}
	for _, anc := range e.Idx.AncestorChain(owner) {
		for _, m := range e.Idx.Methods(anc) {
			if m.ClassMethod != classMethod || seen[m.Name] {
				continue
			}
			seen[m.Name] = true
			out = append(out, methodItem(m))
		}
	}
	return out
}

func (e *Engine) ownerOf(ref psi.TypeRef, context string) (string, bool) {
	if ref.IsUnion() {
		for _, m := range ref.Union {
			if m.Name == "" || m.Name == "Nil" {
				continue
			}
			if owner, ok := e.ownerOf(m, context); ok {
				return owner, true
			}
		}
		return "", false
	}
	name := ref.Name
	if qualified, ok := e.Idx.ResolveInContext(context, name); ok {
		name = qualified
	}
	return e.Idx.ResolveOwnerType(name, maxOwnerAliasDepth)
}

func isTypePosition(n syntax.Node) bool {
	switch n.Kind() {
	case syntax.KindPath, syntax.KindGeneric, syntax.KindMetaclass:
		return true
	}
	return false
}

// Package resolve implements the definition resolver: given
// a cursor position it dispatches on the node kind under the cursor and
// returns the PSI element(s) that node refers to.
package resolve

import (
	"github.com/viant/semindex/finder"
	"github.com/viant/semindex/index"
	"github.com/viant/semindex/infer"
	"github.com/viant/semindex/psi"
	"github.com/viant/semindex/syntax"
	"github.com/viant/semindex/typeenv"
)

// Resolver answers "go to definition" queries against an Index.
type Resolver struct {
	Idx    *index.Index
	Infer  *infer.Engine
}

// New builds a Resolver over idx.
func New(idx *index.Index) *Resolver {
	return &Resolver{Idx: idx, Infer: infer.New(idx)}
}

// Definition resolves the cursor position in tree to zero or more PSI
// elements. An empty result is the ordinary "unknown symbol"
// case, not an error.
func (r *Resolver) Definition(tree syntax.Node, pos syntax.Position) []psi.Element {
	res := finder.Find(tree, pos)
	if res.Node == nil {
		return nil
	}
	switch res.Node.Kind() {
	case syntax.KindModule, syntax.KindClass, syntax.KindEnum:
		return r.resolveTypeDef(res)
	case syntax.KindDef:
		return r.resolveDef(res)
	case syntax.KindVar:
		return r.resolveVar(res, pos)
	case syntax.KindInstanceVar:
		return r.resolveInstanceVar(res, pos)
	case syntax.KindCall:
		return r.resolveCall(res, pos)
	case syntax.KindPath:
		return r.resolvePath(res)
	case syntax.KindGeneric:
		return r.resolveGeneric(res)
	}
	return nil
}

// resolveTypeDef handles the cursor sitting on a Module/Class/Enum node's
// own name. res.ContextPath already names this very declaration (the
// node finder's context walk includes the innermost type-def ancestor,
// and this node is one), so no further name resolution is needed: it is
// already the fully-qualified name the skeleton pass used to define it.
func (r *Resolver) resolveTypeDef(res finder.Result) []psi.Element {
	entry, ok := r.Idx.LookupType(res.ContextPath)
	if !ok {
		return nil
	}
	return entry.PerFileElements()
}

func (r *Resolver) resolveDef(res finder.Result) []psi.Element {
	if res.ContextPath == "" {
		return nil
	}
	name := declaredName(res.Node)
	var out []psi.Element
	for _, anc := range r.Idx.AncestorChain(res.ContextPath) {
		for _, m := range r.Idx.MethodsNamed(anc, name) {
			out = append(out, m)
		}
	}
	return out
}

func (r *Resolver) resolveVar(res finder.Result, pos syntax.Position) []psi.Element {
	if res.EnclosingDef == nil {
		return nil
	}
	name := res.Node.Text()

	var match syntax.Node
	for _, p := range res.EnclosingDef.Fields(syntax.FieldParams) {
		if paramName(p) == name {
			match = p
			break
		}
	}
	// The latest prior binding wins: a same-named reassignment in the
	// body shadows the parameter declaration.
	body := res.EnclosingDef.Field(syntax.FieldBody)
	if assign := lastAssignment(body, syntax.KindVar, name, &pos); assign != nil {
		if match == nil || match.Location().End.LessEqual(assign.Location().End) {
			match = assign
		}
	}
	if match == nil {
		return nil
	}
	loc := match.Location()
	return []psi.Element{&psi.LocalVar{Base: psi.NewBase(name, "", loc, !loc.Zero(), "", false), Owner: res.ContextPath}}
}

func (r *Resolver) resolveInstanceVar(res finder.Result, pos syntax.Position) []psi.Element {
	name := res.Node.Text()
	owner := res.ContextPath
	env := typeenv.Build(res.EnclosingClass, res.EnclosingDef, pos)

	var match syntax.Node
	if res.EnclosingDef != nil {
		match = firstAssignment(res.EnclosingDef.Field(syntax.FieldBody), syntax.KindInstanceVar, name, nil)
	}
	if match == nil && res.EnclosingClass != nil {
		for _, def := range classMethods(res.EnclosingClass) {
			if declaredName(def) != "initialize" {
				continue
			}
			if m := firstAssignment(def.Field(syntax.FieldBody), syntax.KindInstanceVar, name, nil); m != nil {
				match = m
			}
		}
		if match == nil {
			if body := res.EnclosingClass.Field(syntax.FieldBody); body != nil {
				match = firstAssignment(body, syntax.KindInstanceVar, name, nil)
			}
		}
	}
	if match == nil {
		return nil
	}

	typeText := ""
	if ref, ok := env.InstanceVars[name]; ok {
		typeText = ref.Display()
	}
	loc := match.Location()
	return []psi.Element{&psi.InstanceVar{
		Base:     psi.NewBase(name, "", loc, !loc.Zero(), "", false),
		Owner:    owner,
		TypeText: typeText,
	}}
}

func (r *Resolver) resolvePath(res finder.Result) []psi.Element {
	name := res.Node.Text()
	context := res.ContextPath

	if a, ok := r.Idx.FindAliasInContext(context, name); ok {
		return []psi.Element{a}
	}
	if em, ok := r.enumMember(res, name); ok {
		return []psi.Element{em}
	}
	qualified, ok := r.Idx.ResolveInContext(context, name)
	if !ok {
		return nil
	}
	if entry, ok := r.Idx.LookupType(qualified); ok {
		return entry.PerFileElements()
	}
	return nil
}

// enumMember resolves a path like `E::M`, or a bare `M` when the cursor's
// context is inside enum E itself.
func (r *Resolver) enumMember(res finder.Result, name string) (*psi.EnumMember, bool) {
	owner, member := index.SplitQualified(name)
	if owner != "" {
		if m, ok := r.Idx.EnumMember(owner, member); ok {
			return m, true
		}
		return nil, false
	}
	if res.EnclosingClass != nil && res.EnclosingClass.Kind() == syntax.KindEnum {
		if m, ok := r.Idx.EnumMember(res.ContextPath, name); ok {
			return m, true
		}
	}
	return nil, false
}

func (r *Resolver) resolveGeneric(res finder.Result) []psi.Element {
	head := res.Node.Field(syntax.FieldHead)
	name := res.Node.Text()
	if head != nil {
		name = head.Text()
	}
	if a, ok := r.Idx.FindAliasInContext(res.ContextPath, name); ok {
		return []psi.Element{a}
	}
	qualified, ok := r.Idx.ResolveInContext(res.ContextPath, name)
	if !ok {
		return nil
	}
	if entry, ok := r.Idx.LookupType(qualified); ok {
		return entry.PerFileElements()
	}
	return nil
}

func declaredName(n syntax.Node) string {
	if f := n.Field(syntax.FieldName); f != nil {
		return f.Text()
	}
	return n.Text()
}

func paramName(n syntax.Node) string {
	if f := n.Field(syntax.FieldName); f != nil {
		return f.Text()
	}
	return n.Text()
}

func classMethods(classBody syntax.Node) []syntax.Node {
	body := classBody.Field(syntax.FieldBody)
	if body == nil {
		return nil
	}
	var out []syntax.Node
	for _, stmt := range syntax.Children(body) {
		if stmt.Kind() == syntax.KindDef {
			out = append(out, stmt)
		}
	}
	return out
}

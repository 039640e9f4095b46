package indexer

import (
	"github.com/viant/semindex/index"
	"github.com/viant/semindex/psi"
	"github.com/viant/semindex/syntax"
)

// mainWalker is pass 3: attach methods (arity + class-method
// flag), enum members, include edges, and alias definitions. Macro calls
// are not re-expanded here; the macro pass already ran and created any
// generated members as a separate virtual-file indexing pass.
type mainWalker struct {
	idx  *index.Index
	file string
}

// ownerCtx threads the qualified name and PSI kind of the innermost
// enclosing Module/Class/Enum through the walk.
type ownerCtx struct {
	name string
	kind psi.ElementKind
	has  bool
}

func (w *mainWalker) walk(n syntax.Node, owner ownerCtx) {
	if n == nil {
		return
	}
	switch n.Kind() {
	case syntax.KindModule:
		next := ownerCtx{name: declaredQualifiedName(n, owner.name), kind: psi.KindModule, has: true}
		w.descend(n, next)
		return
	case syntax.KindClass:
		next := ownerCtx{name: declaredQualifiedName(n, owner.name), kind: psi.KindClass, has: true}
		if sup := n.Field(syntax.FieldSuperclass); sup != nil {
			if ref, ok := typeRefFromNode(sup); ok {
				w.recordRefDeps(next.name, ref)
			}
		}
		w.descend(n, next)
		return
	case syntax.KindEnum:
		next := ownerCtx{name: declaredQualifiedName(n, owner.name), kind: psi.KindEnum, has: true}
		w.attachEnumMembers(n, next.name)
		w.descend(n, next)
		return
	case syntax.KindDef:
		w.attachMethod(n, owner)
		// Def bodies are not descended into by the indexing passes;
		// local variables are collected lazily by typeenv instead.
		return
	case syntax.KindMacro:
		return
	case syntax.KindInclude:
		w.attachIncludes(n, owner)
		return
	case syntax.KindAlias:
		w.attachAlias(n, owner)
		return
	}
	for _, c := range syntax.Children(n) {
		w.walk(c, owner)
	}
}

func (w *mainWalker) descend(n syntax.Node, owner ownerCtx) {
	for _, c := range syntax.Children(n) {
		w.walk(c, owner)
	}
}

func (w *mainWalker) attachMethod(n syntax.Node, owner ownerCtx) {
	params := n.Fields(syntax.FieldParams)
	arity, names := computeArity(params)
	doc, hasDoc := n.Doc()

	m := &psi.Method{
		Base:        psi.NewBase(declaredName(n), w.file, n.Location(), !n.Location().Zero(), doc, hasDoc),
		OwnerKind:   owner.kind,
		Owner:       owner.name,
		Arity:       arity,
		ClassMethod: n.Flag(syntax.FlagClassMethod),
		Params:      names,
	}
	if ret := n.Field(syntax.FieldReturnType); ret != nil {
		m.ReturnTypeRaw = ret.Text()
		if ref, ok := typeRefFromNode(ret); ok {
			m.ReturnType = &ref
		}
	}
	w.idx.AddMethod(owner.name, m, w.file)
	w.recordMethodDeps(m, owner.name, n)
}

// computeArity: min counts non-default, non-splat,
// non-block-param positional/named parameters; max is unbounded iff a
// splat or double-splat parameter exists, otherwise the count of
// positional/named parameters (including ones with defaults). The block
// parameter (`&block`) never counts towards arity.
func computeArity(params []syntax.Node) (psi.Arity, []string) {
	var min, max int
	unbounded := false
	names := make([]string, 0, len(params))
	for _, p := range params {
		names = append(names, paramName(p))
		if p.Flag(syntax.FlagBlockParam) {
			continue
		}
		if p.Flag(syntax.FlagSplat) || p.Flag(syntax.FlagDoubleSplat) {
			unbounded = true
			continue
		}
		max++
		if p.Field(syntax.FieldDefault) == nil {
			min++
		}
	}
	return psi.Arity{Min: min, Max: max, Unbounded: unbounded}, names
}

func paramName(n syntax.Node) string {
	if name := n.Field(syntax.FieldName); name != nil {
		return name.Text()
	}
	return n.Text()
}

func (w *mainWalker) attachEnumMembers(n syntax.Node, owner string) {
	for _, member := range n.Fields(syntax.FieldMembers) {
		doc, hasDoc := member.Doc()
		em := &psi.EnumMember{
			Base:  psi.NewBase(memberName(member), w.file, member.Location(), !member.Location().Zero(), doc, hasDoc),
			Owner: owner,
		}
		w.idx.AddEnumMember(owner, em, w.file)
	}
}

func memberName(n syntax.Node) string {
	if name := n.Field(syntax.FieldName); name != nil {
		return name.Text()
	}
	return n.Text()
}

func (w *mainWalker) attachIncludes(n syntax.Node, owner ownerCtx) {
	if !owner.has {
		return
	}
	var refs []psi.TypeRef
	if elems := n.Fields(syntax.FieldElements); len(elems) > 0 {
		for _, e := range elems {
			if ref, ok := typeRefFromNode(e); ok {
				refs = append(refs, ref)
			}
		}
	} else if target := n.Field(syntax.FieldTarget); target != nil {
		if ref, ok := typeRefFromNode(target); ok {
			refs = append(refs, ref)
		}
	}
	w.idx.AddIncludes(owner.name, w.file, refs)
	for _, ref := range refs {
		w.recordRefDeps(owner.name, ref)
	}
}

func (w *mainWalker) attachAlias(n syntax.Node, owner ownerCtx) {
	doc, hasDoc := n.Doc()
	a := &psi.Alias{
		Base: psi.NewBase(declaredName(n), w.file, n.Location(), !n.Location().Zero(), doc, hasDoc),
	}
	if target := n.Field(syntax.FieldTarget); target != nil {
		if ref, ok := typeRefFromNode(target); ok {
			a.Target = &ref
			w.recordRefDeps(owner.name, *a.Target)
		}
	}
	w.idx.AddAlias(owner.name, a, w.file)
}

// recordMethodDeps contributes dependency-graph edges for every type a
// method's signature references: parameter restrictions and the return
// annotation. Edges are qualified by the current
// file so RemoveFile reverses them.
func (w *mainWalker) recordMethodDeps(m *psi.Method, owner string, n syntax.Node) {
	if owner == "" {
		return
	}
	for _, p := range n.Fields(syntax.FieldParams) {
		if t := p.Field(syntax.FieldType); t != nil {
			if ref, ok := typeRefFromNode(t); ok {
				w.recordRefDeps(owner, ref)
			}
		}
	}
	if m.ReturnType != nil {
		w.recordRefDeps(owner, *m.ReturnType)
	}
}

// recordRefDeps records owner → target edges for every named type a
// TypeRef mentions, resolving bare names against owner's context chain so
// the edge lands on the same qualified name method lookup will use.
func (w *mainWalker) recordRefDeps(owner string, ref psi.TypeRef) {
	if ref.IsUnion() {
		for _, m := range ref.Union {
			w.recordRefDeps(owner, m)
		}
		return
	}
	if ref.Name == "" || ref.Name == "self" {
		return
	}
	target := ref.Name
	if resolved, ok := w.idx.ResolveInContext(owner, ref.Name); ok {
		target = resolved
	}
	w.idx.AddDependency(owner, target, w.file)
	for _, a := range ref.Args {
		w.recordRefDeps(owner, a)
	}
}

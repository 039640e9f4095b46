package indexer

import (
	"github.com/viant/semindex/index"
	"github.com/viant/semindex/psi"
	"github.com/viant/semindex/syntax"
)

// skeletonWalker is pass 1: materialize Module/Class/Enum
// shells (with unresolved superclass and declared type-vars) before any
// method or reference resolution runs. It never descends into Def or
// Macro bodies; no indexing pass does, and only the type environment
// collectors walk them, at query time.
type skeletonWalker struct {
	idx  *index.Index
	file string
}

// walk visits n under owner (the qualified name of the innermost enclosing
// Module/Class/Enum, "" at file scope); nested names are qualified by
// index.Qualify.
func (w *skeletonWalker) walk(n syntax.Node, owner string) {
	if n == nil {
		return
	}
	switch n.Kind() {
	case syntax.KindModule:
		qualified := declaredQualifiedName(n, owner)
		w.idx.DefineModule(qualified, owner, w.file, siteFromNode(n, nil))
		w.descendInto(n, qualified)
		return
	case syntax.KindClass:
		qualified := declaredQualifiedName(n, owner)
		site := siteFromNode(n, typeVarNames(n))
		w.idx.DefineClass(qualified, owner, w.file, site)
		if sup := n.Field(syntax.FieldSuperclass); sup != nil {
			if ref, ok := typeRefFromNode(sup); ok {
				w.idx.SetSuperclass(qualified, w.file, ref)
			}
		}
		w.descendInto(n, qualified)
		return
	case syntax.KindEnum:
		qualified := declaredQualifiedName(n, owner)
		w.idx.DefineEnum(qualified, owner, w.file, siteFromNode(n, nil))
		// Enum members are attached in the main pass; the skeleton pass
		// only needs the enum's own shell to exist.
		return
	case syntax.KindDef, syntax.KindMacro:
		// Bodies are walked only by the type environment collectors.
		return
	}
	for _, c := range syntax.Children(n) {
		w.walk(c, owner)
	}
}

// descendInto walks n's children under the newly-opened owner, skipping a
// re-visit of n itself.
func (w *skeletonWalker) descendInto(n syntax.Node, owner string) {
	for _, c := range syntax.Children(n) {
		w.walk(c, owner)
	}
}

// declaredQualifiedName reads a type-def node's declared name and qualifies
// it against owner.
func declaredQualifiedName(n syntax.Node, owner string) string {
	return index.Qualify(owner, declaredName(n))
}

func declaredName(n syntax.Node) string {
	if name := n.Field(syntax.FieldName); name != nil {
		return name.Text()
	}
	return n.Text()
}

// siteFromNode builds an index.OpenSite from a type-def node's location
// and doc comment.
func siteFromNode(n syntax.Node, typeVars []string) index.OpenSite {
	loc := n.Location()
	doc, hasDoc := n.Doc()
	return index.OpenSite{
		Location: loc,
		HasLoc:   !loc.Zero(),
		Doc:      doc,
		HasDoc:   hasDoc,
		TypeVars: typeVars,
	}
}

// typeVarNames reads a Class's declared generic parameter list, if any.
func typeVarNames(n syntax.Node) []string {
	vars := n.Fields(syntax.FieldTypeVars)
	if len(vars) == 0 {
		return nil
	}
	out := make([]string, 0, len(vars))
	for _, v := range vars {
		out = append(out, v.Text())
	}
	return out
}

// typeRefFromNode is a thin local alias for psi.FromTypeNode, kept so this
// file's call sites read the same as before the conversion was hoisted to
// psi for reuse across indexer/typeenv/resolve/infer.
func typeRefFromNode(n syntax.Node) (psi.TypeRef, bool) {
	return psi.FromTypeNode(n)
}

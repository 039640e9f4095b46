package psi

import "github.com/viant/semindex/syntax"

// FromTypeNode converts a syntax node appearing in type position (a
// superclass, include target, alias target, cast type, return-type
// annotation, or generic argument) into a TypeRef. It recognizes Union,
// Generic, Metaclass, Path, and Self nodes; anything else falls back to
// treating the node's own text as a bare name. ok is false only when n is
// nil or a Union node has no resolvable members, so an alias whose
// right-hand side is not a type keeps a nil target.
//
// This lives in psi (not indexer) so the indexer passes, typeenv, resolve,
// and infer share one conversion instead of re-deriving it.
func FromTypeNode(n syntax.Node) (TypeRef, bool) {
	if n == nil {
		return TypeRef{}, false
	}
	switch n.Kind() {
	case syntax.KindUnion:
		members := n.Fields(syntax.FieldElements)
		refs := make([]TypeRef, 0, len(members))
		for _, m := range members {
			if ref, ok := FromTypeNode(m); ok {
				refs = append(refs, ref)
			}
		}
		if len(refs) == 0 {
			return TypeRef{}, false
		}
		return NewUnion(refs...), true
	case syntax.KindGeneric:
		name := ""
		if head := n.Field(syntax.FieldHead); head != nil {
			name = head.Text()
		} else {
			name = n.Text()
		}
		args := n.Fields(syntax.FieldTypeArgs)
		refArgs := make([]TypeRef, 0, len(args))
		for _, a := range args {
			if ref, ok := FromTypeNode(a); ok {
				refArgs = append(refArgs, ref)
			}
		}
		return NewGeneric(name, refArgs...), true
	default:
		return NewNamed(n.Text()), true
	}
}

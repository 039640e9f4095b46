// Package infer implements the best-effort type inference engine: a
// depth-bounded function from a syntax node plus lexical context
// to a psi.TypeRef, used wherever the resolver needs a receiver's type
// before it can look up a method.
package infer

import (
	"github.com/viant/semindex/index"
	"github.com/viant/semindex/psi"
	"github.com/viant/semindex/syntax"
	"github.com/viant/semindex/typeenv"
)

// maxDepth bounds recursive inference.
const maxDepth = 4

// maxAliasDepth bounds alias-following while resolving an inferred
// TypeRef's name to an owner type.
const maxAliasDepth = 6

// Engine infers TypeRefs for expression nodes against an Index.
type Engine struct {
	Idx *index.Index
}

// New builds an Engine over idx.
func New(idx *index.Index) *Engine {
	return &Engine{Idx: idx}
}

// Context carries the lexical information inference needs beyond the
// expression node itself: the enclosing type's qualified name (for `self`
// and bare-name resolution) and the gathered local type environment.
type Context struct {
	OwnerContext string
	Env          *typeenv.Env
}

// Infer evaluates n to a TypeRef, or reports ok=false on any of the
// silent-failure cases (inference never errors, it just declines).
func (e *Engine) Infer(n syntax.Node, ctx Context) (psi.TypeRef, bool) {
	return e.infer(n, ctx, 0)
}

func (e *Engine) infer(n syntax.Node, ctx Context, depth int) (psi.TypeRef, bool) {
	if n == nil || depth > maxDepth {
		return psi.TypeRef{}, false
	}
	switch n.Kind() {
	case syntax.KindPath, syntax.KindGeneric, syntax.KindMetaclass, syntax.KindUnion:
		return psi.FromTypeNode(n)
	case syntax.KindSelf:
		if ctx.OwnerContext == "" {
			return psi.TypeRef{}, false
		}
		return psi.NewNamed(ctx.OwnerContext), true
	case syntax.KindVar:
		ref, ok := ctx.Env.Locals[n.Text()]
		return ref, ok
	case syntax.KindInstanceVar:
		ref, ok := ctx.Env.InstanceVars[n.Text()]
		return ref, ok
	case syntax.KindClassVar:
		ref, ok := ctx.Env.ClassVars[n.Text()]
		return ref, ok
	case syntax.KindCast, syntax.KindNilableCast:
		if t := n.Field(syntax.FieldType); t != nil {
			return psi.FromTypeNode(t)
		}
		return psi.TypeRef{}, false
	case syntax.KindCall:
		return e.inferCall(n, ctx, depth)
	}
	return psi.TypeRef{}, false
}

func (e *Engine) inferCall(n syntax.Node, ctx Context, depth int) (psi.TypeRef, bool) {
	nameField := n.Field(syntax.FieldName)
	if nameField == nil {
		return psi.TypeRef{}, false
	}
	name := nameField.Text()
	recv := n.Field(syntax.FieldReceiver)

	if name == "new" && recv != nil {
		return psi.FromTypeNode(recv)
	}

	argc := len(n.Fields(syntax.FieldArgs)) + len(n.Fields(syntax.FieldNamedArgs))
	if idxArg, ok := indexAccess(n); ok {
		return e.inferIndexAccess(n, idxArg, ctx, depth)
	}

	if recv == nil {
		if ctx.OwnerContext == "" {
			return psi.TypeRef{}, false
		}
		return e.methodReturnType(psi.NewNamed(ctx.OwnerContext), name, argc, nil, ctx, depth)
	}

	recvRef, ok := e.infer(recv, ctx, depth+1)
	if !ok {
		return psi.TypeRef{}, false
	}
	return e.methodReturnType(recvRef, name, argc, recvRef.Args, ctx, depth)
}

// indexAccess reports whether n is an index-access call (`recv[i]`,
// modeled as a Call named "[]" with the bracketed args). ok is true when
// recognized; idx is the argument nodes (possibly empty for `recv[]`,
// which never specializes).
func indexAccess(n syntax.Node) ([]syntax.Node, bool) {
	nameField := n.Field(syntax.FieldName)
	if nameField == nil || nameField.Text() != "[]" {
		return nil, false
	}
	return n.Fields(syntax.FieldArgs), true
}

// inferIndexAccess specializes `recv[i]` on the receiver's base name.
func (e *Engine) inferIndexAccess(n syntax.Node, args []syntax.Node, ctx Context, depth int) (psi.TypeRef, bool) {
	recv := n.Field(syntax.FieldReceiver)
	base, ok := e.infer(recv, ctx, depth+1)
	if !ok {
		return psi.TypeRef{}, false
	}
	if base.IsUnion() {
		var members []psi.TypeRef
		for _, m := range base.Union {
			if elem, ok := specializeIndex(m, args); ok {
				members = append(members, elem)
			}
		}
		if len(members) == 0 {
			return psi.TypeRef{}, false
		}
		if len(members) == 1 {
			return members[0], true
		}
		return psi.NewUnion(members...), true
	}
	return specializeIndex(base, args)
}

func specializeIndex(base psi.TypeRef, args []syntax.Node) (psi.TypeRef, bool) {
	rangeOrMulti := false
	if len(args) != 1 {
		rangeOrMulti = true
	} else if args[0].Kind() == syntax.KindRangeLiteral {
		rangeOrMulti = true
	}
	switch base.Name {
	case "Array", "Slice", "StaticArray", "Deque":
		if rangeOrMulti || len(base.Args) == 0 {
			return base, true
		}
		return base.Args[0], true
	case "Hash":
		if len(base.Args) < 2 {
			return psi.TypeRef{}, false
		}
		return base.Args[1], true
	}
	return psi.TypeRef{}, false
}

// methodReturnType resolves a dotted call's return type: resolve recvRef to an owner type via alias-following, select a
// same-named ancestor method matching class/instance discipline, narrow
// by strict arity if possible, prefer a candidate with a declared return
// TypeRef, then substitute the owner's type-variables (bound from
// recvArgs) and `self` into the winning candidate's return TypeRef.
func (e *Engine) methodReturnType(recvRef psi.TypeRef, name string, argc int, recvArgs []psi.TypeRef, ctx Context, depth int) (psi.TypeRef, bool) {
	if recvRef.IsUnion() {
		for _, m := range recvRef.Union {
			if m.Name == "" || m.Name == "Nil" {
				continue
			}
			if ref, ok := e.methodReturnType(m, name, argc, m.Args, ctx, depth); ok {
				return ref, true
			}
		}
		return psi.TypeRef{}, false
	}

	owner, classMethod := e.resolveOwner(recvRef, ctx)
	if owner == "" {
		return psi.TypeRef{}, false
	}

	var candidates []*psi.Method
	for _, anc := range e.Idx.AncestorChain(owner) {
		for _, m := range e.Idx.MethodsNamed(anc, name) {
			if m.ClassMethod == classMethod {
				candidates = append(candidates, m)
			}
		}
	}
	if len(candidates) == 0 {
		return psi.TypeRef{}, false
	}

	var strict []*psi.Method
	for _, m := range candidates {
		if m.Arity.Matches(argc) {
			strict = append(strict, m)
		}
	}
	if len(strict) > 0 {
		candidates = strict
	}

	chosen := candidates[0]
	for _, m := range candidates {
		if m.ReturnType != nil {
			chosen = m
			break
		}
	}
	if chosen.ReturnType == nil {
		return psi.TypeRef{}, false
	}

	bindings := map[string]psi.TypeRef{}
	if cls, ok := e.Idx.LookupType(owner); ok {
		if c, isClass := cls.Elem.(*psi.Class); isClass {
			for i, tv := range c.TypeVars {
				if i < len(recvArgs) {
					bindings[tv] = recvArgs[i]
				}
			}
		}
	}
	ret := chosen.ReturnType.Substitute(bindings)
	if ret.IsSelf() {
		ret = recvRef
	}
	return ret, true
}

// resolveOwner follows an alias chain to the underlying owner type name,
// first qualifying a bare name against the lexical context chain. Callers
// only reach here for inferred *value* expressions (receivers of a dotted
// call), so dispatch always selects instance methods.
func (e *Engine) resolveOwner(ref psi.TypeRef, ctx Context) (owner string, classMethod bool) {
	name := ref.Name
	if qualified, ok := e.Idx.ResolveInContext(ctx.OwnerContext, name); ok {
		name = qualified
	}
	name, ok := e.Idx.ResolveOwnerType(name, maxAliasDepth)
	if !ok {
		return "", false
	}
	return name, false
}

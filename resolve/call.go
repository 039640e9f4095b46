package resolve

import (
	"github.com/viant/semindex/finder"
	"github.com/viant/semindex/infer"
	"github.com/viant/semindex/psi"
	"github.com/viant/semindex/syntax"
	"github.com/viant/semindex/typeenv"
)

const maxOwnerAliasDepth = 6

// resolveCall dispatches on the call receiver form: classify the
// receiver form, collect method candidates, then apply loose arity
// filtering across the whole chain.
func (r *Resolver) resolveCall(res finder.Result, pos syntax.Position) []psi.Element {
	_, argc, isNew, owner, candidates, ok := r.CallCandidates(res, pos)
	if !ok {
		return nil
	}
	if isNew {
		return r.resolveConstructor(owner, argc)
	}
	return looseArity(candidates, argc)
}

// CallCandidates is the receiver-classification half of call
// resolution, shared with signature help: it returns the call's
// name, its positional-plus-named arity, whether it is a `Type.new(...)`
// constructor call (which signature help and definition resolution each
// finish differently), the resolved owner type (meaningful for
// constructor calls), and the un-arity-filtered candidate method list.
// ok is false when the receiver could not be classified or resolved at
// all.
func (r *Resolver) CallCandidates(res finder.Result, pos syntax.Position) (name string, argc int, isNew bool, owner string, candidates []*psi.Method, ok bool) {
	nameField := res.Node.Field(syntax.FieldName)
	if nameField == nil {
		return "", 0, false, "", nil, false
	}
	name = nameField.Text()
	argc = CallArity(res.Node)
	recv := res.Node.Field(syntax.FieldReceiver)

	switch {
	case recv != nil && recv.Kind() == syntax.KindSelf:
		classMethod := res.EnclosingDef != nil && res.EnclosingDef.Flag(syntax.FlagClassMethod)
		return name, argc, false, res.ContextPath, r.ancestorMethods(res.ContextPath, name, classMethod), true

	case recv != nil && isTypePosition(recv):
		recvName := recv.Text()
		if head := recv.Field(syntax.FieldHead); head != nil {
			recvName = head.Text()
		}
		owner, found := r.Idx.ResolveInContext(res.ContextPath, recvName)
		if !found {
			return name, argc, false, "", nil, false
		}
		if name == "new" {
			return name, argc, true, owner, nil, true
		}
		return name, argc, false, owner, r.ancestorMethods(owner, name, true), true

	case recv != nil && isVariableNode(recv):
		env := typeenv.Build(res.EnclosingClass, res.EnclosingDef, pos)
		ref, found := envLookup(env, recv)
		if !found {
			return name, argc, false, "", nil, false
		}
		owner, found := r.ownerOf(ref, res.ContextPath)
		if !found {
			return name, argc, false, "", nil, false
		}
		return name, argc, false, owner, r.ancestorMethods(owner, name, false), true

	case recv != nil:
		env := typeenv.Build(res.EnclosingClass, res.EnclosingDef, pos)
		ref, found := r.Infer.Infer(recv, infer.Context{OwnerContext: res.ContextPath, Env: env})
		if !found {
			return name, argc, false, "", nil, false
		}
		owner, found := r.ownerOf(ref, res.ContextPath)
		if !found {
			return name, argc, false, "", nil, false
		}
		return name, argc, false, owner, r.ancestorMethods(owner, name, false), true

	default:
		if res.ContextPath == "" {
			return name, argc, false, "", nil, false
		}
		classMethod := res.EnclosingDef != nil && res.EnclosingDef.Flag(syntax.FlagClassMethod)
		return name, argc, false, res.ContextPath, r.ancestorMethods(res.ContextPath, name, classMethod), true
	}
}

// resolveConstructor handles the `new` special-case: try a
// strict-arity class-method `new` first, else fall back to instance
// `initialize`, else return every `initialize`.
func (r *Resolver) resolveConstructor(owner string, argc int) []psi.Element {
	var classNew []*psi.Method
	for _, anc := range r.Idx.AncestorChain(owner) {
		for _, m := range r.Idx.MethodsNamed(anc, "new") {
			if m.ClassMethod {
				classNew = append(classNew, m)
			}
		}
	}
	for _, m := range classNew {
		if m.Arity.Matches(argc) {
			return []psi.Element{m}
		}
	}

	var inits []*psi.Method
	for _, anc := range r.Idx.AncestorChain(owner) {
		for _, m := range r.Idx.MethodsNamed(anc, "initialize") {
			if !m.ClassMethod {
				inits = append(inits, m)
			}
		}
	}
	strict := looseArity(inits, argc)
	out := make([]psi.Element, 0, len(strict))
	for _, m := range strict {
		out = append(out, m)
	}
	return out
}

// ownerOf resolves a receiver TypeRef to the qualified owner type name,
// qualifying a bare name against the lexical context chain first and then
// following aliases. A union receiver
// resolves to its first member that names a known type, skipping Nil.
func (r *Resolver) ownerOf(ref psi.TypeRef, context string) (string, bool) {
	if ref.IsUnion() {
		for _, m := range ref.Union {
			if m.Name == "" || m.Name == "Nil" {
				continue
			}
			if owner, ok := r.ownerOf(m, context); ok {
				return owner, true
			}
		}
		return "", false
	}
	name := ref.Name
	if qualified, ok := r.Idx.ResolveInContext(context, name); ok {
		name = qualified
	}
	return r.Idx.ResolveOwnerType(name, maxOwnerAliasDepth)
}

func (r *Resolver) ancestorMethods(owner, name string, classMethod bool) []*psi.Method {
	var out []*psi.Method
	for _, anc := range r.Idx.AncestorChain(owner) {
		for _, m := range r.Idx.MethodsNamed(anc, name) {
			if m.ClassMethod == classMethod {
				out = append(out, m)
			}
		}
	}
	return out
}

// ConstructorCandidates lists the methods a `Type.new(...)` call can bind
// to, un-filtered by arity: the class-methods named `new` when any exist,
// else every instance `initialize`. Signature help picks the
// active overload by arity afterwards; definition resolution applies its
// stricter selection via resolveConstructor instead.
func (r *Resolver) ConstructorCandidates(owner string) []*psi.Method {
	if classNew := r.ancestorMethods(owner, "new", true); len(classNew) > 0 {
		return classNew
	}
	return r.ancestorMethods(owner, "initialize", false)
}

// CallArity counts a Call's positional plus named arguments, the arity a
// method candidate is matched against.
func CallArity(call syntax.Node) int {
	return len(call.Fields(syntax.FieldArgs)) + len(call.Fields(syntax.FieldNamedArgs))
}

// looseArity filters candidates by arity, but if
// none match, return all of them (the user may be mid-edit).
func looseArity(candidates []*psi.Method, argc int) []psi.Element {
	var matched []*psi.Method
	for _, m := range candidates {
		if m.Arity.Matches(argc) {
			matched = append(matched, m)
		}
	}
	if len(matched) == 0 {
		matched = candidates
	}
	out := make([]psi.Element, 0, len(matched))
	for _, m := range matched {
		out = append(out, m)
	}
	return out
}

// isTypePosition reports whether recv denotes a type reference (a
// namespace/class path) rather than a value expression.
func isTypePosition(recv syntax.Node) bool {
	switch recv.Kind() {
	case syntax.KindPath, syntax.KindGeneric, syntax.KindMetaclass:
		return true
	}
	return false
}

func isVariableNode(n syntax.Node) bool {
	switch n.Kind() {
	case syntax.KindVar, syntax.KindInstanceVar, syntax.KindClassVar:
		return true
	}
	return false
}

func envLookup(env *typeenv.Env, n syntax.Node) (psi.TypeRef, bool) {
	switch n.Kind() {
	case syntax.KindVar:
		ref, ok := env.Locals[n.Text()]
		return ref, ok
	case syntax.KindInstanceVar:
		ref, ok := env.InstanceVars[n.Text()]
		return ref, ok
	case syntax.KindClassVar:
		ref, ok := env.ClassVars[n.Text()]
		return ref, ok
	}
	return psi.TypeRef{}, false
}

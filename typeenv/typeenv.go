// Package typeenv builds the cursor-scoped local type environment: a
// best-effort map from local/instance/class variable
// name to TypeRef, gathered by scanning a lexical scope without a full
// type checker. Collectors never descend into nested Def/ClassDef/
// ModuleDef/Macro, so the cost of building an Env stays proportional to
// one method body plus one class body, not the whole file.
package typeenv

import (
	"github.com/viant/semindex/psi"
	"github.com/viant/semindex/syntax"
)

// Env is the gathered type environment for one cursor position.
type Env struct {
	Locals       map[string]psi.TypeRef
	InstanceVars map[string]psi.TypeRef
	ClassVars    map[string]psi.TypeRef
}

func newEnv() *Env {
	return &Env{
		Locals:       map[string]psi.TypeRef{},
		InstanceVars: map[string]psi.TypeRef{},
		ClassVars:    map[string]psi.TypeRef{},
	}
}

// Build gathers an Env for a cursor inside method (may be nil, e.g. when
// the cursor is in a class body outside any method) enclosed by
// classBody (the Module/Class/Enum node; may be nil at file scope),
// stopping local-variable collection at cursor.
func Build(classBody syntax.Node, method syntax.Node, cursor syntax.Position) *Env {
	e := newEnv()
	if classBody != nil {
		collectClassBody(classBody, e)
		if init := findInitialize(classBody); init != nil {
			collectAssignments(bodyOf(init), e, nil, true)
		}
		for _, def := range allMethods(classBody) {
			if def == method {
				continue
			}
			collectAssignments(bodyOf(def), e, nil, false)
		}
	}
	if method != nil {
		bindParams(method, e)
		collectAssignments(bodyOf(method), e, &cursor, true)
	}
	return e
}

func bodyOf(def syntax.Node) syntax.Node {
	if def == nil {
		return nil
	}
	return def.Field(syntax.FieldBody)
}

// collectClassBody implements rule (a): top-level type declarations and
// assignments directly inside the class/module body, not descending into
// nested Def/ClassDef/ModuleDef/Macro.
func collectClassBody(classBody syntax.Node, e *Env) {
	body := classBody.Field(syntax.FieldBody)
	if body == nil {
		return
	}
	for _, stmt := range syntax.Children(body) {
		applyDeclOrAssign(stmt, e, true)
	}
}

func findInitialize(classBody syntax.Node) syntax.Node {
	for _, def := range allMethods(classBody) {
		if def.Field(syntax.FieldName) != nil && def.Field(syntax.FieldName).Text() == "initialize" {
			return def
		}
	}
	return nil
}

func allMethods(classBody syntax.Node) []syntax.Node {
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

// bindParams implements rule (d): parameter restrictions of the current
// method become local bindings.
func bindParams(method syntax.Node, e *Env) {
	for _, p := range method.Fields(syntax.FieldParams) {
		name := p.Text()
		if f := p.Field(syntax.FieldName); f != nil {
			name = f.Text()
		}
		if t := p.Field(syntax.FieldType); t != nil {
			if ref, ok := psi.FromTypeNode(t); ok {
				e.Locals[name] = ref
			}
		}
	}
}

// collectAssignments walks stmts (a method body), applying extraction
// rules to each Assign/TypeDeclaration/OpAssign/MultiAssign it finds, but
// never descending into nested Def/ClassDef/ModuleDef/Macro nodes. When
// cursor is non-nil, only statements that end at or before the cursor are
// applied (rule (e)); overwrite controls whether a later assignment
// replaces an already-known binding (true for the current method /
// initialize, false for "best-effort ... without overwriting values
// already known" in other method bodies, rule (c)).
func collectAssignments(body syntax.Node, e *Env, cursor *syntax.Position, overwrite bool) {
	if body == nil {
		return
	}
	for _, stmt := range syntax.Children(body) {
		walkStatement(stmt, e, cursor, overwrite)
	}
}

func walkStatement(n syntax.Node, e *Env, cursor *syntax.Position, overwrite bool) {
	if n == nil {
		return
	}
	switch n.Kind() {
	case syntax.KindDef, syntax.KindMacro:
		return
	case syntax.KindModule, syntax.KindClass, syntax.KindEnum:
		return
	}
	if cursor != nil {
		loc := n.Location()
		if !loc.Zero() && cursor.Less(loc.End) {
			return
		}
	}
	applyDeclOrAssign(n, e, overwrite)
	for _, c := range syntax.Children(n) {
		walkStatement(c, e, cursor, overwrite)
	}
}

func applyDeclOrAssign(n syntax.Node, e *Env, overwrite bool) {
	switch n.Kind() {
	case syntax.KindTypeDecl:
		target := n.Field(syntax.FieldName)
		typeNode := n.Field(syntax.FieldType)
		if target == nil || typeNode == nil {
			return
		}
		ref, ok := psi.FromTypeNode(typeNode)
		if !ok {
			return
		}
		bind(e, target, ref, overwrite)
	case syntax.KindAssign, syntax.KindOpAssign:
		lhs := n.Field(syntax.FieldLHS)
		rhs := n.Field(syntax.FieldRHS)
		if lhs == nil {
			return
		}
		ref, ok := extractValue(rhs, e)
		if !ok {
			return
		}
		// `x ||= v` only binds when nothing better is known already.
		if n.Kind() == syntax.KindOpAssign {
			overwrite = false
		}
		bind(e, lhs, ref, overwrite)
	}
}

// bind writes ref into the right bucket of e based on target's kind.
func bind(e *Env, target syntax.Node, ref psi.TypeRef, overwrite bool) {
	var bucket map[string]psi.TypeRef
	switch target.Kind() {
	case syntax.KindVar:
		bucket = e.Locals
	case syntax.KindInstanceVar:
		bucket = e.InstanceVars
	case syntax.KindClassVar:
		bucket = e.ClassVars
	default:
		return
	}
	name := target.Text()
	if _, known := bucket[name]; known && !overwrite {
		return
	}
	bucket[name] = ref
}

// extractValue maps a value
// expression to a TypeRef.
func extractValue(rhs syntax.Node, e *Env) (psi.TypeRef, bool) {
	if rhs == nil {
		return psi.TypeRef{}, false
	}
	switch rhs.Kind() {
	case syntax.KindCall:
		if name := rhs.Field(syntax.FieldName); name != nil && name.Text() == "new" {
			if recv := rhs.Field(syntax.FieldReceiver); recv != nil {
				return psi.FromTypeNode(recv)
			}
		}
		return psi.TypeRef{}, false
	case syntax.KindCast, syntax.KindNilableCast:
		if t := rhs.Field(syntax.FieldType); t != nil {
			return psi.FromTypeNode(t)
		}
		return psi.TypeRef{}, false
	case syntax.KindArray:
		if of := rhs.Field(syntax.FieldOf); of != nil {
			if elem, ok := psi.FromTypeNode(of); ok {
				return psi.NewGeneric("Array", elem), true
			}
		}
		return psi.TypeRef{}, false
	case syntax.KindHash:
		keyOf := rhs.Field(syntax.FieldKeyOf)
		of := rhs.Field(syntax.FieldOf)
		if keyOf != nil && of != nil {
			k, kok := psi.FromTypeNode(keyOf)
			v, vok := psi.FromTypeNode(of)
			if kok && vok {
				return psi.NewGeneric("Hash", k, v), true
			}
		}
		return psi.TypeRef{}, false
	case syntax.KindVar:
		if ref, ok := e.Locals[rhs.Text()]; ok {
			return ref, true
		}
		return psi.TypeRef{}, false
	case syntax.KindInstanceVar:
		if ref, ok := e.InstanceVars[rhs.Text()]; ok {
			return ref, true
		}
		return psi.TypeRef{}, false
	case syntax.KindClassVar:
		if ref, ok := e.ClassVars[rhs.Text()]; ok {
			return ref, true
		}
		return psi.TypeRef{}, false
	}
	return psi.TypeRef{}, false
}

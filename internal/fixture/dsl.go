package fixture

import "github.com/viant/semindex/syntax"

// Shorthand constructors for the node shapes tests build most often.

// Program wraps top-level statements in a plain container node.
func Program(children ...*Node) *Node {
	return New(syntax.Kind("Expressions")).Add(children...)
}

// Ident is a bare name node usable as a Field(name) value.
func Ident(name string) *Node {
	return New(syntax.KindPath).WithText(name)
}

// Class builds a Class node named name with body statements.
func Class(name string, body ...*Node) *Node {
	return New(syntax.KindClass).
		WithText(name).
		Set(syntax.FieldName, Ident(name)).
		Set(syntax.FieldBody, Program(body...))
}

// Module builds a Module node named name with body statements.
func Module(name string, body ...*Node) *Node {
	return New(syntax.KindModule).
		WithText(name).
		Set(syntax.FieldName, Ident(name)).
		Set(syntax.FieldBody, Program(body...))
}

// Enum builds an Enum node with the given member names.
func Enum(name string, members ...*Node) *Node {
	n := New(syntax.KindEnum).
		WithText(name).
		Set(syntax.FieldName, Ident(name))
	return n.SetAll(syntax.FieldMembers, members...)
}

// EnumMember builds one enum member node.
func EnumMember(name string) *Node {
	return New(syntax.KindPath).WithText(name).Set(syntax.FieldName, Ident(name))
}

// Def builds a method definition whose body holds the given statements;
// parameters are attached afterwards via Params.
func Def(name string, body ...*Node) *Node {
	return New(syntax.KindDef).
		WithText(name).
		Set(syntax.FieldName, Ident(name)).
		Set(syntax.FieldBody, Program(body...))
}

// Param builds a plain (non-default, non-splat) parameter.
func Param(name string) *Node {
	return New(syntax.KindArg).WithText(name).Set(syntax.FieldName, Ident(name))
}

// TypedParam builds a parameter with a type restriction.
func TypedParam(name string, typ *Node) *Node {
	return Param(name).Set(syntax.FieldType, typ)
}

// DefaultParam builds a parameter with a default value.
func DefaultParam(name string, def *Node) *Node {
	return Param(name).Set(syntax.FieldDefault, def)
}

// SplatParam builds a `*args` parameter.
func SplatParam(name string) *Node {
	return Param(name).WithFlag(syntax.FlagSplat)
}

// Path builds a type path node.
func Path(name string) *Node {
	return New(syntax.KindPath).WithText(name)
}

// Generic builds a `Name(args...)` generic type node.
func Generic(name string, args ...*Node) *Node {
	return New(syntax.KindGeneric).
		WithText(name).
		Set(syntax.FieldHead, Path(name)).
		SetAll(syntax.FieldTypeArgs, args...)
}

// Union builds an `A | B` type node.
func Union(members ...*Node) *Node {
	return New(syntax.KindUnion).SetAll(syntax.FieldElements, members...)
}

// Var builds a local variable reference.
func Var(name string) *Node {
	return New(syntax.KindVar).WithText(name)
}

// IVar builds an instance variable reference (name includes the `@`).
func IVar(name string) *Node {
	return New(syntax.KindInstanceVar).WithText(name)
}

// CVar builds a class variable reference (name includes the `@@`).
func CVar(name string) *Node {
	return New(syntax.KindClassVar).WithText(name)
}

// Assign builds `lhs = rhs`.
func Assign(lhs, rhs *Node) *Node {
	return New(syntax.KindAssign).
		Set(syntax.FieldLHS, lhs).
		Set(syntax.FieldRHS, rhs)
}

// Call builds a call with an optional receiver (nil for receiver-less).
func Call(name string, recv *Node, args ...*Node) *Node {
	n := New(syntax.KindCall).WithText(name).Set(syntax.FieldName, Ident(name))
	if recv != nil {
		n.Set(syntax.FieldReceiver, recv)
	}
	return n.SetAll(syntax.FieldArgs, args...)
}

// NewCall builds `recv.new(args...)`.
func NewCall(recv *Node, args ...*Node) *Node {
	return Call("new", recv, args...)
}

// Include builds an `include Target` node.
func Include(target *Node) *Node {
	return New(syntax.KindInclude).Set(syntax.FieldTarget, target)
}

// Alias builds `alias Name = Target`.
func Alias(name string, target *Node) *Node {
	return New(syntax.KindAlias).
		WithText(name).
		Set(syntax.FieldName, Ident(name)).
		Set(syntax.FieldTarget, target)
}

// Superclass attaches a superclass node to a Class.
func (n *Node) Superclass(sup *Node) *Node {
	return n.Set(syntax.FieldSuperclass, sup)
}

// TypeVars declares a Class's generic parameter names.
func (n *Node) TypeVars(names ...string) *Node {
	for _, name := range names {
		n.Set(syntax.FieldTypeVars, Ident(name))
	}
	return n
}

// Params attaches parameters to a Def.
func (n *Node) Params(params ...*Node) *Node {
	return n.SetAll(syntax.FieldParams, params...)
}

// Returns attaches a return-type annotation to a Def.
func (n *Node) Returns(typ *Node) *Node {
	return n.Set(syntax.FieldReturnType, typ)
}

// Str builds a string literal.
func Str(text string) *Node {
	return New(syntax.KindString).WithText(text)
}

// Num builds a number literal.
func Num(text string) *Node {
	return New(syntax.KindNumber).WithText(text)
}

// Sym builds a symbol literal (text includes the leading `:`).
func Sym(text string) *Node {
	return New(syntax.KindSymbol).WithText(text)
}

package macro

import (
	"strings"

	"github.com/viant/semindex/syntax"
)

// Macro-body node kinds. These tag the macro dialect's small expression
// language (literal output chunks, substitution expressions, if/else,
// for…in) rather than the host-language grammar of syntax/kind.go; they
// are produced by whatever parses a macro body, which is an external
// collaborator like the rest of the syntax-tree contract.
const (
	macroKindLiteral syntax.Kind = "MacroLiteral" // a literal output chunk, Text() is emitted verbatim
	macroKindExpr    syntax.Kind = "MacroExpr"    // Field(FieldValue) is evaluated and stringified
	macroKindIf      syntax.Kind = "MacroIf"      // Field(FieldCond)/(FieldThen)/(FieldElse)
	macroKindFor     syntax.Kind = "MacroFor"     // Field(FieldName) loop var, Field(FieldValue) iterable, Field(FieldBody)
)

// env is the substitution environment mapping a macro parameter name to
// the argument node the caller supplied in its place.
type env map[string]syntax.Node

// value is the interpreter's result type: either a plain string (a literal,
// a stringified result, or a concatenation) or a wrapped node (so `id`,
// `is_a?`, and `TypeDeclaration.*` can still inspect node structure after
// substitution).
type value struct {
	text  string
	node  syntax.Node
	isNil bool
}

func nodeValue(n syntax.Node) value {
	if n == nil {
		return value{isNil: true}
	}
	return value{text: n.Text(), node: n}
}

func stringValue(s string) value { return value{text: s} }

// truthy: not nil, not Nop, not false.
func (v value) truthy() bool {
	if v.isNil {
		return false
	}
	if v.node != nil {
		switch v.node.Kind() {
		case syntax.KindNil, syntax.KindNop:
			return false
		case syntax.KindBool:
			return v.node.Text() != "false"
		}
	}
	return v.text != "false"
}

// Interpret renders body's textual expansion given the substitution
// environment bound from the call site's arguments. Bodies
// are a sequence of MacroLiteral/MacroExpr/MacroIf/MacroFor nodes; any
// other node kind encountered renders empty, per "unknown forms render
// empty".
func Interpret(body syntax.Node, e env) string {
	var sb strings.Builder
	interpretSeq(syntax.Children(body), e, &sb)
	return sb.String()
}

func interpretSeq(nodes []syntax.Node, e env, sb *strings.Builder) {
	for _, n := range nodes {
		interpretNode(n, e, sb)
	}
}

func interpretNode(n syntax.Node, e env, sb *strings.Builder) {
	if n == nil {
		return
	}
	switch n.Kind() {
	case macroKindLiteral:
		sb.WriteString(n.Text())
	case macroKindExpr:
		v := eval(n.Field(syntax.FieldValue), e)
		sb.WriteString(v.text)
	case macroKindIf:
		cond := eval(n.Field(syntax.FieldCond), e)
		if cond.truthy() {
			interpretSeq(syntax.Children(n.Field(syntax.FieldThen)), e, sb)
		} else if els := n.Field(syntax.FieldElse); els != nil {
			interpretSeq(syntax.Children(els), e, sb)
		}
	case macroKindFor:
		loopVar := n.Field(syntax.FieldName)
		iterable := n.Field(syntax.FieldValue)
		bodyNode := n.Field(syntax.FieldBody)
		if loopVar == nil || iterable == nil || bodyNode == nil {
			return
		}
		name := loopVar.Text()
		for _, item := range elementsOf(iterable) {
			scoped := cloneEnv(e)
			scoped[name] = item
			interpretSeq(syntax.Children(bodyNode), scoped, sb)
		}
	default:
		// Unknown forms render empty.
	}
}

// elementsOf reads an Array/Tuple literal's elements, the only
// iterables a `for…in` accepts.
func elementsOf(n syntax.Node) []syntax.Node {
	if n == nil {
		return nil
	}
	switch n.Kind() {
	case syntax.KindArray, syntax.KindTuple:
		return n.Fields(syntax.FieldElements)
	}
	return nil
}

func cloneEnv(e env) env {
	out := make(env, len(e)+1)
	for k, v := range e {
		out[k] = v
	}
	return out
}

// eval evaluates one expression node of the macro mini-language:
// literals are themselves, an identifier reads env, and method
// calls on literals implement id/is_a?<Kind>/stringify/string
// `+`/TypeDeclaration.{var,type,value}.
func eval(n syntax.Node, e env) value {
	if n == nil {
		return value{isNil: true}
	}
	switch n.Kind() {
	case syntax.KindString, syntax.KindNumber, syntax.KindSymbol, syntax.KindBool, syntax.KindNil:
		return nodeValue(n)
	case syntax.KindVar, syntax.KindPath:
		if bound, ok := e[n.Text()]; ok {
			return nodeValue(bound)
		}
		return nodeValue(n)
	case syntax.KindCall:
		return evalCall(n, e)
	default:
		return nodeValue(n)
	}
}

func evalCall(n syntax.Node, e env) value {
	name := ""
	if f := n.Field(syntax.FieldName); f != nil {
		name = f.Text()
	}
	recvNode := n.Field(syntax.FieldReceiver)
	recv := eval(recvNode, e)

	switch {
	case name == "id":
		return stringValue(identifierOf(recv))
	case name == "stringify":
		return stringValue(`"` + identifierOf(recv) + `"`)
	case strings.HasPrefix(name, "is_a?"):
		wantKind := syntax.Kind(strings.TrimPrefix(name, "is_a?"))
		if recv.node != nil && recv.node.Kind() == wantKind {
			return stringValue("true")
		}
		return stringValue("false")
	case name == "+":
		args := n.Fields(syntax.FieldArgs)
		if len(args) == 0 {
			return recv
		}
		rhs := eval(args[0], e)
		return stringValue(recv.text + rhs.text)
	case name == "var", name == "type", name == "value":
		return evalTypeDeclarationAccessor(recvNode, e, name)
	}
	return value{isNil: true}
}

// identifierOf returns the plain identifier text of a value: the wrapped
// node's own declared name if it has one, else its raw text.
func identifierOf(v value) string {
	if v.node != nil {
		if nameField := v.node.Field(syntax.FieldName); nameField != nil {
			return nameField.Text()
		}
		return v.node.Text()
	}
	return v.text
}

// evalTypeDeclarationAccessor implements `TypeDeclaration.{var,type,value}`
//: receiver must evaluate to a TypeDeclaration node.
func evalTypeDeclarationAccessor(recvNode syntax.Node, e env, which string) value {
	v := eval(recvNode, e)
	if v.node == nil || v.node.Kind() != syntax.KindTypeDecl {
		return value{isNil: true}
	}
	switch which {
	case "var":
		return nodeValue(v.node.Field(syntax.FieldName))
	case "type":
		return nodeValue(v.node.Field(syntax.FieldType))
	case "value":
		return nodeValue(v.node.Field(syntax.FieldValue))
	}
	return value{isNil: true}
}

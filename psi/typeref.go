// Package psi is the owned graph of modules, classes, enums, aliases,
// methods, and variables the semantic index maintains. It has no
// knowledge of the syntax tree that produced it.
package psi

import "strings"

// TypeRef is a compact structural type reference: exactly one of Args or
// Union is meaningful, selected by the zero-valueness of Union. Names are fully-qualified with `::`
// separators; a leading `::` marks global scope; the pseudo-name `self` is
// resolved relative to context by callers, not by TypeRef itself.
type TypeRef struct {
	Name  string    // named shape: "" when Union is set
	Args  []TypeRef // generic type arguments, e.g. Container(T)
	Union []TypeRef // union shape: non-empty, Name/Args unused when set
}

// NewNamed builds a non-generic named TypeRef.
func NewNamed(name string) TypeRef { return TypeRef{Name: name} }

// NewGeneric builds a named TypeRef with type arguments.
func NewGeneric(name string, args ...TypeRef) TypeRef {
	return TypeRef{Name: name, Args: args}
}

// NewUnion builds a union TypeRef. Panics on an empty member list since a
// union must have at least one member.
func NewUnion(members ...TypeRef) TypeRef {
	if len(members) == 0 {
		panic("psi: union TypeRef requires at least one member")
	}
	return TypeRef{Union: members}
}

// IsUnion reports whether t is a union shape.
func (t TypeRef) IsUnion() bool { return len(t.Union) > 0 }

// IsZero reports whether t carries no information at all.
func (t TypeRef) IsZero() bool { return t.Name == "" && len(t.Union) == 0 }

// IsGlobal reports whether the named shape is anchored at global scope.
func (t TypeRef) IsGlobal() bool { return strings.HasPrefix(t.Name, "::") }

// IsSelf reports whether the named shape is the pseudo-name `self`.
func (t TypeRef) IsSelf() bool { return t.Name == "self" }

// Display renders the TypeRef: `Name(arg, arg)`
// for a named shape, `A | B` for a union.
func (t TypeRef) Display() string {
	if t.IsUnion() {
		parts := make([]string, len(t.Union))
		for i, m := range t.Union {
			parts[i] = m.Display()
		}
		return strings.Join(parts, " | ")
	}
	if len(t.Args) == 0 {
		return t.Name
	}
	parts := make([]string, len(t.Args))
	for i, a := range t.Args {
		parts[i] = a.Display()
	}
	return t.Name + "(" + strings.Join(parts, ", ") + ")"
}

// WithArgs returns a copy of t with its type arguments replaced.
func (t TypeRef) WithArgs(args []TypeRef) TypeRef {
	t.Args = args
	return t
}

// Substitute replaces every occurrence of a bound type-variable name
// with its corresponding TypeRef, the generic return-type substitution
// step. Unmatched names pass through unchanged.
func (t TypeRef) Substitute(bindings map[string]TypeRef) TypeRef {
	if t.IsUnion() {
		members := make([]TypeRef, len(t.Union))
		for i, m := range t.Union {
			members[i] = m.Substitute(bindings)
		}
		return TypeRef{Union: members}
	}
	if bound, ok := bindings[t.Name]; ok && len(t.Args) == 0 {
		return bound
	}
	if len(t.Args) == 0 {
		return t
	}
	args := make([]TypeRef, len(t.Args))
	for i, a := range t.Args {
		args[i] = a.Substitute(bindings)
	}
	return TypeRef{Name: t.Name, Args: args}
}

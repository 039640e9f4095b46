package psi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeRef_Display(t *testing.T) {
	tests := []struct {
		name string
		ref  TypeRef
		want string
	}{
		{
			name: "plain name",
			ref:  NewNamed("Foo"),
			want: "Foo",
		},
		{
			name: "generic",
			ref:  NewGeneric("Hash", NewNamed("String"), NewNamed("Int32")),
			want: "Hash(String, Int32)",
		},
		{
			name: "union",
			ref:  NewUnion(NewNamed("String"), NewNamed("Nil")),
			want: "String | Nil",
		},
		{
			name: "nested generic in union",
			ref:  NewUnion(NewGeneric("Array", NewNamed("Int32")), NewNamed("Nil")),
			want: "Array(Int32) | Nil",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.ref.Display())
		})
	}
}

func TestTypeRef_Substitute(t *testing.T) {
	bindings := map[string]TypeRef{"T": NewNamed("Item")}

	tests := []struct {
		name string
		ref  TypeRef
		want string
	}{
		{name: "bare type var", ref: NewNamed("T"), want: "Item"},
		{name: "unrelated name", ref: NewNamed("String"), want: "String"},
		{name: "inside generic", ref: NewGeneric("Array", NewNamed("T")), want: "Array(Item)"},
		{name: "inside union", ref: NewUnion(NewNamed("T"), NewNamed("Nil")), want: "Item | Nil"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.ref.Substitute(bindings).Display())
		})
	}
}

func TestArity_Matches(t *testing.T) {
	tests := []struct {
		name  string
		arity Arity
		argc  int
		want  bool
	}{
		{name: "exact", arity: Arity{Min: 2, Max: 2}, argc: 2, want: true},
		{name: "below min", arity: Arity{Min: 2, Max: 2}, argc: 1, want: false},
		{name: "above max", arity: Arity{Min: 0, Max: 1}, argc: 2, want: false},
		{name: "default widens range", arity: Arity{Min: 1, Max: 3}, argc: 2, want: true},
		{name: "splat unbounded", arity: Arity{Min: 1, Unbounded: true}, argc: 9, want: true},
		{name: "splat still enforces min", arity: Arity{Min: 1, Unbounded: true}, argc: 0, want: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.arity.Matches(tc.argc))
		})
	}
}

func TestTypeRef_Shape(t *testing.T) {
	assert.True(t, NewUnion(NewNamed("A")).IsUnion())
	assert.False(t, NewNamed("A").IsUnion())
	assert.True(t, TypeRef{}.IsZero())
	assert.True(t, NewNamed("::Top").IsGlobal())
	assert.True(t, NewNamed("self").IsSelf())
	assert.Panics(t, func() { NewUnion() })
}

package complete_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/semindex/complete"
	"github.com/viant/semindex/indexer"
	"github.com/viant/semindex/internal/fixture"
	"github.com/viant/semindex/syntax"
)

func noParse(string, []byte) (syntax.Node, error) {
	return fixture.Program(), nil
}

func labels(items []complete.Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Label)
	}
	return out
}

func TestComplete_DotMembers(t *testing.T) {
	p := indexer.New(noParse)
	p.IndexFile("lib.cr", fixture.Program(
		fixture.Class("User",
			fixture.Def("name"),
			fixture.Def("email"),
			fixture.Def("create").WithFlag(syntax.FlagClassMethod),
		),
	))

	// u.| with u : User, cursor right after the dot.
	recv := fixture.Var("u").At(1, 2, 1, 3)
	tree := fixture.Program(
		fixture.Def("run",
			fixture.Assign(fixture.Var("u"), fixture.NewCall(fixture.Path("User"))).At(0, 2, 0, 14),
			recv,
		).At(0, 0, 2, 3),
	)

	e := complete.New(p.Idx)
	items := e.Complete(complete.Context{
		Tree:    tree,
		Pos:     syntax.Position{Line: 1, Character: 4},
		Trigger: ".",
		Line:    "  u.",
	})
	assert.ElementsMatch(t, []string{"name", "email"}, labels(items))
	for _, it := range items {
		assert.Equal(t, complete.ItemMethod, it.Kind)
		require.NotNil(t, it.Data)
		assert.NotEmpty(t, it.Data.Signature)
	}
}

func TestComplete_DotMembersOnTypeListsClassMethods(t *testing.T) {
	p := indexer.New(noParse)
	p.IndexFile("lib.cr", fixture.Program(
		fixture.Class("User",
			fixture.Def("name"),
			fixture.Def("create").WithFlag(syntax.FlagClassMethod),
		),
	))

	recv := fixture.Path("User").At(0, 0, 0, 4)
	tree := fixture.Program(recv)

	e := complete.New(p.Idx)
	items := e.Complete(complete.Context{
		Tree:    tree,
		Pos:     syntax.Position{Line: 0, Character: 5},
		Trigger: ".",
		Line:    "User.",
	})
	assert.Equal(t, []string{"create"}, labels(items))
}

func TestComplete_GenericValueChain(t *testing.T) {
	p := indexer.New(noParse)
	p.IndexFile("lib.cr", fixture.Program(
		fixture.Class("Container",
			fixture.Def("value").Returns(fixture.Path("T")),
		).TypeVars("T"),
		fixture.Class("Item", fixture.Def("ping")),
	))

	// c.value.| with c : Container(Item)
	valueCall := fixture.Call("value", fixture.Var("c").At(1, 2, 1, 3)).At(1, 2, 1, 9).NameAt(1, 4, 1, 9)
	tree := fixture.Program(
		fixture.Def("run",
			fixture.Assign(
				fixture.Var("c"),
				fixture.NewCall(fixture.Generic("Container", fixture.Path("Item"))),
			).At(0, 2, 0, 30),
			valueCall,
		).At(0, 0, 2, 3),
	)

	e := complete.New(p.Idx)
	items := e.Complete(complete.Context{
		Tree:    tree,
		Pos:     syntax.Position{Line: 1, Character: 10},
		Trigger: ".",
		Line:    "  c.value.",
	})
	assert.Contains(t, labels(items), "ping")
}

func TestComplete_Namespace(t *testing.T) {
	p := indexer.New(noParse)
	p.IndexFile("lib.cr", fixture.Program(
		fixture.Module("Api",
			fixture.Class("Client"),
			fixture.Class("Config"),
			fixture.Module("Internal"),
		),
		fixture.Enum("Color",
			fixture.EnumMember("Red"),
			fixture.EnumMember("Green"),
		),
	))

	e := complete.New(p.Idx)

	items := e.Complete(complete.Context{
		Tree: fixture.Program(),
		Pos:  syntax.Position{Line: 0, Character: 5},
		Line: "Api::",
	})
	assert.ElementsMatch(t, []string{"Client", "Config", "Internal"}, labels(items))

	items = e.Complete(complete.Context{
		Tree: fixture.Program(),
		Pos:  syntax.Position{Line: 0, Character: 8},
		Line: "Api::Con",
	})
	assert.Equal(t, []string{"Config"}, labels(items))

	items = e.Complete(complete.Context{
		Tree: fixture.Program(),
		Pos:  syntax.Position{Line: 0, Character: 7},
		Line: "Color::",
	})
	assert.ElementsMatch(t, []string{"Red", "Green"}, labels(items))
	for _, it := range items {
		assert.Equal(t, complete.ItemEnumMember, it.Kind)
	}
}

func TestComplete_InstanceVars(t *testing.T) {
	p := indexer.New(noParse)
	class := fixture.Class("User",
		fixture.Def("initialize",
			fixture.Assign(fixture.IVar("@name"), fixture.NewCall(fixture.Path("String"))).At(1, 4, 1, 24),
			fixture.Assign(fixture.IVar("@age"), fixture.NewCall(fixture.Path("Int32"))).At(2, 4, 2, 22),
		).At(0, 2, 3, 5),
		fixture.Def("show").At(4, 2, 5, 5),
	).At(0, 0, 6, 3)
	tree := fixture.Program(class)
	p.IndexFile("user.cr", tree)

	e := complete.New(p.Idx)
	items := e.Complete(complete.Context{
		Tree:    tree,
		Pos:     syntax.Position{Line: 4, Character: 10},
		Trigger: "@",
		Line:    "    @",
	})
	assert.ElementsMatch(t, []string{"@name", "@age"}, labels(items))
}

func TestComplete_GeneralFallback(t *testing.T) {
	p := indexer.New(noParse)
	p.IndexFile("lib.cr", fixture.Program(
		fixture.Class("User"),
		fixture.Class("Widget"),
	))

	tree := fixture.Program(
		fixture.Def("run",
			fixture.Assign(fixture.Var("user_count"), fixture.NewCall(fixture.Path("User"))).At(0, 2, 0, 24),
		).At(0, 0, 2, 3),
	)

	e := complete.New(p.Idx)
	items := e.Complete(complete.Context{
		Tree: tree,
		Pos:  syntax.Position{Line: 1, Character: 2},
		Line: "  ",
	})
	got := labels(items)
	assert.Contains(t, got, "user_count")
	assert.Contains(t, got, "User")
	assert.Contains(t, got, "Widget")
}

func TestComplete_ResolveItem(t *testing.T) {
	it := complete.Item{
		Label: "name",
		Kind:  complete.ItemMethod,
		Data:  &complete.ItemData{Signature: "def User#name : String", Doc: "The user's name."},
	}
	resolved := complete.ResolveItem(it)
	assert.Equal(t, "```\ndef User#name : String\n```\n\nThe user's name.", resolved.Documentation)

	plain := complete.ResolveItem(complete.Item{Label: "x"})
	assert.Empty(t, plain.Documentation)
}

func TestKeywords_Contexts(t *testing.T) {
	// Top level: declaration keywords.
	topTree := fixture.Program()
	e := complete.New(indexer.New(noParse).Idx)
	items := e.Complete(complete.Context{Tree: topTree, Pos: syntax.Position{}, Line: ""})
	got := labels(items)
	assert.Contains(t, got, "class")
	assert.Contains(t, got, "module")
	assert.NotContains(t, got, "return")

	// Method body: statement keywords.
	bodyTree := fixture.Program(
		fixture.Class("App",
			fixture.Def("run").At(1, 2, 3, 5),
		).At(0, 0, 4, 3),
	)
	items = e.Complete(complete.Context{Tree: bodyTree, Pos: syntax.Position{Line: 2, Character: 4}, Line: "    "})
	got = labels(items)
	assert.Contains(t, got, "if")
	assert.Contains(t, got, "return")
	assert.NotContains(t, got, "elsif")

	// Inside a while body: loop keywords join in.
	loopTree := fixture.Program(
		fixture.Class("App",
			fixture.Def("run",
				fixture.New(syntax.KindWhile).
					Set(syntax.FieldCond, fixture.Var("go").At(2, 10, 2, 12)).
					At(2, 4, 4, 7),
			).At(1, 2, 5, 5),
		).At(0, 0, 6, 3),
	)
	items = e.Complete(complete.Context{Tree: loopTree, Pos: syntax.Position{Line: 3, Character: 6}, Line: "      "})
	got = labels(items)
	assert.Contains(t, got, "break")
	assert.Contains(t, got, "next")

	// Inside the condition itself: only value keywords.
	items = e.Complete(complete.Context{Tree: loopTree, Pos: syntax.Position{Line: 2, Character: 10}, Line: "    while "})
	got = labels(items)
	assert.Contains(t, got, "true")
	assert.NotContains(t, got, "if")
}

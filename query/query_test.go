package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/semindex/indexer"
	"github.com/viant/semindex/internal/fixture"
	"github.com/viant/semindex/query"
	"github.com/viant/semindex/syntax"
)

func noParse(string, []byte) (syntax.Node, error) {
	return fixture.Program(), nil
}

func pos(line, char int) syntax.Position {
	return syntax.Position{Line: line, Character: char}
}

func TestHover_Method(t *testing.T) {
	p := indexer.New(noParse)
	p.IndexFile("lib.cr", fixture.Program(
		fixture.Class("User",
			fixture.Def("name").Returns(fixture.Path("String")).WithDoc("The user's name."),
		),
	))

	call := fixture.Call("name", fixture.Var("u")).At(1, 2, 1, 8).NameAt(1, 4, 1, 8)
	tree := fixture.Program(
		fixture.Def("run",
			fixture.Assign(fixture.Var("u"), fixture.NewCall(fixture.Path("User"))).At(0, 2, 0, 14),
			call,
		).At(0, 0, 2, 3),
	)

	e := query.New(p.Idx)
	md, ok := e.Hover(tree, pos(1, 5))
	require.True(t, ok)
	assert.Contains(t, md, "```\ndef User#name() : String\n```")
	assert.Contains(t, md, "The user's name.")
}

func TestHover_ClassWithSuperclass(t *testing.T) {
	p := indexer.New(noParse)
	p.IndexFile("lib.cr", fixture.Program(
		fixture.Class("Base"),
		fixture.Class("Child").Superclass(fixture.Path("Base")),
	))

	ref := fixture.Path("Child").At(0, 0, 0, 5)
	tree := fixture.Program(ref)

	e := query.New(p.Idx)
	md, ok := e.Hover(tree, pos(0, 2))
	require.True(t, ok)
	assert.Contains(t, md, "```\nclass Child < Base\n```")

	// Removing the defining file also drops the rendered superclass on a
	// surviving reopening.
	p.IndexFile("other.cr", fixture.Program(fixture.Class("Child")))
	p.Idx.RemoveFile("lib.cr")
	md, ok = e.Hover(tree, pos(0, 2))
	require.True(t, ok)
	assert.Contains(t, md, "```\nclass Child\n```")
}

func TestHover_UnknownSymbol(t *testing.T) {
	p := indexer.New(noParse)
	tree := fixture.Program(fixture.Path("Nope").At(0, 0, 0, 4))
	e := query.New(p.Idx)
	_, ok := e.Hover(tree, pos(0, 1))
	assert.False(t, ok)
}

func TestSignatureHelp_ActiveSignatureAndParameter(t *testing.T) {
	p := indexer.New(noParse)
	p.IndexFile("lib.cr", fixture.Program(
		fixture.Class("Svc",
			fixture.Def("send").Params(fixture.Param("to")),
			fixture.Def("send").Params(fixture.Param("to"), fixture.Param("body")),
		),
	))

	// s.send(1, |) with two args underway, cursor in the second.
	call := fixture.Call("send", fixture.Var("s").At(1, 2, 1, 3),
		fixture.Num("1").At(1, 9, 1, 10),
		fixture.Num("2").At(1, 12, 1, 13),
	).At(1, 2, 1, 14).NameAt(1, 4, 1, 8).WithFlag(syntax.FlagParens)
	tree := fixture.Program(
		fixture.Def("run",
			fixture.Assign(fixture.Var("s"), fixture.NewCall(fixture.Path("Svc"))).At(0, 2, 0, 14),
			call,
		).At(0, 0, 2, 3),
	)

	e := query.New(p.Idx)
	help, ok := e.SignatureHelp(tree, pos(1, 12))
	require.True(t, ok)
	require.Len(t, help.Signatures, 2)
	assert.Equal(t, 1, help.ActiveSignature, "two-arg overload admits the call")
	assert.Equal(t, 1, help.ActiveParameter)
	assert.Equal(t, "def Svc#send(to, body)", help.Signatures[1].Label)
	require.Len(t, help.Signatures[1].Parameters, 2)
	assert.Equal(t, "to", help.Signatures[1].Parameters[0].Label)
}

func TestSignatureHelp_ConstructorPrefersClassNew(t *testing.T) {
	p := indexer.New(noParse)
	p.IndexFile("lib.cr", fixture.Program(
		fixture.Class("Bean",
			fixture.Def("new").Params(fixture.Param("x")).WithFlag(syntax.FlagClassMethod),
			fixture.Def("initialize").Params(fixture.Param("x"), fixture.Param("y")),
		),
	))

	call := fixture.Call("new", fixture.Path("Bean"),
		fixture.Num("1").At(0, 9, 0, 10),
	).At(0, 0, 0, 11).NameAt(0, 5, 0, 8).WithFlag(syntax.FlagParens)
	tree := fixture.Program(call)

	e := query.New(p.Idx)
	help, ok := e.SignatureHelp(tree, pos(0, 9))
	require.True(t, ok)
	require.Len(t, help.Signatures, 1)
	assert.Contains(t, help.Signatures[0].Label, "Bean.new")
}

func TestSignatureHelp_InactiveOutsideCall(t *testing.T) {
	p := indexer.New(noParse)
	// Parenless, argless call: never active.
	call := fixture.Call("ping", fixture.Var("s").At(1, 2, 1, 3)).At(1, 2, 1, 9).NameAt(1, 4, 1, 8)
	tree := fixture.Program(
		fixture.Def("run", call).At(0, 0, 2, 3),
	)

	e := query.New(p.Idx)
	_, ok := e.SignatureHelp(tree, pos(1, 9))
	assert.False(t, ok)
}

func TestHighlights_LocalVar(t *testing.T) {
	def := fixture.Def("run",
		fixture.Assign(fixture.Var("x").At(1, 2, 1, 3), fixture.Num("1")).At(1, 2, 1, 7),
		fixture.Call("puts", nil, fixture.Var("x").At(2, 7, 2, 8)).At(2, 2, 2, 9).NameAt(2, 2, 2, 6),
		fixture.Def("nested",
			fixture.Var("x").At(4, 4, 4, 5),
		).At(3, 2, 5, 5),
	).At(0, 0, 6, 3)
	tree := fixture.Program(def)

	p := indexer.New(noParse)
	e := query.New(p.Idx)
	ranges := e.Highlights(tree, pos(1, 2))
	require.Len(t, ranges, 2, "nested def occurrences are out of scope")
	assert.Equal(t, 1, ranges[0].Start.Line)
	assert.Equal(t, 2, ranges[1].Start.Line)
}

func TestHighlights_InstanceVar(t *testing.T) {
	class := fixture.Class("User",
		fixture.Def("initialize",
			fixture.Assign(fixture.IVar("@name").At(1, 4, 1, 9), fixture.Num("1")).At(1, 4, 1, 13),
		).At(0, 2, 2, 5),
		fixture.Def("show",
			fixture.IVar("@name").At(4, 4, 4, 9),
		).At(3, 2, 5, 5),
	).At(0, 0, 6, 3)
	tree := fixture.Program(class)

	p := indexer.New(noParse)
	e := query.New(p.Idx)
	ranges := e.Highlights(tree, pos(4, 5))
	assert.Len(t, ranges, 2, "ivar occurrences span the whole class body")
}

func TestHighlights_Path(t *testing.T) {
	a := fixture.Path("Color").At(0, 0, 0, 5)
	b := fixture.Path("Color").At(2, 4, 2, 9)
	other := fixture.Path("Shade").At(3, 0, 3, 5)
	tree := fixture.Program(a, fixture.Def("run", b).At(1, 0, 3, 3), other)

	p := indexer.New(noParse)
	e := query.New(p.Idx)
	ranges := e.Highlights(tree, pos(0, 2))
	assert.Len(t, ranges, 2)
}

func TestSelectionRanges(t *testing.T) {
	inner := fixture.Var("x").At(2, 4, 2, 5)
	call := fixture.Call("puts", nil, inner).At(2, 0, 2, 6).NameAt(2, 0, 2, 4)
	def := fixture.Def("run", call).At(1, 0, 3, 3)
	class := fixture.Class("Foo", def).At(0, 0, 4, 3)
	tree := fixture.Program(class)

	leaf := query.SelectionRangeAt(tree, pos(2, 4))
	require.NotNil(t, leaf)

	// Chain from innermost out: var, call, def, class.
	var chain []syntax.Location
	for sr := leaf; sr != nil; sr = sr.Parent {
		chain = append(chain, sr.Range)
	}
	require.Len(t, chain, 4)
	assert.Equal(t, 2, chain[0].Start.Line)
	assert.Equal(t, 0, chain[3].Start.Line)
}

func TestSelectionRanges_NameRangeAppended(t *testing.T) {
	call := fixture.Call("greet", nil).At(1, 0, 1, 8).NameAt(1, 0, 1, 5)
	tree := fixture.Program(fixture.Def("run", call).At(0, 0, 2, 3))

	leaf := query.SelectionRangeAt(tree, pos(1, 2))
	require.NotNil(t, leaf)
	assert.Equal(t, syntax.Position{Line: 1, Character: 5}, leaf.Range.End, "leaf is the name range")
	require.NotNil(t, leaf.Parent)
	assert.Equal(t, syntax.Position{Line: 1, Character: 8}, leaf.Parent.Range.End)
}

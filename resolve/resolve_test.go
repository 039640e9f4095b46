package resolve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/semindex/indexer"
	"github.com/viant/semindex/internal/fixture"
	"github.com/viant/semindex/psi"
	"github.com/viant/semindex/resolve"
	"github.com/viant/semindex/syntax"
)

func noParse(uri string, _ []byte) (syntax.Node, error) {
	return fixture.Program(), nil
}

func pos(line, char int) syntax.Position {
	return syntax.Position{Line: line, Character: char}
}

func TestDefinition_SuperclassMethod(t *testing.T) {
	p := indexer.New(noParse)
	p.IndexFile("base.cr", fixture.Program(
		fixture.Class("Base", fixture.Def("greet")),
	))

	greetCall := fixture.Call("greet", nil).At(2, 4, 2, 9).NameAt(2, 4, 2, 9)
	childTree := fixture.Program(
		fixture.Class("Child",
			fixture.Def("call", greetCall).At(1, 2, 3, 5),
		).Superclass(fixture.Path("Base")).At(0, 0, 4, 3),
	)
	p.IndexFile("child.cr", childTree)

	r := resolve.New(p.Idx)
	elems := r.Definition(childTree, pos(2, 5))
	require.Len(t, elems, 1)
	m := elems[0].(*psi.Method)
	assert.Equal(t, "greet", m.Name)
	assert.Equal(t, "Base", m.Owner)

	// Emptying Base and reindexing pulls the definition out from under
	// the child file.
	reindexed := p.Reindex("base.cr", fixture.Program(fixture.Class("Base")))
	assert.Contains(t, reindexed, "child.cr")
	assert.Empty(t, r.Definition(childTree, pos(2, 5)))
}

func TestDefinition_ConstructorDispatch(t *testing.T) {
	p := indexer.New(noParse)
	withClassNew := fixture.Program(
		fixture.Class("Bean",
			fixture.Def("new").Params(fixture.Param("x")).WithFlag(syntax.FlagClassMethod),
			fixture.Def("initialize").Params(fixture.Param("x")),
		),
	)
	p.IndexFile("bean.cr", withClassNew)

	call := fixture.Call("new", fixture.Path("Bean"), fixture.Num("1")).At(0, 0, 0, 11).NameAt(0, 5, 0, 8)
	callTree := fixture.Program(call)

	r := resolve.New(p.Idx)
	elems := r.Definition(callTree, pos(0, 6))
	require.Len(t, elems, 1)
	m := elems[0].(*psi.Method)
	assert.Equal(t, "new", m.Name)
	assert.True(t, m.ClassMethod)

	// Without the class-method new, the same call binds initialize.
	p.IndexFile("bean.cr", fixture.Program(
		fixture.Class("Bean",
			fixture.Def("initialize").Params(fixture.Param("x")),
		),
	))
	elems = r.Definition(callTree, pos(0, 6))
	require.Len(t, elems, 1)
	m = elems[0].(*psi.Method)
	assert.Equal(t, "initialize", m.Name)
}

func TestDefinition_EnumMember(t *testing.T) {
	p := indexer.New(noParse)
	p.IndexFile("color.cr", fixture.Program(
		fixture.Enum("Color",
			fixture.EnumMember("Red"),
			fixture.EnumMember("Green"),
		),
	))

	ref := fixture.Path("Color::Green").At(0, 0, 0, 12)
	tree := fixture.Program(ref)

	r := resolve.New(p.Idx)
	elems := r.Definition(tree, pos(0, 3))
	require.Len(t, elems, 1)
	em := elems[0].(*psi.EnumMember)
	assert.Equal(t, "Green", em.Name)
	assert.Equal(t, "Color", em.Owner)
}

func TestDefinition_PathToReopenedType(t *testing.T) {
	p := indexer.New(noParse)
	p.IndexFile("a.cr", fixture.Program(fixture.Class("Foo")))
	p.IndexFile("b.cr", fixture.Program(fixture.Class("Foo")))

	ref := fixture.Path("Foo").At(0, 0, 0, 3)
	tree := fixture.Program(ref)

	r := resolve.New(p.Idx)
	elems := r.Definition(tree, pos(0, 1))
	require.Len(t, elems, 2)
	fileA, _ := elems[0].Origin()
	fileB, _ := elems[1].Origin()
	assert.Equal(t, []string{"a.cr", "b.cr"}, []string{fileA, fileB})
}

func TestDefinition_AliasShadowsType(t *testing.T) {
	p := indexer.New(noParse)
	p.IndexFile("a.cr", fixture.Program(
		fixture.Class("Target"),
		fixture.Alias("Shortcut", fixture.Path("Target")),
	))

	ref := fixture.Path("Shortcut").At(0, 0, 0, 8)
	tree := fixture.Program(ref)

	r := resolve.New(p.Idx)
	elems := r.Definition(tree, pos(0, 2))
	require.Len(t, elems, 1)
	a, ok := elems[0].(*psi.Alias)
	require.True(t, ok, "alias resolution must win over type resolution")
	assert.Equal(t, "Shortcut", a.Name)
	require.NotNil(t, a.Target)
	assert.Equal(t, "Target", a.Target.Display())
}

func TestDefinition_AliasedVariableCall(t *testing.T) {
	p := indexer.New(noParse)
	p.IndexFile("lib.cr", fixture.Program(
		fixture.Class("Real", fixture.Def("run")),
		fixture.Alias("Handle", fixture.Path("Real")),
	))

	runCall := fixture.Call("run", fixture.Var("h")).At(2, 2, 2, 8).NameAt(2, 4, 2, 7)
	tree := fixture.Program(
		fixture.Class("App",
			fixture.Def("main",
				fixture.Assign(fixture.Var("h"), fixture.NewCall(fixture.Path("Handle"))).At(1, 4, 1, 18),
				runCall,
			).At(0, 2, 3, 5),
		).At(0, 0, 4, 3),
	)
	p.IndexFile("app.cr", tree)

	r := resolve.New(p.Idx)
	elems := r.Definition(tree, pos(2, 5))
	require.Len(t, elems, 1)
	m := elems[0].(*psi.Method)
	assert.Equal(t, "run", m.Name)
	assert.Equal(t, "Real", m.Owner)
}

func TestDefinition_LocalVar(t *testing.T) {
	use := fixture.Var("x").At(2, 4, 2, 5)
	tree := fixture.Program(
		fixture.Class("App",
			fixture.Def("main",
				fixture.Assign(fixture.Var("x").At(1, 4, 1, 5), fixture.Num("1")).At(1, 4, 1, 9),
				use,
			).At(0, 2, 3, 5),
		).At(0, 0, 4, 3),
	)
	p := indexer.New(noParse)
	p.IndexFile("app.cr", tree)

	r := resolve.New(p.Idx)
	elems := r.Definition(tree, pos(2, 4))
	require.Len(t, elems, 1)
	lv := elems[0].(*psi.LocalVar)
	assert.Equal(t, "x", lv.Name)
	loc, ok := lv.Loc()
	require.True(t, ok)
	assert.Equal(t, 1, loc.Start.Line)
}

func TestDefinition_ParamShadowedByReassignment(t *testing.T) {
	// def foo(x); x = 5; x; end — the trailing x binds to the
	// reassignment, not the parameter.
	use := fixture.Var("x").At(2, 4, 2, 5)
	tree := fixture.Program(
		fixture.Class("App",
			fixture.Def("foo",
				fixture.Assign(fixture.Var("x").At(1, 4, 1, 5), fixture.Num("5")).At(1, 4, 1, 9),
				use,
			).Params(fixture.Param("x").At(0, 10, 0, 11)).At(0, 2, 3, 5),
		).At(0, 0, 4, 3),
	)
	p := indexer.New(noParse)
	p.IndexFile("app.cr", tree)

	r := resolve.New(p.Idx)
	elems := r.Definition(tree, pos(2, 4))
	require.Len(t, elems, 1)
	lv := elems[0].(*psi.LocalVar)
	loc, ok := lv.Loc()
	require.True(t, ok)
	assert.Equal(t, 1, loc.Start.Line, "reassignment shadows the param")

	// A cursor on the assignment's right-hand literal resolves to nothing.
	elems = r.Definition(tree, pos(1, 8))
	require.Len(t, elems, 0, "rhs literal is not a var")
}

func TestDefinition_ParamWithoutReassignment(t *testing.T) {
	use := fixture.Var("x").At(1, 4, 1, 5)
	tree := fixture.Program(
		fixture.Class("App",
			fixture.Def("foo",
				use,
			).Params(fixture.Param("x").At(0, 10, 0, 11)).At(0, 2, 2, 5),
		).At(0, 0, 3, 3),
	)
	p := indexer.New(noParse)
	p.IndexFile("app.cr", tree)

	r := resolve.New(p.Idx)
	elems := r.Definition(tree, pos(1, 4))
	require.Len(t, elems, 1)
	lv := elems[0].(*psi.LocalVar)
	loc, ok := lv.Loc()
	require.True(t, ok)
	assert.Equal(t, 0, loc.Start.Line)
	assert.Equal(t, 10, loc.Start.Character)
}

func TestDefinition_LooseArityKeepsAllWhenNoneMatch(t *testing.T) {
	p := indexer.New(noParse)
	p.IndexFile("lib.cr", fixture.Program(
		fixture.Class("Svc",
			fixture.Def("send").Params(fixture.Param("a")),
			fixture.Def("send").Params(fixture.Param("a"), fixture.Param("b")),
		),
	))

	// Call with 3 args matches neither overload; both come back.
	call := fixture.Call("send", fixture.Var("s"), fixture.Num("1"), fixture.Num("2"), fixture.Num("3")).
		At(2, 2, 2, 20).NameAt(2, 4, 2, 8)
	tree := fixture.Program(
		fixture.Class("App",
			fixture.Def("main",
				fixture.Assign(fixture.Var("s"), fixture.NewCall(fixture.Path("Svc"))).At(1, 4, 1, 16),
				call,
			).At(0, 2, 3, 5),
		).At(0, 0, 4, 3),
	)
	p.IndexFile("app.cr", tree)

	r := resolve.New(p.Idx)
	elems := r.Definition(tree, pos(2, 5))
	assert.Len(t, elems, 2)
}

func TestDefinition_UnknownSymbolIsEmptyNotError(t *testing.T) {
	p := indexer.New(noParse)
	tree := fixture.Program(fixture.Path("Nope").At(0, 0, 0, 4))
	p.IndexFile("a.cr", tree)

	r := resolve.New(p.Idx)
	assert.NotPanics(t, func() {
		elems := r.Definition(tree, pos(0, 1))
		assert.Empty(t, elems)
	})
}

func TestDefinition_TypeDefCursor(t *testing.T) {
	p := indexer.New(noParse)
	classNode := fixture.Class("Foo").At(0, 0, 1, 3).NameAt(0, 6, 0, 9)
	tree := fixture.Program(classNode)
	p.IndexFile("a.cr", tree)
	p.IndexFile("b.cr", fixture.Program(fixture.Class("Foo")))

	r := resolve.New(p.Idx)
	elems := r.Definition(tree, pos(0, 7))
	require.Len(t, elems, 2)
	for _, el := range elems {
		assert.Equal(t, "Foo", el.ElementName())
	}
}

func TestCallArity_CountsNamedArgs(t *testing.T) {
	call := fixture.Call("send", nil, fixture.Num("1")).
		SetAll(syntax.FieldNamedArgs, fixture.New(syntax.KindArg).WithText("to"))
	assert.Equal(t, 2, resolve.CallArity(call))
}

func TestDefinition_SelfReceiver(t *testing.T) {
	selfCall := fixture.Call("helper", fixture.New(syntax.KindSelf)).At(2, 4, 2, 15).NameAt(2, 9, 2, 15)
	tree := fixture.Program(
		fixture.Class("App",
			fixture.Def("helper").At(1, 2, 1, 20),
			fixture.Def("main", selfCall).At(2, 2, 3, 5),
		).At(0, 0, 4, 3),
	)
	p := indexer.New(noParse)
	p.IndexFile("app.cr", tree)

	r := resolve.New(p.Idx)
	elems := r.Definition(tree, pos(2, 10))
	require.Len(t, elems, 1)
	m := elems[0].(*psi.Method)
	assert.Equal(t, "helper", m.Name)
	assert.Equal(t, "App", m.Owner)
}

package indexer

import (
	"github.com/viant/semindex/macro"
	"github.com/viant/semindex/syntax"
)

// macroPass is the second indexing walk: first collect every macro
// Def scoped by its lexically enclosing type, then dispatch every
// receiver-less Call through the macro resolver so any generated members
// exist before the main pass attaches methods.
type macroPass struct {
	pipeline *Pipeline
	file     string
	depth    int
}

// collectDefs walks the tree recording macro Defs, after first forgetting
// this file's previously-collected Defs so a re-index does not accumulate
// duplicates (IndexFileDepth's Idx.RemoveFile has no visibility into the
// macro registry, which is a separate structure).
func (mp *macroPass) collectDefs(n syntax.Node, owner string) {
	mp.pipeline.Macros.Forget(mp.file)
	mp.collect(n, owner)
}

func (mp *macroPass) collect(n syntax.Node, owner string) {
	if n == nil {
		return
	}
	switch n.Kind() {
	case syntax.KindModule, syntax.KindClass:
		next := declaredQualifiedName(n, owner)
		for _, c := range syntax.Children(n) {
			mp.collect(c, next)
		}
		return
	case syntax.KindEnum, syntax.KindDef:
		return
	case syntax.KindMacro:
		mp.pipeline.Macros.Define(&macro.Def{
			Name:   declaredName(n),
			Scope:  owner,
			Origin: mp.file,
			Params: n.Fields(syntax.FieldParams),
			Body:   n.Field(syntax.FieldBody),
		})
		return
	}
	for _, c := range syntax.Children(n) {
		mp.collect(c, owner)
	}
}

// preExpand walks the tree a second time, expanding every receiver-less
// Call through the macro resolver.
func (mp *macroPass) preExpand(n syntax.Node, owner string) {
	if n == nil {
		return
	}
	switch n.Kind() {
	case syntax.KindModule, syntax.KindClass:
		next := declaredQualifiedName(n, owner)
		for _, c := range syntax.Children(n) {
			mp.preExpand(c, next)
		}
		return
	case syntax.KindEnum, syntax.KindDef, syntax.KindMacro:
		return
	case syntax.KindCall:
		if n.Field(syntax.FieldReceiver) == nil {
			mp.expander().ExpandCall(n, owner, mp.file, mp.depth)
		}
	}
	for _, c := range syntax.Children(n) {
		mp.preExpand(c, owner)
	}
}

func (mp *macroPass) expander() *macro.Expander {
	p := mp.pipeline
	x := macro.NewExpander(p.Macros, macro.ParseFunc(p.Parse), func(uri string, tree syntax.Node, depth int, owner string) {
		p.IndexFileDepth(uri, tree, depth, owner)
	}, p.Cache, macro.Logger(p.log))
	x.MaxDepth = p.maxMacroDepth
	return x
}

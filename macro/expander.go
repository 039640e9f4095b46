package macro

import (
	"github.com/viant/semindex/index"
	"github.com/viant/semindex/syntax"
)

// ParseFunc parses source text into a syntax tree. Supplied by the caller
// so this package never depends on a concrete parser.
type ParseFunc func(uri string, source []byte) (syntax.Node, error)

// ReindexFunc recursively indexes a parsed virtual file at the given
// macro-expansion depth, attaching generated members under owner (the
// type enclosing the macro call, "" at file level). Supplied by the
// indexer package at construction time rather than imported directly,
// which is what keeps `macro` free of an import-cycle back to `indexer`
// (indexer.Pipeline is the only thing that both runs the macro pass and
// knows how to index a tree).
type ReindexFunc func(uri string, tree syntax.Node, depth int, owner string)

// Logger mirrors indexer.Logger; duplicated here rather than imported
// because `indexer` imports this package.
type Logger func(format string, args ...interface{})

// Expander matches receiver-less calls against user macros and the
// built-in accessor table, interprets a match into source text, and hands
// the result to Parse/Reindex for recursive indexing.
type Expander struct {
	Registry *Registry
	Parse    ParseFunc
	Reindex  ReindexFunc
	Cache    *index.VirtualFileCache
	MaxDepth int
	Log      Logger
}

// NewExpander builds an Expander. cache may be nil (a fresh one is
// created), matching the zero-value-friendly style used elsewhere in this
// module's constructors.
func NewExpander(reg *Registry, parse ParseFunc, reindex ReindexFunc, cache *index.VirtualFileCache, log Logger) *Expander {
	if cache == nil {
		cache = index.NewVirtualFileCache()
	}
	if log == nil {
		log = func(string, ...interface{}) {}
	}
	return &Expander{Registry: reg, Parse: parse, Reindex: reindex, Cache: cache, MaxDepth: 4, Log: log}
}

// ExpandCall attempts to expand a receiver-less Call node at the given
// context ("" or a qualified owner name) and recursion depth, originating
// from originFile. It returns true iff an expansion was produced; the
// expansion is handed to Reindex unless its text is unchanged since the
// last time this virtual file was indexed.
func (x *Expander) ExpandCall(call syntax.Node, context, originFile string, depth int) bool {
	if depth >= x.MaxDepth {
		return false
	}
	nameField := call.Field(syntax.FieldName)
	if nameField == nil {
		return false
	}
	name := nameField.Text()
	args := call.Fields(syntax.FieldArgs)

	source, ok := x.render(name, context, args)
	if !ok {
		return false
	}

	loc := call.Location()
	uri := index.VirtualURI(originFile, name, loc.Start.Line, loc.Start.Character)
	if x.Cache.Unchanged(uri, []byte(source)) {
		return true
	}

	tree, err := x.Parse(uri, []byte(source))
	if err != nil {
		x.Log("macro: parse failure expanding %q at %s: %v", name, uri, err)
		return false
	}
	x.Reindex(uri, tree, depth+1, context)
	return true
}

// render interprets a matched user macro or expands a built-in, returning
// the generated source text. It recovers from an interpreter panic,
// logging the failure and discarding the expansion, since the
// tiny expression language is evaluated against arbitrary call-site
// arguments it cannot fully validate ahead of time.
func (x *Expander) render(name, context string, args []syntax.Node) (src string, ok bool) {
	if def, found := x.Registry.Lookup(context, name, len(args)); found {
		defer func() {
			if r := recover(); r != nil {
				x.Log("macro: interpretation failure in %q: %v", name, r)
				src, ok = "", false
			}
		}()
		return Interpret(def.Body, bindParams(def.Params, args)), true
	}
	if s, builtin := ExpandBuiltin(name, args); builtin {
		return s, true
	}
	return "", false
}

func bindParams(params []syntax.Node, args []syntax.Node) env {
	e := make(env, len(params))
	for i, p := range params {
		if i >= len(args) {
			break
		}
		e[paramNameOf(p)] = args[i]
	}
	return e
}

func paramNameOf(n syntax.Node) string {
	if f := n.Field(syntax.FieldName); f != nil {
		return f.Text()
	}
	return n.Text()
}

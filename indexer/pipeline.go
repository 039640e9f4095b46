// Package indexer runs the three-pass indexing pipeline over a syntax
// tree, writing PSI elements and edges into an index.Index.
package indexer

import (
	"github.com/viant/semindex/index"
	"github.com/viant/semindex/macro"
	"github.com/viant/semindex/psi"
	"github.com/viant/semindex/syntax"
)

// Logger receives disposition messages for recoverable indexing
// failures. The pipeline only ever calls this injected hook, never a
// concrete logging library; hosts wire their own sink.
type Logger func(format string, args ...interface{})

func noopLogger(string, ...interface{}) {}

// Option configures a Pipeline at construction.
type Option func(*Pipeline)

// WithLogger overrides the pipeline's disposition logger.
func WithLogger(l Logger) Option {
	return func(p *Pipeline) {
		if l != nil {
			p.log = l
		}
	}
}

// WithMaxMacroDepth overrides the macro-expansion recursion bound.
func WithMaxMacroDepth(depth int) Option {
	return func(p *Pipeline) {
		if depth > 0 {
			p.maxMacroDepth = depth
		}
	}
}

// Parser is the external collaborator that turns source text into a
// syntax tree. The pipeline depends only on this function type so that the
// `macro` package's recursive re-indexing of expansions never has to
// import a concrete parser.
type Parser func(uri string, source []byte) (syntax.Node, error)

// Pipeline wires an Index, a macro Registry/Expander, and a Parser
// collaborator together to run the three indexing passes.
type Pipeline struct {
	Idx    *index.Index
	Macros *macro.Registry
	Cache  *index.VirtualFileCache
	Parse  Parser

	maxMacroDepth int
	log           Logger
}

// New builds a Pipeline. parse is required; everything else has a
// sensible default (a fresh index, a fresh macro registry, depth 4).
func New(parse Parser, opts ...Option) *Pipeline {
	p := &Pipeline{
		Idx:           index.New(),
		Macros:        macro.NewRegistry(),
		Cache:         index.NewVirtualFileCache(),
		Parse:         parse,
		maxMacroDepth: 4,
		log:           noopLogger,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// IndexFile runs the three-pass pipeline over tree, which was parsed from
// uri's current content. Any previous contribution uri made to the index
// is torn down first, so re-indexing the same file twice is idempotent.
func (p *Pipeline) IndexFile(uri string, tree syntax.Node) {
	p.IndexFileDepth(uri, tree, 0, "")
}

// IndexFileDepth is IndexFile with an explicit macro-expansion depth and
// owner context, used internally when a virtual file is itself indexed
// from within an expansion: generated members attach to the type
// enclosing the macro call.
func (p *Pipeline) IndexFileDepth(uri string, tree syntax.Node, depth int, owner string) {
	p.Idx.RemoveFile(uri)
	if tree == nil {
		return
	}

	sk := &skeletonWalker{idx: p.Idx, file: uri}
	sk.walk(tree, owner)

	if depth < p.maxMacroDepth {
		mp := &macroPass{
			pipeline: p,
			file:     uri,
			depth:    depth,
		}
		mp.collectDefs(tree, owner)
		mp.preExpand(tree, owner)
	}

	mn := &mainWalker{idx: p.Idx, file: uri}
	root := ownerCtx{name: owner, has: owner != ""}
	if root.has {
		if kind, ok := p.Idx.TypeKind(owner); ok {
			root.kind = kind
		} else {
			root.kind = psi.KindClass
		}
	}
	mn.walk(tree, root)
}

// Package macro implements the macro dialect: collecting user
// macro definitions scoped by their lexically enclosing type, resolving a
// receiver-less call against that scope chain plus a built-in
// accessor-generator table, and interpreting a matched macro body into
// source text for recursive re-indexing.
//
// This package must never import `github.com/viant/semindex/indexer` (that
// would create an import cycle: indexer runs the macro pass, which needs
// to reparse and recursively index an expansion). Instead the expander
// accepts Parse and Reindex as plain function values supplied by its
// caller.
package macro

import "github.com/viant/semindex/syntax"

// Def is one user macro definition: `macro name(params) body end`.
type Def struct {
	Name   string
	Scope  string // qualified owner name, "" for file-level
	Origin string // file that contributed this definition
	Params []syntax.Node
	Body   syntax.Node
}

// arity mirrors method arity, applied to macro parameters.
func arity(params []syntax.Node) (min, max int, unbounded bool) {
	for _, p := range params {
		if p.Flag(syntax.FlagBlockParam) {
			continue
		}
		if p.Flag(syntax.FlagSplat) || p.Flag(syntax.FlagDoubleSplat) {
			unbounded = true
			continue
		}
		max++
		if p.Field(syntax.FieldDefault) == nil {
			min++
		}
	}
	return
}

func matches(params []syntax.Node, argc int) bool {
	min, max, unbounded := arity(params)
	if argc < min {
		return false
	}
	return unbounded || argc <= max
}

// Registry holds every macro Def collected from the workspace, indexed by
// name for scope-walk lookup.
type Registry struct {
	byName map[string][]*Def
}

// NewRegistry builds an empty Registry.
func NewRegistry() *Registry {
	return &Registry{byName: map[string][]*Def{}}
}

// Define records a macro definition.
func (r *Registry) Define(d *Def) {
	r.byName[d.Name] = append(r.byName[d.Name], d)
}

// Forget drops every Def contributed by file, so a reindex can recollect
// that file's macros from scratch without duplicating stale entries.
func (r *Registry) Forget(file string) {
	for name, defs := range r.byName {
		out := defs[:0:0]
		for _, d := range defs {
			if d.Origin != file {
				out = append(out, d)
			}
		}
		if len(out) == 0 {
			delete(r.byName, name)
		} else {
			r.byName[name] = out
		}
	}
}

// Lookup resolves a receiver-less call named `name` with `argc` arguments
// against the scope chain for context. The first scope
// level with any same-named candidate wins; within that level, strict
// arity picks the candidate, falling back to the first one if none
// match.
func (r *Registry) Lookup(context string, name string, argc int) (*Def, bool) {
	for _, scope := range scopeChain(context) {
		var candidates []*Def
		for _, d := range r.byName[name] {
			if d.Scope == scope {
				candidates = append(candidates, d)
			}
		}
		if len(candidates) == 0 {
			continue
		}
		for _, d := range candidates {
			if matches(d.Params, argc) {
				return d, true
			}
		}
		return candidates[0], true
	}
	return nil, false
}

// scopeChain expands "A::B::C" into ["A::B::C", "A::B", "A", ""].
func scopeChain(context string) []string {
	if context == "" {
		return []string{""}
	}
	var chain []string
	rest := context
	for {
		chain = append(chain, rest)
		idx := lastScopeSep(rest)
		if idx < 0 {
			break
		}
		rest = rest[:idx]
	}
	chain = append(chain, "")
	return chain
}

func lastScopeSep(s string) int {
	for i := len(s) - 2; i >= 0; i-- {
		if s[i] == ':' && s[i+1] == ':' {
			return i
		}
	}
	return -1
}

package indexer

import (
	"sort"

	"github.com/viant/semindex/syntax"
)

// Reindex re-runs the three-pass pipeline over uri's new tree and returns
// the deterministic list of URIs whose contents must also be reindexed:
// uri itself first, then the closure of reverse type-dependency edges
// starting from the file's type names, in sorted order. The caller is responsible for reparsing and re-feeding
// each returned URI; this function only reindexes uri.
func (p *Pipeline) Reindex(uri string, tree syntax.Node) []string {
	seeds := p.Idx.TypesByFile(uri)
	p.IndexFile(uri, tree)
	seeds = append(seeds, p.Idx.TypesByFile(uri)...)

	affected := map[string]bool{}
	queue := seeds
	for len(queue) > 0 {
		t := queue[0]
		queue = queue[1:]
		if affected[t] {
			continue
		}
		affected[t] = true
		for _, dep := range p.Idx.Dependents(t) {
			if !affected[dep] {
				queue = append(queue, dep)
			}
		}
	}

	fileSet := map[string]bool{}
	for t := range affected {
		entry, ok := p.Idx.LookupType(t)
		if !ok {
			continue
		}
		for _, f := range entry.Files {
			if f != uri {
				fileSet[f] = true
			}
		}
	}
	rest := make([]string, 0, len(fileSet))
	for f := range fileSet {
		rest = append(rest, f)
	}
	sort.Strings(rest)
	return append([]string{uri}, rest...)
}

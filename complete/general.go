package complete

import (
	"sort"
	"strings"

	"github.com/viant/semindex/finder"
)

func sortStrings(s []string) { sort.Strings(s) }

// completeGeneral is the open-ended fallback provider:
// in-scope locals, top-level types, nested types under the enclosing
// namespace, plus context-sensitive keywords.
func (e *Engine) completeGeneral(c Context, res finder.Result) []Item {
	partial := typedWord(linePrefix(c.Line, c.Pos.Character))

	var out []Item
	env := buildEnv(res, c.Pos)
	for _, name := range sortedKeys(env.Locals) {
		if !strings.HasPrefix(name, partial) {
			continue
		}
		out = append(out, Item{Label: name, Kind: ItemVariable, Detail: env.Locals[name].Display()})
	}

	seen := map[string]bool{}
	if res.ContextPath != "" {
		for _, name := range e.Idx.NestedTypeNames(res.ContextPath) {
			out = e.appendTypeItem(out, seen, name, partial)
		}
	}
	for _, name := range e.Idx.NestedTypeNames("") {
		out = e.appendTypeItem(out, seen, name, partial)
	}

	for _, kw := range Keywords(res, c.Pos) {
		if !strings.HasPrefix(kw, partial) {
			continue
		}
		out = append(out, Item{Label: kw, Kind: ItemKeyword})
	}
	return out
}

func (e *Engine) appendTypeItem(out []Item, seen map[string]bool, name, partial string) []Item {
	if seen[name] {
		return out
	}
	local := name
	if i := strings.LastIndex(name, "::"); i >= 0 {
		local = name[i+2:]
	}
	if !strings.HasPrefix(local, partial) {
		return out
	}
	kind, ok := e.Idx.TypeKind(name)
	if !ok {
		return out
	}
	seen[name] = true
	return append(out, typeItem(kind, name))
}

// typedWord returns the identifier characters immediately before the
// cursor, the partial the fallback provider filters against.
func typedWord(prefix string) string {
	i := len(prefix)
	for i > 0 && strings.ContainsRune(wordChars, rune(prefix[i-1])) {
		i--
	}
	return prefix[i:]
}

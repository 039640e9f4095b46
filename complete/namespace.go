package complete

import (
	"strings"

	"github.com/viant/semindex/finder"
	"github.com/viant/semindex/index"
	"github.com/viant/semindex/psi"
)

// completeNamespace lists the members of namespace `head` after a `::`:
// nested types plus enum members, filtered by the typed partial.
// Alias targets do not expand here; aliases are listed at
// their declared name.
func (e *Engine) completeNamespace(res finder.Result, head, partial string, global bool) []Item {
	var owner string
	var ok bool
	if global {
		owner = head
		_, ok = e.Idx.LookupType(owner)
	} else {
		owner, ok = e.Idx.ResolveInContext(res.ContextPath, head)
	}
	if !ok {
		return nil
	}

	var out []Item
	for _, name := range e.Idx.NestedTypeNames(owner) {
		_, local := index.SplitQualified(name)
		if !strings.HasPrefix(local, partial) {
			continue
		}
		if kind, ok := e.Idx.TypeKind(name); ok {
			out = append(out, typeItem(kind, name))
		}
	}
	for _, member := range e.Idx.EnumMembers(owner) {
		if !strings.HasPrefix(member.Name, partial) {
			continue
		}
		doc, _ := member.Documentation()
		out = append(out, Item{
			Label:  member.Name,
			Kind:   ItemEnumMember,
			Detail: member.Owner,
			Data:   &ItemData{Signature: member.Owner + "::" + member.Name, Doc: doc},
		})
	}
	for _, a := range e.Idx.Aliases(owner) {
		if !strings.HasPrefix(a.Name, partial) {
			continue
		}
		detail := ""
		if a.Target != nil {
			detail = a.Target.Display()
		}
		out = append(out, Item{Label: a.Name, Kind: ItemClass, Detail: detail})
	}
	return out
}

// completeVars lists instance-variable names in scope for `@`, class
// variables for `@@`.
func (e *Engine) completeVars(c Context, res finder.Result, classVar bool, partial string) []Item {
	env := buildEnv(res, c.Pos)
	bucket := env.InstanceVars
	sigil := "@"
	kind := ItemField
	if classVar {
		bucket = env.ClassVars
		sigil = "@@"
	}
	var out []Item
	for _, name := range sortedKeys(bucket) {
		bare := strings.TrimPrefix(name, sigil)
		if !strings.HasPrefix(bare, partial) {
			continue
		}
		out = append(out, Item{
			Label:  name,
			Kind:   kind,
			Detail: bucket[name].Display(),
		})
	}
	return out
}

func sortedKeys(m map[string]psi.TypeRef) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sortStrings(out)
	return out
}

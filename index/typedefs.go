package index

import (
	"sort"
	"strings"

	"github.com/viant/semindex/psi"
)

// Qualify prepends owner to a local name with `::`, unless name already
// contains `::` (treated as absolute). A
// leading `::` anchors the name at global scope; it is stripped since a
// name with no owner prefix already denotes the global scope.
func Qualify(owner, name string) string {
	if owner == "" || containsScope(name) {
		return strings.TrimPrefix(name, "::")
	}
	return owner + "::" + name
}

func containsScope(name string) bool {
	for i := 0; i+1 < len(name); i++ {
		if name[i] == ':' && name[i+1] == ':' {
			return true
		}
	}
	return false
}

// DefineModule records (or merges into) a Module opened by file.
func (idx *Index) DefineModule(qualifiedName, parent, file string, site OpenSite) *psi.Module {
	entry := idx.defineType(qualifiedName, file, site, psi.KindModule, func() psi.Element {
		return &psi.Module{Base: psi.NewBase(qualifiedName, file, site.Location, site.HasLoc, site.Doc, site.HasDoc), Parent: parent}
	})
	return entry.Elem.(*psi.Module)
}

// DefineClass records (or merges into) a Class opened by file.
func (idx *Index) DefineClass(qualifiedName, owner, file string, site OpenSite) *psi.Class {
	entry := idx.defineType(qualifiedName, file, site, psi.KindClass, func() psi.Element {
		return &psi.Class{Base: psi.NewBase(qualifiedName, file, site.Location, site.HasLoc, site.Doc, site.HasDoc), Owner: owner, TypeVars: site.TypeVars}
	})
	return entry.Elem.(*psi.Class)
}

// DefineEnum records (or merges into) an Enum opened by file.
func (idx *Index) DefineEnum(qualifiedName, owner, file string, site OpenSite) *psi.Enum {
	entry := idx.defineType(qualifiedName, file, site, psi.KindEnum, func() psi.Element {
		return &psi.Enum{Base: psi.NewBase(qualifiedName, file, site.Location, site.HasLoc, site.Doc, site.HasDoc), Owner: owner}
	})
	return entry.Elem.(*psi.Enum)
}

func (idx *Index) defineType(qualifiedName, file string, site OpenSite, kind psi.ElementKind, build func() psi.Element) *TypeEntry {
	entry, ok := idx.typeEntries[qualifiedName]
	if !ok {
		entry = &TypeEntry{Kind: kind, Elem: build(), Sites: map[string]*OpenSite{}}
		idx.typeEntries[qualifiedName] = entry
	}
	s := site
	s.File = file
	if _, already := entry.Sites[file]; !already {
		entry.Files = append(entry.Files, file)
	}
	entry.Sites[file] = &s
	idx.typesByFile[file] = appendUnique(idx.typesByFile[file], qualifiedName)

	// The merged element's own Base always mirrors the first-remaining
	// (earliest inserted) file's site.
	if f, s2, ok := entry.firstRemainingFile(); ok {
		rebase(entry.Elem, f, s2)
	}
	return entry
}

func rebase(elem psi.Element, file string, site *OpenSite) {
	switch e := elem.(type) {
	case *psi.Module:
		e.Base = psi.NewBase(e.Name, file, site.Location, site.HasLoc, site.Doc, site.HasDoc)
	case *psi.Class:
		e.Base = psi.NewBase(e.Name, file, site.Location, site.HasLoc, site.Doc, site.HasDoc)
		if len(site.TypeVars) > 0 {
			e.TypeVars = site.TypeVars
		}
	case *psi.Enum:
		e.Base = psi.NewBase(e.Name, file, site.Location, site.HasLoc, site.Doc, site.HasDoc)
	}
}

func appendUnique(list []string, v string) []string {
	for _, x := range list {
		if x == v {
			return list
		}
	}
	return append(list, v)
}

// LookupType returns the TypeEntry for a qualified name, if any entries
// remain. This never creates an entry.
func (idx *Index) LookupType(qualifiedName string) (*TypeEntry, bool) {
	e, ok := idx.typeEntries[qualifiedName]
	if !ok || len(e.Files) == 0 {
		return nil, false
	}
	return e, true
}

// TypeNames returns every qualified type name currently known, sorted for
// deterministic listing (used by namespace and general completion).
func (idx *Index) TypeNames() []string {
	out := make([]string, 0, len(idx.typeEntries))
	for name, entry := range idx.typeEntries {
		if len(entry.Files) == 0 {
			continue
		}
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// NestedTypeNames returns the immediate nested type names under owner:
// every known qualified name of shape `owner::Local` with no further `::`
// in Local. An empty owner lists top-level types.
func (idx *Index) NestedTypeNames(owner string) []string {
	var out []string
	for _, name := range idx.TypeNames() {
		if owner == "" {
			if !containsScope(name) {
				out = append(out, name)
			}
			continue
		}
		rest, ok := strings.CutPrefix(name, owner+"::")
		if ok && !containsScope(rest) {
			out = append(out, name)
		}
	}
	return out
}

// TypeKind reports the merged kind for a qualified name, if known.
func (idx *Index) TypeKind(qualifiedName string) (psi.ElementKind, bool) {
	e, ok := idx.LookupType(qualifiedName)
	if !ok {
		return "", false
	}
	return e.Kind, true
}

// SplitQualified splits a qualified name into its owner prefix and local
// name, the inverse of Qualify.
func SplitQualified(qualifiedName string) (owner, name string) {
	for i := len(qualifiedName) - 2; i >= 0; i-- {
		if qualifiedName[i] == ':' && qualifiedName[i+1] == ':' {
			return qualifiedName[:i], qualifiedName[i+2:]
		}
	}
	return "", qualifiedName
}

// FindAlias looks up an Alias by its fully-qualified name, splitting into
// owner+name and delegating to Alias. Used by resolve/infer when a
// TypeRef's name might itself denote an alias rather than a type.
func (idx *Index) FindAlias(qualifiedName string) (*psi.Alias, bool) {
	owner, name := SplitQualified(qualifiedName)
	return idx.Alias(owner, name)
}

// ResolveInContext resolves a bare name against the context chain:
// for a bare name N and context path A::B::C, try A::B::C::N, A::B::N,
// A::N, N in order; the first hit against either a known type or a
// known alias wins. A name already starting with `::` skips context
// entirely and is tried as given (global anchor).
func (idx *Index) ResolveInContext(context, name string) (string, bool) {
	if strings.HasPrefix(name, "::") {
		bare := strings.TrimPrefix(name, "::")
		return bare, idx.knownName(bare)
	}
	for _, candidate := range contextChain(context, name) {
		if idx.knownName(candidate) {
			return candidate, true
		}
	}
	return name, false
}

// FindAliasInContext resolves a bare or qualified name to an Alias using
// the same context-chain search as ResolveInContext, but only ever
// returns an alias hit.
func (idx *Index) FindAliasInContext(context, name string) (*psi.Alias, bool) {
	if strings.HasPrefix(name, "::") {
		return idx.FindAlias(strings.TrimPrefix(name, "::"))
	}
	for _, candidate := range contextChain(context, name) {
		if a, ok := idx.FindAlias(candidate); ok {
			return a, true
		}
	}
	return nil, false
}

// ResolveOwnerType follows an alias chain (bounded by maxDepth) from name
// to the underlying type it ultimately names, returning ok=false if name
// (after following) does not denote a known type. Shared by resolve and
// infer, both of which need "resolve a TypeRef's name to an owner type
// via alias-following".
func (idx *Index) ResolveOwnerType(name string, maxDepth int) (string, bool) {
	for i := 0; i < maxDepth; i++ {
		if a, ok := idx.FindAlias(name); ok && a.Target != nil {
			name = a.Target.Name
			continue
		}
		break
	}
	if _, ok := idx.LookupType(name); ok {
		return name, true
	}
	return "", false
}

func (idx *Index) knownName(name string) bool {
	if _, ok := idx.LookupType(name); ok {
		return true
	}
	_, ok := idx.FindAlias(name)
	return ok
}

// contextChain expands "A::B::C" + "N" into ["A::B::C::N", "A::B::N",
// "A::N", "N"].
func contextChain(context, name string) []string {
	if context == "" {
		return []string{name}
	}
	var chain []string
	rest := context
	for {
		chain = append(chain, rest+"::"+name)
		sep := -1
		for i := len(rest) - 2; i >= 0; i-- {
			if rest[i] == ':' && rest[i+1] == ':' {
				sep = i
				break
			}
		}
		if sep < 0 {
			break
		}
		rest = rest[:sep]
	}
	chain = append(chain, name)
	return chain
}

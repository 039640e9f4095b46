// Package index is the semantic index: the process-wide mutable structure
// that owns every PSI element and the edges between them.
// It is mutated only by the indexer/macro pipeline and read by the
// resolver/completer/query packages.
package index

import (
	"github.com/viant/semindex/psi"
	"github.com/viant/semindex/syntax"
)

// ElementID identifies a single owned (file-scoped) PSI element instance:
// a Method, EnumMember, InstanceVar, ClassVar, or Alias. Module/Class/Enum
// elements are not identified this way; they live in typeEntries instead.
type ElementID uint64

// OpenSite is one file's contribution to a reopened Module/Class/Enum.
type OpenSite struct {
	File     string
	Location syntax.Location
	HasLoc   bool
	Doc      string
	HasDoc   bool
	TypeVars []string
}

// TypeEntry is `type_defs_by_name[name]`: every file that has opened a
// given qualified type name, plus the merged element view.
type TypeEntry struct {
	Kind  psi.ElementKind // KindModule, KindClass, or KindEnum
	Elem  psi.Element     // merged view; its Base.File/Loc reflect the first remaining file
	Files []string        // insertion-of-files order
	Sites map[string]*OpenSite
}

// firstRemainingFile returns the earliest-inserted file still present.
func (e *TypeEntry) firstRemainingFile() (string, *OpenSite, bool) {
	for _, f := range e.Files {
		if s, ok := e.Sites[f]; ok {
			return f, s, true
		}
	}
	return "", nil, false
}

// PerFileElements returns one psi.Element clone per file that opened this
// type, each carrying that file's own location, in insertion order:
// a definition query on a reopened type surfaces every file's site.
func (e *TypeEntry) PerFileElements() []psi.Element {
	out := make([]psi.Element, 0, len(e.Files))
	for _, f := range e.Files {
		site, ok := e.Sites[f]
		if !ok {
			continue
		}
		out = append(out, cloneForSite(e.Kind, e.Elem, site))
	}
	return out
}

func cloneForSite(kind psi.ElementKind, merged psi.Element, site *OpenSite) psi.Element {
	base := psi.NewBase(merged.ElementName(), site.File, site.Location, site.HasLoc, site.Doc, site.HasDoc)
	switch kind {
	case psi.KindModule:
		m := *merged.(*psi.Module)
		m.Base = base
		return &m
	case psi.KindClass:
		c := *merged.(*psi.Class)
		c.Base = base
		c.TypeVars = site.TypeVars
		return &c
	case psi.KindEnum:
		en := *merged.(*psi.Enum)
		en.Base = base
		return &en
	}
	return merged
}

// Index is the semantic index state.
type Index struct {
	nextID ElementID

	elements       map[ElementID]psi.Element
	elementFile    map[ElementID]string
	elementsByFile map[string][]ElementID

	methodsByOwner     map[string][]ElementID
	enumMembersByOwner map[string][]ElementID
	aliasesByOwner     map[string][]ElementID

	typeEntries map[string]*TypeEntry
	typesByFile map[string][]string

	superclassDefs  map[string]map[string]psi.TypeRef   // class -> file -> TypeRef
	superclassFiles map[string][]string                 // file -> classes it set a superclass for
	includesDefs    map[string]map[string][]psi.TypeRef // owner -> file -> TypeRefs
	includesFiles   map[string][]string                 // file -> owners it contributed includes for

	depSources map[string]map[string]map[string]bool // owner -> target -> file -> true
	depReverse map[string]map[string]bool            // target -> owners depending on it
}

// New builds an empty Index.
func New() *Index {
	return &Index{
		elements:            map[ElementID]psi.Element{},
		elementFile:         map[ElementID]string{},
		elementsByFile:      map[string][]ElementID{},
		methodsByOwner:      map[string][]ElementID{},
		enumMembersByOwner:  map[string][]ElementID{},
		aliasesByOwner:      map[string][]ElementID{},
		typeEntries:         map[string]*TypeEntry{},
		typesByFile:         map[string][]string{},
		superclassDefs:      map[string]map[string]psi.TypeRef{},
		superclassFiles:     map[string][]string{},
		includesDefs:        map[string]map[string][]psi.TypeRef{},
		includesFiles:       map[string][]string{},
		depSources:          map[string]map[string]map[string]bool{},
		depReverse:          map[string]map[string]bool{},
	}
}

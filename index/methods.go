package index

import "github.com/viant/semindex/psi"

func (idx *Index) nextElementID() ElementID {
	idx.nextID++
	return idx.nextID
}

func (idx *Index) addOwned(owner, file string, elem psi.Element, bucket map[string][]ElementID) ElementID {
	id := idx.nextElementID()
	idx.elements[id] = elem
	idx.elementFile[id] = file
	idx.elementsByFile[file] = append(idx.elementsByFile[file], id)
	bucket[owner] = append(bucket[owner], id)
	return id
}

// AddMethod records a Method owned by owner, introduced by file.
func (idx *Index) AddMethod(owner string, m *psi.Method, file string) ElementID {
	return idx.addOwned(owner, file, m, idx.methodsByOwner)
}

// AddEnumMember records an EnumMember owned by an enum, introduced by file.
func (idx *Index) AddEnumMember(owner string, m *psi.EnumMember, file string) ElementID {
	return idx.addOwned(owner, file, m, idx.enumMembersByOwner)
}

// AddAlias records an Alias owned by owner ("" for file-level), introduced
// by file.
func (idx *Index) AddAlias(owner string, a *psi.Alias, file string) ElementID {
	a.Owner = owner
	return idx.addOwned(owner, file, a, idx.aliasesByOwner)
}

// Methods returns every Method owned by owner, in declaration order
// (across all files, since methods are file-scoped elements, not
// reopened type-def entries).
func (idx *Index) Methods(owner string) []*psi.Method {
	ids := idx.methodsByOwner[owner]
	out := make([]*psi.Method, 0, len(ids))
	for _, id := range ids {
		if m, ok := idx.elements[id].(*psi.Method); ok {
			out = append(out, m)
		}
	}
	return out
}

// MethodsNamed returns every Method owned by owner with the given name.
func (idx *Index) MethodsNamed(owner, name string) []*psi.Method {
	var out []*psi.Method
	for _, m := range idx.Methods(owner) {
		if m.Name == name {
			out = append(out, m)
		}
	}
	return out
}

// EnumMembers returns every EnumMember owned by an enum, in declaration order.
func (idx *Index) EnumMembers(owner string) []*psi.EnumMember {
	ids := idx.enumMembersByOwner[owner]
	out := make([]*psi.EnumMember, 0, len(ids))
	for _, id := range ids {
		if m, ok := idx.elements[id].(*psi.EnumMember); ok {
			out = append(out, m)
		}
	}
	return out
}

// EnumMember returns the first EnumMember with the given name on owner.
func (idx *Index) EnumMember(owner, name string) (*psi.EnumMember, bool) {
	for _, m := range idx.EnumMembers(owner) {
		if m.Name == name {
			return m, true
		}
	}
	return nil, false
}

// Aliases returns every Alias owned by owner.
func (idx *Index) Aliases(owner string) []*psi.Alias {
	ids := idx.aliasesByOwner[owner]
	out := make([]*psi.Alias, 0, len(ids))
	for _, id := range ids {
		if a, ok := idx.elements[id].(*psi.Alias); ok {
			out = append(out, a)
		}
	}
	return out
}

// Alias returns the first Alias named `name` owned by owner.
func (idx *Index) Alias(owner, name string) (*psi.Alias, bool) {
	for _, a := range idx.Aliases(owner) {
		if a.Name == name {
			return a, true
		}
	}
	return nil, false
}

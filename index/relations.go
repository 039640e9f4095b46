package index

import "github.com/viant/semindex/psi"

// SetSuperclass records class C's superclass as declared by file. Re-declaring from the same file overwrites that file's
// entry; the effective superclass is always the first-inserted file's.
func (idx *Index) SetSuperclass(class, file string, ref psi.TypeRef) {
	files, ok := idx.superclassDefs[class]
	if !ok {
		files = map[string]psi.TypeRef{}
		idx.superclassDefs[class] = files
	}
	if _, already := files[file]; !already {
		idx.superclassFiles[file] = appendUnique(idx.superclassFiles[file], class)
	}
	files[file] = ref
	idx.refreshClassSuperclass(class)
}

// refreshClassSuperclass mirrors the effective superclass onto the merged
// psi.Class element so definition/hover consumers see `class C < Base`
// without consulting the index separately. Called whenever superclassDefs
// changes for class.
func (idx *Index) refreshClassSuperclass(class string) {
	entry, ok := idx.typeEntries[class]
	if !ok {
		return
	}
	c, ok := entry.Elem.(*psi.Class)
	if !ok {
		return
	}
	if sup, found := idx.Superclass(class); found {
		ref := sup
		c.Superclass = &ref
	} else {
		c.Superclass = nil
	}
}

// Superclass returns class C's effective (first-inserted-file) superclass.
func (idx *Index) Superclass(class string) (psi.TypeRef, bool) {
	files, ok := idx.superclassDefs[class]
	if !ok || len(files) == 0 {
		return psi.TypeRef{}, false
	}
	entry, ok := idx.LookupType(class)
	if !ok {
		// Class entry already gone; fall back to arbitrary remaining file.
		for _, ref := range files {
			return ref, true
		}
		return psi.TypeRef{}, false
	}
	for _, f := range entry.Files {
		if ref, ok := files[f]; ok {
			return ref, true
		}
	}
	return psi.TypeRef{}, false
}

// AddIncludes records the mixins owner includes, as declared by file.
// Additive per file; removal reverses via includesFiles.
func (idx *Index) AddIncludes(owner, file string, refs []psi.TypeRef) {
	if len(refs) == 0 {
		return
	}
	byFile, ok := idx.includesDefs[owner]
	if !ok {
		byFile = map[string][]psi.TypeRef{}
		idx.includesDefs[owner] = byFile
	}
	if _, already := byFile[file]; !already {
		idx.includesFiles[file] = appendUnique(idx.includesFiles[file], owner)
	}
	byFile[file] = append(byFile[file], refs...)
}

// Includes returns every mixin owner includes, across all contributing
// files, in file-insertion order.
func (idx *Index) Includes(owner string) []psi.TypeRef {
	byFile, ok := idx.includesDefs[owner]
	if !ok {
		return nil
	}
	entry, hasEntry := idx.LookupType(owner)
	var order []string
	if hasEntry {
		order = entry.Files
	}
	var out []psi.TypeRef
	seen := map[string]bool{}
	for _, f := range order {
		if refs, ok := byFile[f]; ok {
			out = append(out, refs...)
			seen[f] = true
		}
	}
	// Files that contributed includes but are not (or no longer) a type
	// open-site still count (e.g. includes declared before the skeleton
	// pass records a site is not expected, but defend against drift).
	for f, refs := range byFile {
		if !seen[f] {
			out = append(out, refs...)
		}
	}
	return out
}

// AddDependency records that owner references target, as introduced by
// file.
func (idx *Index) AddDependency(owner, target, file string) {
	if owner == "" || target == "" {
		return
	}
	byTarget, ok := idx.depSources[owner]
	if !ok {
		byTarget = map[string]map[string]bool{}
		idx.depSources[owner] = byTarget
	}
	byFile, ok := byTarget[target]
	if !ok {
		byFile = map[string]bool{}
		byTarget[target] = byFile
	}
	byFile[file] = true

	rev, ok := idx.depReverse[target]
	if !ok {
		rev = map[string]bool{}
		idx.depReverse[target] = rev
	}
	rev[owner] = true
}

// AncestorChain returns owner's ancestor closure in breadth-first order:
// owner itself, then its included mixins and its superclass interleaved
// level by level, with cycle protection so a mixin/superclass loop never
// repeats a name.
func (idx *Index) AncestorChain(owner string) []string {
	visited := map[string]bool{}
	var order []string
	queue := []string{owner}
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		if name == "" || visited[name] {
			continue
		}
		visited[name] = true
		order = append(order, name)
		for _, inc := range idx.Includes(name) {
			if inc.Name != "" && !visited[inc.Name] {
				queue = append(queue, inc.Name)
			}
		}
		if sup, ok := idx.Superclass(name); ok && sup.Name != "" && !visited[sup.Name] {
			queue = append(queue, sup.Name)
		}
	}
	return order
}

// Dependents returns every type that has a surviving dependency edge onto
// target.
func (idx *Index) Dependents(target string) []string {
	rev, ok := idx.depReverse[target]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(rev))
	for owner := range rev {
		out = append(out, owner)
	}
	return out
}

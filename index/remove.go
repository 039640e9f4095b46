package index

// TypesByFile returns every qualified type name file introduced.
func (idx *Index) TypesByFile(file string) []string {
	out := make([]string, len(idx.typesByFile[file]))
	copy(out, idx.typesByFile[file])
	return out
}

// RemoveFile tears down every structure keyed by file: owned elements are
// detached from their owner buckets, type open-sites are dropped (rebasing
// the merged element to the next remaining file, or deleting the entry
// entirely once no file remains), superclass/include entries sourced by
// file are dropped, and dependency edges sourced by file are dropped,
// pruning now-empty reverse edges.
func (idx *Index) RemoveFile(file string) {
	idx.removeOwnedElements(file)
	idx.removeTypeSites(file)
	idx.removeSuperclassEntries(file)
	idx.removeIncludeEntries(file)
	idx.removeDependenciesFromFile(file)
	delete(idx.elementsByFile, file)
	delete(idx.typesByFile, file)
}

func (idx *Index) removeOwnedElements(file string) {
	ids := idx.elementsByFile[file]
	if len(ids) == 0 {
		return
	}
	removeSet := map[ElementID]bool{}
	for _, id := range ids {
		removeSet[id] = true
		delete(idx.elements, id)
		delete(idx.elementFile, id)
	}
	for owner, bucket := range idx.methodsByOwner {
		idx.methodsByOwner[owner] = filterIDs(bucket, removeSet)
	}
	for owner, bucket := range idx.enumMembersByOwner {
		idx.enumMembersByOwner[owner] = filterIDs(bucket, removeSet)
	}
	for owner, bucket := range idx.aliasesByOwner {
		idx.aliasesByOwner[owner] = filterIDs(bucket, removeSet)
	}
}

func filterIDs(ids []ElementID, remove map[ElementID]bool) []ElementID {
	out := ids[:0:0]
	for _, id := range ids {
		if !remove[id] {
			out = append(out, id)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func (idx *Index) removeTypeSites(file string) {
	for _, name := range idx.typesByFile[file] {
		entry, ok := idx.typeEntries[name]
		if !ok {
			continue
		}
		delete(entry.Sites, file)
		entry.Files = removeString(entry.Files, file)
		if len(entry.Files) == 0 {
			delete(idx.typeEntries, name)
			continue
		}
		if f, site, ok := entry.firstRemainingFile(); ok {
			rebase(entry.Elem, f, site)
		}
	}
}

func removeString(list []string, v string) []string {
	out := list[:0:0]
	for _, x := range list {
		if x != v {
			out = append(out, x)
		}
	}
	return out
}

func (idx *Index) removeSuperclassEntries(file string) {
	for _, class := range idx.superclassFiles[file] {
		if files, ok := idx.superclassDefs[class]; ok {
			delete(files, file)
			if len(files) == 0 {
				delete(idx.superclassDefs, class)
			}
		}
		idx.refreshClassSuperclass(class)
	}
	delete(idx.superclassFiles, file)
}

func (idx *Index) removeIncludeEntries(file string) {
	for _, owner := range idx.includesFiles[file] {
		if byFile, ok := idx.includesDefs[owner]; ok {
			delete(byFile, file)
			if len(byFile) == 0 {
				delete(idx.includesDefs, owner)
			}
		}
	}
	delete(idx.includesFiles, file)
}

func (idx *Index) removeDependenciesFromFile(file string) {
	for owner, byTarget := range idx.depSources {
		for target, byFile := range byTarget {
			if !byFile[file] {
				continue
			}
			delete(byFile, file)
			if len(byFile) == 0 {
				delete(byTarget, target)
				if rev, ok := idx.depReverse[target]; ok {
					delete(rev, owner)
					if len(rev) == 0 {
						delete(idx.depReverse, target)
					}
				}
			}
		}
		if len(byTarget) == 0 {
			delete(idx.depSources, owner)
		}
	}
}

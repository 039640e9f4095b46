package query

import (
	"github.com/viant/semindex/finder"
	"github.com/viant/semindex/syntax"
)

// SelectionRange is one link in the expand-selection chain; Parent is the
// next-wider range.
type SelectionRange struct {
	Range  syntax.Location
	Parent *SelectionRange
}

// SelectionRangeAt builds the selection chain for a cursor position: the
// node ranges in the context path from outermost to innermost, with the
// leaf's name-range appended when it differs from its full range. The
// innermost link is returned.
func SelectionRangeAt(tree syntax.Node, pos syntax.Position) *SelectionRange {
	res := finder.Find(tree, pos)
	path := res.NodePath
	if len(path) == 0 {
		return nil
	}
	var current *SelectionRange
	for _, n := range path {
		loc := n.Location()
		if loc.Zero() {
			continue
		}
		// Skip a link whose range equals its parent's; duplicate ranges
		// add no expansion step.
		if current != nil && current.Range == loc {
			continue
		}
		current = &SelectionRange{Range: loc, Parent: current}
	}
	leaf := path[len(path)-1]
	if nameLoc, ok := leaf.NameLocation(); ok && current != nil && nameLoc != current.Range {
		current = &SelectionRange{Range: nameLoc, Parent: current}
	}
	return current
}

package complete

import (
	"github.com/viant/semindex/finder"
	"github.com/viant/semindex/syntax"
)

var (
	declarationKeywords = []string{"class", "module", "enum", "alias", "def", "macro", "require", "include"}
	typeBodyKeywords    = []string{"def", "macro", "include", "alias", "class", "module", "enum", "getter", "setter", "property"}
	statementKeywords   = []string{"if", "unless", "while", "until", "case", "begin", "return", "yield", "raise"}
	valueKeywords       = []string{"true", "false", "nil", "self", "super"}
)

// Keywords contributes the context-sensitive keyword set for a cursor
//: declaration keywords at top level,
// type-level keywords inside a type body, statement keywords inside a
// method body with loop/branch keywords added when the cursor sits inside
// the matching construct, and only value keywords when the cursor is
// within a condition expression.
func Keywords(res finder.Result, pos syntax.Position) []string {
	if inCondition(res.NodePath, pos) {
		return valueKeywords
	}
	if res.EnclosingDef != nil {
		out := append([]string{}, statementKeywords...)
		out = append(out, valueKeywords...)
		for _, n := range res.NodePath {
			switch n.Kind() {
			case syntax.KindWhile, syntax.KindUntil:
				out = append(out, "break", "next")
			case syntax.KindIf:
				out = append(out, "else", "elsif")
			case syntax.KindUnless:
				out = append(out, "else")
			case syntax.KindCase:
				out = append(out, "when", "else")
			case syntax.KindExceptionHndl:
				out = append(out, "rescue", "ensure")
			}
		}
		return dedupe(out)
	}
	if res.EnclosingClass != nil {
		return typeBodyKeywords
	}
	return declarationKeywords
}

// inCondition reports whether the cursor sits inside the condition
// sub-node of an enclosing If/Unless/While/Until/Case/When.
func inCondition(path []syntax.Node, pos syntax.Position) bool {
	for _, n := range path {
		switch n.Kind() {
		case syntax.KindIf, syntax.KindUnless, syntax.KindWhile, syntax.KindUntil, syntax.KindCase, syntax.KindWhen:
			cond := n.Field(syntax.FieldCond)
			if cond != nil && cond.Location().Contains(pos) {
				return true
			}
		}
	}
	return false
}

func dedupe(in []string) []string {
	seen := map[string]bool{}
	out := in[:0:0]
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

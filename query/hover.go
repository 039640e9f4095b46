// Package query serves the remaining editor queries over the semantic
// index: hover (markdown element rendering), signature help, document
// highlights, and selection ranges.
package query

import (
	"strings"

	"github.com/viant/semindex/index"
	"github.com/viant/semindex/psi"
	"github.com/viant/semindex/resolve"
	"github.com/viant/semindex/syntax"
)

// Engine answers hover/signature-help/highlight/selection queries.
type Engine struct {
	Idx      *index.Index
	Resolver *resolve.Resolver
}

// New builds an Engine over idx.
func New(idx *index.Index) *Engine {
	return &Engine{Idx: idx, Resolver: resolve.New(idx)}
}

// Hover resolves the cursor to a definition and formats the first
// element as markdown: a code-fenced signature followed by the doc text.
// ok is false when nothing resolves, the ordinary unknown-symbol case
// rather than an error.
func (e *Engine) Hover(tree syntax.Node, pos syntax.Position) (string, bool) {
	elems := e.Resolver.Definition(tree, pos)
	if len(elems) == 0 {
		return "", false
	}
	return FormatElement(elems[0]), true
}

// FormatElement renders a PSI element as hover markdown.
func FormatElement(el psi.Element) string {
	var sb strings.Builder
	sb.WriteString("```\n")
	sb.WriteString(elementSignature(el))
	sb.WriteString("\n```")
	if doc, ok := el.Documentation(); ok && doc != "" {
		sb.WriteString("\n\n")
		sb.WriteString(doc)
	}
	return sb.String()
}

func elementSignature(el psi.Element) string {
	switch v := el.(type) {
	case *psi.Method:
		return v.DisplaySignature()
	case *psi.Class:
		sig := "class " + v.Name
		if v.IsGeneric() {
			sig += "(" + strings.Join(v.TypeVars, ", ") + ")"
		}
		if v.Superclass != nil {
			sig += " < " + v.Superclass.Display()
		}
		return sig
	case *psi.Module:
		return "module " + v.Name
	case *psi.Enum:
		return "enum " + v.Name
	case *psi.Alias:
		sig := "alias " + v.Name
		if v.Target != nil {
			sig += " = " + v.Target.Display()
		}
		return sig
	case *psi.EnumMember:
		return v.Owner + "::" + v.Name
	case *psi.InstanceVar:
		sig := v.Name
		if v.TypeText != "" {
			sig += " : " + v.TypeText
		}
		return sig
	case *psi.ClassVar:
		sig := v.Name
		if v.TypeText != "" {
			sig += " : " + v.TypeText
		}
		return sig
	case *psi.LocalVar:
		return v.Name
	}
	return el.ElementName()
}

// Package complete implements the completion engine: a
// trigger-dispatched entry point producing ranked completion items from
// the semantic index, the local type environment, and (for require-path
// completion) the workspace filesystem.
package complete

import (
	"regexp"
	"strings"

	"github.com/viant/semindex/finder"
	"github.com/viant/semindex/index"
	"github.com/viant/semindex/infer"
	"github.com/viant/semindex/psi"
	"github.com/viant/semindex/syntax"
	"github.com/viant/semindex/typeenv"
)

// ItemKind classifies a completion item for editor display.
type ItemKind string

const (
	ItemMethod     ItemKind = "Method"
	ItemClass      ItemKind = "Class"
	ItemModule     ItemKind = "Module"
	ItemEnum       ItemKind = "Enum"
	ItemEnumMember ItemKind = "EnumMember"
	ItemVariable   ItemKind = "Variable"
	ItemField      ItemKind = "Field"
	ItemKeyword    ItemKind = "Keyword"
	ItemFolder     ItemKind = "Folder"
	ItemFile       ItemKind = "File"
)

// ItemData is the deferred-resolution payload member-completion items
// carry so a second-stage ResolveItem call can fill in Documentation
// without the initial list paying for markdown formatting.
type ItemData struct {
	Signature string
	Doc       string
}

// Item is one completion entry.
type Item struct {
	Label         string
	Kind          ItemKind
	Detail        string
	InsertText    string
	Documentation string
	Data          *ItemData
}

// Context is everything the engine needs about the cursor: the parsed
// tree of the current document, its URI, the cursor position, the LSP
// trigger character ("" when completion was invoked open-ended), and the
// raw text of the cursor's line (trigger classification for `::`,
// `Name::partial`, `@`, and `require "..."` is textual).
type Context struct {
	Tree    syntax.Node
	URI     string
	Pos     syntax.Position
	Trigger string
	Line    string
}

// Engine dispatches a completion Context to the matching provider.
type Engine struct {
	Idx     *index.Index
	Infer   *infer.Engine
	Require *RequireProvider // nil disables require-path completion
}

// New builds an Engine over idx. The require-path provider is optional
// and attached by the host via the Require field since it needs a
// filesystem and workspace root the index does not know about.
func New(idx *index.Index) *Engine {
	return &Engine{Idx: idx, Infer: infer.New(idx)}
}

var (
	requirePattern   = regexp.MustCompile(`\brequire\s+"([^"]*)$`)
	namespacePattern = regexp.MustCompile(`(::)?([A-Za-z_][\w:]*)::(\w*)$`)
	ivarPattern      = regexp.MustCompile(`(@@?)(\w*)$`)
)

// Complete dispatches in fixed order: require-path, dot
// member, `::` namespace, `@`/`@@` variables, then the general provider
// plus context-sensitive keywords.
func (e *Engine) Complete(c Context) []Item {
	prefix := linePrefix(c.Line, c.Pos.Character)

	if m := requirePattern.FindStringSubmatch(prefix); m != nil {
		if e.Require == nil {
			return nil
		}
		return e.Require.Complete(c.URI, m[1])
	}

	res := finder.Find(c.Tree, c.Pos)

	if c.Trigger == "." || strings.HasSuffix(strings.TrimRight(prefix, wordChars), ".") {
		return e.completeMembers(c, res)
	}

	if m := namespacePattern.FindStringSubmatch(prefix); m != nil {
		global := m[1] == "::"
		return e.completeNamespace(res, m[2], m[3], global)
	}

	if m := ivarPattern.FindStringSubmatch(prefix); m != nil && (c.Trigger == "@" || m[2] != "" || strings.HasSuffix(prefix, "@")) {
		return e.completeVars(c, res, m[1] == "@@", m[2])
	}

	return e.completeGeneral(c, res)
}

// ResolveItem is the second-stage `resolve_completion_item` call: it
// fills Documentation with a code-fenced signature followed by the item's
// doc text.
func ResolveItem(it Item) Item {
	if it.Data == nil {
		return it
	}
	var sb strings.Builder
	if it.Data.Signature != "" {
		sb.WriteString("```\n")
		sb.WriteString(it.Data.Signature)
		sb.WriteString("\n```")
	}
	if it.Data.Doc != "" {
		if sb.Len() > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(it.Data.Doc)
	}
	it.Documentation = sb.String()
	return it
}

const wordChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_?!"

func linePrefix(line string, character int) string {
	if character > len(line) {
		character = len(line)
	}
	if character < 0 {
		character = 0
	}
	return line[:character]
}

// methodItem builds a Method completion item carrying deferred signature
// and doc data.
func methodItem(m *psi.Method) Item {
	doc, _ := m.Documentation()
	return Item{
		Label:  m.Name,
		Kind:   ItemMethod,
		Detail: m.Owner,
		Data:   &ItemData{Signature: m.DisplaySignature(), Doc: doc},
	}
}

func typeItem(kind psi.ElementKind, name string) Item {
	_, local := index.SplitQualified(name)
	it := Item{Label: local, Detail: name}
	switch kind {
	case psi.KindModule:
		it.Kind = ItemModule
	case psi.KindEnum:
		it.Kind = ItemEnum
	default:
		it.Kind = ItemClass
	}
	return it
}

func buildEnv(res finder.Result, pos syntax.Position) *typeenv.Env {
	return typeenv.Build(res.EnclosingClass, res.EnclosingDef, pos)
}

package macro

import (
	"strings"

	"github.com/viant/semindex/syntax"
)

// builtinGen renders the accessor defs for a single argument name: a reader
// `def name` returning `@name` and/or a writer `def name=(value)` assigning
// it (`self.`/`@@` for the class variants), sufficient for call resolution.
type builtinGen func(name string) string

// builtins is the fixed accessor-generator table. Keyed by the macro call's own name, matching the Crystal
// standard macros this family is modeled on.
var builtins map[string]builtinGen

func init() {
	builtins = map[string]builtinGen{
		"getter": func(name string) string {
			return "def " + name + "\n  @" + name + "\nend\n"
		},
		"getter!": func(name string) string {
			return "def " + name + "\n  @" + name + "\nend\n"
		},
		"getter?": func(name string) string {
			return "def " + name + "?\n  @" + name + "\nend\n"
		},
		"setter": func(name string) string {
			return "def " + name + "=(value)\n  @" + name + " = value\nend\n"
		},
		"property": func(name string) string {
			return builtins["getter"](name) + builtins["setter"](name)
		},
		"property!": func(name string) string {
			return builtins["getter!"](name) + builtins["setter"](name)
		},
		"property?": func(name string) string {
			return builtins["getter?"](name) + builtins["setter"](name)
		},
		"class_getter": func(name string) string {
			return "def self." + name + "\n  @@" + name + "\nend\n"
		},
		"class_setter": func(name string) string {
			return "def self." + name + "=(value)\n  @@" + name + " = value\nend\n"
		},
		"class_property": func(name string) string {
			return builtins["class_getter"](name) + builtins["class_setter"](name)
		},
	}
}

// IsBuiltin reports whether name names an entry in the accessor-generator
// table.
func IsBuiltin(name string) bool {
	_, ok := builtins[name]
	return ok
}

// ExpandBuiltin renders the accessor stubs for a call to a built-in macro
// with the given argument nodes. Each argument contributes one accessor
// named after its identifier or (quoted) string/symbol text.
func ExpandBuiltin(name string, args []syntax.Node) (string, bool) {
	gen, ok := builtins[name]
	if !ok {
		return "", false
	}
	var sb strings.Builder
	for _, a := range args {
		sb.WriteString(gen(builtinArgName(a)))
	}
	return sb.String(), true
}

func builtinArgName(n syntax.Node) string {
	text := n.Text()
	text = strings.TrimPrefix(text, ":")
	text = strings.Trim(text, `"`)
	return text
}

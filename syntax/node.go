package syntax

// Position is a 0-indexed cursor coordinate, matching LSP's own convention.
type Position struct {
	Line      int
	Character int
}

// Less reports whether p sorts strictly before o.
func (p Position) Less(o Position) bool {
	if p.Line != o.Line {
		return p.Line < o.Line
	}
	return p.Character < o.Character
}

// LessEqual reports whether p sorts at or before o.
func (p Position) LessEqual(o Position) bool {
	return p == o || p.Less(o)
}

// Contains reports whether pos falls within [l.Start, l.End).
func (l Location) Contains(pos Position) bool {
	return l.Start.LessEqual(pos) && pos.Less(l.End)
}

// Location is a half-open source range.
type Location struct {
	Start Position
	End   Position
}

// Zero reports whether the location was never set by the parser.
func (l Location) Zero() bool {
	return l == Location{}
}

// Well-known field names a Node may expose through Field/Fields. The parser
// contract is not required to populate every field on every
// node kind; callers must treat a missing field as "absent", not an error.
const (
	FieldReceiver    = "receiver"   // Call
	FieldName        = "name"       // Module/Class/Enum/Alias (declared name), Def, Call (callee ident), TypeDeclaration var
	FieldArgs        = "args"       // Call (Fields, positional)
	FieldNamedArgs   = "named_args" // Call (Fields, each an Arg with name+value)
	FieldBody        = "body"       // Def, Macro, Block
	FieldParams      = "params"     // Def, Macro (Fields)
	FieldReturnType  = "return_type"
	FieldValue       = "value"      // Assign rhs, TypeDeclaration value, Arg value
	FieldType        = "type"       // Cast/NilableCast/TypeDeclaration target type
	FieldCond        = "cond"       // If/Unless/While/Until/Case/When
	FieldThen        = "then"       // If/Unless/When body
	FieldElse        = "else"       // If/Unless/While/Until/Case else branch
	FieldSuperclass  = "superclass" // Class
	FieldIncludes    = "includes"   // Class/Module (Fields)
	FieldMembers     = "members"    // Enum (Fields)
	FieldTarget      = "target"     // Alias
	FieldNames       = "names"      // Path (Fields, dotted segments)
	FieldElements    = "elements"   // Array/Tuple/Union (Fields)
	FieldEntries     = "entries"    // Hash (Fields, each entry has key/value fields)
	FieldKey         = "key"        // Hash entry
	FieldTypeArgs    = "type_args"  // Generic (Fields)
	FieldOf          = "of"         // Array/Hash literal's declared element type
	FieldKeyOf       = "key_of"     // Hash literal's declared key type
	FieldBranches    = "branches"   // Case (Fields of When)
	FieldRescues     = "rescues"    // ExceptionHandler (Fields)
	FieldDefault     = "default"    // param Arg default value
	FieldLHS         = "lhs"        // Assign/OpAssign/MultiAssign target(s) (Fields for multi)
	FieldRHS         = "rhs"        // Assign/OpAssign rhs
	FieldOp          = "op"         // OpAssign operator text
	FieldTypeVars    = "type_vars"  // Class/Alias generic parameter list (Fields)
	FieldFrom        = "from"       // RangeLiteral
	FieldTo          = "to"         // RangeLiteral
	FieldHead        = "head"       // Generic/Metaclass underlying type path
	FieldObj         = "obj"        // Call's dotted receiver expression when completing after `.`
)

// Boolean flags a Node may expose through Flag.
const (
	FlagGlobal       = "global"        // Path: leading ::
	FlagSplat        = "splat"         // param/Arg: *args
	FlagDoubleSplat  = "double_splat"  // param/Arg: **kwargs
	FlagBlockParam   = "block_param"   // param: &block
	FlagClassMethod  = "class_method"  // Def: self.foo
	FlagExclusive    = "exclusive"     // RangeLiteral: a...b vs a..b
	FlagAbstract     = "abstract"      // Def: abstract def
	FlagParens       = "parens"        // Call: written with parentheses
)

// Node is the tagged-tree contract this core consumes. It is
// implemented by the external parser; this package only declares the shape.
// Field/Fields follow the tree-sitter convention of addressing children by
// role instead of position.
type Node interface {
	// Kind tags the node's syntactic role.
	Kind() Kind
	// Location is the node's full source range.
	Location() Location
	// NameLocation is the location of the node's identifying name, when the
	// node has one distinct from its full range (e.g. the `foo` in a Call
	// `obj.foo(1, 2)` covers only part of the call's own Location). ok is false
	// when the node has no distinct name range.
	NameLocation() (Location, bool)
	// Text is the raw source text this node spans.
	Text() string
	// Child returns the i'th positional child, or nil if out of range.
	Child(i int) Node
	// ChildCount is the number of positional children.
	ChildCount() int
	// Field returns the single child addressed by a well-known field name,
	// or nil if absent.
	Field(name string) Node
	// Fields returns every child addressed by a well-known (repeatable)
	// field name, in source order.
	Fields(name string) []Node
	// Flag reports a boolean attribute of the node.
	Flag(name string) bool
	// Doc returns the doc comment attached to a declaration node, if any.
	Doc() (string, bool)
}

// Children returns every positional child of n.
func Children(n Node) []Node {
	if n == nil {
		return nil
	}
	out := make([]Node, 0, n.ChildCount())
	for i := 0; i < n.ChildCount(); i++ {
		if c := n.Child(i); c != nil {
			out = append(out, c)
		}
	}
	return out
}

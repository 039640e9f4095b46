// Package syntax defines the tagged-tree contract this core consumes. The
// parser that produces the tree is an external collaborator (not part of
// this module); Kind enumerates the node shapes it is assumed to tag.
package syntax

// Kind tags the shape of a Node. The parser contract guarantees
// at least these; a real tree may carry additional kinds the core ignores.
type Kind string

const (
	KindModule        Kind = "Module"
	KindClass         Kind = "Class"
	KindEnum          Kind = "Enum"
	KindAlias         Kind = "Alias"
	KindInclude       Kind = "Include"
	KindDef           Kind = "Def"
	KindMacro         Kind = "Macro"
	KindCall          Kind = "Call"
	KindVar           Kind = "Var"
	KindInstanceVar   Kind = "InstanceVar"
	KindClassVar      Kind = "ClassVar"
	KindSelf          Kind = "Self"
	KindPath          Kind = "Path"
	KindGeneric       Kind = "Generic"
	KindMetaclass     Kind = "Metaclass"
	KindUnion         Kind = "Union"
	KindCast          Kind = "Cast"
	KindNilableCast   Kind = "NilableCast"
	KindTypeDecl      Kind = "TypeDeclaration"
	KindAssign        Kind = "Assign"
	KindMultiAssign   Kind = "MultiAssign"
	KindOpAssign      Kind = "OpAssign"
	KindBlock         Kind = "Block"
	KindIf            Kind = "If"
	KindUnless        Kind = "Unless"
	KindWhile         Kind = "While"
	KindUntil         Kind = "Until"
	KindCase          Kind = "Case"
	KindWhen          Kind = "When"
	KindExceptionHndl Kind = "ExceptionHandler"
	KindRangeLiteral  Kind = "RangeLiteral"
	KindArray         Kind = "Array"
	KindHash          Kind = "Hash"
	KindTuple         Kind = "Tuple"
	KindString        Kind = "String"
	KindSymbol        Kind = "Symbol"
	KindNumber        Kind = "Number"
	KindBool          Kind = "Bool"
	KindNil           Kind = "Nil"
	KindNop           Kind = "Nop"
	KindArg           Kind = "Arg"
)

// IsTypeDef reports whether k names a Module/Class/Enum definition node.
func (k Kind) IsTypeDef() bool {
	switch k {
	case KindModule, KindClass, KindEnum:
		return true
	}
	return false
}

package psi

// Class is a type definition: struct-like, with an optional superclass and
// a set of included modules (mixins). Both are stored unresolved (as the
// TypeRef the syntax tree named) and resolved lazily by the resolver
// rather than eagerly at index time.
type Class struct {
	Base
	Owner      string // qualified name of the enclosing class/module, "" if none
	TypeVars   []string
	Superclass *TypeRef // unresolved; nil when the class has no explicit superclass
	Includes   []TypeRef
}

func (c *Class) ElementKind() ElementKind { return KindClass }

// IsGeneric reports whether the class declares type parameters.
func (c *Class) IsGeneric() bool { return len(c.TypeVars) > 0 }

package psi

// EnumMember is a single value declared inside an Enum.
type EnumMember struct {
	Base
	Owner string // qualified Enum name
}

func (m *EnumMember) ElementKind() ElementKind { return KindEnumMember }

// InstanceVar is an `@name` declared or assigned within a class.
type InstanceVar struct {
	Base
	Owner    string
	TypeText string // cached type string, best-effort
}

func (v *InstanceVar) ElementKind() ElementKind { return KindInstanceVar }

// ClassVar is an `@@name` declared or assigned within a class.
type ClassVar struct {
	Base
	Owner    string
	TypeText string
}

func (v *ClassVar) ElementKind() ElementKind { return KindClassVar }

// LocalVar is a method-local variable or parameter binding.
type LocalVar struct {
	Base
	Owner string // qualified Method key the local belongs to
}

func (v *LocalVar) ElementKind() ElementKind { return KindLocalVar }

package psi

// Enum is a value type definition whose members are ordered and additive
// across reopenings.
type Enum struct {
	Base
	Owner string
}

func (e *Enum) ElementKind() ElementKind { return KindEnum }

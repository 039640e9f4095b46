package psi

// Method is a def on a Class, Module, or Enum.
type Method struct {
	Base
	OwnerKind       ElementKind // KindClass, KindModule, or KindEnum
	Owner           string      // owner's qualified name
	Arity           Arity
	ClassMethod     bool // applies on the type itself (self.foo) vs. instances
	Params          []string
	ReturnType      *TypeRef // nil when no return annotation or it didn't parse
	ReturnTypeRaw   string   // raw text, used for hover/signature display even when ReturnType is nil
}

func (m *Method) ElementKind() ElementKind { return KindMethod }

// DisplaySignature renders `def Owner#name(param, …) : ReturnType` /
// `def Owner.name(...)` for signature help display.
func (m *Method) DisplaySignature() string {
	sep := "#"
	if m.ClassMethod {
		sep = "."
	}
	sig := "def " + m.Owner + sep + m.Name + "("
	for i, p := range m.Params {
		if i > 0 {
			sig += ", "
		}
		sig += p
	}
	sig += ")"
	if m.ReturnTypeRaw != "" {
		sig += " : " + m.ReturnTypeRaw
	} else if m.ReturnType != nil {
		sig += " : " + m.ReturnType.Display()
	}
	return sig
}

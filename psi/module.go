package psi

// Module is a namespace: it owns nested classes, modules, enums, and
// module-level methods. Module itself only carries its own name and parent link; its children
// (nested classes/modules/enums/methods) are tracked centrally by the
// index rather than duplicated here.
type Module struct {
	Base
	Parent string // qualified name of the enclosing module, "" at top level
}

func (m *Module) ElementKind() ElementKind { return KindModule }

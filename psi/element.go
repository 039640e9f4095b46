package psi

import "github.com/viant/semindex/syntax"

// ElementKind tags the PSI element variant.
type ElementKind string

const (
	KindModule      ElementKind = "Module"
	KindClass       ElementKind = "Class"
	KindEnum        ElementKind = "Enum"
	KindAlias       ElementKind = "Alias"
	KindMethod      ElementKind = "Method"
	KindEnumMember  ElementKind = "EnumMember"
	KindInstanceVar ElementKind = "InstanceVar"
	KindClassVar    ElementKind = "ClassVar"
	KindLocalVar    ElementKind = "LocalVar"
)

// Element is the common surface every PSI element implements. Parent/owner
// links are resolved on demand through the index (qualified name lookup)
// rather than stored as raw back-pointers, so elements never form ownership
// cycles and survive file removal cleanly.
type Element interface {
	ElementKind() ElementKind
	ElementName() string
	Origin() (file string, ok bool)
	Loc() (syntax.Location, bool)
	Documentation() (string, bool)
}

// Base is embedded by every concrete element to provide the common fields.
type Base struct {
	Name string
	File string // origin file URI; "" when synthetic/unknown
	Has  syntax.Location
	HasL bool
	Doc  string
	HasD bool
}

func (b Base) ElementName() string { return b.Name }

func (b Base) Origin() (string, bool) {
	if b.File == "" {
		return "", false
	}
	return b.File, true
}

func (b Base) Loc() (syntax.Location, bool) { return b.Has, b.HasL }

func (b Base) Documentation() (string, bool) {
	if !b.HasD {
		return "", false
	}
	return b.Doc, true
}

// NewBase builds a Base from the fields commonly available at element
// construction time.
func NewBase(name, file string, loc syntax.Location, hasLoc bool, doc string, hasDoc bool) Base {
	return Base{Name: name, File: file, Has: loc, HasL: hasLoc, Doc: doc, HasD: hasDoc}
}

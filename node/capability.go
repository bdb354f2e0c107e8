package node

import (
	"context"

	"github.com/gencore/gencam"
)

// INode is the capability every node.Data variant implements, the DCAM
// placeholders included.
type INode interface {
	NodeBase() Base
	ElemBase() *ElementBase
	Streamable() bool
}

// IntegerRepresentation is GenApi's display-hint enum for integer values.
type IntegerRepresentation int

const (
	ReprLinear IntegerRepresentation = iota
	ReprLogarithmic
	ReprBoolean
	ReprPureNumber
	ReprHexNumber
	ReprIPV4Address
	ReprMACAddress
)

// FloatRepresentation is the float analogue of IntegerRepresentation.
type FloatRepresentation int

const (
	FloatReprLinear FloatRepresentation = iota
	FloatReprLogarithmic
	FloatReprPureNumber
)

// IncrementMode declares how a numeric node's legal values are spaced: a
// fixed step, an explicit list (ValidValueSet), or unconstrained.
type IncrementMode int

const (
	IncNone IncrementMode = iota
	IncFixed
	IncList
)

// DisplayNotation is GenApi's rendering hint for float values.
type DisplayNotation int

const (
	NotationAutomatic DisplayNotation = iota
	NotationFixed
	NotationScientific
)

// IInteger is the capability projection for Integer/IntReg/MaskedIntReg/
// IntSwissKnife/IntConverter.
type IInteger interface {
	INode
	ISelector
	Value(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (int64, error)
	SetValue(ctx context.Context, v int64, dev gencam.Device, store Store, cx *Ctxt) error
	Min(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (int64, error)
	Max(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (int64, error)
	SetMin(ctx context.Context, v int64, dev gencam.Device, store Store, cx *Ctxt) error
	SetMax(ctx context.Context, v int64, dev gencam.Device, store Store, cx *Ctxt) error
	Inc(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (int64, bool, error)
	IncMode() IncrementMode
	Representation() IntegerRepresentation
	Unit() (string, bool)
	ValidValueSet() []int64
	IsReadable(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (bool, error)
	IsWritable(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (bool, error)
}

// IFloat is the capability projection for Float/FloatReg/SwissKnife/
// Converter.
type IFloat interface {
	INode
	Value(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (float64, error)
	SetValue(ctx context.Context, v float64, dev gencam.Device, store Store, cx *Ctxt) error
	Min(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (float64, error)
	Max(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (float64, error)
	Inc(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (float64, bool, error)
	Representation() FloatRepresentation
	Unit() (string, bool)
	DisplayNotation() DisplayNotation
	DisplayPrecision() int
	IsReadable(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (bool, error)
	IsWritable(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (bool, error)
}

// IBoolean is the capability projection for Boolean.
type IBoolean interface {
	INode
	Value(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (bool, error)
	SetValue(ctx context.Context, v bool, dev gencam.Device, store Store, cx *Ctxt) error
	IsReadable(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (bool, error)
	IsWritable(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (bool, error)
}

// IString is the capability projection for String/StringReg.
type IString interface {
	INode
	Value(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (string, error)
	SetValue(ctx context.Context, v string, dev gencam.Device, store Store, cx *Ctxt) error
	MaxLength(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (int64, error)
	IsReadable(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (bool, error)
	IsWritable(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (bool, error)
}

// IEnumeration is the capability projection for Enumeration.
type IEnumeration interface {
	INode
	ISelector
	CurrentValue(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (int64, error)
	CurrentEntry(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (ID, error)
	Entries() []ID
	SetEntryBySymbolic(ctx context.Context, symbolic string, dev gencam.Device, store Store, cx *Ctxt) error
	SetEntryByValue(ctx context.Context, v int64, dev gencam.Device, store Store, cx *Ctxt) error
	IsReadable(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (bool, error)
	IsWritable(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (bool, error)
}

// ICommand is the capability projection for Command.
type ICommand interface {
	INode
	Execute(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) error
	IsDone(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (bool, error)
}

// IRegister is the capability projection for Register: a raw device address
// range. IntReg, MaskedIntReg, FloatReg and StringReg hold a Register in
// their Reg field but do not implement IRegister themselves.
type IRegister interface {
	INode
	Address(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (int64, error)
	Length(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (int64, error)
	Get(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) ([]byte, error)
	Set(ctx context.Context, data []byte, dev gencam.Device, store Store, cx *Ctxt) error
}

// ICategory is the capability projection for Category.
type ICategory interface {
	INode
	Children() []ID
}

// IPort is the capability projection for Port.
type IPort interface {
	INode
	Read(ctx context.Context, address int64, buf []byte, dev gencam.Device) error
	Write(ctx context.Context, address int64, data []byte, dev gencam.Device) error
}

// ISelector is implemented by any node another node's documentation lists
// as a selector dependency (most commonly Integer/Enumeration).
type ISelector interface {
	SelectingNodes() []ID
}

func asKind[I any](id ID, store Store) (I, bool) {
	var zero I
	d, ok := store.Node(id)
	if !ok {
		return zero, false
	}
	v, ok := d.(I)
	return v, ok
}

func expectKind[I any](kindName string, id ID, store Store) (I, error) {
	v, ok := asKind[I](id, store)
	if !ok {
		var zero I
		return zero, gencam.NewError(gencam.KindInvalidNode, "node does not implement "+kindName)
	}
	return v, nil
}

// AsIIntegerKind projects id onto IInteger, or ok=false if it doesn't
// implement the capability.
func AsIIntegerKind(id ID, store Store) (IInteger, bool) { return asKind[IInteger](id, store) }

// ExpectIIntegerKind is AsIIntegerKind with a *gencam.Error{Kind:
// InvalidNode} on projection failure.
func ExpectIIntegerKind(id ID, store Store) (IInteger, error) {
	return expectKind[IInteger]("IInteger", id, store)
}

// AsIFloatKind projects id onto IFloat.
func AsIFloatKind(id ID, store Store) (IFloat, bool) { return asKind[IFloat](id, store) }

// ExpectIFloatKind is AsIFloatKind with error wrapping.
func ExpectIFloatKind(id ID, store Store) (IFloat, error) {
	return expectKind[IFloat]("IFloat", id, store)
}

// AsIBooleanKind projects id onto IBoolean.
func AsIBooleanKind(id ID, store Store) (IBoolean, bool) { return asKind[IBoolean](id, store) }

// ExpectIBooleanKind is AsIBooleanKind with error wrapping.
func ExpectIBooleanKind(id ID, store Store) (IBoolean, error) {
	return expectKind[IBoolean]("IBoolean", id, store)
}

// AsIStringKind projects id onto IString.
func AsIStringKind(id ID, store Store) (IString, bool) { return asKind[IString](id, store) }

// ExpectIStringKind is AsIStringKind with error wrapping.
func ExpectIStringKind(id ID, store Store) (IString, error) {
	return expectKind[IString]("IString", id, store)
}

// AsIEnumerationKind projects id onto IEnumeration.
func AsIEnumerationKind(id ID, store Store) (IEnumeration, bool) {
	return asKind[IEnumeration](id, store)
}

// ExpectIEnumerationKind is AsIEnumerationKind with error wrapping.
func ExpectIEnumerationKind(id ID, store Store) (IEnumeration, error) {
	return expectKind[IEnumeration]("IEnumeration", id, store)
}

// AsICommandKind projects id onto ICommand.
func AsICommandKind(id ID, store Store) (ICommand, bool) { return asKind[ICommand](id, store) }

// ExpectICommandKind is AsICommandKind with error wrapping.
func ExpectICommandKind(id ID, store Store) (ICommand, error) {
	return expectKind[ICommand]("ICommand", id, store)
}

// AsIRegisterKind projects id onto IRegister.
func AsIRegisterKind(id ID, store Store) (IRegister, bool) { return asKind[IRegister](id, store) }

// ExpectIRegisterKind is AsIRegisterKind with error wrapping.
func ExpectIRegisterKind(id ID, store Store) (IRegister, error) {
	return expectKind[IRegister]("IRegister", id, store)
}

// AsICategoryKind projects id onto ICategory.
func AsICategoryKind(id ID, store Store) (ICategory, bool) { return asKind[ICategory](id, store) }

// ExpectICategoryKind is AsICategoryKind with error wrapping.
func ExpectICategoryKind(id ID, store Store) (ICategory, error) {
	return expectKind[ICategory]("ICategory", id, store)
}

// AsIPortKind projects id onto IPort.
func AsIPortKind(id ID, store Store) (IPort, bool) { return asKind[IPort](id, store) }

// ExpectIPortKind is AsIPortKind with error wrapping.
func ExpectIPortKind(id ID, store Store) (IPort, error) {
	return expectKind[IPort]("IPort", id, store)
}

// AsISelectorKind projects id onto ISelector.
func AsISelectorKind(id ID, store Store) (ISelector, bool) { return asKind[ISelector](id, store) }

// AsINodeKind projects id onto the base INode capability every real variant
// implements.
func AsINodeKind(id ID, store Store) (INode, bool) { return asKind[INode](id, store) }

// ExpectINodeKind is AsINodeKind with error wrapping.
func ExpectINodeKind(id ID, store Store) (INode, error) {
	return expectKind[INode]("INode", id, store)
}

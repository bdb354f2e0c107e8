// Package node implements the typed, polymorphic node graph: a dense
// interned node.ID space, the sealed node.Data variant family (Category,
// Integer, IntReg, MaskedIntReg, Boolean, Command, Enumeration, EnumEntry,
// Float, FloatReg, String, StringReg, Register, Converter, IntConverter,
// SwissKnife, IntSwissKnife, Port, and the DCAM placeholder arms), and the
// capability interfaces (IInteger, IFloat, IBoolean, IString, IEnumeration,
// ICommand, IRegister, ICategory, IPort, ISelector, INode) that project a
// node.Data onto the operations a caller actually wants.
//
// Cross-references between nodes (pValue, pInvalidators, pSelected,
// enumeration entries) are plain node.ID handles into a Store, never
// pointers, so cyclic graphs carry no ownership problems. Value state lives
// outside the graph: register-backed variants read and write device memory
// through a Device and a per-call Ctxt; computed variants evaluate formula
// expressions over other nodes' current values.
package node

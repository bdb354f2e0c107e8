package node

// ConfRom, TextDesc, IntKey, AdvFeatureLock, and SmartFeature are DCAM/1394
// holdovers carried in the node graph as opaque placeholders: the original
// enum stores them with a unit payload, and no capability interface governs
// them beyond the base INode contract.
type ConfRom struct {
	Base Base
	Elem ElementBase
}

func (*ConfRom) isNodeData()              {}
func (n *ConfRom) NodeBase() Base         { return n.Base }
func (n *ConfRom) ElemBase() *ElementBase { return &n.Elem }
func (n *ConfRom) Streamable() bool       { return false }

type TextDesc struct {
	Base Base
	Elem ElementBase
}

func (*TextDesc) isNodeData()              {}
func (n *TextDesc) NodeBase() Base         { return n.Base }
func (n *TextDesc) ElemBase() *ElementBase { return &n.Elem }
func (n *TextDesc) Streamable() bool       { return false }

type IntKey struct {
	Base Base
	Elem ElementBase
}

func (*IntKey) isNodeData()              {}
func (n *IntKey) NodeBase() Base         { return n.Base }
func (n *IntKey) ElemBase() *ElementBase { return &n.Elem }
func (n *IntKey) Streamable() bool       { return false }

type AdvFeatureLock struct {
	Base Base
	Elem ElementBase
}

func (*AdvFeatureLock) isNodeData()              {}
func (n *AdvFeatureLock) NodeBase() Base         { return n.Base }
func (n *AdvFeatureLock) ElemBase() *ElementBase { return &n.Elem }
func (n *AdvFeatureLock) Streamable() bool       { return false }

type SmartFeature struct {
	Base Base
	Elem ElementBase
}

func (*SmartFeature) isNodeData()              {}
func (n *SmartFeature) NodeBase() Base         { return n.Base }
func (n *SmartFeature) ElemBase() *ElementBase { return &n.Elem }
func (n *SmartFeature) Streamable() bool       { return false }

var (
	_ INode = (*ConfRom)(nil)
	_ INode = (*TextDesc)(nil)
	_ INode = (*IntKey)(nil)
	_ INode = (*AdvFeatureLock)(nil)
	_ INode = (*SmartFeature)(nil)
)

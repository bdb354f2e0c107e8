package node

// Category groups a set of child nodes for display purposes only; it has
// no value of its own.
type Category struct {
	Base      Base
	Elem      ElementBase
	Children_ []ID
}

func (*Category) isNodeData() {}

// NodeBase returns the node's attribute base.
func (c *Category) NodeBase() Base { return c.Base }

// ElemBase returns the node's element base.
func (c *Category) ElemBase() *ElementBase { return &c.Elem }

// Streamable is always false for a Category.
func (c *Category) Streamable() bool { return false }

// Children returns the category's listed child node ids.
func (c *Category) Children() []ID { return c.Children_ }

var _ ICategory = (*Category)(nil)

package node

import (
	"context"
	"math"

	"github.com/gencore/gencam"
	"github.com/gencore/gencam/formula"
)

// SwissKnife is a read-only IFloat whose value is computed from a formula
// over its Constants, Expressions, and Variables, GenApi's SwissKnife
// element.
type SwissKnife struct {
	Base        Base
	Elem        ElementBase
	Formula     formula.Expr
	Constants   []Constant
	Expressions []NamedExpr
	Variables   []Variable
	Unit_       string
	HasUnit     bool
}

func (*SwissKnife) isNodeData() {}

func (n *SwissKnife) NodeBase() Base         { return n.Base }
func (n *SwissKnife) ElemBase() *ElementBase { return &n.Elem }
func (n *SwissKnife) Streamable() bool       { return false }
func (n *SwissKnife) Unit() (string, bool)   { return n.Unit_, n.HasUnit }
func (n *SwissKnife) Representation() FloatRepresentation { return FloatReprLinear }
func (n *SwissKnife) DisplayNotation() DisplayNotation    { return NotationAutomatic }
func (n *SwissKnife) DisplayPrecision() int               { return 0 }

// Value evaluates the formula over the currently resolved Variables.
func (n *SwissKnife) Value(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (float64, error) {
	env, err := buildEnv(ctx, dev, store, cx, n.Constants, n.Variables, n.Expressions)
	if err != nil {
		return 0, err
	}
	return n.Formula.Eval(env)
}

// SetValue always fails: SwissKnife is read-only.
func (n *SwissKnife) SetValue(context.Context, float64, gencam.Device, Store, *Ctxt) error {
	return gencam.NewError(gencam.KindNotWritable, "SwissKnife is read-only")
}

// Min is unbounded below; SwissKnife declares no range of its own.
func (n *SwissKnife) Min(context.Context, gencam.Device, Store, *Ctxt) (float64, error) {
	return math.Inf(-1), nil
}

// Max is unbounded above; SwissKnife declares no range of its own.
func (n *SwissKnife) Max(context.Context, gencam.Device, Store, *Ctxt) (float64, error) {
	return math.Inf(1), nil
}

// Inc declares no fixed increment.
func (n *SwissKnife) Inc(context.Context, gencam.Device, Store, *Ctxt) (float64, bool, error) {
	return 0, false, nil
}

// IsReadable composes the element gate; SwissKnife has no ValueKind to
// additionally gate on.
func (n *SwissKnife) IsReadable(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (bool, error) {
	return n.Elem.IsReadable(ctx, dev, store, cx, booleanResolver)
}

// IsWritable is always false.
func (n *SwissKnife) IsWritable(context.Context, gencam.Device, Store, *Ctxt) (bool, error) {
	return false, nil
}

var _ IFloat = (*SwissKnife)(nil)

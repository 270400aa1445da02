package ops

import "github.com/sarchlab/vsrtl/circuit"

// NewSubtractor creates a two-operand subtractor (op1 - op2). Output
// width is max(w_op1, w_op2) + 1, one bit wider than either operand so
// a signed result can represent going negative — grounded on
// original_source/core/ops/op_sub.h.
func NewSubtractor(parent *circuit.Component, name string, wOp1, wOp2 uint, signed Signedness) *circuit.Component {
	c := circuit.NewComponent(parent, name)
	op1 := c.AddInputPort("op1", wOp1)
	op2 := c.AddInputPort("op2", wOp2)
	out := c.AddOutputPort("out", maxWidth(wOp1, wOp2)+1)

	if signed == Signed {
		out.Drive(func() uint64 { return uint64(op1.Signed() - op2.Signed()) })
	} else {
		out.Drive(func() uint64 { return op1.Unsigned() - op2.Unsigned() })
	}
	return c
}

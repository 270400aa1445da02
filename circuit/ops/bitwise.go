package ops

import "github.com/sarchlab/vsrtl/circuit"

// NewAnd creates a bitwise AND of two operands. Output width is
// max(w_op1, w_op2) — grounded on original_source/core/ops/op_and.h.
func NewAnd(parent *circuit.Component, name string, wOp1, wOp2 uint, signed Signedness) *circuit.Component {
	return newBitwise2(parent, name, wOp1, wOp2, signed,
		func(a, b uint64) uint64 { return a & b },
		func(a, b int64) int64 { return a & b },
	)
}

// NewOr creates a bitwise OR of two operands, same width rule as And.
func NewOr(parent *circuit.Component, name string, wOp1, wOp2 uint, signed Signedness) *circuit.Component {
	return newBitwise2(parent, name, wOp1, wOp2, signed,
		func(a, b uint64) uint64 { return a | b },
		func(a, b int64) int64 { return a | b },
	)
}

// NewXor creates a bitwise XOR of two operands, same width rule as And.
func NewXor(parent *circuit.Component, name string, wOp1, wOp2 uint, signed Signedness) *circuit.Component {
	return newBitwise2(parent, name, wOp1, wOp2, signed,
		func(a, b uint64) uint64 { return a ^ b },
		func(a, b int64) int64 { return a ^ b },
	)
}

func newBitwise2(parent *circuit.Component, name string, wOp1, wOp2 uint, signed Signedness,
	unsignedFn func(a, b uint64) uint64, signedFn func(a, b int64) int64) *circuit.Component {
	c := circuit.NewComponent(parent, name)
	op1 := c.AddInputPort("op1", wOp1)
	op2 := c.AddInputPort("op2", wOp2)
	out := c.AddOutputPort("out", maxWidth(wOp1, wOp2))

	if signed == Signed {
		out.Drive(func() uint64 { return uint64(signedFn(op1.Signed(), op2.Signed())) })
	} else {
		out.Drive(func() uint64 { return unsignedFn(op1.Unsigned(), op2.Unsigned()) })
	}
	return c
}

// NewNot creates a bitwise complement of a single width-w operand —
// grounded on original_source/core/ops/op_not.h.
func NewNot(parent *circuit.Component, name string, w uint) *circuit.Component {
	c := circuit.NewComponent(parent, name)
	in := c.AddInputPort("in", w)
	out := c.AddOutputPort("out", w)
	out.Drive(func() uint64 { return ^in.Unsigned() })
	return c
}

// NewNeg creates an arithmetic negation of a single width-w operand.
// Output width is w + 1, one bit wider so -minInt is representable —
// grounded on original_source/core/ops/op_neg.h.
func NewNeg(parent *circuit.Component, name string, w uint) *circuit.Component {
	c := circuit.NewComponent(parent, name)
	in := c.AddInputPort("in", w)
	out := c.AddOutputPort("out", w+1)
	out.Drive(func() uint64 { return uint64(-in.Signed()) })
	return c
}

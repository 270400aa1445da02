package ops

import "github.com/sarchlab/vsrtl/circuit"

// ShiftType selects the shift primitive's behavior, matching
// original_source/core/vsrtl_shift.h's ShiftType enum.
type ShiftType int

const (
	// ShiftLeft is an unsigned logical left shift.
	ShiftLeft ShiftType = iota
	// ShiftArithmeticRight is a signed (sign-extending) right shift.
	ShiftArithmeticRight
	// ShiftLogicalRight is an unsigned (zero-extending) right shift.
	ShiftLogicalRight
)

// NewShift creates a fixed-width, fixed-amount shifter whose in and
// out ports are both width w (unlike Shl/Shr, which widen or narrow
// the output) — grounded on original_source/core/vsrtl_shift.h.
func NewShift(parent *circuit.Component, name string, w uint, t ShiftType, shamt uint) *circuit.Component {
	c := circuit.NewComponent(parent, name)
	in := c.AddInputPort("in", w)
	out := c.AddOutputPort("out", w)

	switch t {
	case ShiftLeft:
		out.Drive(func() uint64 { return in.Unsigned() << shamt })
	case ShiftArithmeticRight:
		out.Drive(func() uint64 { return uint64(in.Signed() >> shamt) })
	case ShiftLogicalRight:
		out.Drive(func() uint64 { return in.Unsigned() >> shamt })
	default:
		panic(&circuit.Error{Kind: circuit.InvalidBitRange, Subject: name, Detail: "unknown shift type"})
	}
	return c
}

// NewShl creates a static (compile-time-fixed shift amount) logical
// left shift of a width-w operand by n. Output width is w + n, wide
// enough to hold the shifted-in zero bits without truncation —
// grounded on original_source/core/ops/op_shl.h.
func NewShl(parent *circuit.Component, name string, w, n uint) *circuit.Component {
	c := circuit.NewComponent(parent, name)
	in := c.AddInputPort("in", w)
	out := c.AddOutputPort("out", w+n)
	out.Drive(func() uint64 { return in.Unsigned() << n })
	return c
}

// NewShr creates a static right shift of a width-w operand by n bits,
// either arithmetic (Signed) or logical (Unsigned). Output width is
// max(w - n, 1) — grounded on original_source/core/ops/op_shr.h.
func NewShr(parent *circuit.Component, name string, w, n uint, signed Signedness) *circuit.Component {
	c := circuit.NewComponent(parent, name)
	in := c.AddInputPort("in", w)
	outW := uint(1)
	if w > n {
		outW = w - n
	}
	out := c.AddOutputPort("out", outW)

	if signed == Signed {
		out.Drive(func() uint64 { return uint64(in.Signed() >> n) })
	} else {
		out.Drive(func() uint64 { return in.Unsigned() >> n })
	}
	return c
}

// NewDshl creates a dynamic left shift: op1 shifted left by the
// runtime value of op2. Output width is w_op1 + 2^w_op2 - 1, wide
// enough for the largest representable shift amount — grounded on
// original_source/core/ops/op_dshl.h.
func NewDshl(parent *circuit.Component, name string, wOp1, wOp2 uint) *circuit.Component {
	c := circuit.NewComponent(parent, name)
	op1 := c.AddInputPort("op1", wOp1)
	op2 := c.AddInputPort("op2", wOp2)
	outW := wOp1 + (uint(1)<<wOp2 - 1)
	out := c.AddOutputPort("out", outW)
	out.Drive(func() uint64 { return op1.Unsigned() << op2.Unsigned() })
	return c
}

// NewDshr creates a dynamic right shift: op1 shifted right by the
// runtime value of op2, either arithmetic (Signed) or logical
// (Unsigned). Output width equals w_op1 — grounded on
// original_source/core/ops/op_dshr.h.
func NewDshr(parent *circuit.Component, name string, wOp1, wOp2 uint, signed Signedness) *circuit.Component {
	c := circuit.NewComponent(parent, name)
	op1 := c.AddInputPort("op1", wOp1)
	op2 := c.AddInputPort("op2", wOp2)
	out := c.AddOutputPort("out", wOp1)

	if signed == Signed {
		out.Drive(func() uint64 { return uint64(op1.Signed() >> op2.Unsigned()) })
	} else {
		out.Drive(func() uint64 { return op1.Unsigned() >> op2.Unsigned() })
	}
	return c
}

package ops

import "github.com/sarchlab/vsrtl/circuit"

// NewDiv creates a division component (num / den). Unsigned output
// width equals w_num; signed output width is w_num + 1 to accommodate
// the sign bit of a negated maximal-magnitude numerator — grounded on
// original_source/core/ops/op_div.h. Division by zero raises a
// circuit.DivisionByZero panic from within the propagation function,
// matching the rest of the library's "errors surface at settle time"
// convention for primitive-level undefined behavior.
func NewDiv(parent *circuit.Component, name string, wNum, wDen uint, signed Signedness) *circuit.Component {
	c := circuit.NewComponent(parent, name)
	num := c.AddInputPort("num", wNum)
	den := c.AddInputPort("den", wDen)

	outW := wNum
	if signed == Signed {
		outW = wNum + 1
	}
	out := c.AddOutputPort("out", outW)

	if signed == Signed {
		out.Drive(func() uint64 {
			d := den.Signed()
			if d == 0 {
				panic(divByZero(name))
			}
			return uint64(num.Signed() / d)
		})
	} else {
		out.Drive(func() uint64 {
			d := den.Unsigned()
			if d == 0 {
				panic(divByZero(name))
			}
			return num.Unsigned() / d
		})
	}
	return c
}

// NewMod creates a modulo component (num % den). Output width is
// min(w_num, w_den) — grounded on original_source/core/ops/op_mod.h.
func NewMod(parent *circuit.Component, name string, wNum, wDen uint, signed Signedness) *circuit.Component {
	c := circuit.NewComponent(parent, name)
	num := c.AddInputPort("num", wNum)
	den := c.AddInputPort("den", wDen)
	out := c.AddOutputPort("out", minWidth(wNum, wDen))

	if signed == Signed {
		out.Drive(func() uint64 {
			d := den.Signed()
			if d == 0 {
				panic(divByZero(name))
			}
			return uint64(num.Signed() % d)
		})
	} else {
		out.Drive(func() uint64 {
			d := den.Unsigned()
			if d == 0 {
				panic(divByZero(name))
			}
			return num.Unsigned() % d
		})
	}
	return c
}

// NewMul creates a multiplier (op1 * op2). Output width is
// w_op1 + w_op2, wide enough to hold the full product without
// overflow. This primitive is not present in the C++ source's op
// library (division and modulo are, but multiplication is notably
// absent); it is supplemented here following the same OpType-driven
// construction shape as NewDiv/NewMod.
func NewMul(parent *circuit.Component, name string, wOp1, wOp2 uint, signed Signedness) *circuit.Component {
	c := circuit.NewComponent(parent, name)
	op1 := c.AddInputPort("op1", wOp1)
	op2 := c.AddInputPort("op2", wOp2)
	out := c.AddOutputPort("out", wOp1+wOp2)

	if signed == Signed {
		out.Drive(func() uint64 { return uint64(op1.Signed() * op2.Signed()) })
	} else {
		out.Drive(func() uint64 { return op1.Unsigned() * op2.Unsigned() })
	}
	return c
}

func divByZero(name string) error {
	return &circuit.Error{Kind: circuit.DivisionByZero, Subject: name, Detail: "division by zero"}
}

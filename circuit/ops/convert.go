package ops

import "github.com/sarchlab/vsrtl/circuit"

// NewPad creates a width-padding component: if w >= n the value passes
// through unchanged at width w; otherwise the output is widened to n,
// sign- or zero-extending per signed — grounded on
// original_source/core/ops/op_pad.h.
func NewPad(parent *circuit.Component, name string, w, n uint, signed Signedness) *circuit.Component {
	c := circuit.NewComponent(parent, name)
	in := c.AddInputPort("in", w)

	if w >= n {
		out := c.AddOutputPort("out", w)
		out.Drive(func() uint64 { return in.Unsigned() })
		return c
	}

	out := c.AddOutputPort("out", n)
	if signed == Signed {
		out.Drive(func() uint64 { return uint64(in.Signed()) })
	} else {
		out.Drive(func() uint64 { return in.Unsigned() })
	}
	return c
}

// NewCvt creates a signedness conversion. A Signed conversion keeps
// width w (simply reinterpreting the bit pattern as signed); an
// Unsigned conversion widens by one bit to hold the sign information
// of what may have been a negative source value — grounded on
// original_source/core/ops/op_cvt.h.
func NewCvt(parent *circuit.Component, name string, w uint, signed Signedness) *circuit.Component {
	c := circuit.NewComponent(parent, name)
	in := c.AddInputPort("in", w)

	outW := w
	if signed == Unsigned {
		outW = w + 1
	}
	out := c.AddOutputPort("out", outW)
	out.Drive(func() uint64 { return uint64(in.Signed()) })
	return c
}

// NewBitExtr creates a bit-field extractor: out = in[hi:lo] inclusive.
// Panics if the range is invalid, matching the C++ source's constructor-
// time validation — grounded on original_source/core/ops/op_bitextr.h.
func NewBitExtr(parent *circuit.Component, name string, wIn, lo, hi uint) *circuit.Component {
	if hi >= wIn {
		panic(&circuit.Error{Kind: circuit.InvalidBitRange, Subject: name, Detail: "hi must be strictly less than the input width"})
	}
	if hi < lo {
		panic(&circuit.Error{Kind: circuit.InvalidBitRange, Subject: name, Detail: "hi must be greater than or equal to lo"})
	}

	c := circuit.NewComponent(parent, name)
	in := c.AddInputPort("in", wIn)
	outW := hi - lo + 1
	out := c.AddOutputPort("out", outW)
	out.Drive(func() uint64 { return extractBits(in.Unsigned(), outW, lo) })
	return c
}

// extractBits returns the w-bit field of v starting at bit offset lo.
func extractBits(v uint64, w, lo uint) uint64 {
	shifted := v >> lo
	if w >= 64 {
		return shifted
	}
	return shifted & ((uint64(1) << w) - 1)
}

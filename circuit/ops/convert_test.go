package ops_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/vsrtl/circuit"
	"github.com/sarchlab/vsrtl/circuit/ops"
)

var _ = Describe("NewPad", func() {
	It("passes through unchanged when already wide enough", func() {
		pad := ops.NewPad(circuit.NewComponent(nil, "root"), "pad", 8, 4, ops.Unsigned)
		Expect(pad.OutputPort("out").Width()).To(Equal(uint(8)))
	})

	It("sign-extends when widening a signed value", func() {
		root := settle(func(root *circuit.Component) {
			pad := ops.NewPad(root, "pad", 8, 16, ops.Signed)
			pad.InputPort("in").SetConst(0xFF) // -1 at width 8
		})
		out := root.Subcomponents()[0].OutputPort("out")
		Expect(out.Width()).To(Equal(uint(16)))
		Expect(out.Signed()).To(Equal(int64(-1)))
	})

	It("zero-extends when widening an unsigned value", func() {
		root := settle(func(root *circuit.Component) {
			pad := ops.NewPad(root, "pad", 8, 16, ops.Unsigned)
			pad.InputPort("in").SetConst(0xFF)
		})
		Expect(root.Subcomponents()[0].OutputPort("out").Unsigned()).To(Equal(uint64(0xFF)))
	})
})

var _ = Describe("NewCvt", func() {
	It("widens by one bit for an Unsigned conversion", func() {
		cvt := ops.NewCvt(circuit.NewComponent(nil, "root"), "cvt", 8, ops.Unsigned)
		Expect(cvt.OutputPort("out").Width()).To(Equal(uint(9)))
	})

	It("keeps the width for a Signed conversion", func() {
		cvt := ops.NewCvt(circuit.NewComponent(nil, "root"), "cvt", 8, ops.Signed)
		Expect(cvt.OutputPort("out").Width()).To(Equal(uint(8)))
	})
})

var _ = Describe("NewBitExtr", func() {
	It("extracts an inclusive bit range", func() {
		root := settle(func(root *circuit.Component) {
			be := ops.NewBitExtr(root, "be", 16, 4, 7)
			be.InputPort("in").SetConst(0xF0)
		})
		out := root.Subcomponents()[0].OutputPort("out")
		Expect(out.Width()).To(Equal(uint(4)))
		Expect(out.Unsigned()).To(Equal(uint64(0xF)))
	})

	It("panics with InvalidBitRange when hi is out of range", func() {
		Expect(func() {
			ops.NewBitExtr(circuit.NewComponent(nil, "root"), "be", 8, 0, 8)
		}).To(PanicWith(WithTransform(func(v interface{}) circuit.Kind {
			return v.(*circuit.Error).Kind
		}, Equal(circuit.InvalidBitRange))))
	})

	It("panics with InvalidBitRange when hi < lo", func() {
		Expect(func() {
			ops.NewBitExtr(circuit.NewComponent(nil, "root"), "be", 8, 5, 2)
		}).To(PanicWith(WithTransform(func(v interface{}) circuit.Kind {
			return v.(*circuit.Error).Kind
		}, Equal(circuit.InvalidBitRange))))
	})
})

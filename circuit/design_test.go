package circuit_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/vsrtl/circuit"
)

var _ = Describe("Design", func() {
	Describe("VerifyAndInitialize", func() {
		It("rejects an unconnected input port", func() {
			root := circuit.NewComponent(nil, "root")
			root.AddInputPort("in", 8)
			design := circuit.NewDesign("bad", root)
			err := design.VerifyAndInitialize()
			Expect(err).To(HaveOccurred())
			Expect(err.(*circuit.Error).Kind).To(Equal(circuit.UnconnectedInput))
		})

		It("rejects a zero-width port", func() {
			root := circuit.NewComponent(nil, "root")
			p := root.AddOutputPort("out", 0)
			p.SetConst(0)
			design := circuit.NewDesign("bad", root)
			err := design.VerifyAndInitialize()
			Expect(err).To(HaveOccurred())
			Expect(err.(*circuit.Error).Kind).To(Equal(circuit.ZeroWidthPort))
		})

		It("rejects an output port with no propagation source", func() {
			root := circuit.NewComponent(nil, "root")
			root.AddOutputPort("out", 8)
			design := circuit.NewDesign("bad", root)
			err := design.VerifyAndInitialize()
			Expect(err).To(HaveOccurred())
			Expect(err.(*circuit.Error).Kind).To(Equal(circuit.UninitializedSignal))
		})

		It("reports UnpropagatableCircuit for a Connect-linked loop with no register break", func() {
			root := circuit.NewComponent(nil, "root")
			c1 := circuit.NewComponent(root, "c1")
			c2 := circuit.NewComponent(root, "c2")
			c1in := c1.AddInputPort("in", 8)
			c1out := c1.AddOutputPort("out", 8)
			c1out.Drive(func() uint64 { return c1in.Unsigned() })
			c2in := c2.AddInputPort("in", 8)
			c2out := c2.AddOutputPort("out", 8)
			c2out.Drive(func() uint64 { return c2in.Unsigned() })
			circuit.MustConnect(c1out, c2in)
			circuit.MustConnect(c2out, c1in)

			design := circuit.NewDesign("loop", root)
			err := design.VerifyAndInitialize()
			Expect(err).To(HaveOccurred())
			Expect(err.(*circuit.Error).Kind).To(Equal(circuit.UnpropagatableCircuit))
		})
	})

	Describe("Clock", func() {
		It("auto-initializes on first call", func() {
			root := circuit.NewComponent(nil, "root")
			r := circuit.NewRegister(root, "r", 8)
			r.In().SetConst(5)
			design := circuit.NewDesign("auto", root)
			Expect(design.Clock()).To(Succeed())
			Expect(r.Value()).To(Equal(uint64(5)))
			Expect(design.Cycle()).To(Equal(uint64(1)))
		})
	})

	Describe("WithReverseStackSize", func() {
		It("applies the bound to every register in the tree", func() {
			root := circuit.NewComponent(nil, "root")
			r1 := circuit.NewRegister(root, "r1", 8)
			r1.In().SetConst(1)
			sub := circuit.NewComponent(root, "sub")
			r2 := circuit.NewRegister(sub, "r2", 8)
			r2.In().SetConst(2)

			design := circuit.NewDesign("multi", root).WithReverseStackSize(1)
			Expect(design.VerifyAndInitialize()).To(Succeed())
			Expect(design.Clock()).To(Succeed())
			Expect(design.Clock()).To(Succeed())
			Expect(design.Reverse()).To(Succeed())
			err := design.Reverse()
			Expect(err).To(HaveOccurred(), "both registers share the size-1 bound")
		})
	})

	Describe("Describe", func() {
		It("renders without panicking for a simple tree", func() {
			root := circuit.NewComponent(nil, "root")
			r := circuit.NewRegister(root, "r", 8)
			r.In().SetConst(1)
			design := circuit.NewDesign("described", root)
			Expect(design.VerifyAndInitialize()).To(Succeed())
			Expect(func() { design.Describe() }).NotTo(Panic())
		})
	})
})

package circuit_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/vsrtl/circuit"
)

var _ = Describe("Register", func() {
	var (
		root *circuit.Component
		r    *circuit.Component
	)

	BeforeEach(func() {
		root = circuit.NewComponent(nil, "root")
		r = circuit.NewRegister(root, "r", 8)
		r.In().SetConst(0x2A)
	})

	It("reads zero before the first clock", func() {
		design := circuit.NewDesign("reg", root)
		Expect(design.VerifyAndInitialize()).To(Succeed())
		Expect(r.Value()).To(Equal(uint64(0)))
	})

	It("samples its input on Clock", func() {
		design := circuit.NewDesign("reg", root)
		Expect(design.VerifyAndInitialize()).To(Succeed())
		Expect(design.Clock()).To(Succeed())
		Expect(r.Value()).To(Equal(uint64(0x2A)))
	})

	It("undoes a Clock with Reverse", func() {
		design := circuit.NewDesign("reg", root)
		Expect(design.VerifyAndInitialize()).To(Succeed())
		Expect(design.Clock()).To(Succeed())
		Expect(design.Reverse()).To(Succeed())
		Expect(r.Value()).To(Equal(uint64(0)))
	})

	It("fails ReverseExhausted when there is nothing to undo", func() {
		design := circuit.NewDesign("reg", root)
		Expect(design.VerifyAndInitialize()).To(Succeed())
		err := design.Reverse()
		Expect(err).To(HaveOccurred())
		Expect(err.(*circuit.Error).Kind).To(Equal(circuit.ReverseExhausted))
	})

	It("restores zero and clears history on Reset", func() {
		design := circuit.NewDesign("reg", root)
		Expect(design.VerifyAndInitialize()).To(Succeed())
		Expect(design.Clock()).To(Succeed())
		Expect(design.Reset()).To(Succeed())
		Expect(r.Value()).To(Equal(uint64(0)))
		err := design.Reverse()
		Expect(err).To(HaveOccurred())
	})

	It("bounds the reverse stack to SetReverseStackSize", func() {
		design := circuit.NewDesign("reg", root)
		r.SetReverseStackSize(1)
		Expect(design.VerifyAndInitialize()).To(Succeed())
		Expect(design.Clock()).To(Succeed()) // pushes regValue=0, saves 0x2A
		Expect(design.Clock()).To(Succeed()) // pushes regValue=0x2A, evicting the 0 entry
		Expect(design.Reverse()).To(Succeed())
		Expect(r.Value()).To(Equal(uint64(0x2A)))
		err := design.Reverse()
		Expect(err).To(HaveOccurred(), "the evicted 0 entry should no longer be reachable")
	})

	It("resets to a configured initial value instead of zero", func() {
		r.SetInitValue(0x55)
		design := circuit.NewDesign("reg", root)
		Expect(design.VerifyAndInitialize()).To(Succeed())
		Expect(r.Value()).To(Equal(uint64(0x55)))

		Expect(design.Clock()).To(Succeed())
		Expect(r.Value()).To(Equal(uint64(0x2A)))

		Expect(design.Reset()).To(Succeed())
		Expect(r.Value()).To(Equal(uint64(0x55)))
	})

	It("ForceValue bypasses the reverse stack", func() {
		design := circuit.NewDesign("reg", root)
		Expect(design.VerifyAndInitialize()).To(Succeed())
		Expect(design.Clock()).To(Succeed()) // pushes regValue=0, saves 0x2A
		r.ForceValue(0x7)
		Expect(r.Value()).To(Equal(uint64(0x7)))
		Expect(design.Reverse()).To(Succeed())
		Expect(r.Value()).To(Equal(uint64(0)), "Reverse pops the pre-clock value, ignoring the forced override")
	})
})

package circuit_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/vsrtl/circuit"
)

var _ = Describe("Error", func() {
	It("formats with subject when present", func() {
		err := &circuit.Error{Kind: circuit.WidthMismatch, Subject: "foo.bar", Detail: "8 vs 16"}
		Expect(err.Error()).To(Equal("WidthMismatch: foo.bar: 8 vs 16"))
	})

	It("formats without subject when empty", func() {
		err := &circuit.Error{Kind: circuit.UnpropagatableCircuit, Detail: "no progress"}
		Expect(err.Error()).To(Equal("UnpropagatableCircuit: no progress"))
	})

	DescribeTable("Kind.String() covers every defined kind",
		func(k circuit.Kind, want string) {
			Expect(k.String()).To(Equal(want))
		},
		Entry("UnconnectedInput", circuit.UnconnectedInput, "UnconnectedInput"),
		Entry("ZeroWidthPort", circuit.ZeroWidthPort, "ZeroWidthPort"),
		Entry("DuplicateConnection", circuit.DuplicateConnection, "DuplicateConnection"),
		Entry("WidthMismatch", circuit.WidthMismatch, "WidthMismatch"),
		Entry("UninitializedSignal", circuit.UninitializedSignal, "UninitializedSignal"),
		Entry("DivisionByZero", circuit.DivisionByZero, "DivisionByZero"),
		Entry("PartitionArityError", circuit.PartitionArityError, "PartitionArityError"),
		Entry("RoutingNoPath", circuit.RoutingNoPath, "RoutingNoPath"),
		Entry("ReverseExhausted", circuit.ReverseExhausted, "ReverseExhausted"),
		Entry("DoubleGraphicRegister", circuit.DoubleGraphicRegister, "DoubleGraphicRegister"),
		Entry("InvalidBitRange", circuit.InvalidBitRange, "InvalidBitRange"),
		Entry("UnpropagatableCircuit", circuit.UnpropagatableCircuit, "UnpropagatableCircuit"),
	)

	It("falls back to Unknown for an out-of-range kind", func() {
		Expect(circuit.Kind(999).String()).To(Equal("Unknown"))
	})
})

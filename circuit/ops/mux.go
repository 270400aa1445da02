package ops

import (
	"fmt"

	"github.com/sarchlab/vsrtl/circuit"
)

// NewMultiplexer creates an n-way multiplexer: select (width
// ceil(log2(n))) picks which of the n width-w "in%d" inputs drives
// "out" — grounded on original_source/core/vsrtl_multiplexer.h.
func NewMultiplexer(parent *circuit.Component, name string, n int, w uint) *circuit.Component {
	if n < 1 {
		panic(&circuit.Error{Kind: circuit.InvalidBitRange, Subject: name, Detail: "multiplexer requires at least one input"})
	}
	c := circuit.NewComponent(parent, name)
	selWidth := ceilLog2Ops(uint(n))
	sel := c.AddInputPort("select", selWidth)

	ins := make([]*circuit.Port, n)
	for i := 0; i < n; i++ {
		ins[i] = c.AddInputPort(muxInputName(i), w)
	}

	out := c.AddOutputPort("out", w)
	out.Drive(func() uint64 {
		idx := sel.Unsigned()
		if idx >= uint64(n) {
			idx = uint64(n) - 1
		}
		return ins[idx].Unsigned()
	})
	return c
}

func muxInputName(i int) string {
	return fmt.Sprintf("in%d", i)
}

// ceilLog2Ops mirrors circuit's unexported ceilLog2 (select-width
// sizing needs the same ceil(log2(n)) rule as the register file's
// address decoder).
func ceilLog2Ops(n uint) uint {
	if n <= 1 {
		return 1
	}
	w := uint(0)
	x := n - 1
	for x > 0 {
		x >>= 1
		w++
	}
	return w
}

package ops

import (
	"fmt"

	"github.com/sarchlab/vsrtl/circuit"
)

// NewCollator creates a width-w component that packs w single-bit
// "in%d" inputs into one width-w output, bit i of out taking its value
// from in%d[i] — grounded on original_source/core/vsrtl_collator.h.
func NewCollator(parent *circuit.Component, name string, w uint) *circuit.Component {
	c := circuit.NewComponent(parent, name)
	ins := make([]*circuit.Port, w)
	for i := uint(0); i < w; i++ {
		ins[i] = c.AddInputPort(fmt.Sprintf("in%d", i), 1)
	}
	out := c.AddOutputPort("out", w)
	out.Drive(func() uint64 {
		var v uint64
		for i, p := range ins {
			v |= (p.Unsigned() & 1) << uint(i)
		}
		return v
	})
	return c
}

// NewDecollator creates the inverse of Collator: a width-w "in" is
// split into w single-bit "out%d" outputs, out%d carrying bit i of in
// — grounded on original_source/core/vsrtl_decollator.h.
func NewDecollator(parent *circuit.Component, name string, w uint) *circuit.Component {
	c := circuit.NewComponent(parent, name)
	in := c.AddInputPort("in", w)
	for i := uint(0); i < w; i++ {
		bit := i
		out := c.AddOutputPort(fmt.Sprintf("out%d", bit), 1)
		out.Drive(func() uint64 { return (in.Unsigned() >> bit) & 1 })
	}
	return c
}

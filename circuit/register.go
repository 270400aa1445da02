package circuit

// defaultReverseStackSize matches op_reg.h's default depth.
const defaultReverseStackSize = 100

// NewRegister creates a single-word register component under parent:
// the only stateful primitive, sampling its "in" port at Clock and
// exposing the previously sampled value on its "out" port throughout
// the following settle round. Grounded on
// original_source/core/ops/op_reg.h (OpReg::m_savedValue,
// m_reverseStack, saveToStack, forceValue).
func NewRegister(parent *Component, name string, width uint) *Component {
	c := NewComponent(parent, name)
	c.kind = KindRegister
	c.regReverseMax = defaultReverseStackSize
	c.AddInputPort("in", width)
	c.AddOutputPort("out", width)
	return c
}

// In returns a register's data input port.
func (c *Component) In() *Port { return c.inputs[0] }

// Out returns a register's data output port.
func (c *Component) Out() *Port { return c.outputs[0] }

// Value returns a register's currently saved (output) value. Valid
// only when Kind() == KindRegister.
func (c *Component) Value() uint64 { return c.regValue }

// SetInitValue sets the value a register resets to, in place of zero.
// Must be called before VerifyAndInitialize (or any explicit Reset)
// for it to take effect. Grounded on
// original_source/core/op_reg.h::setInitValue.
func (c *Component) SetInitValue(v uint64) {
	c.regInitValue = truncate(v, c.outputs[0].width)
}

// SetReverseStackSize bounds the number of clock edges Reverse can
// undo for this register. Shrinking the bound below the current depth
// drops the oldest entries. A negative n means unbounded.
func (c *Component) SetReverseStackSize(n int) {
	c.regReverseMax = n
	if n >= 0 && len(c.regReverse) > n {
		c.regReverse = c.regReverse[len(c.regReverse)-n:]
	}
}

// seedOutput publishes a register's saved value onto its output port
// for the current settle round. Design.settle calls this for every
// register before the general propagation sweep.
func (c *Component) seedOutput(stack *[]*Port) {
	if c.regSeedValues != nil {
		values := c.regSeedValues()
		for _, p := range c.outputs {
			if v, ok := values[p.name]; ok {
				p.seed(v, stack)
			}
		}
		return
	}
	c.outputs[0].seed(c.regValue, stack)
}

// clock samples a register's input port into its saved value and
// pushes the prior value onto the reverse stack. It must be called
// after the circuit has fully settled (so In().Unsigned() reflects the
// new combinational state) and before the next settle round begins.
func (c *Component) clock() {
	if c.regClockFn != nil {
		c.regClockFn()
		return
	}
	c.pushReverse(c.regValue)
	c.regValue = truncate(c.inputs[0].Unsigned(), c.outputs[0].width)
}

// reset restores a register's saved value to its initial value (zero
// unless SetInitValue was called) and clears its reverse stack,
// matching op_reg.h::reset.
func (c *Component) reset() {
	if c.regResetFn != nil {
		c.regResetFn()
		return
	}
	c.regValue = c.regInitValue
	c.regReverse = c.regReverse[:0]
}

// ForceValue overrides a register's saved value without going through
// Clock and without touching the reverse stack — op_reg.h's
// forceValue is explicitly excluded from the undo history since it
// represents external/debugger intervention, not a simulated clock
// edge.
func (c *Component) ForceValue(v uint64) {
	c.regValue = truncate(v, c.outputs[0].width)
}

// reverse pops the most recent entry off a register's reverse stack
// and restores it as the saved value. It returns ReverseExhausted if
// the stack is empty.
func (c *Component) reverse() error {
	if c.regReverseFn != nil {
		return c.regReverseFn()
	}
	if len(c.regReverse) == 0 {
		return newError(ReverseExhausted, c.name, "no saved state to reverse to")
	}
	last := len(c.regReverse) - 1
	c.regValue = c.regReverse[last]
	c.regReverse = c.regReverse[:last]
	return nil
}

func (c *Component) pushReverse(v uint64) {
	if c.regReverseMax == 0 {
		return
	}
	c.regReverse = append(c.regReverse, v)
	if c.regReverseMax > 0 && len(c.regReverse) > c.regReverseMax {
		c.regReverse = c.regReverse[1:]
	}
}

package circuit

import (
	"fmt"

	"github.com/rs/xid"
	"github.com/sarchlab/akita/v4/sim"
)

// ComponentKind tags a Component with its role in the propagation
// engine. Registers are the only component kind that breaks a
// combinational cycle, so the engine needs to recognize them without a
// type switch over every primitive.
type ComponentKind int

const (
	// KindCombinational is the default: a component whose output ports
	// depend only on its input ports within the same settle round.
	KindCombinational ComponentKind = iota
	// KindRegister marks a Register: its output reflects a value saved
	// at the previous clock edge, so it never blocks on its own inputs
	// during propagation.
	KindRegister
)

// HookOnChanged is the position name for the "changed" event every
// Component invokes once per settle round, when it settles, whether or
// not any of its port values changed.
const HookOnChanged = "Component.Changed"

// ChangedHookCtx is the payload delivered to hooks registered at
// HookOnChanged.
type ChangedHookCtx struct {
	Component *Component
}

// Component is a named node in the circuit tree. Leaf components
// (primitives) declare their own ports and a propagation function per
// output; composite components declare subcomponents and wire ports
// between them.
type Component struct {
	sim.HookableBase

	id     xid.ID
	name   string
	kind   ComponentKind
	parent *Component

	inputs  []*Port
	outputs []*Port
	subs    []*Component

	propagated bool

	// Register-only state (valid iff kind == KindRegister). Kept on
	// Component itself rather than a wrapping type so that a plain
	// tree walk over subs can find and drive every register without a
	// type assertion.
	regValue      uint64
	regInitValue  uint64
	regReverse    []uint64
	regReverseMax int

	// Optional overrides for a register-kind component whose state
	// isn't a single scalar (e.g. ops.RegisterFile's per-entry array).
	// When set, these replace the regValue-based seed/clock/reset/
	// reverse behavior below; see SetRegisterSource.
	regSeedValues func() map[string]uint64
	regClockFn    func()
	regResetFn    func()
	regReverseFn  func() error
}

// SetRegisterSource turns c into a register-kind component whose
// output values, clock-edge commit, reset, and reverse are supplied
// by the given functions instead of the scalar regValue/Out() pair
// NewRegister uses. seed returns the value to publish on each output
// port for the current settle round, keyed by port name; clock, reset,
// and reverse mirror the single-register lifecycle methods below.
// Grounded on original_source/core/vsrtl_component.cpp's
// propagateComponent, which treats any isRegister() component as a
// propagation source regardless of its internal state's shape.
func (c *Component) SetRegisterSource(seed func() map[string]uint64, clock, reset func(), reverse func() error) {
	c.kind = KindRegister
	c.regSeedValues = seed
	c.regClockFn = clock
	c.regResetFn = reset
	c.regReverseFn = reverse
}

// NewComponent creates a combinational component named name under
// parent. parent may be nil for the design's root component.
func NewComponent(parent *Component, name string) *Component {
	c := &Component{id: xid.New(), name: name, kind: KindCombinational, parent: parent}
	if parent != nil {
		parent.subs = append(parent.subs, c)
	}
	return c
}

// ID returns the component's sortable xid identifier, assigned once at
// construction.
func (c *Component) ID() xid.ID { return c.id }

// Name returns the component's declared name.
func (c *Component) Name() string { return c.name }

// Kind reports whether this is a register or a combinational component.
func (c *Component) Kind() ComponentKind { return c.kind }

// Parent returns the owning component, or nil for the root.
func (c *Component) Parent() *Component { return c.parent }

// Subcomponents returns the component's direct children in declaration
// order.
func (c *Component) Subcomponents() []*Component { return c.subs }

// InputPorts returns the component's input ports in declaration order.
func (c *Component) InputPorts() []*Port { return c.inputs }

// OutputPorts returns the component's output ports in declaration
// order.
func (c *Component) OutputPorts() []*Port { return c.outputs }

// AddInputPort declares a new input port of the given width.
func (c *Component) AddInputPort(name string, width uint) *Port {
	p := newPort(c, name, width, roleInput)
	c.inputs = append(c.inputs, p)
	return p
}

// AddOutputPort declares a new output port of the given width.
func (c *Component) AddOutputPort(name string, width uint) *Port {
	p := newPort(c, name, width, roleOutput)
	c.outputs = append(c.outputs, p)
	return p
}

// InputPort looks up a previously declared input port by name.
func (c *Component) InputPort(name string) *Port {
	return findPort(c.inputs, name)
}

// OutputPort looks up a previously declared output port by name.
func (c *Component) OutputPort(name string) *Port {
	return findPort(c.outputs, name)
}

func findPort(ports []*Port, name string) *Port {
	for _, p := range ports {
		if p.name == name {
			return p
		}
	}
	return nil
}

// resetPropagation clears this component's propagated flag, every
// port's propagated flag, and recurses into subcomponents, ahead of a
// settle round.
func (c *Component) resetPropagation() {
	c.propagated = false
	for _, p := range c.inputs {
		p.resetPropagation()
	}
	for _, p := range c.outputs {
		p.resetPropagation()
	}
	for _, s := range c.subs {
		s.resetPropagation()
	}
}

// tryPropagate attempts to settle this component for the current round.
// A register is considered settled at once, since its output port is
// already seeded by Design.settle before the general sweep; its input
// ports are still evaluated where they can be, so the next clock edge
// samples current values. An ordinary component first evaluates its
// input ports (constants, and inputs whose upstream has propagated),
// then settles once every input port is propagated, every subcomponent
// has settled, and every output port has a value.
//
// tryPropagate is re-entered from many call sites (the recursive
// downstream fan-out in Port.propagate, plus the top-level sweep from
// Design.settle), so it must be idempotent and safe to call before its
// inputs are ready — in that case it simply returns without progress,
// and a later call (triggered once the missing input arrives) succeeds.
func (c *Component) tryPropagate(stack *[]*Port) {
	if c.propagated {
		return
	}

	if c.kind == KindRegister {
		for _, p := range c.inputs {
			p.propagate(stack)
		}
		c.propagated = true
		c.invokeChanged()
		return
	}

	for _, p := range c.inputs {
		p.propagate(stack)
		if !p.propagated {
			return
		}
	}

	for _, s := range c.subs {
		s.tryPropagate(stack)
	}
	for _, s := range c.subs {
		if !s.propagated {
			return
		}
	}

	for _, p := range c.outputs {
		p.propagate(stack)
		if !p.propagated {
			return
		}
	}

	c.propagated = true
	c.invokeChanged()
}

func (c *Component) invokeChanged() {
	if c.NumHooks() == 0 {
		return
	}
	c.InvokeHook(sim.HookCtx{
		Domain: c,
		Pos:    &sim.HookPos{Name: HookOnChanged},
		Item:   ChangedHookCtx{Component: c},
	})
}

// isFullyPropagated reports whether this component and every
// subcomponent settled during the current round. Design.settle uses
// this after one sweep to detect an unpropagatable circuit: a
// combinational cycle with no register to break it never converges,
// and leaves at least one component stuck unpropagated forever.
func (c *Component) isFullyPropagated() bool {
	if !c.propagated {
		return false
	}
	for _, s := range c.subs {
		if !s.isFullyPropagated() {
			return false
		}
	}
	return true
}

// verify walks the component tree and reports construction-time
// defects: zero-width ports, unconnected input ports, and output/derived
// ports with no propagation source. It does not mutate any state and
// may be called repeatedly (e.g. after rewiring a circuit under
// construction).
func (c *Component) verify() error {
	for _, p := range c.inputs {
		if p.width == 0 {
			return newError(ZeroWidthPort, c.qualifiedName(p.name), "input port has zero width")
		}
		if !p.IsConnected() {
			return newError(UnconnectedInput, c.qualifiedName(p.name), "input port has no upstream source")
		}
	}
	for _, p := range c.outputs {
		if p.width == 0 {
			return newError(ZeroWidthPort, c.qualifiedName(p.name), "output port has zero width")
		}
		// A register's output is driven internally from saved state,
		// not from an upstream port or propagation function.
		if c.kind != KindRegister && !p.IsConnected() {
			return newError(UninitializedSignal, c.qualifiedName(p.name), "output port has no upstream or propagation function")
		}
	}
	for _, s := range c.subs {
		if err := s.verify(); err != nil {
			return err
		}
	}
	return nil
}

// forEachRegister calls fn for this component and every subcomponent
// whose Kind is KindRegister, in declaration order.
func (c *Component) forEachRegister(fn func(*Component)) {
	if c.kind == KindRegister {
		fn(c)
	}
	for _, s := range c.subs {
		s.forEachRegister(fn)
	}
}

func (c *Component) qualifiedName(portName string) string {
	return fmt.Sprintf("%s.%s", c.path(), portName)
}

func (c *Component) path() string {
	if c.parent == nil {
		return c.name
	}
	return fmt.Sprintf("%s.%s", c.parent.path(), c.name)
}

package circuit

// PropagateFunc computes a port's value from its parent component's
// sibling ports. It must be a pure function of already-propagated
// inputs and must return a value that fits within the port's width
// (values are masked on write, so overflow is silently truncated
// rather than rejected).
type PropagateFunc func() uint64

// role records the nominal direction a port was declared with.
// verify() tells inputs from outputs by the component's port lists
// rather than by this field, and propagation treats every port
// uniformly, since output-to-output pass-through wiring is allowed.
type role int

const (
	roleInput role = iota
	roleOutput
)

// Port is a fixed-width wire owned by a Component. A non-constant port
// has exactly one upstream source: either an upstream Port (set via
// Connect) or a propagation function (set via Drive/SetConst), never
// both.
type Port struct {
	name   string
	width  uint
	parent *Component
	role   role

	upstream   *Port
	downstream []*Port

	fn PropagateFunc

	propagated bool
	value      uint64
}

func newPort(parent *Component, name string, width uint, r role) *Port {
	return &Port{name: name, width: width, parent: parent, role: r}
}

// Name returns the port's declared name.
func (p *Port) Name() string { return p.name }

// Width returns the port's bit width.
func (p *Port) Width() uint { return p.width }

// Parent returns the component that owns this port.
func (p *Port) Parent() *Component { return p.parent }

// Downstream returns every port wired directly off this one via
// Connect. Used by the layout package to derive a netlist from the
// circuit's wiring without re-deriving it from scratch.
func (p *Port) Downstream() []*Port { return p.downstream }

// IsConnected reports whether the port has an upstream source (either a
// Connect-ed port or a propagation function).
func (p *Port) IsConnected() bool {
	return p.upstream != nil || p.fn != nil
}

// IsPropagated reports whether this port has a value for the current
// settle round.
func (p *Port) IsPropagated() bool { return p.propagated }

// Unsigned returns the raw W-bit pattern of the port's cached value.
func (p *Port) Unsigned() uint64 { return p.value }

// Signed returns the two's-complement interpretation of the port's
// cached value at its width.
func (p *Port) Signed() int64 { return signExtend(p.value, p.width) }

// Drive attaches a propagation function to the port (the "port << λ"
// operation). It is an error to call this on a port that
// already has an upstream source.
func (p *Port) Drive(fn PropagateFunc) *Port {
	if p.upstream != nil {
		panic(newError(DuplicateConnection, p.name, "port already connected, cannot drive"))
	}
	p.fn = fn
	return p
}

// SetConst attaches a constant propagation function returning value
// (the "literal >> dst" operation). The value is masked
// to the port's width.
func (p *Port) SetConst(value uint64) *Port {
	v := truncate(value, p.width)
	return p.Drive(func() uint64 { return v })
}

// Connect binds dst's upstream source to src (the "src >> dst" /
// "connect(src, dst)" operation). It fails if dst already
// has an upstream or if the widths mismatch.
func Connect(src, dst *Port) error {
	if dst.upstream != nil || dst.fn != nil {
		return newError(DuplicateConnection, dst.name, "destination already has an upstream source")
	}
	if src.width != dst.width {
		return newError(WidthMismatch, dst.name, "connecting %d-bit source to %d-bit destination", src.width, dst.width)
	}
	dst.upstream = src
	src.downstream = append(src.downstream, dst)
	return nil
}

// MustConnect behaves like Connect but panics on error; useful in
// circuit-construction code where a connection failure is a
// programming error, not a runtime condition.
func MustConnect(src, dst *Port) {
	if err := Connect(src, dst); err != nil {
		panic(err)
	}
}

// resetPropagation clears the propagated flag ahead of a settle round.
func (p *Port) resetPropagation() {
	p.propagated = false
}

// propagate computes the port's value if not already propagated this
// round, then recurses into every downstream port and notifies its
// owning component. This realizes propagate(stack) and the worklist
// fan-out in one pass: a port's downstream list may
// contain ordinary input ports of other components, or (for
// pass-through wiring) other output ports, and either is propagated
// uniformly.
func (p *Port) propagate(stack *[]*Port) {
	if p.propagated {
		return
	}

	switch {
	case p.upstream != nil:
		if !p.upstream.propagated {
			// Upstream not ready yet; the caller will retry this port
			// once its driver has propagated (via the driver's own
			// downstream fan-out).
			return
		}
		p.value = p.upstream.value
	case p.fn != nil:
		p.value = truncate(p.fn(), p.width)
	default:
		panic(newError(UninitializedSignal, p.name, "port has neither upstream nor propagation function"))
	}

	p.propagated = true
	*stack = append(*stack, p)

	for _, d := range p.downstream {
		d.propagate(stack)
		d.parent.tryPropagate(stack)
	}
}

// seed forces the port's value directly, bypassing the upstream/fn
// lookup, and cascades to its downstream ports exactly like propagate.
// Registers use this to publish their saved value at the start of a
// settle round: a register's output has no upstream
// link or propagation function of its own, since its value comes from
// state captured at the previous clock edge.
func (p *Port) seed(value uint64, stack *[]*Port) {
	if p.propagated {
		return
	}
	p.value = truncate(value, p.width)
	p.propagated = true
	*stack = append(*stack, p)

	for _, d := range p.downstream {
		d.propagate(stack)
		d.parent.tryPropagate(stack)
	}
}

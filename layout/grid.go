package layout

import (
	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/vsrtl/circuit"
)

// PortGridWidth is the fixed pixel/grid width reserved for a port's
// stub on a component's edge, matching the C++ source's
// PORT_GRID_WIDTH-backed GridPort::width().
const PortGridWidth = 2

// HookOnModified is the position name for the event a GridComponent
// invokes whenever its rectangle or a port position changes — the Go
// equivalent of the C++ source's Gallant::Signal0 modified signal,
// reusing circuit.Component's hook mechanism (akita's sim.Hookable)
// rather than a bespoke signal type.
const HookOnModified = "GridComponent.Modified"

// GridPort anchors one circuit.Port to an edge and offset of its
// owning GridComponent. Grounded on
// original_source/eda/gridport.h.
type GridPort struct {
	Port   *circuit.Port
	edge   Edge
	offset uint
}

// Position returns the port's edge and offset within its owning
// GridComponent.
func (gp *GridPort) Position() (Edge, uint) { return gp.edge, gp.offset }

// GridComponent places a circuit.Component on the integer grid.
// Grounded on original_source/eda/gridcomponent.h.
type GridComponent struct {
	sim.HookableBase

	component *circuit.Component
	rect      Rect

	ports         []*GridPort
	subcomponents []*GridComponent
	parent        *GridComponent
}

// NewGridComponent wraps c for placement, building one GridPort per
// input and output port in declaration order (inputs first, matching
// the C++ source's constructor order).
func NewGridComponent(c *circuit.Component) *GridComponent {
	gc := &GridComponent{component: c}
	for _, p := range c.InputPorts() {
		gc.ports = append(gc.ports, &GridPort{Port: p})
	}
	for _, p := range c.OutputPorts() {
		gc.ports = append(gc.ports, &GridPort{Port: p})
	}
	return gc
}

// Initialize links gc to the GridComponent wrappers of its
// circuit.Component's subcomponents. byComponent maps every
// circuit.Component in the tree to its GridComponent wrapper; callers
// build this map once after constructing a GridComponent per node.
func (gc *GridComponent) Initialize(byComponent map[*circuit.Component]*GridComponent) {
	for _, s := range gc.component.Subcomponents() {
		sub := byComponent[s]
		sub.parent = gc
		gc.subcomponents = append(gc.subcomponents, sub)
	}
}

// Component returns the wrapped circuit.Component.
func (gc *GridComponent) Component() *circuit.Component { return gc.component }

// Subcomponents returns gc's child GridComponents.
func (gc *GridComponent) Subcomponents() []*GridComponent { return gc.subcomponents }

// Ports returns every GridPort owned by gc, inputs first.
func (gc *GridComponent) Ports() []*GridPort { return gc.ports }

// Rect returns gc's current placement rectangle.
func (gc *GridComponent) Rect() Rect { return gc.rect }

// Width returns the rectangle's width; Height its height.
func (gc *GridComponent) Width() int  { return gc.rect.W }
func (gc *GridComponent) Height() int { return gc.rect.H }

// MoveTo repositions gc's top-left corner to p, which must have even
// coordinates so that recursive bisection placers can halve extents
// without fractional remainders — grounded on
// original_source/eda/gridcomponent.h::moveTo's even-coordinate
// assertion.
func (gc *GridComponent) MoveTo(p Point) {
	if p.X%2 != 0 || p.Y%2 != 0 {
		panic("layout: GridComponent must be moved to even coordinates")
	}
	gc.rect.X, gc.rect.Y = p.X, p.Y
	gc.emitModified()
}

// Resize sets gc's width and height directly (used by placers that
// size a component before moving it).
func (gc *GridComponent) Resize(w, h int) {
	gc.rect.W, gc.rect.H = w, h
	gc.emitModified()
}

// SetPortPosition anchors port to edge at offset, asserting the offset
// fits within the corresponding dimension exactly as the C++ source
// does.
func (gc *GridComponent) SetPortPosition(port *GridPort, edge Edge, offset uint) {
	switch edge {
	case Left, Right:
		if int(offset) > gc.Height() {
			panic("layout: port offset exceeds component height")
		}
	case Top, Bottom:
		if int(offset) > gc.Width() {
			panic("layout: port offset exceeds component width")
		}
	}
	port.edge = edge
	port.offset = offset
	gc.emitModified()
}

// PortPosition returns the absolute grid position of port within gc,
// per its assigned edge and offset.
func (gc *GridComponent) PortPosition(port *GridPort) Point {
	switch port.edge {
	case Left:
		return Point{gc.rect.Left(), gc.rect.Top() + int(port.offset)}
	case Top:
		return Point{gc.rect.Left() + int(port.offset), gc.rect.Top()}
	case Bottom:
		return Point{gc.rect.Left() + int(port.offset), gc.rect.Bottom()}
	case Right:
		return Point{gc.rect.Right(), gc.rect.Top() + int(port.offset)}
	default:
		panic("layout: port has no assigned edge")
	}
}

// Adjusted returns gc's rectangle expanded on each edge that carries at
// least one port, by PortGridWidth, so that drawn port stubs do not
// overlap the component body — grounded on
// original_source/eda/gridcomponent.h::adjusted.
func (gc *GridComponent) Adjusted() Rect {
	r := gc.rect
	seen := map[Edge]bool{}
	for _, p := range gc.ports {
		if seen[p.edge] {
			continue
		}
		seen[p.edge] = true
		switch p.edge {
		case Top:
			r.Y -= PortGridWidth
			r.H += PortGridWidth
		case Bottom:
			r.H += PortGridWidth
		case Left:
			r.X -= PortGridWidth
			r.W += PortGridWidth
		case Right:
			r.W += PortGridWidth
		}
	}
	return r
}

func (gc *GridComponent) emitModified() {
	if gc.NumHooks() == 0 {
		return
	}
	gc.InvokeHook(sim.HookCtx{
		Domain: gc,
		Pos:    &sim.HookPos{Name: HookOnModified},
		Item:   gc,
	})
}

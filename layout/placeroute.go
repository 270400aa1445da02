package layout

import (
	"github.com/sarchlab/vsrtl/circuit"
	"github.com/sarchlab/vsrtl/layout/astar"
)

// PlaceAlg selects the placement algorithm PlaceAndRoute runs before
// routing, matching the C++ source's PlaceAlg enum.
type PlaceAlg int

const (
	// Topological1D places components left-to-right in topological
	// order of their output connections.
	Topological1D PlaceAlg = iota
	// MinCut places components via recursive Kernighan-Lin bisection.
	MinCut
)

// Builder configures a PlaceAndRoute run, following the fluent
// WithX(...) Builder idiom used throughout this module (config.Builder
// and others).
type Builder struct {
	alg PlaceAlg
}

// NewBuilder returns a Builder defaulting to Topological1D placement.
func NewBuilder() *Builder {
	return &Builder{alg: Topological1D}
}

// WithPlacementAlgorithm selects the placement algorithm. Returns b
// for chaining.
func (b *Builder) WithPlacementAlgorithm(alg PlaceAlg) *Builder {
	b.alg = alg
	return b
}

// Result is the output of a PlaceAndRoute run: every routing region
// discovered, and the netlist routed through them.
type Result struct {
	Regions []*RoutingRegion
	Netlist []Net
}

// PlaceAndRoute places components, derives the connectivity graph
// between them, and routes every net with A*, finally assigning each
// route a lane within its shared regions. Grounded on
// vsrtl_placeroute.cpp::PlaceRoute::placeAndRoute.
func (b *Builder) PlaceAndRoute(components []*GridComponent, outputComponents func(*GridComponent) []*GridComponent, conn ConnectivityFunc) (Result, error) {
	switch b.alg {
	case Topological1D:
		TopologicalSortPlacement(components, outputComponents)
	case MinCut:
		MinCutPlacement(components, conn)
	}

	var rects []Rect
	for _, gc := range components {
		rects = append(rects, gc.Adjusted())
	}
	chipRect := BoundingRectOfRects(rects)
	chipRect.W += ChipMargin
	chipRect.H += ChipMargin

	placement := Placement{Components: rects, ChipRect: chipRect}
	regions, groups := CreateConnectivityGraph(placement)
	assoc := AssociateComponentRegions(rects, groups)
	routingComponents := NewRoutingComponents(components, assoc)

	regionMap := NewRegionMap(regions)
	netlist := CreateNetlist(routingComponents, regionMap)

	heuristic := func(a, b *RoutingRegion) int {
		ac := rectCenter(a.Rect)
		bc := rectCenter(b.Rect)
		return manhattan(ac, bc)
	}
	valid := func(from, to *RoutingRegion) bool { return to != nil }
	adjacent := func(r *RoutingRegion) []*RoutingRegion { return r.AdjacentRegions() }

	for _, net := range netlist {
		for _, route := range net {
			if route.Start.Region == nil || route.End.Region == nil {
				continue
			}
			route.Path = astar.Search(route.Start.Region, route.End.Region, adjacent, valid, heuristic)
			if route.Path == nil {
				return Result{}, &circuit.Error{
					Kind:    circuit.RoutingNoPath,
					Subject: route.Start.Port.Port.Name(),
					Detail:  "A* found no path to " + route.End.Port.Port.Name(),
				}
			}
			route.registerAlongPath()
		}
	}

	for _, region := range regions {
		region.AssignRoutes()
	}

	return Result{Regions: regions, Netlist: netlist}, nil
}

func rectCenter(r Rect) Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// registerAlongPath registers this route with every region its A*
// path passes through, classifying each hop's direction from the
// relative position of consecutive regions — so RoutingRegion.AssignRoutes
// later knows how many routes share each region.
func (route *Route) registerAlongPath() {
	for i := 0; i+1 < len(route.Path); i++ {
		a, b := route.Path[i], route.Path[i+1]
		dir := Horizontal
		if a.Rect.Top() != b.Rect.Top() {
			dir = Vertical
		}
		a.RegisterRoute(route, dir)
		b.RegisterRoute(route, dir)
	}
}

package layout

import "sort"

// RoutingRegion is a rectangular gap between placed components that a
// net may be routed through. Grounded on
// original_source/eda/routing.h::RoutingRegion and
// vsrtl_placeroute.cpp::createConnectivityGraph.
type RoutingRegion struct {
	Rect Rect

	Top, Bottom, Left, Right *RoutingRegion

	// HCap/VCap bound how many routes may cross this region
	// horizontally/vertically; CreateConnectivityGraph sets them to the
	// region's width and height respectively (see regionCapacity).
	HCap, VCap int

	horizontalRoutes []*Route
	verticalRoutes   []*Route
	assignedLanes    map[*Route]float64
}

// AdjacentRegions returns the region's four neighbors in a fixed
// order, matching original_source::RoutingRegion::adjacentRegions
// (nil neighbors included, filtered by callers such as the A* search).
func (r *RoutingRegion) AdjacentRegions() []*RoutingRegion {
	return []*RoutingRegion{r.Top, r.Bottom, r.Left, r.Right}
}

func (r *RoutingRegion) setEdge(e Edge, region *RoutingRegion) {
	switch e {
	case Top:
		r.Top = region
	case Bottom:
		r.Bottom = region
	case Left:
		r.Left = region
	case Right:
		r.Right = region
	}
}

// RegisterRoute records that route crosses this region along
// direction d, so AssignRoutes can later divide the region's capacity
// among every route that uses it.
func (r *RoutingRegion) RegisterRoute(route *Route, d Direction) {
	if d == Horizontal {
		r.horizontalRoutes = append(r.horizontalRoutes, route)
	} else {
		r.verticalRoutes = append(r.verticalRoutes, route)
	}
}

// AssignRoutes distributes each registered route to an evenly spaced
// lane offset within the region's capacity, leaving a margin at both
// ends so routes don't run flush against the region boundary —
// grounded on vsrtl_placeroute.cpp::RoutingRegion::assignRoutes.
func (r *RoutingRegion) AssignRoutes() {
	r.assignedLanes = make(map[*Route]float64, len(r.horizontalRoutes)+len(r.verticalRoutes))

	hzDiff := float64(r.HCap) / float64(len(r.horizontalRoutes)+1)
	vtDiff := float64(r.VCap) / float64(len(r.verticalRoutes)+1)

	hzPos := hzDiff
	for _, route := range r.horizontalRoutes {
		r.assignedLanes[route] = hzPos
		hzPos += hzDiff
	}
	vtPos := vtDiff
	for _, route := range r.verticalRoutes {
		r.assignedLanes[route] = vtPos
		vtPos += vtDiff
	}
}

// Lane returns the offset assigned to route within this region by the
// most recent AssignRoutes call.
func (r *RoutingRegion) Lane(route *Route) (float64, bool) {
	v, ok := r.assignedLanes[route]
	return v, ok
}

// RegionGroup tracks up to four RoutingRegions meeting at one grid
// point, one per corner — grounded on
// original_source/eda/routing.h::RegionGroup.
type RegionGroup struct {
	TopLeft, TopRight, BottomLeft, BottomRight *RoutingRegion
}

func (g *RegionGroup) setCorner(c Corner, region *RoutingRegion) {
	switch c {
	case TopLeft:
		g.TopLeft = region
	case TopRight:
		g.TopRight = region
	case BottomLeft:
		g.BottomLeft = region
	case BottomRight:
		g.BottomRight = region
	}
}

// ConnectRegions wires each of the group's up-to-four regions to its
// immediate neighbors sharing this meeting point — grounded on
// vsrtl_placeroute.cpp::RegionGroup::connectRegions.
func (g *RegionGroup) ConnectRegions() {
	if g.TopLeft != nil {
		g.TopLeft.setEdge(Bottom, g.BottomLeft)
		g.TopLeft.setEdge(Right, g.TopRight)
	}
	if g.TopRight != nil {
		g.TopRight.setEdge(Left, g.TopLeft)
		g.TopRight.setEdge(Bottom, g.BottomRight)
	}
	if g.BottomLeft != nil {
		g.BottomLeft.setEdge(Top, g.TopLeft)
		g.BottomLeft.setEdge(Right, g.BottomRight)
	}
	if g.BottomRight != nil {
		g.BottomRight.setEdge(Left, g.BottomLeft)
		g.BottomRight.setEdge(Top, g.TopRight)
	}
}

// Placement is the input to the connectivity-graph builder: every
// placed component's occupied rectangle plus the overall chip
// boundary.
type Placement struct {
	Components []Rect
	ChipRect   Rect
}

// extrude stretches each line in lines to the chip boundary along its
// own axis, then narrows it back in from both ends until it meets the
// nearest crossing line in others — the "component edge extrusion"
// step of createConnectivityGraph. dir selects which axis lines is
// extruded along.
func extrude(lines, others []Line, chip Rect, dir Direction) []Line {
	var out []Line
	seen := map[Line]bool{}
	for _, l := range lines {
		var stretched Line
		if dir == Horizontal {
			stretched = Line{Point{chip.Left(), l.P1.Y}, Point{chip.Left() + chip.W, l.P1.Y}}
		} else {
			stretched = Line{Point{l.P1.X, chip.Top()}, Point{l.P1.X, chip.Top() + chip.H}}
		}

		for _, o := range others {
			p, ok := stretched.Intersect(o, Cross)
			if !ok {
				continue
			}
			if manhattan(p, l.P1) < manhattan(p, l.P2) {
				stretched.P1 = p
			} else {
				stretched.P2 = p
			}
		}

		if !seen[stretched] {
			seen[stretched] = true
			out = append(out, stretched)
		}
	}
	return out
}

func manhattan(a, b Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// CreateConnectivityGraph derives the set of routing regions spanning
// the gaps between placement's components, with every region linked
// to its top/bottom/left/right neighbor. Grounded verbatim on
// vsrtl_placeroute.cpp::createConnectivityGraph.
func CreateConnectivityGraph(placement Placement) ([]*RoutingRegion, map[Point]*RegionGroup) {
	chip := placement.ChipRect

	var hzBounding, vtBounding []Line
	for _, r := range placement.Components {
		hzBounding = append(hzBounding, EdgeOf(r, Top), EdgeOf(r, Bottom))
		vtBounding = append(vtBounding, EdgeOf(r, Left), EdgeOf(r, Right))
	}

	hzRegionLines := extrude(hzBounding, vtBounding, chip, Horizontal)
	vtRegionLines := extrude(vtBounding, hzBounding, chip, Vertical)

	hzRegionLines = append(hzRegionLines, EdgeOf(chip, Top), EdgeOf(chip, Bottom))
	vtRegionLines = append(vtRegionLines, EdgeOf(chip, Left), EdgeOf(chip, Right))

	sort.Slice(hzRegionLines, func(i, j int) bool { return hzRegionLines[i].P1.Y < hzRegionLines[j].P1.Y })
	sort.Slice(vtRegionLines, func(i, j int) bool { return vtRegionLines[i].P1.X < vtRegionLines[j].P1.X })

	regionGroups := map[Point]*RegionGroup{}
	groupAt := func(p Point) *RegionGroup {
		g, ok := regionGroups[p]
		if !ok {
			g = &RegionGroup{}
			regionGroups[p] = g
		}
		return g
	}

	var regions []*RoutingRegion
	regionByRect := map[Rect]*RoutingRegion{}
	componentSet := map[Rect]bool{}
	for _, r := range placement.Components {
		componentSet[r] = true
	}

	for hi := 1; hi < len(hzRegionLines); hi++ {
		for vi := 1; vi < len(vtRegionLines); vi++ {
			vtLine := vtRegionLines[vi]
			hzLine := hzRegionLines[hi]

			regionBottom, ok := hzLine.Intersect(vtLine, OnEdge)
			if !ok {
				continue
			}

			var topHzLine Line
			var regionTop Point
			foundTop := false
			for hiRev := hi - 1; hiRev >= 0; hiRev-- {
				topHzLine = hzRegionLines[hiRev]
				if p, ok := topHzLine.Intersect(vtLine, OnEdge); ok {
					regionTop = p
					foundTop = true
					break
				}
			}
			if !foundTop {
				continue
			}

			var regionBottomLeft, regionBottomRight Point
			if vtLine.P1.X == hzLine.P1.X {
				regionBottomLeft = regionBottom
				found := false
				for viRev := vi + 1; viRev < len(vtRegionLines); viRev++ {
					if p, ok := hzLine.Intersect(vtRegionLines[viRev], OnEdge); ok {
						regionBottomRight = p
						found = true
						break
					}
				}
				if !found {
					continue
				}
			} else {
				if topHzLine.P1.X == regionBottom.X {
					continue
				}
				regionBottomRight = regionBottom
				found := false
				for viRev := vi - 1; viRev >= 0; viRev-- {
					if p, ok := hzLine.Intersect(vtRegionLines[viRev], OnEdge); ok {
						regionBottomLeft = p
						found = true
						break
					}
				}
				if !found {
					continue
				}
			}

			regionTopLeft := Point{X: regionBottomLeft.X, Y: regionTop.Y}
			newRect := Rect{
				X: regionTopLeft.X, Y: regionTopLeft.Y,
				W: regionBottomRight.X - regionTopLeft.X,
				H: regionBottomRight.Y - regionTopLeft.Y,
			}

			if componentSet[newRect] {
				continue
			}
			region, exists := regionByRect[newRect]
			if !exists {
				region = &RoutingRegion{Rect: newRect}
				region.HCap = regionCapacity(newRect.W)
				region.VCap = regionCapacity(newRect.H)
				regionByRect[newRect] = region
				regions = append(regions, region)
			}

			groupAt(newRect.TopLeft()).setCorner(BottomRight, region)
			groupAt(newRect.BottomLeft()).setCorner(TopRight, region)
			groupAt(newRect.TopRight()).setCorner(BottomLeft, region)
			groupAt(newRect.BottomRight()).setCorner(TopLeft, region)
		}
	}

	for _, group := range regionGroups {
		group.ConnectRegions()
	}

	return regions, regionGroups
}

// ComponentRegions names the routing region bordering each side of a
// placed component, resolved from the region groups at its four
// corners — grounded on vsrtl_placeroute.cpp::createConnectivityGraph's
// "Routing Region Association" pass.
type ComponentRegions struct {
	Top, Bottom, Left, Right *RoutingRegion
}

// AssociateComponentRegions resolves, for every placed component, the
// routing region bordering each of its four sides, using the region
// groups produced by CreateConnectivityGraph.
func AssociateComponentRegions(components []Rect, groups map[Point]*RegionGroup) map[Rect]ComponentRegions {
	out := make(map[Rect]ComponentRegions, len(components))
	for _, rc := range components {
		tl := groups[rc.TopLeft()]
		tr := groups[rc.TopRight()]
		bl := groups[rc.BottomLeft()]
		var cr ComponentRegions
		if tl != nil {
			cr.Top = tl.TopRight
			cr.Left = tl.BottomLeft
		}
		if tr != nil {
			cr.Right = tr.BottomRight
		}
		if bl != nil {
			cr.Bottom = bl.BottomRight
		}
		out[rc] = cr
	}
	return out
}

// regionCapacity bounds how many routes may share a region along one
// axis. The C++ source leaves h_cap/v_cap as externally configured
// fields; here they default to the region's own extent along that
// axis, since a region at minimum two grid units wide already leaves
// room for at least one lane.
func regionCapacity(extent int) int {
	if extent < 1 {
		return 1
	}
	return extent
}

// RegionMap indexes routing regions by their bottom-right corner so a
// grid point can be resolved to the enclosing region, matching
// vsrtl_placeroute.cpp::RegionMap's std::map::lower_bound lookup.
type RegionMap struct {
	byX map[int][]regionEntry
	xs  []int
}

type regionEntry struct {
	y      int
	region *RoutingRegion
}

// NewRegionMap indexes regions for lookup.
func NewRegionMap(regions []*RoutingRegion) *RegionMap {
	m := &RegionMap{byX: map[int][]regionEntry{}}
	for _, r := range regions {
		br := r.Rect.BottomRight()
		m.byX[br.X] = append(m.byX[br.X], regionEntry{y: br.Y, region: r})
	}
	for x, entries := range m.byX {
		sort.Slice(entries, func(i, j int) bool { return entries[i].y < entries[j].y })
		m.byX[x] = entries
		m.xs = append(m.xs, x)
	}
	sort.Ints(m.xs)
	return m
}

// Lookup finds the region whose bottom-right corner is the tightest
// enclosing point at or after (x, y), tie-breaking on tieBreakVt (for
// the x axis) and tieBreakHz (for the y axis) — grounded on
// vsrtl_placeroute.cpp::RegionMap::lookup.
func (m *RegionMap) Lookup(p Point, tieBreakVt, tieBreakHz Edge) *RoutingRegion {
	x := p.X
	if tieBreakVt == Right {
		x++
	}
	xi := lowerBoundInts(m.xs, x)
	if xi >= len(m.xs) {
		return nil
	}

	y := p.Y
	if tieBreakHz == Bottom {
		y++
	}
	entries := m.byX[m.xs[xi]]
	yi := lowerBoundEntries(entries, y)
	if yi >= len(entries) {
		return nil
	}
	return entries[yi].region
}

func lowerBoundInts(xs []int, target int) int {
	return sort.SearchInts(xs, target)
}

func lowerBoundEntries(entries []regionEntry, target int) int {
	return sort.Search(len(entries), func(i int) bool { return entries[i].y >= target })
}

package layout

import "github.com/sarchlab/vsrtl/circuit"

// NetNode names one endpoint of a Route: the component, port, and
// routing region it sits in. Grounded on
// original_source/eda/routing.h::NetNode.
type NetNode struct {
	Component *GridComponent
	Port      *GridPort
	Region    *RoutingRegion
}

// Route is one source-to-sink wire within a Net, plus the path of
// routing regions an A* search found between them. Grounded on
// original_source/eda/routing.h::Route.
type Route struct {
	Start, End NetNode
	Path       []*RoutingRegion
}

// Net is every Route fanning out from one output port to each of its
// connected input ports.
type Net []*Route

// RoutingComponent pairs a placed GridComponent with the routing
// region bordering each of its four sides, resolved by
// AssociateComponentRegions. Grounded on
// original_source/eda/routing.h::RoutingComponent.
type RoutingComponent struct {
	Component                *GridComponent
	Rect                     Rect
	Top, Bottom, Left, Right *RoutingRegion
}

// NewRoutingComponents pairs every placed GridComponent with its
// adjusted footprint and associated border regions.
func NewRoutingComponents(gridComponents []*GridComponent, assoc map[Rect]ComponentRegions) []RoutingComponent {
	out := make([]RoutingComponent, 0, len(gridComponents))
	for _, gc := range gridComponents {
		r := gc.Adjusted()
		regions := assoc[r]
		out = append(out, RoutingComponent{
			Component: gc,
			Rect:      r,
			Top:       regions.Top,
			Bottom:    regions.Bottom,
			Left:      regions.Left,
			Right:     regions.Right,
		})
	}
	return out
}

// CreateNetlist builds one Net per output port in components, each
// containing one Route to every input port it fans out to, with
// source/sink regions resolved via regionMap. Note: terminal position
// is fixed to right => output, left => input, matching the C++ source.
// Grounded on vsrtl_placeroute.cpp::createNetlist.
func CreateNetlist(components []RoutingComponent, regionMap *RegionMap) []Net {
	byPort := map[*circuit.Port]*GridPort{}
	byComponent := map[*circuit.Component]*RoutingComponent{}
	for i := range components {
		rc := &components[i]
		byComponent[rc.Component.Component()] = rc
		for _, gp := range rc.Component.Ports() {
			byPort[gp.Port] = gp
		}
	}

	var netlist []Net
	for i := range components {
		rc := &components[i]
		for _, outPort := range rc.Component.Component().OutputPorts() {
			outGP := byPort[outPort]
			if outGP == nil {
				continue
			}

			var net Net
			_, offset := outGP.Position()
			sourcePos := Point{X: rc.Rect.Right(), Y: rc.Rect.Top() + int(offset)}
			source := NetNode{
				Component: rc.Component,
				Port:      outGP,
				Region:    regionMap.Lookup(sourcePos, Right, Top),
			}

			for _, sinkPort := range outPort.Downstream() {
				sinkRC := byComponent[sinkPort.Parent()]
				sinkGP := byPort[sinkPort]
				if sinkRC == nil || sinkGP == nil {
					continue
				}
				_, sinkOffset := sinkGP.Position()
				sinkPos := Point{X: sinkRC.Rect.Left(), Y: sinkRC.Rect.Top() + int(sinkOffset)}
				sink := NetNode{
					Component: sinkRC.Component,
					Port:      sinkGP,
					Region:    regionMap.Lookup(sinkPos, Left, Top),
				}
				net = append(net, &Route{Start: source, End: sink})
			}

			if len(net) > 0 {
				netlist = append(netlist, net)
			}
		}
	}
	return netlist
}

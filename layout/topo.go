package layout

// ChipMargin is the grid offset left between the chip boundary and
// the first placed component, matching the C++ source's CHIP_MARGIN.
const ChipMargin = 2

// componentGapSpace is the grid spacing left between consecutively
// placed components along the topological-sort axis.
const componentGapSpace = 4

// topologicalSort orders nodes so that every node appears before all
// nodes reachable from it via adjacency, matching
// original_source/eda/topologicalsort.h's DFS-stack formulation (a
// node is pushed to the front of the result only after all of its
// successors have been visited).
func topologicalSort(nodes []*GridComponent, adjacency func(*GridComponent) []*GridComponent) []*GridComponent {
	visited := make(map[*GridComponent]bool, len(nodes))
	var stack []*GridComponent

	var visit func(n *GridComponent)
	visit = func(n *GridComponent) {
		visited[n] = true
		for _, succ := range adjacency(n) {
			if !visited[succ] {
				visit(succ)
			}
		}
		stack = append([]*GridComponent{n}, stack...)
	}

	for _, n := range nodes {
		if !visited[n] {
			visit(n)
		}
	}
	return stack
}

// TopologicalSortPlacement lays components out left-to-right in the
// order produced by a topological sort over their output connections.
// Registers get no special treatment: the sort follows whatever edges
// outputComponents reports, and a cycle among them is cut wherever the
// depth-first walk first reaches an already visited node. Grounded on
// vsrtl_placeroute.cpp::topologicalSortPlacement.
func TopologicalSortPlacement(components []*GridComponent, outputComponents func(*GridComponent) []*GridComponent) {
	order := topologicalSort(components, outputComponents)

	pos := Point{X: ChipMargin, Y: ChipMargin}
	for _, gc := range order {
		gc.MoveTo(pos)
		pos.X += gc.Adjusted().W + componentGapSpace
	}
}

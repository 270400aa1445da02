package layout_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/vsrtl/layout"
)

var _ = Describe("CreateConnectivityGraph", func() {
	// One 4x4 component sits at (5,5) inside a 20x20 chip, leaving an
	// 8-region ring of routing space around it (a 3x3 grid of cells
	// minus the cell the component itself occupies).
	chip := layout.Rect{X: 0, Y: 0, W: 20, H: 20}
	comp := layout.Rect{X: 5, Y: 5, W: 4, H: 4}

	It("derives one region per gap cell, excluding the component's own cell", func() {
		regions, _ := layout.CreateConnectivityGraph(layout.Placement{
			Components: []layout.Rect{comp},
			ChipRect:   chip,
		})

		Expect(regions).To(HaveLen(8))

		var rects []layout.Rect
		for _, r := range regions {
			rects = append(rects, r.Rect)
		}
		Expect(rects).To(ConsistOf(
			layout.Rect{X: 0, Y: 0, W: 5, H: 5},
			layout.Rect{X: 5, Y: 0, W: 4, H: 5},
			layout.Rect{X: 9, Y: 0, W: 11, H: 5},
			layout.Rect{X: 0, Y: 5, W: 5, H: 4},
			layout.Rect{X: 9, Y: 5, W: 11, H: 4},
			layout.Rect{X: 0, Y: 9, W: 5, H: 11},
			layout.Rect{X: 5, Y: 9, W: 4, H: 11},
			layout.Rect{X: 9, Y: 9, W: 11, H: 11},
		))
	})

	It("links adjacent regions to each other through their shared corners", func() {
		regions, groups := layout.CreateConnectivityGraph(layout.Placement{
			Components: []layout.Rect{comp},
			ChipRect:   chip,
		})

		byRect := map[layout.Rect]*layout.RoutingRegion{}
		for _, r := range regions {
			byRect[r.Rect] = r
		}

		top := byRect[layout.Rect{X: 5, Y: 0, W: 4, H: 5}]
		left := byRect[layout.Rect{X: 0, Y: 5, W: 5, H: 4}]
		Expect(top.Left).To(Equal(byRect[layout.Rect{X: 0, Y: 0, W: 5, H: 5}]))
		Expect(left.Top).To(Equal(byRect[layout.Rect{X: 0, Y: 0, W: 5, H: 5}]))
		Expect(groups).NotTo(BeEmpty())
	})

	It("associates each side of the component with its bordering region", func() {
		regions, groups := layout.CreateConnectivityGraph(layout.Placement{
			Components: []layout.Rect{comp},
			ChipRect:   chip,
		})
		_ = regions
		assoc := layout.AssociateComponentRegions([]layout.Rect{comp}, groups)[comp]

		Expect(assoc.Top.Rect).To(Equal(layout.Rect{X: 5, Y: 0, W: 4, H: 5}))
		Expect(assoc.Left.Rect).To(Equal(layout.Rect{X: 0, Y: 5, W: 5, H: 4}))
		Expect(assoc.Right.Rect).To(Equal(layout.Rect{X: 9, Y: 5, W: 11, H: 4}))
		Expect(assoc.Bottom.Rect).To(Equal(layout.Rect{X: 5, Y: 9, W: 4, H: 11}))
	})
})

var _ = Describe("RegionMap", func() {
	It("finds the tightest enclosing region at or after a point", func() {
		a := &layout.RoutingRegion{Rect: layout.Rect{X: 0, Y: 0, W: 5, H: 5}}
		b := &layout.RoutingRegion{Rect: layout.Rect{X: 5, Y: 0, W: 5, H: 5}}
		m := layout.NewRegionMap([]*layout.RoutingRegion{a, b})

		found := m.Lookup(layout.Point{X: 3, Y: 3}, layout.Left, layout.Top)
		Expect(found).To(Equal(a))
	})

	It("returns nil when no region's corner lies at or after the point", func() {
		a := &layout.RoutingRegion{Rect: layout.Rect{X: 0, Y: 0, W: 5, H: 5}}
		m := layout.NewRegionMap([]*layout.RoutingRegion{a})
		Expect(m.Lookup(layout.Point{X: 10, Y: 10}, layout.Left, layout.Top)).To(BeNil())
	})
})

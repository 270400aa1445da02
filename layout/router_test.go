package layout_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/vsrtl/circuit"
	"github.com/sarchlab/vsrtl/layout"
)

var _ = Describe("NewRoutingComponents", func() {
	It("pairs each GridComponent with its adjusted rect and associated regions", func() {
		root := circuit.NewComponent(nil, "root")
		comp := circuit.NewComponent(root, "comp")
		gc := layout.NewGridComponent(comp)
		gc.Resize(4, 4)
		gc.MoveTo(layout.Point{X: 2, Y: 2})

		rc := layout.NewRoutingComponents([]*layout.GridComponent{gc}, nil)
		Expect(rc).To(HaveLen(1))
		Expect(rc[0].Component).To(Equal(gc))
		Expect(rc[0].Rect).To(Equal(gc.Adjusted()))
	})
})

var _ = Describe("CreateNetlist", func() {
	It("builds one net per output port, with one route per downstream sink", func() {
		root := circuit.NewComponent(nil, "root")
		src := circuit.NewComponent(root, "src")
		srcOut := src.AddOutputPort("out", 8)
		dst := circuit.NewComponent(root, "dst")
		dstIn := dst.AddInputPort("in", 8)
		circuit.MustConnect(srcOut, dstIn)

		srcGC := layout.NewGridComponent(src)
		dstGC := layout.NewGridComponent(dst)
		srcGC.Resize(4, 4)
		srcGC.MoveTo(layout.Point{X: 0, Y: 0})
		dstGC.Resize(4, 4)
		dstGC.MoveTo(layout.Point{X: 10, Y: 0})

		components := layout.NewRoutingComponents([]*layout.GridComponent{srcGC, dstGC}, nil)
		netlist := layout.CreateNetlist(components, layout.NewRegionMap(nil))

		Expect(netlist).To(HaveLen(1))
		Expect(netlist[0]).To(HaveLen(1))
		route := netlist[0][0]
		Expect(route.Start.Port.Port).To(Equal(srcOut))
		Expect(route.End.Port.Port).To(Equal(dstIn))
	})

	It("produces no net for an output port with no downstream connections", func() {
		root := circuit.NewComponent(nil, "root")
		comp := circuit.NewComponent(root, "comp")
		comp.AddOutputPort("out", 8)
		gc := layout.NewGridComponent(comp)
		gc.Resize(4, 4)

		components := layout.NewRoutingComponents([]*layout.GridComponent{gc}, nil)
		netlist := layout.CreateNetlist(components, layout.NewRegionMap(nil))
		Expect(netlist).To(BeEmpty())
	})
})

package layout_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/vsrtl/circuit"
	"github.com/sarchlab/vsrtl/layout"
)

var _ = Describe("Builder", func() {
	It("defaults to Topological1D placement", func() {
		b := layout.NewBuilder()
		Expect(b).NotTo(BeNil())
	})

	It("places, derives connectivity, and routes a two-component chain", func() {
		root := circuit.NewComponent(nil, "root")
		src := circuit.NewComponent(root, "src")
		srcOut := src.AddOutputPort("out", 8)
		dst := circuit.NewComponent(root, "dst")
		dstIn := dst.AddInputPort("in", 8)
		circuit.MustConnect(srcOut, dstIn)

		srcGC := layout.NewGridComponent(src)
		dstGC := layout.NewGridComponent(dst)
		srcGC.Resize(4, 4)
		dstGC.Resize(4, 4)

		outputComponents := func(gc *layout.GridComponent) []*layout.GridComponent {
			if gc.Component() == src {
				return []*layout.GridComponent{dstGC}
			}
			return nil
		}
		conn := func(gc *layout.GridComponent) map[*layout.GridComponent]int {
			if gc.Component() == src {
				return map[*layout.GridComponent]int{dstGC: 1}
			}
			return map[*layout.GridComponent]int{srcGC: 1}
		}

		result, err := layout.NewBuilder().
			WithPlacementAlgorithm(layout.Topological1D).
			PlaceAndRoute([]*layout.GridComponent{srcGC, dstGC}, outputComponents, conn)

		Expect(err).NotTo(HaveOccurred())
		Expect(result.Regions).NotTo(BeEmpty())
		Expect(result.Netlist).To(HaveLen(1))
		Expect(result.Netlist[0]).To(HaveLen(1))
	})
})

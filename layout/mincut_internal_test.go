package layout

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/vsrtl/circuit"
)

var _ = Describe("largestRunningSum", func() {
	It("returns the single element when gv has one entry", func() {
		i, sum := largestRunningSum([]int{5})
		Expect(i).To(Equal(0))
		Expect(sum).To(Equal(5))
	})

	It("finds the prefix with the largest running sum", func() {
		i, sum := largestRunningSum([]int{3, -1, 2, -5, 4})
		// running sums: 3, 2, 4, -1, 3 -> max is 4 at index 2
		Expect(i).To(Equal(2))
		Expect(sum).To(Equal(4))
	})
})

var _ = Describe("setDifference", func() {
	It("removes every key present in remove", func() {
		root := circuit.NewComponent(nil, "root")
		a := NewGridComponent(circuit.NewComponent(root, "a"))
		b := NewGridComponent(circuit.NewComponent(root, "b"))
		set := map[*GridComponent]bool{a: true, b: true}
		remove := map[*GridComponent]bool{a: true}
		Expect(setDifference(set, remove)).To(Equal(map[*GridComponent]bool{b: true}))
	})
})

var _ = Describe("KernighanLin", func() {
	It("panics with PartitionArityError given fewer than two nodes", func() {
		root := circuit.NewComponent(nil, "root")
		a := NewGridComponent(circuit.NewComponent(root, "a"))
		Expect(func() {
			KernighanLin([]*GridComponent{a}, func(*GridComponent) map[*GridComponent]int { return nil })
		}).To(PanicWith(WithTransform(func(v interface{}) circuit.Kind {
			return v.(*circuit.Error).Kind
		}, Equal(circuit.PartitionArityError))))
	})

	It("bisects a 4-node graph into two equal halves", func() {
		root := circuit.NewComponent(nil, "root")
		a := NewGridComponent(circuit.NewComponent(root, "a"))
		b := NewGridComponent(circuit.NewComponent(root, "b"))
		c := NewGridComponent(circuit.NewComponent(root, "c"))
		d := NewGridComponent(circuit.NewComponent(root, "d"))

		// a-b tightly coupled, c-d tightly coupled, one weak cross edge.
		edges := map[*GridComponent]map[*GridComponent]int{
			a: {b: 10, c: 1},
			b: {a: 10, d: 1},
			c: {d: 10, a: 1},
			d: {c: 10, b: 1},
		}
		conn := func(n *GridComponent) map[*GridComponent]int { return edges[n] }

		setA, setB := KernighanLin([]*GridComponent{a, b, c, d}, conn)
		Expect(setA).To(HaveLen(2))
		Expect(setB).To(HaveLen(2))

		inA := map[*GridComponent]bool{}
		for _, n := range setA {
			inA[n] = true
		}
		// a and b must land in the same half (tightly coupled), as must c and d.
		Expect(inA[a]).To(Equal(inA[b]))
		Expect(inA[c]).To(Equal(inA[d]))
		Expect(inA[a]).NotTo(Equal(inA[c]))
	})
})

var _ = Describe("MinCutPlacement", func() {
	It("does not panic placing components whose adjusted size is odd", func() {
		root := circuit.NewComponent(nil, "root")
		a := NewGridComponent(circuit.NewComponent(root, "a"))
		b := NewGridComponent(circuit.NewComponent(root, "b"))
		// An odd width/height forces place's offset.X/Y-r.W/2 (or H/2)
		// computation onto an odd coordinate unless snapped.
		a.Resize(3, 5)
		b.Resize(5, 3)

		edges := map[*GridComponent]map[*GridComponent]int{
			a: {b: 1},
			b: {a: 1},
		}
		conn := func(n *GridComponent) map[*GridComponent]int { return edges[n] }

		Expect(func() {
			MinCutPlacement([]*GridComponent{a, b}, conn)
		}).NotTo(Panic())

		Expect(a.Rect().X % 2).To(Equal(0))
		Expect(a.Rect().Y % 2).To(Equal(0))
		Expect(b.Rect().X % 2).To(Equal(0))
		Expect(b.Rect().Y % 2).To(Equal(0))
	})
})

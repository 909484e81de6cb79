package segment_test

import (
	"fmt"

	"github.com/katalvlaran/gbseg/gridgraph"
	"github.com/katalvlaran/gbseg/segment"
)

// ExampleSegment segments a 2×2 image with a dark top row and a bright
// bottom row. With k = 1 the rows merge on their zero-weight edges, and
// the weight-10 cross edges fail MInt = 0 + 1/2.
func ExampleSegment() {
	g, _ := gridgraph.FromValues([][]float64{
		{0, 0},
		{10, 10},
	})
	opts := segment.DefaultOptions()
	opts.K = 1

	p, err := segment.Segment(g, opts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, r := range p.Regions() {
		members, _ := p.Members(r.ID)
		fmt.Printf("region %d size %d pixels %v\n", r.ID, r.Size, members)
	}
	fmt.Printf("%+v\n", p.Summary())
	// Output:
	// region 0 size 2 pixels [0 1]
	// region 2 size 2 pixels [2 3]
	// {Edges:6 Accepted:2 Rejected:4 Skipped:0}
}

// ExampleDecision traces every decision of the merge pass.
func ExampleDecision() {
	g, _ := gridgraph.FromValues([][]float64{{0, 1, 9}})
	opts := segment.DefaultOptions()
	opts.K = 2
	opts.OnDecision = func(d segment.Decision) {
		fmt.Printf("step %d: %d-%d w=%g mint=%g accepted=%t\n",
			d.Step, d.Edge.A, d.Edge.B, d.Edge.Weight, d.Threshold, d.Accepted)
	}
	_, _ = segment.Segment(g, opts)
	// Output:
	// step 0: 0-1 w=1 mint=2 accepted=true
	// step 1: 1-2 w=8 mint=2 accepted=false
}

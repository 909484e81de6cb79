package gridgraph

import "fmt"

// LabelComponents splits a row-major label map into spatially connected
// components: maximal sets of pixels that share a label and are linked by
// conn adjacency (in either direction).
// Returns a slice of components; each component is a slice of node ids in
// BFS order, and components appear in order of their first pixel.
//
// A segmentation over the same connectivity yields exactly one component
// per region, since regions only ever grow along graph edges.
//
// Time:   O(W·H·d), where d is the neighborhood size.
// Memory: O(W·H) for visited flags and output.
func LabelComponents(height, width int, labels []int, conn Connectivity) ([][]int, error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("%w: zero-area label map %dx%d", ErrInvalidImage, height, width)
	}
	if len(labels) != height*width {
		return nil, fmt.Errorf("%w: %d labels for a %dx%d image", ErrInvalidImage, len(labels), height, width)
	}
	nb, err := conn.Neighborhood(height, width)
	if err != nil {
		return nil, err
	}

	seen := make([]bool, len(labels))
	var comps [][]int
	for i0 := range labels {
		if seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for r, c := range nb.Adjacent(u/width, u%width) {
				v := r*width + c
				if !seen[v] && labels[v] == labels[u] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, queue)
	}

	return comps, nil
}

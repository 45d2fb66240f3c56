package triangulate

import (
	"fmt"

	"github.com/corvidlabs/trimesh3d/meshstore"
)

// prebuild triangulates the open boundary ring(s) by repeated intrusion-
// point ear cutting: at each step it picks a convex ear,
// checks whether any other frontier vertex lies inside it, and either
// bridges the intruder (splitting the ring in two) or clips the ear
// (shrinking the ring by one vertex). It terminates when every remaining
// ring has collapsed to a single closed triangle.
func (t *Triangulator) prebuild() error {
	stack := []meshstore.EdgeID{0}
	bound := t.store.NumEdges()*8 + 64

	for step := 0; len(stack) > 0; step++ {
		if step > bound {
			return fmt.Errorf("triangulate: prebuild exceeded %d steps: %w", bound, ErrBadTopology)
		}

		curr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if t.store.IsTriangleFace(curr) {
			continue
		}

		e := t.findConvexEdge(curr)
		if e == meshstore.NoEdge {
			e = t.findConvexEdgeAlt(curr)
		}
		if e == meshstore.NoEdge {
			// findConvexEdgeAlt returns an edge for any non-empty ring, so
			// this is only a guard: should both searches come back empty,
			// clip curr unconditionally so prebuild still makes progress
			// instead of looping forever.
			e = curr
		}

		if ir := t.findIntrudeEdge(e); ir != meshstore.NoEdge {
			ringA, ringB, err := t.bridgeIntruder(e, ir)
			if err != nil {
				return err
			}
			stack = append(stack, ringA, ringB)
			continue
		}

		next, err := t.clipEar(e)
		if err != nil {
			return err
		}
		stack = append(stack, next)
	}
	return nil
}

package triangulate

import (
	"fmt"

	"github.com/corvidlabs/trimesh3d/meshstore"
	"github.com/corvidlabs/trimesh3d/numeric"
	"github.com/corvidlabs/trimesh3d/vec3"
)

// needRotate reports whether e's diagonal should flip to restore the local
// Delaunay condition. Two gates must pass before the angle
// test is even consulted: both opposite apexes must clear RotateThreshold
// (as a multiple of edgeLength_mean) of perpendicular distance from the
// shared edge, and the foot of that perpendicular must fall within the
// segment rather than beyond it (the degenerate-sliver guard). Only then
// does the angle-sum test decide: letting alpha and beta be the angles
// subtended by e at the two triangles' opposite apexes, e should flip when
// sin(alpha)cos(beta) + sin(beta)cos(alpha) falls below -epsilon, i.e.
// alpha+beta exceeds a straight angle by more than the tolerance allows.
func (t *Triangulator) needRotate(e meshstore.EdgeID) bool {
	twin := t.store.Twin(e)
	if twin == meshstore.NoEdge {
		return false
	}
	if !t.store.IsTriangleFace(e) || !t.store.IsTriangleFace(twin) {
		return false
	}

	apexA := t.store.Dst(t.store.Next(e))
	apexB := t.store.Dst(t.store.Next(twin))

	org := t.store.Vertex(t.store.Org(e)).P
	dst := t.store.Vertex(t.store.Dst(e)).P
	pa := t.store.Vertex(apexA).P
	pb := t.store.Vertex(apexB).P

	threshold := t.cfg.RotateThreshold * t.edgeLengthMean

	distR, outsideR := numeric.DistToLine(org, dst, pa)
	if vec3.Length(distR) < threshold || outsideR {
		return false
	}
	distL, outsideL := numeric.DistToLine(org, dst, pb)
	if vec3.Length(distL) < threshold || outsideL {
		return false
	}

	sinA, cosA := vec3.Sincos(vec3.Normalize(vec3.Sub(org, pa)), vec3.Normalize(vec3.Sub(dst, pa)))
	sinB, cosB := vec3.Sincos(vec3.Normalize(vec3.Sub(org, pb)), vec3.Normalize(vec3.Sub(dst, pb)))

	return sinA*cosB+sinB*cosA < -t.cfg.Epsilon
}

// edgeLength returns the current Euclidean length of e.
func (t *Triangulator) edgeLength(e meshstore.EdgeID) float64 {
	return vec3.Length(vec3.Sub(
		t.store.Vertex(t.store.Dst(e)).P,
		t.store.Vertex(t.store.Org(e)).P,
	))
}

// rotateEdge rotates e, keeping the octree consistent with the mutation:
// e and its twin are removed before the topology change,
// since Rotate re-homes their Org/Dst (and so their bounding box), and
// re-added afterward regardless of whether the rotation actually happened.
func (t *Triangulator) rotateEdge(e meshstore.EdgeID) (bool, error) {
	twin := t.store.Twin(e)
	t.tree.Remove(e)
	if twin != meshstore.NoEdge {
		t.tree.Remove(twin)
	}
	ok, err := t.store.Rotate(e)
	t.tree.Add(e)
	if twin != meshstore.NoEdge {
		t.tree.Add(twin)
	}
	return ok, err
}

// representativeEdges returns one half-edge per twin pair among the
// store's interior edges, plus every half-edge that has no twin (boundary
// edges, which needRotate rejects): the working set makeDelaunay's batch
// pass iterates.
func (t *Triangulator) representativeEdges() []meshstore.EdgeID {
	var out []meshstore.EdgeID
	n := t.store.NumEdges()
	for id := 0; id < n; id++ {
		e := meshstore.EdgeID(id)
		twin := t.store.Twin(e)
		if twin == meshstore.NoEdge || e < twin {
			out = append(out, e)
		}
	}
	return out
}

// delaunayPass rotates every representative edge that fails needRotate in a
// single sweep and returns how many rotations it performed.
func (t *Triangulator) delaunayPass(checkSelfIntersect bool) (int, error) {
	count := 0
	for _, e := range t.representativeEdges() {
		if !t.needRotate(e) {
			continue
		}
		if checkSelfIntersect && t.rotateCausesSelfIntersection(e) {
			continue
		}
		ok, err := t.rotateEdge(e)
		if err != nil {
			return count, err
		}
		if ok {
			count++
		}
	}
	return count, nil
}

// makeDelaunay repeatedly sweeps the mesh rotating edges that fail the
// local Delaunay test, until a sweep rotates nothing or three consecutive
// sweeps fail to strictly decrease the rotation count (an anti-oscillation
// guard, since a mesh near the rotate threshold can cycle a pair of edges
// back and forth rather than converge). When checkSelfIntersect is set, a
// rotate that would cross an unrelated triangle is skipped rather than
// applied: this guard stays enabled on the first pass over the raw ear-cut
// mesh, then disabled during and after refinement, where the mesh is
// already close to Delaunay and the guard's cost no longer buys much.
func (t *Triangulator) makeDelaunay(checkSelfIntersect bool) error {
	bound := t.store.NumEdges()*4 + 64
	prevCount := -1
	stall := 0
	for pass := 0; pass < bound; pass++ {
		count, err := t.delaunayPass(checkSelfIntersect)
		if err != nil {
			return err
		}
		if count == 0 {
			return nil
		}
		if prevCount >= 0 && count >= prevCount {
			stall++
			if stall >= 3 {
				return nil
			}
		} else {
			stall = 0
		}
		prevCount = count
	}
	return fmt.Errorf("triangulate: Delaunay repair did not converge after %d passes: %w", bound, ErrBadTopology)
}

// makeDelaunayLocal drains a working queue of candidate edges, rotating
// whichever fail needRotate, and after each successful rotation enqueues the
// four half-edges now surrounding the flipped diagonal back into the queue
// (so a rotation's neighborhood gets re-checked) and, for any of those not
// already marked excluded, into toSplit if its length now exceeds
// splitThreshold*edgeLengthMean (the localized variant of the same repair,
// used by refine's inner loop). Self-intersection checking is always off
// here, keeping the same asymmetry as the batch pass.
func (t *Triangulator) makeDelaunayLocal(seed []meshstore.EdgeID, excluded map[meshstore.EdgeID]bool, toSplit *[]meshstore.EdgeID) error {
	queue := append([]meshstore.EdgeID(nil), seed...)
	bound := (t.store.NumEdges()*4 + 64) * 4
	steps := 0
	for len(queue) > 0 {
		steps++
		if steps > bound {
			return fmt.Errorf("triangulate: local Delaunay repair did not converge after %d steps: %w", bound, ErrBadTopology)
		}
		e := queue[0]
		queue = queue[1:]
		if !t.needRotate(e) {
			continue
		}
		ok, err := t.rotateEdge(e)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		twin := t.store.Twin(e)
		rPrev, err := t.store.Prev(e)
		if err != nil {
			return err
		}
		lPrev, err := t.store.Prev(twin)
		if err != nil {
			return err
		}
		surrounding := []meshstore.EdgeID{t.store.Next(e), t.store.Next(twin), rPrev, lPrev}
		for _, s := range surrounding {
			queue = append(queue, s)
			if !excluded[s] && t.edgeLength(s) > t.cfg.SplitThreshold*t.edgeLengthMean {
				*toSplit = append(*toSplit, s)
			}
		}
	}
	return nil
}

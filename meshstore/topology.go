package meshstore

import "fmt"

// Rotate replaces the shared diagonal of the two triangles meeting at e (e
// and e.Twin) with the other diagonal of the quadrilateral they form,
// mutating e and e.Twin in place. It returns (false, nil) — a
// silent RotateRejected, not an error — when e has no twin (it is a
// boundary edge) or when a half-edge already connects the candidate
// diagonal's endpoints (the findConnection check: rotating would otherwise
// produce a duplicate directed edge, violating the "directed edges are
// unique" invariant). It returns a non-nil error only for ErrBadTopology:
// the surrounding faces are not both triangles.
func (s *Store) Rotate(e EdgeID) (bool, error) {
	t := s.Twin(e)
	if t == NoEdge {
		return false, nil
	}
	if !s.IsTriangleFace(e) || !s.IsTriangleFace(t) {
		return false, fmt.Errorf("meshstore: Rotate(%d): surrounding faces are not triangles: %w", e, ErrBadTopology)
	}

	rNext := s.Next(e)
	rPrev, err := s.Prev(e)
	if err != nil {
		return false, err
	}
	lNext := s.Next(t)
	lPrev, err := s.Prev(t)
	if err != nil {
		return false, err
	}

	newOrg := s.Org(lPrev)
	newDst := s.Org(rPrev)

	if conn := s.findConnection(rNext, rPrev, newOrg, newDst); conn != NoEdge {
		return false, nil
	}

	s.SetOrg(e, newOrg)
	s.SetDst(e, newDst)
	s.SetOrg(t, newDst)
	s.SetDst(t, newOrg)

	s.SetNext(e, rPrev)
	s.SetNext(rPrev, lNext)
	s.SetNext(lNext, e)

	s.SetNext(t, lPrev)
	s.SetNext(lPrev, rNext)
	s.SetNext(rNext, t)

	return true, nil
}

// findConnection looks for a half-edge already directly linking a and b by
// fanning around the origin vertex of each of start1 and start2 (walking
// twin-then-next, the standard around-a-vertex half-edge traversal) and
// returns it if found, or NoEdge otherwise.
func (s *Store) findConnection(start1, start2 EdgeID, a, b VertexID) EdgeID {
	if h := s.fanSearch(start1, a, b); h != NoEdge {
		return h
	}
	return s.fanSearch(start2, a, b)
}

func (s *Store) fanSearch(start EdgeID, a, b VertexID) EdgeID {
	h := start
	bound := len(s.edges) + 1
	for i := 0; i < bound; i++ {
		if (s.Org(h) == a && s.Dst(h) == b) || (s.Org(h) == b && s.Dst(h) == a) {
			return h
		}
		tw := s.Twin(h)
		if tw == NoEdge {
			return NoEdge
		}
		h = s.Next(tw)
		if h == start {
			return NoEdge
		}
	}
	return NoEdge
}

// SplitEdge introduces vertex i at a point on the shared edge e/e.Twin and
// rewires the two triangles meeting there into four. i must
// already exist in the Store (callers compute its position/normal and call
// AddVertex before SplitEdge). Returns the six newly created half-edges
// (d1, d1t, d2, d2t, e2, e2t, in that order) so a caller tracking an
// external index of edges (the triangulator's spatial octree) can register
// them; e and its twin keep their ids but change Org/Dst, so the caller
// must also re-register those two. Returns (nil, false, ErrSplitFailed)
// without mutating anything if either surrounding face is not a triangle.
func (s *Store) SplitEdge(e EdgeID, i VertexID) ([]EdgeID, bool, error) {
	t := s.Twin(e)
	if t == NoEdge {
		return nil, false, fmt.Errorf("meshstore: SplitEdge(%d): boundary edge has no twin: %w", e, ErrSplitFailed)
	}
	if !s.IsTriangleFace(e) || !s.IsTriangleFace(t) {
		return nil, false, fmt.Errorf("meshstore: SplitEdge(%d): surrounding faces are not triangles: %w", e, ErrSplitFailed)
	}

	rNext := s.Next(e)
	rPrev, err := s.Prev(e)
	if err != nil {
		return nil, false, err
	}
	lNext := s.Next(t)
	lPrev, err := s.Prev(t)
	if err != nil {
		return nil, false, err
	}

	oldOrg := s.Org(e)
	oldDst := s.Dst(e)
	apex1 := s.Dst(rNext)
	apex2 := s.Dst(lNext)

	d1 := s.NewEdge(apex1, i)
	d1t := s.CreateTwin(d1)
	d2 := s.NewEdge(apex2, i)
	d2t := s.CreateTwin(d2)
	e2 := s.NewEdge(i, oldOrg)
	e2t := s.CreateTwin(e2)

	// Re-home e and t onto the new vertex, preserving their twin pairing:
	// org(e)=dst(t)=i, dst(e)=org(t)=oldDst.
	s.SetOrg(e, i)
	s.SetDst(t, i)

	// R1 = (oldOrg, i, apex1)
	s.SetNext(e2t, d1t)
	s.SetNext(d1t, rPrev)
	s.SetNext(rPrev, e2t)

	// R2 = (i, oldDst, apex1)
	s.SetNext(e, rNext)
	s.SetNext(rNext, d1)
	s.SetNext(d1, e)

	// L1 = (oldDst, i, apex2)
	s.SetNext(t, d2t)
	s.SetNext(d2t, lPrev)
	s.SetNext(lPrev, t)

	// L2 = (i, oldOrg, apex2)
	s.SetNext(e2, lNext)
	s.SetNext(lNext, d2)
	s.SetNext(d2, e2)

	return []EdgeID{d1, d1t, d2, d2t, e2, e2t}, true, nil
}

// SplitTri introduces interior vertex i inside the triangular face of e and
// fans three new triangles around it. i must already exist
// in the Store. Returns (false, ErrSplitFailed) without mutating anything if
// e's face is not a triangle.
func (s *Store) SplitTri(e EdgeID, i VertexID) (bool, error) {
	if !s.IsTriangleFace(e) {
		return false, fmt.Errorf("meshstore: SplitTri(%d): face is not a triangle: %w", e, ErrSplitFailed)
	}
	n1 := s.Next(e)
	n2 := s.Next(n1)

	a, b, c := s.Org(e), s.Org(n1), s.Org(n2)

	x := s.NewEdge(b, i)
	xt := s.CreateTwin(x)
	y := s.NewEdge(c, i)
	yt := s.CreateTwin(y)
	z := s.NewEdge(a, i)
	zt := s.CreateTwin(z)

	// (a, b, i)
	s.SetNext(e, x)
	s.SetNext(x, zt)
	s.SetNext(zt, e)

	// (b, c, i)
	s.SetNext(n1, y)
	s.SetNext(y, xt)
	s.SetNext(xt, n1)

	// (c, a, i)
	s.SetNext(n2, z)
	s.SetNext(z, yt)
	s.SetNext(yt, n2)

	return true, nil
}

package meshstore

import "fmt"

// NewEdge appends a fresh half-edge (org -> dst) with Next and Twin unset
// and returns its id. Half-edges are never freed; a later mutation re-points
// fields on this id rather than releasing it.
func (s *Store) NewEdge(org, dst VertexID) EdgeID {
	s.edges = append(s.edges, OrEdge{Org: org, Dst: dst, Next: NoEdge, Twin: NoEdge})
	return EdgeID(len(s.edges) - 1)
}

// Edge returns a copy of the half-edge at id.
func (s *Store) Edge(id EdgeID) OrEdge {
	return s.edges[id]
}

// Org returns the origin vertex of id.
func (s *Store) Org(id EdgeID) VertexID { return s.edges[id].Org }

// Dst returns the destination vertex of id.
func (s *Store) Dst(id EdgeID) VertexID { return s.edges[id].Dst }

// Next returns the next half-edge around id's face, or NoEdge.
func (s *Store) Next(id EdgeID) EdgeID { return s.edges[id].Next }

// Twin returns id's companion half-edge, or NoEdge if id is on the open
// boundary frontier.
func (s *Store) Twin(id EdgeID) EdgeID { return s.edges[id].Twin }

// SetNext sets id's forward pointer. The caller is responsible for
// restoring any face invariant this disturbs.
func (s *Store) SetNext(id, next EdgeID) {
	s.edges[id].Next = next
}

// SetTwin wires id and twin as companions of each other.
func (s *Store) SetTwin(id, twin EdgeID) {
	s.edges[id].Twin = twin
	if twin != NoEdge {
		s.edges[twin].Twin = id
	}
}

// SetOrg overwrites id's origin vertex, used by Rotate to re-home the
// rotated diagonal.
func (s *Store) SetOrg(id EdgeID, v VertexID) { s.edges[id].Org = v }

// SetDst overwrites id's destination vertex, used by Rotate.
func (s *Store) SetDst(id EdgeID, v VertexID) { s.edges[id].Dst = v }

// CreateTwin returns id's existing twin if one is already wired, or
// otherwise creates the reverse half-edge (dst -> org), cross-links the
// pair, and returns it.
func (s *Store) CreateTwin(id EdgeID) EdgeID {
	if t := s.Twin(id); t != NoEdge {
		return t
	}
	e := s.Edge(id)
	t := s.NewEdge(e.Dst, e.Org)
	s.SetTwin(id, t)
	return t
}

// Prev walks forward via Next around id's face until it finds the half-edge
// whose destination is id's origin, i.e. the half-edge immediately before id
// in face winding order. In steady state (a closed triangle) this terminates
// within three steps; while a face is still the open boundary ring of the
// intrusion stage it may be much longer, so Prev walks up to the number of
// edges currently in the store before giving up with ErrBadTopology.
func (s *Store) Prev(id EdgeID) (EdgeID, error) {
	org := s.Org(id)
	cur := id
	bound := len(s.edges) + 1
	for i := 0; i < bound; i++ {
		next := s.Next(cur)
		if next == NoEdge {
			return NoEdge, fmt.Errorf("meshstore: Prev(%d): unterminated face walk: %w", id, ErrBadTopology)
		}
		if s.Dst(next) == org {
			return next, nil
		}
		cur = next
	}
	return NoEdge, fmt.Errorf("meshstore: Prev(%d): face walk exceeded %d steps: %w", id, bound, ErrBadTopology)
}

// IsTriangleFace reports whether id's face closes in exactly three
// half-edges, i.e. id.Next.Next.Next == id.
func (s *Store) IsTriangleFace(id EdgeID) bool {
	n1 := s.Next(id)
	if n1 == NoEdge {
		return false
	}
	n2 := s.Next(n1)
	if n2 == NoEdge {
		return false
	}
	return s.Next(n2) == id
}

// NumEdges returns the number of half-edges currently in the arena.
func (s *Store) NumEdges() int {
	return len(s.edges)
}

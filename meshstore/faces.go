package meshstore

// PostBuild walks every half-edge once, emitting one Triangle per closed
// triangular face. The order of emission is unspecified; the
// set of triangles returned is deterministic given the topology.
func (s *Store) PostBuild() []Triangle {
	visited := make([]bool, len(s.edges))
	var tris []Triangle

	for id := range s.edges {
		e := EdgeID(id)
		if visited[e] || !s.IsTriangleFace(e) {
			continue
		}
		n1 := s.Next(e)
		n2 := s.Next(n1)

		tris = append(tris, Triangle{
			A: s.Org(e),
			B: s.Dst(n1),
			C: s.Dst(e),
		})
		visited[e] = true
		visited[n1] = true
		visited[n2] = true
	}

	return tris
}

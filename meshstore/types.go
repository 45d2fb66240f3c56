package meshstore

import (
	"errors"

	"github.com/corvidlabs/trimesh3d/vec3"
)

// Sentinel errors returned by meshstore's topology operations. Callers
// branch on these with errors.Is; context is attached with fmt.Errorf's %w,
// never by formatting the sentinel itself.
var (
	// ErrBadTopology indicates a half-edge invariant (next/prev/twin
	// consistency, or a face expected to be a triangle) was violated during
	// a mutation. Fatal to the triangulation run that observes it.
	ErrBadTopology = errors.New("meshstore: half-edge topology invariant violated")

	// ErrSplitFailed indicates SplitEdge or SplitTri was invoked on an edge
	// whose surrounding face(s) are not triangles. Non-fatal: the caller is
	// expected to skip this edge and continue.
	ErrSplitFailed = errors.New("meshstore: split requires triangular surrounding faces")
)

// VertexID indexes into a Store's vertex array.
type VertexID int

// EdgeID indexes into a Store's half-edge arena.
type EdgeID int

// NoEdge is the sentinel meaning "no such half-edge", used for Next and
// Twin fields that are not yet wired (the open frontier during ear
// cutting) and never a valid index, since edge ids are issued starting at 0.
const NoEdge EdgeID = -1

// Vertex is an immutable-after-creation (P, N) pair: a point in 3D and its
// associated unit surface normal. Vertex records are only appended to a
// Store, except that the optional smoothing pass may update P and N of an
// existing vertex in place.
type Vertex struct {
	P vec3.Vec3
	N vec3.Vec3
}

// OrEdge is one directed half-edge: Org is its origin vertex, Dst its
// destination, Next the next half-edge around its face in canonical
// (origin-to-destination) winding, and Twin the companion half-edge running
// the opposite direction around the adjacent face, or NoEdge for a half-edge
// on the current open boundary frontier during ear cutting.
type OrEdge struct {
	Org, Dst VertexID
	Next     EdgeID
	Twin     EdgeID
}

// Triangle is one emitted face: three 0-based vertex indices into the
// Store's vertex array. PostBuild records a face whose half-edges run
// a -> b -> c as (a, c, b), the reverse of that half-edge winding.
type Triangle struct {
	A, B, C VertexID
}

package triangulate

import (
	"errors"

	"github.com/corvidlabs/trimesh3d/meshstore"
)

// Sentinel errors returned by New and Triangulate.
var (
	// ErrInvalidInput indicates fewer than 3 vertices were supplied, or one
	// or more carried a NaN or Inf component. Fatal, reported at
	// construction.
	ErrInvalidInput = errors.New("triangulate: invalid input")

	// ErrBadTopology re-exports meshstore.ErrBadTopology: a half-edge
	// invariant was violated during a mutation. Fatal; Triangulate returns
	// an empty triangle list and the engine's internal state is thereafter
	// undefined.
	ErrBadTopology = meshstore.ErrBadTopology
)

// Vertex is a boundary or refinement-introduced (position, normal) pair.
type Vertex = meshstore.Vertex

// Triangle is one emitted face, as three 0-based indices into Vertices().
type Triangle = meshstore.Triangle

// Package trimesh3d builds a constrained Delaunay triangulation over a
// closed, oriented polygonal boundary in 3D, using per-vertex surface
// normals rather than a single global plane to decide convexity,
// intrusion, and the local Delaunay criterion.
//
// The work is organized into small packages, each owning one layer:
//
//	vec3/        — 3D vector and axis-aligned box primitives
//	numeric/     — distance, orientation, intersection and linear-solve kernels
//	meshstore/   — the half-edge mesh and its topology mutations
//	spatial/     — an octree spatial index over half-edge bounding boxes
//	triangulate/ — the triangulation pipeline itself
//	fixtures/    — boundary generators used by triangulate's tests
//
// A typical run constructs a Triangulator over a boundary ring, calls
// Triangulate once, and reads the resulting faces back:
//
//	tr, err := triangulate.New(boundary)
//	if err != nil {
//		return err
//	}
//	tris, err := tr.Triangulate()
//
// See triangulate.Config for the tunables governing rotation, refinement
// and intrusion rejection, and triangulate.Triangulator.Smooth for the
// optional post-pass that relaxes vertex positions toward their local
// neighborhood.
package trimesh3d

// Package triangulate is the constrained Delaunay triangulator: given an
// ordered ring of (position, normal) vertices describing a simple polygon
// embedded in 3D space, it produces a triangle mesh filling the polygon's
// interior via intrusion-point ear cutting, local Delaunay repair, and
// edge-splitting refinement. A spatial index of edges backs the ear-cutting
// fallback's chord-crossing test and, when enabled, the self-intersection
// check of the first Delaunay repair pass.
//
// A Triangulator owns a meshstore.Store and a spatial.Octree for its entire
// lifetime: construct one with New, call Triangulate once, and
// read the result with Vertices. Diagnostics collected along the way
// (non-fatal SplitFailed occurrences) are available from Warnings after a
// successful run.
package triangulate

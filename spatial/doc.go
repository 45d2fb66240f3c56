// Package spatial provides a generic, depth-bounded octree over an axis-
// aligned bounding box, used by the triangulator as a spatial index of
// half-edges keyed by their bounding box. The octree may report
// false-positive bounding-box overlaps but never a false negative;
// callers re-verify with exact primitives from package numeric.
package spatial

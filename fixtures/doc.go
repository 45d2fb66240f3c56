// Package fixtures builds boundary polygons for concrete end-to-end
// triangulation scenarios: a unit square, a concave L-shape, a regular
// n-gon, a non-planar hemicircle, and a degenerate near-collinear trigger.
// Every generator returns a vertex ring suitable for triangulate.New, in
// winding order, with no refinement-triggering edge lengths unless the
// scenario specifically calls for one.
package fixtures

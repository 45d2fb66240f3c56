// Package meshstore is the half-edge topology store at the center of the
// triangulator: an append-only vertex array plus an arena of oriented
// half-edges (OrEdge) addressed by small integer ids, with the
// topology-mutating operations (rotate, split-edge, split-triangle) that
// the refinement and repair stages of the triangulator drive.
//
// Half-edges are never freed once created; a mutation re-points next/twin
// fields on existing ids rather than releasing them. Vertices and edges
// both live in flat, append-only slices addressed by stable integer keys
// rather than string-keyed maps, since the half-edge graph is dense and
// every id is produced internally, never user-supplied.
package meshstore

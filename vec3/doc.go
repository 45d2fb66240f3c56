// Package vec3 provides the 3D vector and axis-aligned box primitives shared
// by the numeric kernel, the mesh store, the spatial index, and the
// triangulator.
//
// Vec3 is a thin alias over github.com/golang/geo/r3.Vector: arithmetic,
// Cross, Dot and Normalize are the library's, not reimplemented here. Box is
// our own axis-aligned bounding box type, since r3 carries no AABB.
package vec3

// Package numeric is the geometric kernel shared by the triangulator: 2D
// segment/line intersection on a projected plane, exact 3D segment-triangle
// intersection, signed point-to-line distance, point-in-triangle, polygon
// orientation, and small linear solves.
//
// Every routine here is a pure function over vec3.Vec3 values; none hold
// state and none allocate beyond their return value.
package numeric

package spatial

import (
	"math"

	"github.com/corvidlabs/trimesh3d/vec3"
)

// BBoxFunc returns the axis-aligned bounding box of an indexed item.
type BBoxFunc[T any] func(item T) vec3.Box

// Octree indexes items of type T (typically a half-edge id) by their
// bounding box, to a fixed depth computed once at construction. It is not
// safe for concurrent use.
type Octree[T comparable] struct {
	bbox  BBoxFunc[T]
	depth int
	root  *node[T]
}

type node[T comparable] struct {
	box      vec3.Box
	depth    int
	maxDepth int
	children [8]*node[T]
	items    []T
}

// DepthForCount returns the octree depth to use for N indexed items:
// ceil(log2(N)/2), clamped to [1, 6].
func DepthForCount(n int) int {
	if n < 1 {
		n = 1
	}
	d := int(math.Ceil(math.Log2(float64(n)) / 2))
	if d < 1 {
		d = 1
	}
	if d > 6 {
		d = 6
	}
	return d
}

// New builds an empty Octree over bounds, inflated by 5% on each axis to
// avoid boundary-exact misses, at the given depth.
func New[T comparable](bounds vec3.Box, depth int, bbox BBoxFunc[T]) *Octree[T] {
	if depth < 1 {
		depth = 1
	}
	return &Octree[T]{
		bbox:  bbox,
		depth: depth,
		root:  &node[T]{box: bounds.Inflate(0.05), depth: 0, maxDepth: depth},
	}
}

// Add inserts item into every leaf whose box intersects item's bounding box.
func (o *Octree[T]) Add(item T) {
	o.root.add(item, o.bbox(item))
}

func (n *node[T]) add(item T, box vec3.Box) {
	if !n.box.Intersects(box) {
		return
	}
	if n.depth == n.maxDepth {
		n.items = append(n.items, item)
		return
	}
	for i := 0; i < 8; i++ {
		oct := n.box.Octant(i)
		if !oct.Intersects(box) {
			continue
		}
		if n.children[i] == nil {
			n.children[i] = &node[T]{box: oct, depth: n.depth + 1, maxDepth: n.maxDepth}
		}
		n.children[i].add(item, box)
	}
}

// Remove erases the first occurrence of item from every leaf its bounding
// box reaches. It is a no-op if item was never added.
func (o *Octree[T]) Remove(item T) {
	o.root.remove(item, o.bbox(item))
}

func (n *node[T]) remove(item T, box vec3.Box) {
	if !n.box.Intersects(box) {
		return
	}
	if n.depth == n.maxDepth {
		for i, x := range n.items {
			if x == item {
				n.items = append(n.items[:i], n.items[i+1:]...)
				return
			}
		}
		return
	}
	for i := 0; i < 8; i++ {
		if n.children[i] != nil {
			n.children[i].remove(item, box)
		}
	}
}

// Collect returns every item whose leaf bucket intersects box, with
// possible duplicates if an item spans multiple leaves. The result may
// contain false-positive bounding-box overlaps the caller must re-verify.
func (o *Octree[T]) Collect(box vec3.Box) []T {
	var out []T
	o.root.collect(box, &out)
	return out
}

func (n *node[T]) collect(box vec3.Box, out *[]T) {
	if !n.box.Intersects(box) {
		return
	}
	if n.depth == n.maxDepth {
		*out = append(*out, n.items...)
		return
	}
	for _, c := range n.children {
		if c != nil {
			c.collect(box, out)
		}
	}
}

package vec3

// Box is an axis-aligned bounding box, inclusive of its Min and Max corners.
type Box struct {
	Min, Max Vec3
}

// BoxFromPoints returns the smallest Box containing every point in pts. It
// panics if pts is empty, since an empty box has no sensible bounds.
func BoxFromPoints(pts []Vec3) Box {
	b := Box{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		b = b.ExpandToContain(p)
	}
	return b
}

// ExpandToContain returns the smallest Box containing both b and p.
func (b Box) ExpandToContain(p Vec3) Box {
	return Box{
		Min: New(min(b.Min.X, p.X), min(b.Min.Y, p.Y), min(b.Min.Z, p.Z)),
		Max: New(max(b.Max.X, p.X), max(b.Max.Y, p.Y), max(b.Max.Z, p.Z)),
	}
}

// Union returns the smallest Box containing both a and b.
func (a Box) Union(b Box) Box {
	return Box{
		Min: New(min(a.Min.X, b.Min.X), min(a.Min.Y, b.Min.Y), min(a.Min.Z, b.Min.Z)),
		Max: New(max(a.Max.X, b.Max.X), max(a.Max.Y, b.Max.Y), max(a.Max.Z, b.Max.Z)),
	}
}

// Center returns the midpoint of the box.
func (b Box) Center() Vec3 {
	return Midpoint(b.Min, b.Max)
}

// Inflate returns b grown by factor f on every axis about its center (f=0.05
// grows each axis by 5%).
func (b Box) Inflate(f float64) Box {
	c := b.Center()
	half := Scale(Sub(b.Max, b.Min), 0.5*(1+f))
	return Box{Min: Sub(c, half), Max: Add(c, half)}
}

// Contains reports whether p lies within b (inclusive of the boundary).
func (b Box) Contains(p Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Intersects reports whether a and b share any point, including touching at
// a boundary.
func (a Box) Intersects(b Box) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X &&
		a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y &&
		a.Min.Z <= b.Max.Z && a.Max.Z >= b.Min.Z
}

// Octant returns the i-th (0-7) octant of b, splitting at its center. Bit 0
// of i selects the X half, bit 1 the Y half, bit 2 the Z half (0 = low half,
// 1 = high half on that axis).
func (b Box) Octant(i int) Box {
	c := b.Center()
	lo, hi := b.Min, b.Max

	var min, max Vec3
	if i&1 == 0 {
		min.X, max.X = lo.X, c.X
	} else {
		min.X, max.X = c.X, hi.X
	}
	if i&2 == 0 {
		min.Y, max.Y = lo.Y, c.Y
	} else {
		min.Y, max.Y = c.Y, hi.Y
	}
	if i&4 == 0 {
		min.Z, max.Z = lo.Z, c.Z
	} else {
		min.Z, max.Z = c.Z, hi.Z
	}
	return Box{Min: min, Max: max}
}

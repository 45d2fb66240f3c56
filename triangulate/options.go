package triangulate

import "go.uber.org/zap"

// Config holds the tunables of a triangulation run, all relative to
// edgeLength_mean (the arithmetic mean of boundary edge lengths at
// construction) except ConvexThreshold and Epsilon, which are dimensionless.
type Config struct {
	// RotateThreshold is the minimum perpendicular distance (as a multiple
	// of edgeLength_mean) an opposite apex must clear for needRotate to
	// consider flipping an edge. Default 1e-4.
	RotateThreshold float64

	// SplitThreshold is the edge length (as a multiple of edgeLength_mean)
	// above which refinement splits an edge. Default 2.0, overridable via
	// WithSplitThreshold.
	SplitThreshold float64

	// ThinThreshold is the perpendicular distance (as a multiple of
	// edgeLength_mean) below which a candidate split point is rejected as
	// producing a too-thin triangle pair. Default 0.25.
	ThinThreshold float64

	// ConvexThreshold is the minimum dot product between a candidate ear's
	// normalized cross product and its apex vertex normal for the apex to
	// count as convex. Default 0.07.
	ConvexThreshold float64

	// Epsilon is the numeric tolerance used throughout for sign and
	// zero-determinant comparisons. Default 1e-10.
	Epsilon float64

	// RejectOppositeNormalIntruders rejects an intrusion candidate whose
	// vertex normal points away from the ear's apex normal (dot product
	// negative). Defaults to true, for geometric correctness on curved
	// boundaries.
	RejectOppositeNormalIntruders bool

	// CheckSelfIntersectionOnRotate enables the self-intersection guard
	// during the first (pre-split) Delaunay repair pass. It stays disabled
	// during refinement's inner repair loop and the final post-refinement
	// pass, trading a rare class of rotate-induced overlaps for a large
	// constant-factor speedup there.
	CheckSelfIntersectionOnRotate bool

	// Logger receives structured diagnostics for each stage. Defaults to a
	// no-op logger.
	Logger *zap.Logger
}

// DefaultConfig returns the default tunables.
func DefaultConfig() Config {
	return Config{
		RotateThreshold:               1e-4,
		SplitThreshold:                2.0,
		ThinThreshold:                 0.25,
		ConvexThreshold:               0.07,
		Epsilon:                       1e-10,
		RejectOppositeNormalIntruders: true,
		CheckSelfIntersectionOnRotate: true,
		Logger:                        zap.NewNop(),
	}
}

// Option configures a Triangulator at construction time.
type Option func(*Config)

// WithRotateThreshold overrides RotateThreshold.
func WithRotateThreshold(v float64) Option {
	return func(c *Config) { c.RotateThreshold = v }
}

// WithSplitThreshold overrides SplitThreshold.
func WithSplitThreshold(v float64) Option {
	return func(c *Config) { c.SplitThreshold = v }
}

// WithThinThreshold overrides ThinThreshold.
func WithThinThreshold(v float64) Option {
	return func(c *Config) { c.ThinThreshold = v }
}

// WithConvexThreshold overrides ConvexThreshold.
func WithConvexThreshold(v float64) Option {
	return func(c *Config) { c.ConvexThreshold = v }
}

// WithEpsilon overrides Epsilon.
func WithEpsilon(v float64) Option {
	return func(c *Config) { c.Epsilon = v }
}

// WithOppositeNormalIntruders toggles RejectOppositeNormalIntruders.
func WithOppositeNormalIntruders(reject bool) Option {
	return func(c *Config) { c.RejectOppositeNormalIntruders = reject }
}

// WithSelfIntersectionOnRotate toggles CheckSelfIntersectionOnRotate.
func WithSelfIntersectionOnRotate(enabled bool) Option {
	return func(c *Config) { c.CheckSelfIntersectionOnRotate = enabled }
}

// WithLogger overrides Logger. A nil logger is treated as zap.NewNop().
func WithLogger(l *zap.Logger) Option {
	return func(c *Config) {
		if l == nil {
			l = zap.NewNop()
		}
		c.Logger = l
	}
}

package triangulate

import (
	"fmt"

	"github.com/corvidlabs/trimesh3d/meshstore"
	"github.com/corvidlabs/trimesh3d/spatial"
	"github.com/corvidlabs/trimesh3d/vec3"
	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"
)

// Triangulator owns the mutable state of a single triangulation run: the
// half-edge store, the spatial index over its edges, and the resolved
// configuration. Construct one with New, call Triangulate at
// most once, and read the result with Vertices.
type Triangulator struct {
	store *meshstore.Store
	tree  *spatial.Octree[meshstore.EdgeID]
	cfg   Config

	boundaryCount  int
	edgeLengthMean float64

	runID    uuid.UUID
	warnings error
	logger   *zap.Logger
}

func edgeBox(s *meshstore.Store) spatial.BBoxFunc[meshstore.EdgeID] {
	return func(e meshstore.EdgeID) vec3.Box {
		a := s.Vertex(s.Org(e)).P
		b := s.Vertex(s.Dst(e)).P
		return vec3.BoxFromPoints([]vec3.Vec3{a, b})
	}
}

// New constructs a Triangulator over boundary, a simple polygon ring given
// in winding order. It returns ErrInvalidInput if boundary has fewer than 3
// vertices or any vertex carries a non-finite coordinate; every offending
// index is collected into the returned error via multierr rather than
// stopping at the first offending index.
func New(boundary []meshstore.Vertex, opts ...Option) (*Triangulator, error) {
	if len(boundary) < 3 {
		return nil, fmt.Errorf("triangulate: %d vertices given, need at least 3: %w", len(boundary), ErrInvalidInput)
	}

	var verr error
	for i, v := range boundary {
		if !vec3.IsFinite(v.P) {
			verr = multierr.Append(verr, fmt.Errorf("triangulate: boundary vertex %d has non-finite position", i))
		}
		if !vec3.IsFinite(v.N) {
			verr = multierr.Append(verr, fmt.Errorf("triangulate: boundary vertex %d has non-finite normal", i))
		}
	}
	if verr != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, verr)
	}

	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	store := meshstore.NewWithBoundary(boundary)
	n := len(boundary)
	ids := make([]meshstore.EdgeID, n)
	for i := 0; i < n; i++ {
		ids[i] = store.NewEdge(meshstore.VertexID(i), meshstore.VertexID((i+1)%n))
	}
	for i := 0; i < n; i++ {
		store.SetNext(ids[i], ids[(i+1)%n])
	}

	pts := make([]vec3.Vec3, n)
	lengths := make([]float64, n)
	for i, v := range boundary {
		pts[i] = v.P
		lengths[i] = vec3.Length(vec3.Sub(boundary[(i+1)%n].P, v.P))
	}

	box := vec3.BoxFromPoints(pts)
	tree := spatial.New(box, spatial.DepthForCount(n), edgeBox(store))
	for _, id := range ids {
		tree.Add(id)
	}

	t := &Triangulator{
		store:          store,
		tree:           tree,
		cfg:            cfg,
		boundaryCount:  n,
		edgeLengthMean: stat.Mean(lengths, nil),
		runID:          uuid.New(),
		logger:         cfg.Logger,
	}
	t.logger.Debug("triangulator constructed",
		zap.String("run_id", t.runID.String()),
		zap.Int("boundary_vertices", n),
		zap.Float64("edge_length_mean", t.edgeLengthMean),
	)
	return t, nil
}

// Triangulate runs the full pipeline once: intrusion-point ear cutting,
// Delaunay repair, edge-splitting refinement, and a final repair pass
// It mutates the Triangulator's internal store; calling it a
// second time is not supported and its result is undefined.
func (t *Triangulator) Triangulate() ([]meshstore.Triangle, error) {
	t.logger.Info("prebuild: ear cutting", zap.String("run_id", t.runID.String()))
	if err := t.prebuild(); err != nil {
		return nil, err
	}

	t.logger.Info("delaunay repair: initial pass", zap.String("run_id", t.runID.String()))
	if err := t.makeDelaunay(t.cfg.CheckSelfIntersectionOnRotate); err != nil {
		return nil, err
	}

	t.logger.Info("refinement", zap.String("run_id", t.runID.String()))
	if err := t.refine(); err != nil {
		return nil, err
	}

	t.logger.Info("delaunay repair: final pass", zap.String("run_id", t.runID.String()))
	if err := t.makeDelaunay(false); err != nil {
		return nil, err
	}

	tris := t.store.PostBuild()
	t.logger.Info("triangulate complete",
		zap.String("run_id", t.runID.String()),
		zap.Int("triangles", len(tris)),
	)
	return tris, nil
}

// Vertices returns every vertex of the run: the original boundary ring
// followed by every vertex introduced by refinement, in id order.
func (t *Triangulator) Vertices() []meshstore.Vertex {
	return t.store.Vertices()
}

// BoundaryCount returns the number of vertices in the original input ring;
// vertex ids [0, BoundaryCount()) are the boundary in traversal order, and
// every id at or beyond it was introduced by refinement.
func (t *Triangulator) BoundaryCount() int {
	return t.boundaryCount
}

// Warnings returns every non-fatal diagnostic accumulated during the run
// (currently: edges refinement did not split, either because the result
// would be too thin or because their surrounding faces were not both
// triangles), aggregated with multierr, or nil if none occurred.
func (t *Triangulator) Warnings() error {
	return t.warnings
}

func (t *Triangulator) warn(err error) {
	t.warnings = multierr.Append(t.warnings, err)
	t.logger.Warn("non-fatal diagnostic", zap.String("run_id", t.runID.String()), zap.Error(err))
}

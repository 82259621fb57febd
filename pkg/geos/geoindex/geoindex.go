package geoindex

import (
	"github.com/cockroachdb/errors"
	"github.com/dhconnelly/rtreego"
	geom "github.com/twpayne/go-geom"

	"github.com/spatialkit/geos-go/pkg/geos"
)

// R-tree node branching limits.
const (
	minBranch = 25
	maxBranch = 50
)

// epsilon pads degenerate extents: the tree rejects zero-length rectangle
// sides, and points and axis-parallel lines have them.
const epsilon = 1e-9

// Entry is one indexed geometry with its caller-supplied value. Entries are
// handed out by Insert and accepted back by Remove.
type Entry struct {
	Geom  geom.T
	Value any
	rect  rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *Entry) Bounds() rtreego.Rect {
	return e.rect
}

// Index is an R-tree over geometry bounding boxes with engine-backed
// refinement. Queries run in two stages: the tree filters by envelope
// overlap, then the engine's exact predicate discards false positives.
//
// An Index is not safe for concurrent mutation; guard it externally when
// inserting and querying from multiple goroutines.
type Index struct {
	tree *rtreego.Rtree
}

// New returns an empty index.
func New() *Index {
	return &Index{tree: rtreego.NewTree(2, minBranch, maxBranch)}
}

// Len returns the number of indexed entries.
func (ix *Index) Len() int {
	return ix.tree.Size()
}

// Insert indexes g under its engine-computed envelope. Empty geometries
// have no envelope and are rejected.
func (ix *Index) Insert(g geom.T, value any) (*Entry, error) {
	env, err := geos.EnvelopeOf(g)
	if err != nil {
		return nil, errors.Wrap(err, "computing envelope for index")
	}
	rect, err := rectFor(env)
	if err != nil {
		return nil, err
	}
	e := &Entry{Geom: g, Value: value, rect: rect}
	ix.tree.Insert(e)
	return e, nil
}

// Remove deletes an entry previously returned by Insert. It reports whether
// the entry was present.
func (ix *Index) Remove(e *Entry) bool {
	return ix.tree.Delete(e)
}

// SearchEnvelope returns every entry whose bounding box intersects env.
// This is the filter stage only; entries whose exact geometry misses env
// are included whenever their boxes overlap it.
func (ix *Index) SearchEnvelope(env geos.Envelope) ([]*Entry, error) {
	rect, err := rectFor(env)
	if err != nil {
		return nil, err
	}
	return entries(ix.tree.SearchIntersect(rect)), nil
}

// Intersecting returns every entry whose geometry intersects g, filtering
// by envelope and refining with the engine's exact predicate.
func (ix *Index) Intersecting(g geom.T) ([]*Entry, error) {
	env, err := geos.EnvelopeOf(g)
	if err != nil {
		return nil, errors.Wrap(err, "computing query envelope")
	}
	candidates, err := ix.SearchEnvelope(env)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	// One prepared form of the query geometry serves every refinement.
	prep, err := geos.Prepare(g)
	if err != nil {
		return nil, err
	}
	defer prep.Close()

	hits := make([]*Entry, 0, len(candidates))
	for _, c := range candidates {
		hit, err := prep.Intersects(c.Geom)
		if err != nil {
			return nil, err
		}
		if hit {
			hits = append(hits, c)
		}
	}
	return hits, nil
}

func rectFor(env geos.Envelope) (rtreego.Rect, error) {
	w := env.MaxX - env.MinX
	if w < epsilon {
		w = epsilon
	}
	h := env.MaxY - env.MinY
	if h < epsilon {
		h = epsilon
	}
	rect, err := rtreego.NewRect(rtreego.Point{env.MinX, env.MinY}, []float64{w, h})
	if err != nil {
		return rtreego.Rect{}, errors.Wrap(err, "building index rectangle")
	}
	return rect, nil
}

func entries(spatials []rtreego.Spatial) []*Entry {
	out := make([]*Entry, 0, len(spatials))
	for _, s := range spatials {
		out = append(out, s.(*Entry))
	}
	return out
}

package geos

import (
	"github.com/cockroachdb/errors"
	geom "github.com/twpayne/go-geom"

	"github.com/spatialkit/geos-go/pkg/geos/internal/backend"
)

// Envelope is the axis-aligned bounding box of a geometry.
type Envelope struct {
	MinX, MinY, MaxX, MaxY float64
}

// EnvelopeOf returns the bounding box of g. The engine reports an envelope
// as a point for single-coordinate input and as a rectangle polygon
// otherwise; any other result kind violates the engine contract.
func EnvelopeOf(g geom.T) (Envelope, error) {
	t, err := unaryTopology(g, backend.Envelope)
	if err != nil {
		return Envelope{}, err
	}
	switch e := t.(type) {
	case *geom.Point:
		x, y := e.X(), e.Y()
		return Envelope{MinX: x, MinY: y, MaxX: x, MaxY: y}, nil
	case *geom.Polygon:
		ring := e.LinearRing(0)
		flat, stride := ring.FlatCoords(), ring.Stride()
		env := Envelope{MinX: flat[0], MinY: flat[1], MaxX: flat[0], MaxY: flat[1]}
		for i := stride; i < len(flat); i += stride {
			x, y := flat[i], flat[i+1]
			if x < env.MinX {
				env.MinX = x
			}
			if x > env.MaxX {
				env.MaxX = x
			}
			if y < env.MinY {
				env.MinY = y
			}
			if y > env.MaxY {
				env.MaxY = y
			}
		}
		return env, nil
	default:
		return Envelope{}, errors.AssertionFailedf("engine envelope decoded to %T", t)
	}
}

// ConvexHull returns the smallest convex geometry containing g.
func ConvexHull(g geom.T) (geom.T, error) {
	return unaryTopology(g, backend.ConvexHull)
}

// ConcaveHull returns a concave geometry containing g. ratio in [0, 1]
// blends between maximum concaveness (0) and the convex hull (1). allowHoles
// permits interior holes in the result.
func ConcaveHull(g geom.T, ratio float64, allowHoles bool) (geom.T, error) {
	if ratio < 0 || ratio > 1 {
		return nil, errors.Newf("concave hull ratio must be in [0, 1], got %v", ratio)
	}
	return unaryTopology(g, func(h backend.Context, ng backend.Geom) backend.Geom {
		return backend.ConcaveHull(h, ng, ratio, allowHoles)
	})
}

// MinimumRotatedRectangle returns the smallest-area rectangle containing g,
// at any rotation.
func MinimumRotatedRectangle(g geom.T) (geom.T, error) {
	return unaryTopology(g, backend.MinimumRotatedRectangle)
}

// MinimumWidth returns the shortest line across the thinnest extent of g.
// Its length is the minimum diameter of g.
func MinimumWidth(g geom.T) (*geom.LineString, error) {
	return asLineString(unaryTopology(g, backend.MinimumWidth))
}

// PointOnSurface returns a point guaranteed to lie on g.
func PointOnSurface(g geom.T) (*geom.Point, error) {
	return asPoint(unaryTopology(g, backend.PointOnSurface))
}

// Centroid returns the geometric center of mass of g. It may lie outside g.
func Centroid(g geom.T) (*geom.Point, error) {
	return asPoint(unaryTopology(g, backend.Centroid))
}

// Circle is a center point with a radius, as produced by
// MinimumBoundingCircle.
type Circle struct {
	Center *geom.Point
	Radius float64
}

// MinimumBoundingCircle returns the smallest circle containing g. The
// engine produces both a polygonal approximation of the circle and its
// exact center and radius; only center and radius carry through. A
// successful call with no center reports ErrNoMinimumBoundingCircle.
func MinimumBoundingCircle(g geom.T) (Circle, error) {
	ctx, err := newContext()
	if err != nil {
		return Circle{}, err
	}
	defer ctx.close()

	ng, err := toNative(ctx, g)
	if err != nil {
		return Circle{}, err
	}
	defer ng.destroy()

	circle, radius, center := backend.MinimumBoundingCircle(ctx.handle, ng.geom)
	if circle == nil {
		if center != nil {
			newNativeGeom(ctx, center).destroy()
		}
		return Circle{}, ctx.err()
	}
	// The polygonal approximation is never surfaced.
	newNativeGeom(ctx, circle).destroy()
	if center == nil {
		return Circle{}, ErrNoMinimumBoundingCircle
	}
	nc := newNativeGeom(ctx, center)
	defer nc.destroy()

	p, err := asPoint(fromNative(ctx, nc.geom))
	if err != nil {
		return Circle{}, err
	}
	return Circle{Center: p, Radius: radius}, nil
}

// NearestPoints returns the closest pair of points between a and b, the
// first on a and the second on b.
func NearestPoints(a, b geom.T) (*geom.Point, *geom.Point, error) {
	ctx, err := newContext()
	if err != nil {
		return nil, nil, err
	}
	defer ctx.close()

	na, err := toNative(ctx, a)
	if err != nil {
		return nil, nil, err
	}
	defer na.destroy()

	nb, err := toNative(ctx, b)
	if err != nil {
		return nil, nil, err
	}
	defer nb.destroy()

	s := backend.NearestPoints(ctx.handle, na.geom, nb.geom)
	if s == nil {
		return nil, nil, ctx.err()
	}
	defer backend.CoordSeqDestroy(ctx.handle, s)

	n, ok := backend.CoordSeqSize(ctx.handle, s)
	if ok == 0 {
		return nil, nil, ctx.err()
	}
	if n != 2 {
		return nil, nil, errors.AssertionFailedf("nearest points sequence has %d coordinates", n)
	}
	flat := make([]float64, 2*geom.XY.Stride())
	if backend.CoordSeqToBuffer(ctx.handle, s, flat, false, false) == 0 {
		return nil, nil, ctx.err()
	}
	pa := geom.NewPointFlat(geom.XY, flat[:2])
	pb := geom.NewPointFlat(geom.XY, flat[2:])
	return pa, pb, nil
}

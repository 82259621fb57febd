package geos

import (
	"github.com/cockroachdb/errors"
	geom "github.com/twpayne/go-geom"

	"github.com/spatialkit/geos-go/pkg/geos/internal/backend"
)

// Call shapes shared by the operation facade. Every exported operation runs
// as: open a private context, encode the inputs, one engine call, decode,
// tear everything down. The deferred closes guarantee no handle outlives the
// call regardless of which branch returns.

// triState folds the engine's three-valued predicate result. 2 is the
// engine's exception value; anything else breaks the engine contract.
func triState(ctx *execContext, rc int) (bool, error) {
	switch rc {
	case 0:
		return false, nil
	case 1:
		return true, nil
	case 2:
		return false, ctx.err()
	default:
		return false, errors.AssertionFailedf("engine predicate returned %d", rc)
	}
}

func unaryPredicate(g geom.T, fn func(backend.Context, backend.Geom) int) (bool, error) {
	ctx, err := newContext()
	if err != nil {
		return false, err
	}
	defer ctx.close()

	ng, err := toNative(ctx, g)
	if err != nil {
		return false, err
	}
	defer ng.destroy()

	return triState(ctx, fn(ctx.handle, ng.geom))
}

func binaryPredicate(a, b geom.T, fn func(backend.Context, backend.Geom, backend.Geom) int) (bool, error) {
	ctx, err := newContext()
	if err != nil {
		return false, err
	}
	defer ctx.close()

	na, err := toNative(ctx, a)
	if err != nil {
		return false, err
	}
	defer na.destroy()

	nb, err := toNative(ctx, b)
	if err != nil {
		return false, err
	}
	defer nb.destroy()

	return triState(ctx, fn(ctx.handle, na.geom, nb.geom))
}

func unaryScalar(g geom.T, fn func(backend.Context, backend.Geom) (float64, int)) (float64, error) {
	ctx, err := newContext()
	if err != nil {
		return 0, err
	}
	defer ctx.close()

	ng, err := toNative(ctx, g)
	if err != nil {
		return 0, err
	}
	defer ng.destroy()

	v, ok := fn(ctx.handle, ng.geom)
	if ok == 0 {
		return 0, ctx.err()
	}
	return v, nil
}

func binaryScalar(a, b geom.T, fn func(backend.Context, backend.Geom, backend.Geom) (float64, int)) (float64, error) {
	ctx, err := newContext()
	if err != nil {
		return 0, err
	}
	defer ctx.close()

	na, err := toNative(ctx, a)
	if err != nil {
		return 0, err
	}
	defer na.destroy()

	nb, err := toNative(ctx, b)
	if err != nil {
		return 0, err
	}
	defer nb.destroy()

	v, ok := fn(ctx.handle, na.geom, nb.geom)
	if ok == 0 {
		return 0, ctx.err()
	}
	return v, nil
}

func unaryTopology(g geom.T, fn func(backend.Context, backend.Geom) backend.Geom) (geom.T, error) {
	ctx, err := newContext()
	if err != nil {
		return nil, err
	}
	defer ctx.close()

	ng, err := toNative(ctx, g)
	if err != nil {
		return nil, err
	}
	defer ng.destroy()

	out := fn(ctx.handle, ng.geom)
	if out == nil {
		return nil, ctx.err()
	}
	nout := newNativeGeom(ctx, out)
	defer nout.destroy()

	return fromNative(ctx, nout.geom)
}

func binaryTopology(a, b geom.T, fn func(backend.Context, backend.Geom, backend.Geom) backend.Geom) (geom.T, error) {
	ctx, err := newContext()
	if err != nil {
		return nil, err
	}
	defer ctx.close()

	na, err := toNative(ctx, a)
	if err != nil {
		return nil, err
	}
	defer na.destroy()

	nb, err := toNative(ctx, b)
	if err != nil {
		return nil, err
	}
	defer nb.destroy()

	out := fn(ctx.handle, na.geom, nb.geom)
	if out == nil {
		return nil, ctx.err()
	}
	nout := newNativeGeom(ctx, out)
	defer nout.destroy()

	return fromNative(ctx, nout.geom)
}

// absorbTooFewPoints turns a degenerate decode into an absent result.
// Operations whose output may legitimately collapse to nothing (overlay,
// buffering, offsetting) report that as (nil, nil) rather than an error.
func absorbTooFewPoints(t geom.T, err error) (geom.T, error) {
	if errors.Is(err, ErrTooFewPoints) {
		return nil, nil
	}
	return t, err
}

// Typed-return helpers for operations whose engine result has a guaranteed
// kind. A different decoded kind breaks the engine contract.

func asPoint(t geom.T, err error) (*geom.Point, error) {
	if err != nil {
		return nil, err
	}
	p, ok := t.(*geom.Point)
	if !ok {
		return nil, errors.AssertionFailedf("engine returned %T where a point was promised", t)
	}
	return p, nil
}

func asLineString(t geom.T, err error) (*geom.LineString, error) {
	if err != nil {
		return nil, err
	}
	l, ok := t.(*geom.LineString)
	if !ok {
		return nil, errors.AssertionFailedf("engine returned %T where a linestring was promised", t)
	}
	return l, nil
}

func asGeometryCollection(t geom.T, err error) (*geom.GeometryCollection, error) {
	if err != nil {
		return nil, err
	}
	gc, ok := t.(*geom.GeometryCollection)
	if !ok {
		return nil, errors.AssertionFailedf("engine returned %T where a collection was promised", t)
	}
	return gc, nil
}

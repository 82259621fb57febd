package geos

import (
	geom "github.com/twpayne/go-geom"

	"github.com/spatialkit/geos-go/pkg/geos/internal/backend"
)

// Simplify returns g with vertices within tolerance removed,
// Douglas-Peucker style. The result can be invalid or change topology; use
// TopologyPreserveSimplify when that matters.
func Simplify(g geom.T, tolerance float64) (geom.T, error) {
	return unaryTopology(g, func(h backend.Context, ng backend.Geom) backend.Geom {
		return backend.Simplify(h, ng, tolerance)
	})
}

// TopologyPreserveSimplify simplifies g without splitting, collapsing or
// crossing any component. Less reduction than Simplify at equal tolerance.
func TopologyPreserveSimplify(g geom.T, tolerance float64) (geom.T, error) {
	return unaryTopology(g, func(h backend.Context, ng backend.Geom) backend.Geom {
		return backend.TopologyPreserveSimplify(h, ng, tolerance)
	})
}

// Snap moves vertices and segments of g onto vertices of reference when
// they fall within tolerance.
func Snap(g, reference geom.T, tolerance float64) (geom.T, error) {
	return binaryTopology(g, reference, func(h backend.Context, ng, nr backend.Geom) backend.Geom {
		return backend.Snap(h, ng, nr, tolerance)
	})
}

// Normalized returns g in canonical form: components ordered, rings
// oriented and started deterministically. Two topologically equal
// geometries normalize to identical coordinate sequences.
func Normalized(g geom.T) (geom.T, error) {
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

	clone := backend.GeomClone(ctx.handle, ng.geom)
	if clone == nil {
		return nil, ctx.err()
	}
	nc := newNativeGeom(ctx, clone)
	defer nc.destroy()

	if backend.Normalize(ctx.handle, nc.geom) == -1 {
		return nil, ctx.err()
	}
	return fromNative(ctx, nc.geom)
}

// LineMerge sews the lineal components of g into maximal linestrings,
// ignoring component direction.
func LineMerge(g geom.T) (geom.T, error) {
	return unaryTopology(g, backend.LineMerge)
}

// LineMergeDirected sews the lineal components of g into maximal
// linestrings, joining only ends that agree in direction.
func LineMergeDirected(g geom.T) (geom.T, error) {
	return unaryTopology(g, backend.LineMergeDirected)
}

// Polygonize assembles polygons from the linework of gs and returns them as
// a collection. Every input is converted before the single engine call, so
// the whole batch is alive at once; all of it is released before return on
// every path.
func Polygonize(gs []geom.T) (*geom.GeometryCollection, error) {
	ctx, err := newContext()
	if err != nil {
		return nil, err
	}
	defer ctx.close()

	wrappers := make([]*nativeGeom, 0, len(gs))
	defer func() {
		for _, w := range wrappers {
			w.destroy()
		}
	}()

	raws := make([]backend.Geom, 0, len(gs))
	for _, g := range gs {
		ng, err := toNative(ctx, g)
		if err != nil {
			return nil, err
		}
		wrappers = append(wrappers, ng)
		raws = append(raws, ng.geom)
	}

	out := backend.Polygonize(ctx.handle, raws)
	if out == nil {
		return nil, ctx.err()
	}
	nout := newNativeGeom(ctx, out)
	defer nout.destroy()

	return asGeometryCollection(fromNative(ctx, nout.geom))
}

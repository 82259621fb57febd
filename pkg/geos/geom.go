package geos

import (
	"github.com/spatialkit/geos-go/pkg/geos/internal/backend"
)

// nativeGeom owns one engine geometry handle under the context that created
// it. Exactly one nativeGeom owns a given handle, and destroy releases it
// exactly once; the zero of everything after that makes a second destroy a
// no-op. Borrowed child handles (rings, collection members) are never
// wrapped: they live and die with their parent.
type nativeGeom struct {
	ctx  *execContext
	geom backend.Geom
}

// newNativeGeom wraps an owned, non-nil handle created under ctx.
func newNativeGeom(ctx *execContext, g backend.Geom) *nativeGeom {
	liveGeoms.Add(1)
	return &nativeGeom{ctx: ctx, geom: g}
}

// destroy releases the handle. Idempotent, nil-safe.
func (n *nativeGeom) destroy() {
	if n == nil || n.geom == nil {
		return
	}
	backend.GeomDestroy(n.ctx.handle, n.geom)
	n.geom = nil
	liveGeoms.Add(-1)
}

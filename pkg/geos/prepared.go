package geos

import (
	"runtime"

	geom "github.com/twpayne/go-geom"

	"github.com/spatialkit/geos-go/pkg/geos/internal/backend"
)

// PreparedGeometry holds a geometry in engine-optimized form for repeated
// predicate evaluation against many other geometries. It owns native
// resources: call Close when done. A finalizer reclaims forgotten values,
// but releases are prompt only with explicit Close.
//
// A PreparedGeometry reuses one engine session across calls, so it must not
// be used from multiple goroutines without external synchronization.
// Prepare one per goroutine for concurrent querying.
type PreparedGeometry struct {
	ctx  *execContext
	base *nativeGeom
	prep backend.PreparedGeom
}

// Prepare returns g in engine-optimized form. The speedup pays off after a
// handful of predicate calls against the same prepared geometry.
func Prepare(g geom.T) (*PreparedGeometry, error) {
	ctx, err := newContext()
	if err != nil {
		return nil, err
	}

	base, err := toNative(ctx, g)
	if err != nil {
		ctx.close()
		return nil, err
	}

	prep := backend.Prepare(ctx.handle, base.geom)
	if prep == nil {
		err := ctx.err()
		base.destroy()
		ctx.close()
		return nil, err
	}

	p := &PreparedGeometry{ctx: ctx, base: base, prep: prep}
	runtime.SetFinalizer(p, func(p *PreparedGeometry) { _ = p.Close() })
	return p, nil
}

// Close releases the prepared form, the base geometry and the engine
// session, in that order. Safe to call multiple times and on a nil
// receiver.
func (p *PreparedGeometry) Close() error {
	if p == nil {
		return nil
	}
	if p.prep == nil && p.base == nil && p.ctx == nil {
		return nil
	}

	runtime.SetFinalizer(p, nil)
	if p.prep != nil {
		backend.PreparedDestroy(p.ctx.handle, p.prep)
		p.prep = nil
	}
	p.base.destroy()
	p.base = nil
	p.ctx.close()
	p.ctx = nil
	return nil
}

// predicate evaluates one prepared predicate against other. The session's
// captured log restarts per call so a failure reports only its own
// messages.
func (p *PreparedGeometry) predicate(other geom.T, fn func(backend.Context, backend.PreparedGeom, backend.Geom) int) (bool, error) {
	if p == nil || p.prep == nil {
		return false, ErrClosed
	}
	p.ctx.errlog = p.ctx.errlog[:0]

	no, err := toNative(p.ctx, other)
	if err != nil {
		return false, err
	}
	defer no.destroy()

	ok, err := triState(p.ctx, fn(p.ctx.handle, p.prep, no.geom))
	runtime.KeepAlive(p)
	return ok, err
}

// Contains reports whether the prepared geometry contains other.
func (p *PreparedGeometry) Contains(other geom.T) (bool, error) {
	return p.predicate(other, backend.PreparedContains)
}

// ContainsProperly reports whether other lies in the interior of the
// prepared geometry, touching its boundary nowhere.
func (p *PreparedGeometry) ContainsProperly(other geom.T) (bool, error) {
	return p.predicate(other, backend.PreparedContainsProperly)
}

// CoveredBy reports whether every point of the prepared geometry lies in
// other.
func (p *PreparedGeometry) CoveredBy(other geom.T) (bool, error) {
	return p.predicate(other, backend.PreparedCoveredBy)
}

// Covers reports whether every point of other lies in the prepared
// geometry.
func (p *PreparedGeometry) Covers(other geom.T) (bool, error) {
	return p.predicate(other, backend.PreparedCovers)
}

// Crosses reports whether the prepared geometry crosses other.
func (p *PreparedGeometry) Crosses(other geom.T) (bool, error) {
	return p.predicate(other, backend.PreparedCrosses)
}

// Disjoint reports whether the prepared geometry and other share no points.
func (p *PreparedGeometry) Disjoint(other geom.T) (bool, error) {
	return p.predicate(other, backend.PreparedDisjoint)
}

// Intersects reports whether the prepared geometry and other share at least
// one point.
func (p *PreparedGeometry) Intersects(other geom.T) (bool, error) {
	return p.predicate(other, backend.PreparedIntersects)
}

// Overlaps reports whether the prepared geometry overlaps other.
func (p *PreparedGeometry) Overlaps(other geom.T) (bool, error) {
	return p.predicate(other, backend.PreparedOverlaps)
}

// Touches reports whether the prepared geometry and other share boundary
// but not interior points.
func (p *PreparedGeometry) Touches(other geom.T) (bool, error) {
	return p.predicate(other, backend.PreparedTouches)
}

// Within reports whether the prepared geometry lies completely inside
// other.
func (p *PreparedGeometry) Within(other geom.T) (bool, error) {
	return p.predicate(other, backend.PreparedWithin)
}

package geos

import (
	"github.com/cockroachdb/errors"
	geom "github.com/twpayne/go-geom"

	"github.com/spatialkit/geos-go/pkg/geos/internal/backend"
)

// IsValid reports whether g satisfies the validity rules for its kind, such
// as rings that close and do not self-intersect.
func IsValid(g geom.T) (bool, error) {
	return unaryPredicate(g, backend.IsValid)
}

// IsValidReason returns a human-readable validity description of g: "Valid
// Geometry" or the failure kind with a coordinate.
func IsValidReason(g geom.T) (string, error) {
	ctx, err := newContext()
	if err != nil {
		return "", err
	}
	defer ctx.close()

	ng, err := toNative(ctx, g)
	if err != nil {
		return "", err
	}
	defer ng.destroy()

	reason, ok := backend.IsValidReason(ctx.handle, ng.geom)
	if !ok {
		return "", ctx.err()
	}
	return reason, nil
}

// Validity is the outcome of IsValidDetail. Reason and Location are set
// only for invalid geometries, and each may be absent independently.
type Validity struct {
	Valid    bool
	Reason   string
	Location geom.T
}

// IsValidDetail checks g like IsValid and on failure also reports why and
// where. allowSelfTouchingRingFormingHole accepts the ring-touch pattern
// some systems use to model holes, which strict validity rejects.
func IsValidDetail(g geom.T, allowSelfTouchingRingFormingHole bool) (Validity, error) {
	ctx, err := newContext()
	if err != nil {
		return Validity{}, err
	}
	defer ctx.close()

	ng, err := toNative(ctx, g)
	if err != nil {
		return Validity{}, err
	}
	defer ng.destroy()

	flags := 0
	if allowSelfTouchingRingFormingHole {
		flags = backend.FlagAllowSelfTouchingRingFormingHole
	}

	rc, reason, location := backend.IsValidDetail(ctx.handle, ng.geom, flags)
	var nloc *nativeGeom
	if location != nil {
		nloc = newNativeGeom(ctx, location)
	}
	defer nloc.destroy()

	switch rc {
	case 1:
		// Side outputs carry no information once validity is confirmed.
		return Validity{Valid: true}, nil
	case 0:
		v := Validity{Reason: reason}
		if nloc != nil {
			loc, err := fromNative(ctx, nloc.geom)
			if err != nil {
				return Validity{}, err
			}
			v.Location = loc
		}
		return v, nil
	default:
		return Validity{}, ctx.err()
	}
}

// MakeValid returns a valid geometry preserving the vertices of g,
// rebuilding rings from its linework.
func MakeValid(g geom.T) (geom.T, error) {
	return unaryTopology(g, backend.MakeValid)
}

// MakeValidMethod selects the repair strategy for MakeValidWithParams.
type MakeValidMethod int

const (
	// MakeValidLinework rebuilds rings from all input linework. Inverted
	// ring areas become holes or shells of their own.
	MakeValidLinework MakeValidMethod = backend.MakeValidLinework
	// MakeValidStructure keeps the assembled area structure. Inverted ring
	// areas are dissolved away.
	MakeValidStructure MakeValidMethod = backend.MakeValidStructure
)

// MakeValidParams parameterizes MakeValidWithParams. The zero value matches
// MakeValid: linework repair, collapsed components dropped.
type MakeValidParams struct {
	Method        MakeValidMethod
	KeepCollapsed bool
}

// MakeValidWithParams is MakeValid with an explicit repair strategy.
func MakeValidWithParams(g geom.T, params MakeValidParams) (geom.T, error) {
	switch params.Method {
	case MakeValidLinework, MakeValidStructure:
	default:
		return nil, errors.Newf("unknown make-valid method %d", params.Method)
	}

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

	p := backend.MakeValidParamsCreate(ctx.handle, int(params.Method), params.KeepCollapsed)
	if p == nil {
		return nil, ctx.err()
	}
	defer backend.MakeValidParamsDestroy(ctx.handle, p)

	out := backend.MakeValidWithParams(ctx.handle, ng.geom, p)
	if out == nil {
		return nil, ctx.err()
	}
	nout := newNativeGeom(ctx, out)
	defer nout.destroy()

	return fromNative(ctx, nout.geom)
}

//go:build !windows

package backend

import "errors"

// ErrNotBuilt reports that the native bindings were not linked into the
// current binary.
var ErrNotBuilt = errors.New("geos/internal/backend: native bindings not built")

// ErrInit reports that the engine refused to initialize a context. A failed
// attempt is fatal for the call that made it; later attempts start fresh.
var ErrInit = errors.New("geos/internal/backend: engine context initialization failed")

// Geometry type ids as reported by the engine. The values mirror the
// GEOSGeomTypes enum in geos_c.h and must not be reordered.
const (
	TypeIDPoint              = 0
	TypeIDLineString         = 1
	TypeIDLinearRing         = 2
	TypeIDPolygon            = 3
	TypeIDMultiPoint         = 4
	TypeIDMultiLineString    = 5
	TypeIDMultiPolygon       = 6
	TypeIDGeometryCollection = 7
)

// Buffer end cap styles, mirroring GEOSBufCapStyles.
const (
	CapRound  = 1
	CapFlat   = 2
	CapSquare = 3
)

// Buffer join styles, mirroring GEOSBufJoinStyles.
const (
	JoinRound = 1
	JoinMitre = 2
	JoinBevel = 3
)

// Repair methods accepted by MakeValidWithParams, mirroring GEOSMakeValidMethods.
const (
	MakeValidLinework  = 0
	MakeValidStructure = 1
)

// Flag accepted by IsValidDetail, mirroring GEOSValidFlags.
const FlagAllowSelfTouchingRingFormingHole = 1

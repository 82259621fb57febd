//go:build windows

package backend

import "errors"

// Stub declarations for Windows builds. The !windows files carry these for
// Unix platforms.

// ErrNotBuilt reports that the native bindings were not linked into the
// current binary (Windows build or CGO disabled).
var ErrNotBuilt = errors.New("geos/internal/backend: native bindings not built")

// ErrInit reports that the engine refused to initialize a context.
var ErrInit = errors.New("geos/internal/backend: engine context initialization failed")

// Geometry type ids as reported by the engine.
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

// Buffer end cap styles.
const (
	CapRound  = 1
	CapFlat   = 2
	CapSquare = 3
)

// Buffer join styles.
const (
	JoinRound = 1
	JoinMitre = 2
	JoinBevel = 3
)

// Repair methods accepted by MakeValidWithParams.
const (
	MakeValidLinework  = 0
	MakeValidStructure = 1
)

// Flag accepted by IsValidDetail.
const FlagAllowSelfTouchingRingFormingHole = 1

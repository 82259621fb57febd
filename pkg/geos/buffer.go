package geos

import (
	"github.com/cockroachdb/errors"
	geom "github.com/twpayne/go-geom"

	"github.com/spatialkit/geos-go/pkg/geos/internal/backend"
)

// Buffer defaults. Quadrant segment count controls how many line segments
// approximate a quarter circle in round caps and joins.
const (
	DefaultQuadSegments = 8
	DefaultMitreLimit   = 5.0
)

// CapStyle selects the line end treatment for buffered lineal geometries.
type CapStyle int

const (
	CapRound  CapStyle = backend.CapRound
	CapFlat   CapStyle = backend.CapFlat
	CapSquare CapStyle = backend.CapSquare
)

// JoinStyle selects the corner treatment where buffered segments meet.
type JoinStyle int

const (
	JoinRound JoinStyle = backend.JoinRound
	JoinMitre JoinStyle = backend.JoinMitre
	JoinBevel JoinStyle = backend.JoinBevel
)

// BufferStyle parameterizes BufferWithStyle and OffsetCurve. The zero value
// selects round caps, round joins, DefaultQuadSegments and
// DefaultMitreLimit.
type BufferStyle struct {
	QuadSegments int
	CapStyle     CapStyle
	JoinStyle    JoinStyle
	MitreLimit   float64
}

func (s BufferStyle) withDefaults() (BufferStyle, error) {
	if s.QuadSegments == 0 {
		s.QuadSegments = DefaultQuadSegments
	}
	if s.CapStyle == 0 {
		s.CapStyle = CapRound
	}
	if s.JoinStyle == 0 {
		s.JoinStyle = JoinRound
	}
	if s.MitreLimit == 0 {
		s.MitreLimit = DefaultMitreLimit
	}
	if s.QuadSegments < 0 {
		return s, errors.Newf("quadrant segments must be positive, got %d", s.QuadSegments)
	}
	switch s.CapStyle {
	case CapRound, CapFlat, CapSquare:
	default:
		return s, errors.Newf("unknown cap style %d", s.CapStyle)
	}
	switch s.JoinStyle {
	case JoinRound, JoinMitre, JoinBevel:
	default:
		return s, errors.Newf("unknown join style %d", s.JoinStyle)
	}
	return s, nil
}

// Buffer returns the set of points within width of g, with round caps and
// joins at DefaultQuadSegments resolution. A negative width shrinks areal
// geometries. A collapsed result (zero-width buffer of a lineal input,
// negative buffer swallowing the whole polygon) is (nil, nil), not an error.
func Buffer(g geom.T, width float64) (geom.T, error) {
	return absorbTooFewPoints(unaryTopology(g, func(h backend.Context, ng backend.Geom) backend.Geom {
		return backend.Buffer(h, ng, width, DefaultQuadSegments)
	}))
}

// BufferWithStyle is Buffer with explicit end cap, join and resolution
// parameters.
func BufferWithStyle(g geom.T, width float64, style BufferStyle) (geom.T, error) {
	style, err := style.withDefaults()
	if err != nil {
		return nil, err
	}
	return absorbTooFewPoints(unaryTopology(g, func(h backend.Context, ng backend.Geom) backend.Geom {
		return backend.BufferWithStyle(h, ng, width, style.QuadSegments, int(style.CapStyle), int(style.JoinStyle), style.MitreLimit)
	}))
}

// OffsetCurve returns the curve parallel to a lineal g at the given
// distance, on the left for positive distances and the right for negative
// ones. Cap style does not apply; only the join parameters of style are
// used. A curve that collapses is (nil, nil).
func OffsetCurve(g geom.T, distance float64, style BufferStyle) (geom.T, error) {
	style, err := style.withDefaults()
	if err != nil {
		return nil, err
	}
	return absorbTooFewPoints(unaryTopology(g, func(h backend.Context, ng backend.Geom) backend.Geom {
		return backend.OffsetCurve(h, ng, distance, style.QuadSegments, int(style.JoinStyle), style.MitreLimit)
	}))
}

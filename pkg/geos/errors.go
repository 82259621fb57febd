package geos

import (
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/spatialkit/geos-go/pkg/geos/internal/backend"
)

var (
	// ErrTooFewPoints reports that an engine result decoded to a geometry
	// with fewer coordinates than its kind requires (a point with none, a
	// line with one, a ring with under four). The operations listed in the
	// package documentation as optional-result absorb this into a nil
	// result; everywhere else it surfaces as an error.
	ErrTooFewPoints = errors.New("too few points for geometry kind")

	// ErrNoMinimumBoundingCircle reports that the engine computed a bounding
	// circle but supplied no center point.
	ErrNoMinimumBoundingCircle = errors.New("engine returned no minimum bounding circle center")

	// ErrUnsupportedLayout reports an input with M ordinates. Only XY and
	// XYZ layouts cross the conversion boundary.
	ErrUnsupportedLayout = errors.New("unsupported coordinate layout")

	// ErrNilGeometry reports a nil geometry argument.
	ErrNilGeometry = errors.New("geometry must not be nil")

	// ErrClosed reports use of a PreparedGeometry after Close.
	ErrClosed = errors.New("prepared geometry has been closed")

	// ErrNotBuilt reports that the binary was built without the native
	// engine (no cgo, or Windows).
	ErrNotBuilt = errors.New("built without the native engine")

	// ErrInitFailed reports that the engine refused to initialize an
	// execution context. The failed call is abandoned; later calls start
	// fresh.
	ErrInitFailed = errors.New("engine context initialization failed")
)

// Error carries the text the engine emitted through the failing call's error
// message handler. One value describes one engine failure; the message order
// matches emission order. Contract violations between this package and the
// engine (an impossible decoded variant, a sentinel outside its documented
// range) are reported separately as assertion failures via
// errors.AssertionFailedf, not as *Error.
type Error struct {
	Messages []string
}

func (e *Error) Error() string {
	if len(e.Messages) == 0 {
		return "geos: engine error"
	}
	return "geos: " + strings.Join(e.Messages, "; ")
}

// remapBackendErr converts backend sentinels to their public counterparts.
func remapBackendErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, backend.ErrNotBuilt):
		return ErrNotBuilt
	case errors.Is(err, backend.ErrInit):
		return ErrInitFailed
	}
	return err
}

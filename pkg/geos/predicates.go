package geos

import (
	"github.com/cockroachdb/errors"
	geom "github.com/twpayne/go-geom"

	"github.com/spatialkit/geos-go/pkg/geos/internal/backend"
)

// IsEmpty reports whether g contains no points.
func IsEmpty(g geom.T) (bool, error) {
	return unaryPredicate(g, backend.IsEmpty)
}

// IsSimple reports whether g has no anomalous points such as
// self-intersections or self-tangency.
func IsSimple(g geom.T) (bool, error) {
	return unaryPredicate(g, backend.IsSimple)
}

// Disjoint reports whether a and b share no points.
func Disjoint(a, b geom.T) (bool, error) {
	return binaryPredicate(a, b, backend.Disjoint)
}

// Touches reports whether a and b share boundary points but no interior
// points.
func Touches(a, b geom.T) (bool, error) {
	return binaryPredicate(a, b, backend.Touches)
}

// Intersects reports whether a and b share at least one point.
func Intersects(a, b geom.T) (bool, error) {
	return binaryPredicate(a, b, backend.Intersects)
}

// Crosses reports whether a and b cross: their interiors intersect and the
// intersection has lower dimension than both inputs.
func Crosses(a, b geom.T) (bool, error) {
	return binaryPredicate(a, b, backend.Crosses)
}

// Within reports whether a lies completely inside b.
func Within(a, b geom.T) (bool, error) {
	return binaryPredicate(a, b, backend.Within)
}

// Contains reports whether b lies completely inside a.
func Contains(a, b geom.T) (bool, error) {
	return binaryPredicate(a, b, backend.Contains)
}

// Overlaps reports whether a and b overlap: their interiors intersect but
// neither contains the other, and the intersection has the same dimension as
// the inputs.
func Overlaps(a, b geom.T) (bool, error) {
	return binaryPredicate(a, b, backend.Overlaps)
}

// Covers reports whether every point of b lies in a.
func Covers(a, b geom.T) (bool, error) {
	return binaryPredicate(a, b, backend.Covers)
}

// CoveredBy reports whether every point of a lies in b.
func CoveredBy(a, b geom.T) (bool, error) {
	return binaryPredicate(a, b, backend.CoveredBy)
}

// Equals reports whether a and b are topologically equivalent: they occupy
// the same point set, independent of coordinate order and repetition.
func Equals(a, b geom.T) (bool, error) {
	return binaryPredicate(a, b, backend.Equals)
}

// de9imAlphabet holds the characters admitted in an intersection matrix
// pattern.
const de9imAlphabet = "012TFtf*"

func validatePattern(pattern string) error {
	if len(pattern) != 9 {
		return errors.Newf("intersection matrix pattern must have 9 characters, got %d", len(pattern))
	}
	for i := 0; i < len(pattern); i++ {
		ok := false
		for j := 0; j < len(de9imAlphabet); j++ {
			if pattern[i] == de9imAlphabet[j] {
				ok = true
				break
			}
		}
		if !ok {
			return errors.Newf("intersection matrix pattern has invalid character %q at position %d", pattern[i], i)
		}
	}
	return nil
}

// RelatePattern reports whether the DE-9IM intersection matrix of a and b
// matches pattern: nine characters over {0,1,2,T,F,*} (lower-case t and f
// are accepted), one per matrix cell in row-major order.
func RelatePattern(a, b geom.T, pattern string) (bool, error) {
	if err := validatePattern(pattern); err != nil {
		return false, err
	}

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

	return triState(ctx, backend.RelatePattern(ctx.handle, na.geom, nb.geom, pattern))
}

// Relate returns the DE-9IM intersection matrix of a and b as a nine
// character string in row-major order.
func Relate(a, b geom.T) (string, error) {
	ctx, err := newContext()
	if err != nil {
		return "", err
	}
	defer ctx.close()

	na, err := toNative(ctx, a)
	if err != nil {
		return "", err
	}
	defer na.destroy()

	nb, err := toNative(ctx, b)
	if err != nil {
		return "", err
	}
	defer nb.destroy()

	matrix, ok := backend.Relate(ctx.handle, na.geom, nb.geom)
	if !ok {
		return "", ctx.err()
	}
	return matrix, nil
}

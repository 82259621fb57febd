package geos_test

import (
	"errors"
	"testing"

	geom "github.com/twpayne/go-geom"

	"github.com/spatialkit/geos-go/pkg/geos"
	"github.com/spatialkit/geos-go/pkg/geos/geostest"
)

func TestErrorMessage(t *testing.T) {
	cases := []struct {
		name     string
		err      *geos.Error
		expected string
	}{
		{"empty", &geos.Error{}, "geos: engine error"},
		{"single", &geos.Error{Messages: []string{"ParseException: boom"}}, "geos: ParseException: boom"},
		{"multiple", &geos.Error{Messages: []string{"first", "second"}}, "geos: first; second"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.err.Error(); got != tc.expected {
				t.Fatalf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestEngineFailureCarriesMessages(t *testing.T) {
	skipWithoutEngine(t)

	_, err := geos.FromWKT("THIS IS NOT WKT")
	if err == nil {
		t.Fatal("expected parse failure")
	}
	var engineErr *geos.Error
	if !errors.As(err, &engineErr) {
		t.Fatalf("expected *geos.Error, got %T: %v", err, err)
	}
	if len(engineErr.Messages) == 0 {
		t.Fatal("engine error carries no captured messages")
	}
}

func TestUnsupportedLayoutBeforeNativeWork(t *testing.T) {
	skipWithoutEngine(t)

	xym := geom.NewPointFlat(geom.XYM, []float64{1, 2, 3})
	if _, err := geos.Area(xym); !errors.Is(err, geos.ErrUnsupportedLayout) {
		t.Fatalf("expected ErrUnsupportedLayout, got %v", err)
	}
}

func TestNilGeometryRejected(t *testing.T) {
	skipWithoutEngine(t)

	if _, err := geos.Area(nil); !errors.Is(err, geos.ErrNilGeometry) {
		t.Fatalf("expected ErrNilGeometry, got %v", err)
	}
	if _, err := geos.Intersects(geostest.Square(0, 0, 1, 1), nil); !errors.Is(err, geos.ErrNilGeometry) {
		t.Fatalf("expected ErrNilGeometry, got %v", err)
	}
}

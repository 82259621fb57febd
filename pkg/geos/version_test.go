package geos_test

import (
	"errors"
	"testing"

	"github.com/spatialkit/geos-go/pkg/geos"
	"github.com/spatialkit/geos-go/pkg/geos/geostest"
)

func skipWithoutEngine(t *testing.T) {
	t.Helper()
	if !geos.Available() {
		t.Skip("native engine not built in")
	}
}

func TestWrapperVersion(t *testing.T) {
	if got := geos.WrapperVersion(); got != geos.Version {
		t.Fatalf("expected wrapper version %q, got %q", geos.Version, got)
	}
}

func TestEngineVersion(t *testing.T) {
	v := geos.EngineVersion()
	if geos.Available() {
		if v == "" {
			t.Fatal("engine available but version empty")
		}
	} else if v != "" {
		t.Fatalf("engine unavailable but version %q", v)
	}
}

func TestOperationsWithoutEngine(t *testing.T) {
	if geos.Available() {
		t.Skip("native engine built in")
	}

	if _, err := geos.Intersects(geostest.Square(0, 0, 1, 1), geostest.Square(0, 0, 1, 1)); !errors.Is(err, geos.ErrNotBuilt) {
		t.Fatalf("expected ErrNotBuilt from predicate, got %v", err)
	}
	if _, err := geos.FromWKT("POINT (1 1)"); !errors.Is(err, geos.ErrNotBuilt) {
		t.Fatalf("expected ErrNotBuilt from reader, got %v", err)
	}
	if _, err := geos.Prepare(geostest.Square(0, 0, 1, 1)); !errors.Is(err, geos.ErrNotBuilt) {
		t.Fatalf("expected ErrNotBuilt from prepare, got %v", err)
	}
}

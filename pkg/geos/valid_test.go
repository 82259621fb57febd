package geos_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	geom "github.com/twpayne/go-geom"

	"github.com/spatialkit/geos-go/pkg/geos"
	"github.com/spatialkit/geos-go/pkg/geos/geostest"
)

func TestIsValidReason(t *testing.T) {
	skipWithoutEngine(t)

	reason, err := geos.IsValidReason(geostest.Square(0, 0, 10, 10))
	require.NoError(t, err)
	require.Equal(t, "Valid Geometry", reason)

	reason, err = geos.IsValidReason(geostest.Bowtie())
	require.NoError(t, err)
	require.Contains(t, reason, "Self-intersection")
}

func TestIsValidDetailOnValid(t *testing.T) {
	skipWithoutEngine(t)

	v, err := geos.IsValidDetail(geostest.Square(0, 0, 10, 10), false)
	require.NoError(t, err)
	require.True(t, v.Valid)
	require.Empty(t, v.Reason)
	require.Nil(t, v.Location)
}

func TestIsValidDetailOnBowtie(t *testing.T) {
	skipWithoutEngine(t)

	v, err := geos.IsValidDetail(geostest.Bowtie(), false)
	require.NoError(t, err)
	require.False(t, v.Valid)
	require.NotEmpty(t, v.Reason)
	require.Contains(t, v.Reason, "Self-intersection")

	// The shell diagonals cross at (1, 1).
	require.NotNil(t, v.Location)
	loc, ok := v.Location.(*geom.Point)
	require.True(t, ok, "location decoded to %T", v.Location)
	require.InDelta(t, 1.0, loc.X(), 1e-9)
	require.InDelta(t, 1.0, loc.Y(), 1e-9)
}

func TestIsValidDetailFlag(t *testing.T) {
	skipWithoutEngine(t)

	v, err := geos.IsValidDetail(geostest.Square(0, 0, 10, 10), true)
	require.NoError(t, err)
	require.True(t, v.Valid)

	// A proper self-crossing stays invalid under the relaxed ring rule.
	v, err = geos.IsValidDetail(geostest.Bowtie(), true)
	require.NoError(t, err)
	require.False(t, v.Valid)
}

func TestMakeValid(t *testing.T) {
	skipWithoutEngine(t)

	repaired, err := geos.MakeValid(geostest.Bowtie())
	require.NoError(t, err)

	valid, err := geos.IsValid(repaired)
	require.NoError(t, err)
	require.True(t, valid)

	// Linework repair keeps both triangle lobes.
	area, err := geos.Area(repaired)
	require.NoError(t, err)
	require.Equal(t, 2.0, area)
}

func TestMakeValidWithParams(t *testing.T) {
	skipWithoutEngine(t)

	repaired, err := geos.MakeValidWithParams(geostest.Bowtie(), geos.MakeValidParams{
		Method: geos.MakeValidStructure,
	})
	require.NoError(t, err)

	valid, err := geos.IsValid(repaired)
	require.NoError(t, err)
	require.True(t, valid)
}

func TestMakeValidWithParamsRejectsUnknownMethod(t *testing.T) {
	_, err := geos.MakeValidWithParams(geostest.Bowtie(), geos.MakeValidParams{Method: geos.MakeValidMethod(42)})
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), "method"), "got %v", err)
}

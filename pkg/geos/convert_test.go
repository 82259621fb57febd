package geos

import (
	"testing"

	"github.com/stretchr/testify/require"
	geom "github.com/twpayne/go-geom"
)

func skipWithoutEngine(t *testing.T) {
	t.Helper()
	if !Available() {
		t.Skip("native engine not built in")
	}
}

func TestLayoutHasZ(t *testing.T) {
	cases := []struct {
		layout  geom.Layout
		hasZ    bool
		wantErr bool
	}{
		{geom.NoLayout, false, false},
		{geom.XY, false, false},
		{geom.XYZ, true, false},
		{geom.XYM, false, true},
		{geom.XYZM, false, true},
	}
	for _, tc := range cases {
		hasZ, err := layoutHasZ(tc.layout)
		if tc.wantErr {
			require.ErrorIs(t, err, ErrUnsupportedLayout, "layout %v", tc.layout)
			continue
		}
		require.NoError(t, err, "layout %v", tc.layout)
		require.Equal(t, tc.hasZ, hasZ, "layout %v", tc.layout)
	}
}

func roundTrip(t *testing.T, g geom.T) geom.T {
	t.Helper()
	ctx, err := newContext()
	require.NoError(t, err)
	defer ctx.close()

	ng, err := toNative(ctx, g)
	require.NoError(t, err)
	defer ng.destroy()

	out, err := fromNative(ctx, ng.geom)
	require.NoError(t, err)
	return out
}

func TestRoundTrip(t *testing.T) {
	skipWithoutEngine(t)

	square := geom.NewPolygonFlat(geom.XY, []float64{0, 0, 10, 0, 10, 10, 0, 10, 0, 0}, []int{10})
	donut := geom.NewPolygonFlat(geom.XY,
		[]float64{0, 0, 10, 0, 10, 10, 0, 10, 0, 0, 2, 2, 2, 8, 8, 8, 8, 2, 2, 2},
		[]int{10, 20})

	cases := []struct {
		name string
		g    geom.T
	}{
		{"point", geom.NewPointFlat(geom.XY, []float64{3, 4})},
		{"point z", geom.NewPointFlat(geom.XYZ, []float64{3, 4, 5})},
		{"linestring", geom.NewLineStringFlat(geom.XY, []float64{0, 0, 5, 0, 5, 5})},
		{"linestring z", geom.NewLineStringFlat(geom.XYZ, []float64{0, 0, 1, 5, 0, 2, 5, 5, 3})},
		{"polygon", square},
		{"polygon with hole", donut},
		{"multipoint", geom.NewMultiPointFlat(geom.XY, []float64{0, 0, 1, 1, 2, 2})},
		{"multilinestring", geom.NewMultiLineStringFlat(geom.XY,
			[]float64{0, 0, 1, 0, 10, 10, 11, 10, 12, 12}, []int{4, 10})},
		{"multipolygon", geom.NewMultiPolygonFlat(geom.XY,
			[]float64{0, 0, 1, 0, 1, 1, 0, 1, 0, 0, 5, 5, 6, 5, 6, 6, 5, 6, 5, 5},
			[][]int{{10}, {20}})},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := roundTrip(t, tc.g)
			require.Equal(t, tc.g, got)
		})
	}
}

func TestRoundTripCollection(t *testing.T) {
	skipWithoutEngine(t)

	inner := geom.NewGeometryCollection()
	require.NoError(t, inner.Push(geom.NewPointFlat(geom.XY, []float64{7, 8})))

	gc := geom.NewGeometryCollection()
	require.NoError(t, gc.Push(
		geom.NewPointFlat(geom.XY, []float64{1, 2}),
		geom.NewLineStringFlat(geom.XY, []float64{0, 0, 3, 3}),
		geom.NewPolygonFlat(geom.XY, []float64{0, 0, 4, 0, 4, 4, 0, 4, 0, 0}, []int{10}),
		inner,
	))

	got := roundTrip(t, gc)
	gotGC, ok := got.(*geom.GeometryCollection)
	require.True(t, ok, "decoded to %T", got)
	require.Equal(t, gc.NumGeoms(), gotGC.NumGeoms())
	for i := 0; i < gc.NumGeoms(); i++ {
		require.Equal(t, gc.Geom(i), gotGC.Geom(i), "child %d", i)
	}
}

func TestRoundTripEmptyCollection(t *testing.T) {
	skipWithoutEngine(t)

	got := roundTrip(t, geom.NewGeometryCollection())
	gotGC, ok := got.(*geom.GeometryCollection)
	require.True(t, ok, "decoded to %T", got)
	require.Equal(t, 0, gotGC.NumGeoms())
}

func TestToNativeNilGeometry(t *testing.T) {
	skipWithoutEngine(t)

	ctx, err := newContext()
	require.NoError(t, err)
	defer ctx.close()

	_, err = toNative(ctx, nil)
	require.ErrorIs(t, err, ErrNilGeometry)
}

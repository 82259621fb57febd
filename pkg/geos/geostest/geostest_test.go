package geostest_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	geom "github.com/twpayne/go-geom"

	"github.com/spatialkit/geos-go/pkg/geos/geostest"
)

// shoelace returns twice the signed area of a closed ring, positive for
// counter-clockwise winding.
func shoelace(flat []float64) float64 {
	var sum float64
	for i := 0; i+3 < len(flat); i += 2 {
		sum += flat[i]*flat[i+3] - flat[i+2]*flat[i+1]
	}
	return sum
}

func requireClosed(t *testing.T, flat []float64) {
	t.Helper()
	n := len(flat)
	require.GreaterOrEqual(t, n, 8)
	require.Equal(t, flat[0], flat[n-2])
	require.Equal(t, flat[1], flat[n-1])
}

func TestSquare(t *testing.T) {
	sq := geostest.Square(2, 3, 12, 23)

	require.Equal(t, geom.XY, sq.Layout())
	require.Equal(t, 1, sq.NumLinearRings())

	flat := sq.FlatCoords()
	requireClosed(t, flat)
	require.Len(t, flat, 10)

	// Counter-clockwise shell with the expected area.
	require.Equal(t, 2*(10.0*20.0), shoelace(flat))
}

func TestDonut(t *testing.T) {
	d := geostest.Donut(0, 0, 10, 10, 2)

	require.Equal(t, 2, d.NumLinearRings())
	shell := d.LinearRing(0).FlatCoords()
	hole := d.LinearRing(1).FlatCoords()
	requireClosed(t, shell)
	requireClosed(t, hole)

	// Shell counter-clockwise, hole clockwise.
	require.Positive(t, shoelace(shell))
	require.Negative(t, shoelace(hole))

	// The hole sits strictly inside the shell by the inset on every side.
	require.Equal(t, []float64{2, 2, 2, 8, 8, 8, 8, 2, 2, 2}, hole)
}

func TestBowtie(t *testing.T) {
	b := geostest.Bowtie()

	require.Equal(t, 1, b.NumLinearRings())
	flat := b.FlatCoords()
	requireClosed(t, flat)

	// Edges (0,0)-(2,2) and (2,0)-(0,2) cross at (1,1), so the ring is
	// self-intersecting on purpose.
	require.Equal(t, []float64{0, 0, 2, 2, 2, 0, 0, 2, 0, 0}, flat)
}

func TestLine(t *testing.T) {
	l := geostest.Line(0, 0, 3, 4, 6, 0)
	require.Equal(t, []float64{0, 0, 3, 4, 6, 0}, l.FlatCoords())

	require.Panics(t, func() { geostest.Line(0, 0, 1) })
}

func TestPoint(t *testing.T) {
	p := geostest.Point(3, 4)
	require.Equal(t, 3.0, p.X())
	require.Equal(t, 4.0, p.Y())
}

func TestRandomPointsDeterministic(t *testing.T) {
	a := geostest.RandomPoints(7, 50, 0, 0, 100, 100)
	b := geostest.RandomPoints(7, 50, 0, 0, 100, 100)
	require.Equal(t, a, b)

	c := geostest.RandomPoints(8, 50, 0, 0, 100, 100)
	require.NotEqual(t, a, c)
}

func TestRandomPointsInBounds(t *testing.T) {
	pts := geostest.RandomPoints(3, 200, -10, 5, 10, 6)
	require.Len(t, pts, 200)
	for _, p := range pts {
		require.GreaterOrEqual(t, p.X(), -10.0)
		require.Less(t, p.X(), 10.0)
		require.GreaterOrEqual(t, p.Y(), 5.0)
		require.Less(t, p.Y(), 6.0)
	}
}

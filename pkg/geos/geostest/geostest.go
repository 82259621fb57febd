package geostest

import (
	"math/rand"

	geom "github.com/twpayne/go-geom"
)

// Square returns the axis-aligned rectangle [x0,x1]x[y0,y1] as a polygon
// with a counter-clockwise closed shell.
func Square(x0, y0, x1, y1 float64) *geom.Polygon {
	flat := []float64{
		x0, y0,
		x1, y0,
		x1, y1,
		x0, y1,
		x0, y0,
	}
	return geom.NewPolygonFlat(geom.XY, flat, []int{len(flat)})
}

// Bowtie returns the classic invalid polygon whose shell crosses itself at
// (1, 1): two triangles joined at a point, written as one quad ring.
func Bowtie() *geom.Polygon {
	flat := []float64{
		0, 0,
		2, 2,
		2, 0,
		0, 2,
		0, 0,
	}
	return geom.NewPolygonFlat(geom.XY, flat, []int{len(flat)})
}

// Donut returns the square [x0,x1]x[y0,y1] with a centered square hole of
// the given inset.
func Donut(x0, y0, x1, y1, inset float64) *geom.Polygon {
	shell := []float64{
		x0, y0,
		x1, y0,
		x1, y1,
		x0, y1,
		x0, y0,
	}
	hx0, hy0 := x0+inset, y0+inset
	hx1, hy1 := x1-inset, y1-inset
	hole := []float64{
		hx0, hy0,
		hx0, hy1,
		hx1, hy1,
		hx1, hy0,
		hx0, hy0,
	}
	flat := append(shell, hole...)
	return geom.NewPolygonFlat(geom.XY, flat, []int{len(shell), len(flat)})
}

// Line returns a linestring through the given coordinate pairs.
func Line(xys ...float64) *geom.LineString {
	if len(xys)%2 != 0 {
		panic("geostest: Line needs an even number of ordinates")
	}
	return geom.NewLineStringFlat(geom.XY, xys)
}

// Point returns a single point.
func Point(x, y float64) *geom.Point {
	return geom.NewPointFlat(geom.XY, []float64{x, y})
}

// RandomPoints returns n points drawn uniformly from [x0,x1]x[y0,y1] using
// a deterministic generator, so a fixture is reproducible from its seed.
func RandomPoints(seed int64, n int, x0, y0, x1, y1 float64) []*geom.Point {
	rng := rand.New(rand.NewSource(seed))
	pts := make([]*geom.Point, n)
	for i := range pts {
		x := x0 + rng.Float64()*(x1-x0)
		y := y0 + rng.Float64()*(y1-y0)
		pts[i] = Point(x, y)
	}
	return pts
}

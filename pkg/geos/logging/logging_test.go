package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	geom "github.com/twpayne/go-geom"

	"github.com/spatialkit/geos-go/pkg/geos/geostest"
	"github.com/spatialkit/geos-go/pkg/geos/logging"
)

func TestSummary(t *testing.T) {
	cases := []struct {
		g    geom.T
		want string
	}{
		{nil, "nil"},
		{geostest.Point(1, 2), "Point"},
		{geom.NewPointEmpty(geom.XY), "Point empty"},
		{geostest.Line(0, 0, 1, 1, 2, 2), "LineString n=3"},
		{geostest.Square(0, 0, 1, 1), "Polygon rings=1"},
		{geostest.Donut(0, 0, 10, 10, 2), "Polygon rings=2"},
		{geom.NewMultiPointFlat(geom.XY, []float64{1, 1, 2, 2}), "MultiPoint n=2"},
		{geom.NewGeometryCollection(), "GeometryCollection n=0"},
	}
	for _, tc := range cases {
		attr := logging.Summary("geom", tc.g)
		require.Equal(t, tc.want, attr.Value.String())
	}
}

func TestSummaryRendersWithoutCoordinates(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(slog.New(slog.NewTextHandler(&buf, nil)))

	log.Info(context.Background(), "buffered geometry",
		logging.Summary("input", geostest.Donut(0, 0, 100, 100, 30)))

	out := buf.String()
	require.Contains(t, out, "input=\"Polygon rings=2\"")
	require.NotContains(t, out, "100")
}

func TestWithCarriesAttributes(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(slog.New(slog.NewTextHandler(&buf, nil)))

	log.With("op", "union").Warn(context.Background(), "slow call")

	out := buf.String()
	require.Contains(t, out, "op=union")
	require.Contains(t, out, "slow call")
}

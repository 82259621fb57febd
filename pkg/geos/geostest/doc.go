// Package geostest provides geometry fixtures for tests and examples.
//
// The builders construct plain go-geom values and never touch the native
// engine, so they are usable from tests that run without it. Fixtures are
// deterministic: RandomPoints always produces the same cloud for the same
// seed.
//
// # Usage
//
//	import (
//	    "github.com/spatialkit/geos-go/pkg/geos"
//	    "github.com/spatialkit/geos-go/pkg/geos/geostest"
//	)
//
//	a := geostest.Square(0, 0, 10, 10)
//	b := geostest.Square(5, 5, 15, 15)
//	hit, err := geos.Intersects(a, b)
//
// Bowtie returns a deliberately invalid polygon for exercising validity
// checking and repair.
package geostest

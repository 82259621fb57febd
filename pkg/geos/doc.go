// Package geos exposes typed planar geometry operations backed by the GEOS
// engine. Inputs and outputs are github.com/twpayne/go-geom values; every
// operation converts them to native engine handles, runs a single engine
// call under a private execution context, and releases every handle before
// returning. No native types or lifetimes leak through the API, with the one
// exception of PreparedGeometry, which holds its handles until Close.
//
// The package compiles without cgo so that downstream projects can depend on
// it unconditionally; in that configuration every operation fails with
// ErrNotBuilt. The real engine is linked on cgo builds for non-Windows
// platforms and requires GEOS 3.11 or newer.
package geos

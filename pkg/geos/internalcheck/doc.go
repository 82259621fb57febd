// Package internalcheck provides internal validation and testing utilities.
//
// This package contains policy checks enforced over the geos-go source
// tree: cgo confinement and handle-release discipline. It is not intended
// for external use and the API may change without notice.
//
// # Internal Use Only
//
// This package is part of the internal implementation and should not be
// imported by applications using the geos library. Use the public API
// provided by pkg/geos and its subpackages instead.
package internalcheck

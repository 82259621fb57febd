//go:build !windows

// Package backend hosts the thin cgo layer that links the Go API to the
// native GEOS library (geos_c.h, GEOS 3.11 or newer). The real
// implementation lives behind build tags so that the rest of the repository
// can compile without cgo.
//
// Everything here is deliberately dumb plumbing: functions mirror single
// engine entry points, keep the engine's raw failure sentinels, and leave
// classification and resource bookkeeping to the geos package above.
package backend

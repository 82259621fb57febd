//go:build cgo && !windows

package backend

/*
#include <stdlib.h>
#include <geos_c.h>
*/
import "C"

import "unsafe"

// MakeValidParams is a type alias for *C.GEOSMakeValidParams.
type MakeValidParams = *C.GEOSMakeValidParams

// IsValidReason describes why g is invalid ("Valid Geometry" when it is
// valid). Returns ("", false) on engine failure.
func IsValidReason(ctx Context, g Geom) (string, bool) {
	cs := C.GEOSisValidReason_r(ctx, g)
	if cs == nil {
		return "", false
	}
	reason := C.GoString(cs)
	C.GEOSFree_r(ctx, unsafe.Pointer(cs))
	return reason, true
}

// IsValidDetail checks validity and reports the failure, if any.
//
// Returns:
//   - int: 1 valid, 0 invalid, anything else engine failure
//   - string: the reason text, "" when the engine supplied none
//   - Geom: the location of the failure, nil when the engine supplied none;
//     ownership transfers to the caller, who must destroy it on every path
//     where it is non-nil, including the valid and failure outcomes
func IsValidDetail(ctx Context, g Geom, flags int) (int, string, Geom) {
	var creason *C.char
	var location Geom
	rc := C.GEOSisValidDetail_r(ctx, g, C.int(flags), &creason, &location)
	reason := ""
	if creason != nil {
		reason = C.GoString(creason)
		C.GEOSFree_r(ctx, unsafe.Pointer(creason))
	}
	return int(rc), reason, location
}

// MakeValid repairs g with the default (linework) strategy. Returns nil on
// engine failure.
func MakeValid(ctx Context, g Geom) Geom {
	return C.GEOSMakeValid_r(ctx, g)
}

// MakeValidParamsCreate allocates a repair parameter object configured with
// the given method (MakeValidLinework or MakeValidStructure) and collapse
// handling. Returns nil on engine failure; otherwise the caller must release
// it with MakeValidParamsDestroy.
func MakeValidParamsCreate(ctx Context, method int, keepCollapsed bool) MakeValidParams {
	p := C.GEOSMakeValidParams_create_r(ctx)
	if p == nil {
		return nil
	}
	if C.GEOSMakeValidParams_setMethod_r(ctx, p, C.enum_GEOSMakeValidMethods(method)) == 0 {
		C.GEOSMakeValidParams_destroy_r(ctx, p)
		return nil
	}
	if C.GEOSMakeValidParams_setKeepCollapsed_r(ctx, p, cBool(keepCollapsed)) == 0 {
		C.GEOSMakeValidParams_destroy_r(ctx, p)
		return nil
	}
	return p
}

// MakeValidParamsDestroy releases a repair parameter object. Safe to call
// with nil.
func MakeValidParamsDestroy(ctx Context, p MakeValidParams) {
	if p != nil {
		C.GEOSMakeValidParams_destroy_r(ctx, p)
	}
}

// MakeValidWithParams repairs g under the given parameters. Returns nil on
// engine failure.
func MakeValidWithParams(ctx Context, g Geom, p MakeValidParams) Geom {
	return C.GEOSMakeValidWithParams_r(ctx, g, p)
}

//go:build cgo && !windows

package backend

/*
#cgo LDFLAGS: -lgeos_c

#include <stdlib.h>
#include <geos_c.h>

void geosgo_error_handler(char *message, void *userdata);
void geosgo_notice_handler(char *message, void *userdata);

// geosgo_init creates a reentrant engine context and installs the Go message
// handlers with the given registry cookie as userdata. Returns NULL when the
// engine cannot allocate a context.
static GEOSContextHandle_t geosgo_init(void *userdata) {
	GEOSContextHandle_t handle = GEOS_init_r();
	if (handle == NULL) {
		return NULL;
	}
	GEOSContext_setErrorMessageHandler_r(handle, (GEOSMessageHandler_r)geosgo_error_handler, userdata);
	GEOSContext_setNoticeMessageHandler_r(handle, (GEOSMessageHandler_r)geosgo_notice_handler, userdata);
	return handle;
}
*/
import "C"

import "unsafe"

// Context is a type alias for C.GEOSContextHandle_t, the engine's reentrant
// session handle. Every other entry point in this package takes the context
// the target objects were created under.
type Context = C.GEOSContextHandle_t

// NewContext initializes an engine context with s installed as the
// destination for error and notice messages.
//
// Returns:
//   - Context: the engine context handle (opaque)
//   - uintptr: the sink registry handle (needed for cleanup)
//   - error: ErrInit when the engine refuses to initialize
//
// The caller MUST call FreeContext when done, on every path, or the native
// context and the registry entry both leak.
func NewContext(s messageSink) (Context, uintptr, error) {
	h, cookie := put(s)
	//nolint:govet // Intentional uintptr to unsafe.Pointer conversion for CGO
	ctx := C.geosgo_init(unsafe.Pointer(cookie))
	if ctx == nil {
		del(h)
		return nil, 0, ErrInit
	}
	return ctx, uintptr(h), nil
}

// FreeContext tears down an engine context and releases the registry entry.
// Handlers registered on the context die with it. Safe to call with nil/zero
// values.
func FreeContext(ctx Context, h uintptr) {
	if ctx != nil {
		C.GEOS_finish_r(ctx)
	}
	if h != 0 {
		del(handle(h))
	}
}

// Version returns the engine version string, e.g. "3.12.1-CAPI-1.18.1".
// The underlying C string is static and must not be freed.
func Version() string {
	return C.GoString(C.GEOSversion())
}

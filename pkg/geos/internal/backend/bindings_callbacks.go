//go:build cgo && !windows

package backend

/*
#include <stdlib.h>
#include <geos_c.h>
*/
import "C"

import (
	"sync"
	"unsafe"
)

// messageSink receives the text the engine emits through the per-context
// error and notice message handlers. The engine formats each message before
// invoking the handler, so implementations get plain strings. Calls arrive on
// the OS thread running the native operation, never concurrently for a single
// context.
type messageSink interface {
	HandleError(msg string)
	HandleNotice(msg string)
}

// handle is an opaque reference to a registered Go object that can be passed to C code.
type handle uintptr

var (
	mu   sync.Mutex
	next handle = 1
	reg         = map[handle]any{}
)

// put registers a Go value and returns a handle that can be passed to C code.
// The handle must be freed with del() when no longer needed.
//
// IMPORTANT: The uintptr form is converted to unsafe.Pointer only inside a
// single expression passed to a C function, which is explicitly allowed by
// CGO. See https://pkg.go.dev/cmd/cgo#hdr-Passing_pointers
func put(v any) (handle, uintptr) {
	mu.Lock()
	defer mu.Unlock()
	h := next
	next++
	reg[h] = v
	return h, uintptr(h)
}

// get retrieves a registered Go value from its handle pointer.
// The ptr is a void* from C that contains a handle value cast as a pointer.
func get(ptr unsafe.Pointer) (any, bool) {
	if ptr == nil {
		return nil, false
	}
	h := handle(uintptr(ptr))
	mu.Lock()
	v, ok := reg[h]
	mu.Unlock()
	return v, ok
}

// del removes a registered Go value from the registry.
func del(h handle) {
	mu.Lock()
	delete(reg, h)
	mu.Unlock()
}

// CGO export callbacks for the engine to call back into Go. The engine hands
// back the userdata pointer installed at context creation; it is a registry
// cookie, never a real Go pointer.

//export geosgo_error_handler
func geosgo_error_handler(message *C.char, userdata unsafe.Pointer) {
	v, ok := get(userdata)
	if !ok {
		return
	}
	s, ok := v.(messageSink)
	if !ok {
		return
	}
	s.HandleError(C.GoString(message))
}

//export geosgo_notice_handler
func geosgo_notice_handler(message *C.char, userdata unsafe.Pointer) {
	v, ok := get(userdata)
	if !ok {
		return
	}
	s, ok := v.(messageSink)
	if !ok {
		return
	}
	s.HandleNotice(C.GoString(message))
}

//go:build cgo && !windows

package backend

/*
#include <stdlib.h>
#include <geos_c.h>
*/
import "C"

import "unsafe"

// Reader and writer objects are engine resources bound to the context that
// created them and must be destroyed under it, like any other handle.

// WKTReader is a type alias for *C.GEOSWKTReader.
type WKTReader = *C.GEOSWKTReader

// WKTWriter is a type alias for *C.GEOSWKTWriter.
type WKTWriter = *C.GEOSWKTWriter

// WKBReader is a type alias for *C.GEOSWKBReader.
type WKBReader = *C.GEOSWKBReader

// WKBWriter is a type alias for *C.GEOSWKBWriter.
type WKBWriter = *C.GEOSWKBWriter

// =====================
// WKT
// =====================

// WKTReaderCreate allocates a WKT parser, or nil on engine failure.
func WKTReaderCreate(ctx Context) WKTReader {
	return C.GEOSWKTReader_create_r(ctx)
}

// WKTReaderDestroy releases a WKT parser. Safe to call with nil.
func WKTReaderDestroy(ctx Context, r WKTReader) {
	if r != nil {
		C.GEOSWKTReader_destroy_r(ctx, r)
	}
}

// WKTReaderRead parses wkt into a caller-owned geometry, or nil on parse or
// engine failure.
func WKTReaderRead(ctx Context, r WKTReader, wkt string) Geom {
	cs := C.CString(wkt)
	defer C.free(unsafe.Pointer(cs))
	return C.GEOSWKTReader_read_r(ctx, r, cs)
}

// WKTWriterCreate allocates a WKT serializer with output trimming enabled,
// or nil on engine failure.
func WKTWriterCreate(ctx Context) WKTWriter {
	w := C.GEOSWKTWriter_create_r(ctx)
	if w == nil {
		return nil
	}
	C.GEOSWKTWriter_setTrim_r(ctx, w, 1)
	return w
}

// WKTWriterDestroy releases a WKT serializer. Safe to call with nil.
func WKTWriterDestroy(ctx Context, w WKTWriter) {
	if w != nil {
		C.GEOSWKTWriter_destroy_r(ctx, w)
	}
}

// WKTWriterWrite serializes g to WKT. Returns ("", false) on engine failure.
func WKTWriterWrite(ctx Context, w WKTWriter, g Geom) (string, bool) {
	cs := C.GEOSWKTWriter_write_r(ctx, w, g)
	if cs == nil {
		return "", false
	}
	wkt := C.GoString(cs)
	C.GEOSFree_r(ctx, unsafe.Pointer(cs))
	return wkt, true
}

// =====================
// WKB
// =====================

// WKBReaderCreate allocates a WKB parser, or nil on engine failure.
func WKBReaderCreate(ctx Context) WKBReader {
	return C.GEOSWKBReader_create_r(ctx)
}

// WKBReaderDestroy releases a WKB parser. Safe to call with nil.
func WKBReaderDestroy(ctx Context, r WKBReader) {
	if r != nil {
		C.GEOSWKBReader_destroy_r(ctx, r)
	}
}

// WKBReaderRead parses wkb into a caller-owned geometry, or nil on parse or
// engine failure.
func WKBReaderRead(ctx Context, r WKBReader, wkb []byte) Geom {
	if len(wkb) == 0 {
		return nil
	}
	return C.GEOSWKBReader_read_r(ctx, r,
		(*C.uchar)(unsafe.Pointer(&wkb[0])), C.size_t(len(wkb)))
}

// WKBWriterCreate allocates a WKB serializer, or nil on engine failure.
func WKBWriterCreate(ctx Context) WKBWriter {
	return C.GEOSWKBWriter_create_r(ctx)
}

// WKBWriterDestroy releases a WKB serializer. Safe to call with nil.
func WKBWriterDestroy(ctx Context, w WKBWriter) {
	if w != nil {
		C.GEOSWKBWriter_destroy_r(ctx, w)
	}
}

// WKBWriterWrite serializes g to WKB. Returns (nil, false) on engine failure.
func WKBWriterWrite(ctx Context, w WKBWriter, g Geom) ([]byte, bool) {
	var size C.size_t
	buf := C.GEOSWKBWriter_write_r(ctx, w, g, &size)
	if buf == nil {
		return nil, false
	}
	wkb := C.GoBytes(unsafe.Pointer(buf), C.int(size))
	C.GEOSFree_r(ctx, unsafe.Pointer(buf))
	return wkb, true
}

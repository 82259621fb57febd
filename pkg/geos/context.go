package geos

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/spatialkit/geos-go/pkg/geos/logging"

	"github.com/spatialkit/geos-go/pkg/geos/internal/backend"
)

// Live-handle accounting. Every execContext and every owned nativeGeom passes
// through these counters, so tests can assert that an operation released
// exactly what it acquired.
var (
	liveContexts atomic.Int64
	liveGeoms    atomic.Int64
)

// execContext owns one engine session for the duration of one public
// operation: the native context handle, the registry entry that routes the
// engine's message callbacks back to it, and the error text captured so far.
// It is confined to the goroutine that created it and is not internally
// synchronized.
type execContext struct {
	handle backend.Context
	hptr   uintptr
	errlog []string
}

// newContext initializes an engine session with this context installed as
// its message sink. The caller must close the context on every path.
func newContext() (*execContext, error) {
	c := &execContext{}
	h, hptr, err := backend.NewContext(c)
	if err != nil {
		return nil, remapBackendErr(err)
	}
	c.handle = h
	c.hptr = hptr
	liveContexts.Add(1)
	return c, nil
}

// HandleError implements the backend message sink. The engine calls it on
// the thread running the native operation, before that operation returns.
func (c *execContext) HandleError(msg string) {
	c.errlog = append(c.errlog, msg)
}

// HandleNotice implements the backend message sink. Notices carry no failure
// signal; they are mirrored to the package debug logger when one is set.
func (c *execContext) HandleNotice(msg string) {
	logNotice(msg)
}

// close tears down the engine session. Idempotent.
func (c *execContext) close() {
	if c.handle == nil && c.hptr == 0 {
		return
	}
	backend.FreeContext(c.handle, c.hptr)
	c.handle = nil
	c.hptr = 0
	liveContexts.Add(-1)
}

// err builds the engine-failure error for this context from a snapshot of
// the captured log. Call it only after a call under this context signaled
// failure.
func (c *execContext) err() error {
	msgs := make([]string, len(c.errlog))
	copy(msgs, c.errlog)
	return &Error{Messages: msgs}
}

var (
	debugMu     sync.RWMutex
	debugLogger logging.Logger
)

// SetDebugLogger routes engine notice messages to l. Notices are purely
// observational; a nil logger (the default) discards them. Safe for
// concurrent use.
func SetDebugLogger(l logging.Logger) {
	debugMu.Lock()
	debugLogger = l
	debugMu.Unlock()
}

func logNotice(msg string) {
	debugMu.RLock()
	l := debugLogger
	debugMu.RUnlock()
	if l != nil {
		l.Debug(context.Background(), "engine notice", "message", msg)
	}
}

// Package notify implements the single-slot notification dispatcher that
// connects non-UI code (most importantly the HTTP adapter) to whichever UI
// toast surface is currently mounted.
//
// At most one handler is active at a time. Register replaces any previous
// handler; mounting a new UI root must register before dispatches can reach
// the user. Notify with no handler registered logs a warning and drops the
// message; there is no queueing or buffering.
//
// The dispatcher is an explicit dependency: it is constructed once in the
// application wiring and injected into the adapter and the TUI, so tests can
// use an isolated instance per case.
package notify

import (
	"sync"

	"github.com/apolonotes/apolo-console/internal/logger"
)

// Severity classifies a notification for presentation purposes.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

// Handler receives a user-visible message with its severity.
type Handler func(message string, severity Severity)

// Dispatcher routes Notify calls to the currently registered handler.
// Safe for concurrent use: the UI goroutine registers and unregisters while
// request goroutines dispatch.
type Dispatcher struct {
	mu      sync.RWMutex
	handler Handler
	log     *logger.Logger
}

// NewDispatcher returns a dispatcher with no handler registered.
func NewDispatcher(log *logger.Logger) *Dispatcher {
	if log == nil {
		log = logger.Nop()
	}
	return &Dispatcher{log: log}
}

// Register installs handler as the single active handler, replacing any
// previous one.
func (d *Dispatcher) Register(handler Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handler = handler
}

// Unregister clears the active handler. Subsequent Notify calls are dropped
// until a new handler is registered.
func (d *Dispatcher) Unregister() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handler = nil
}

// Notify invokes the registered handler with message and severity. When no
// handler is registered the message is logged at warn level and dropped.
func (d *Dispatcher) Notify(message string, severity Severity) {
	d.mu.RLock()
	handler := d.handler
	d.mu.RUnlock()

	if handler == nil {
		d.log.Warn().
			Str("severity", string(severity)).
			Str("message", message).
			Msg("notification dropped: no handler registered")
		return
	}
	handler(message, severity)
}

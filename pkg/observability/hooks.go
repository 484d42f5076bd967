// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register hooks
// at startup to receive events about edge-list loading, cycle detection and
// HTTP requests served by the API.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetDetectionHooks(&myDetectionHooks{})
//	    observability.SetRequestHooks(&myRequestHooks{})
//	    // ... run application
//	}
//
// Callers emit events around the work they do:
//
//	observability.Detection().OnLoadStart(ctx, source, format)
//	// ... read edges ...
//	observability.Detection().OnLoadComplete(ctx, source, format, len(edges), duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Detection Hooks
// =============================================================================

// DetectionHooks receives events from loading edge lists and checking them.
// source names the input: a file path, "-" for stdin, or a request ID.
type DetectionHooks interface {
	OnLoadStart(ctx context.Context, source, format string)
	OnLoadComplete(ctx context.Context, source, format string, edges int, duration time.Duration, err error)
	OnDetectComplete(ctx context.Context, source string, hasCycle bool, edges int, duration time.Duration)
}

// =============================================================================
// Request Hooks
// =============================================================================

// RequestHooks receives events from the HTTP API.
type RequestHooks interface {
	// OnRequest records a served request after the response was written.
	OnRequest(ctx context.Context, method, path string, status int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopDetectionHooks is a no-op implementation of DetectionHooks.
type NoopDetectionHooks struct{}

func (NoopDetectionHooks) OnLoadStart(context.Context, string, string) {}
func (NoopDetectionHooks) OnLoadComplete(context.Context, string, string, int, time.Duration, error) {
}
func (NoopDetectionHooks) OnDetectComplete(context.Context, string, bool, int, time.Duration) {}

// NoopRequestHooks is a no-op implementation of RequestHooks.
type NoopRequestHooks struct{}

func (NoopRequestHooks) OnRequest(context.Context, string, string, int, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	detectionHooks DetectionHooks = NoopDetectionHooks{}
	requestHooks   RequestHooks   = NoopRequestHooks{}
	hooksMu        sync.RWMutex
)

// SetDetectionHooks registers custom detection hooks. A nil h is ignored.
func SetDetectionHooks(h DetectionHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		detectionHooks = h
	}
}

// SetRequestHooks registers custom request hooks. A nil h is ignored.
func SetRequestHooks(h RequestHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		requestHooks = h
	}
}

// Detection returns the registered detection hooks.
func Detection() DetectionHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return detectionHooks
}

// Request returns the registered request hooks.
func Request() RequestHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return requestHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	detectionHooks = NoopDetectionHooks{}
	requestHooks = NoopRequestHooks{}
}

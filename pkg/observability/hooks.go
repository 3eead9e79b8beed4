// Package observability provides hooks for timing and tracing quaxtools runs.
//
// Libraries emit events through the registered hooks; main (or the CLI layer)
// decides where they go. No backend is imported here.
//
// # Usage
//
// Register hooks at application startup:
//
//	observability.SetHTTPHooks(&myHTTPHooks{})
//	observability.SetIconHooks(&myIconHooks{})
//
// Libraries call hooks to emit events:
//
//	observability.Icons().OnVariantStart(ctx, "primary", 2000)
//	// ... render and write ...
//	observability.Icons().OnVariantComplete(ctx, "primary", path, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Icon Hooks
// =============================================================================

// IconHooks receives events from the icon generator.
type IconHooks interface {
	// OnVariantStart records the start of one output variant.
	OnVariantStart(ctx context.Context, variant string, size int)

	// OnVariantComplete records a written (or failed) variant.
	OnVariantComplete(ctx context.Context, variant, path string, duration time.Duration, err error)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from HTTP client operations.
type HTTPHooks interface {
	// OnRequest records an outgoing HTTP request.
	OnRequest(ctx context.Context, method, host, path string)

	// OnResponse records an HTTP response.
	OnResponse(ctx context.Context, method, host, path string, statusCode int, duration time.Duration)

	// OnError records an HTTP error (network failure, timeout).
	OnError(ctx context.Context, method, host, path string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopIconHooks is a no-op implementation of IconHooks.
type NoopIconHooks struct{}

func (NoopIconHooks) OnVariantStart(context.Context, string, int) {}
func (NoopIconHooks) OnVariantComplete(context.Context, string, string, time.Duration, error) {
}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, string, int, time.Duration) {}
func (NoopHTTPHooks) OnError(context.Context, string, string, string, error)                 {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	iconHooks IconHooks = NoopIconHooks{}
	httpHooks HTTPHooks = NoopHTTPHooks{}
	hooksMu   sync.RWMutex
)

// SetIconHooks registers custom icon hooks.
// This should be called once at application startup before generating icons.
func SetIconHooks(h IconHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		iconHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
// This should be called once at application startup before any HTTP operations.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Icons returns the registered icon hooks.
func Icons() IconHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return iconHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	iconHooks = NoopIconHooks{}
	httpHooks = NoopHTTPHooks{}
}

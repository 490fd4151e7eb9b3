// Package delivery defines the contract every transport entrypoint satisfies.
package delivery

import "context"

// Delivery represents a long-running transport (HTTP server, worker loop).
type Delivery interface {
	// Serve blocks until the transport stops or the context is cancelled.
	Serve(ctx context.Context) error
}

// Package delivery defines the contract every transport adapter satisfies.
package delivery

import "context"

// Delivery is a serving surface (HTTP, worker, ...) started by the
// application entrypoint.
type Delivery interface {
	// Serve blocks until the server stops or fails.
	Serve(ctx context.Context) error
}

// Package delivery defines the contract every transport front-end fulfils.
package delivery

import "context"

// Delivery is a long-running transport server (HTTP, worker, ...) started
// by the application entry point and stopped through the fx lifecycle.
type Delivery interface {
	// Serve blocks until the server stops or fails.
	Serve(ctx context.Context) error
}

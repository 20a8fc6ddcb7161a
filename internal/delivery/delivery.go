// Package delivery defines the contract every transport entrypoint satisfies.
package delivery

import "context"

// Delivery is a long-running transport (HTTP today) started by the app runner.
type Delivery interface {
	// Serve blocks until the transport stops or fails.
	Serve(ctx context.Context) error
}

// Package delivery defines the contract every transport entrypoint fulfills.
package delivery

import "context"

// Delivery is a serving surface (HTTP today) started by the fx graph.
type Delivery interface {
	// Serve blocks until the listener stops.
	Serve(ctx context.Context) error
}

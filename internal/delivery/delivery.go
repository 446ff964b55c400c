// Package delivery defines the contract every inbound transport must satisfy.
package delivery

import "context"

// Delivery is a long-running inbound surface (HTTP today). Serve blocks
// until the server stops; shutdown is driven by fx lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}

// Package delivery defines the contract every transport surface implements.
package delivery

import "context"

// Delivery is a long-running transport surface (HTTP server, worker, ...).
type Delivery interface {
	Serve(ctx context.Context) error
}

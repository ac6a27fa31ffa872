// Package delivery defines the long-running entry points (HTTP server, background workers)
// started by the application container.
package delivery

import "context"

// Delivery is a long-running component started once the container is up.
// Serve blocks until the component stops and returns nil on a graceful stop.
type Delivery interface {
	Serve(ctx context.Context) error
}

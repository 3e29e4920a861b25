// Package delivery defines the contract every transport entrypoint
// (HTTP API, punch worker) fulfils so cmd mains can start them uniformly.
package delivery

import "context"

// Delivery is a startable transport server.
type Delivery interface {
	// Serve blocks until the server stops or fails.
	Serve(ctx context.Context) error
}

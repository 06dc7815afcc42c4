// Package workers runs the server's background jobs next to the transport
// servers. Each worker blocks until its context is cancelled.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is done and returns nil
// on a normal stop.
type Worker interface {
	Run(ctx context.Context) error
}

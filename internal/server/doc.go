// Package server runs the REST API and the gRPC health endpoint side by side
// and shuts both down gracefully on signal or context cancellation.
package server

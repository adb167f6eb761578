package server

import "context"

// Server defines the lifecycle contract of the running application.
//
// RunServer blocks until ctx is cancelled, a termination signal arrives or a
// component fails. Shutdown stops serving and waits for in-flight requests
// until ctx expires.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown(ctx context.Context) error
}

// Runner is a background job started alongside the HTTP server.
type Runner interface {
	Run(ctx context.Context) error
}

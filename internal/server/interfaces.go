package server

import "context"

// Server runs every enabled transport until a stop signal arrives.
type Server interface {
	// RunServer blocks until shutdown and reports the first transport failure.
	RunServer() error
	// Shutdown stops every transport.
	Shutdown()
}

// transport is one listener managed by server.
type transport interface {
	RunServer() error
	Shutdown(ctx context.Context)
}

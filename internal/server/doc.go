// Package server runs the HTTP API and the optional gRPC health endpoint
// together with the background workers, and stops all of them on
// SIGTERM, SIGINT or SIGQUIT.
package server

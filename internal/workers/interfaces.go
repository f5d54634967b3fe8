// Package workers runs background jobs next to the transport servers.
// Every worker blocks until its context is cancelled.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is done.
type Worker interface {
	Run(ctx context.Context)
}

// Pinger is anything that can tell whether the database answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

// StatusReporter receives the outcome of every health probe.
type StatusReporter interface {
	SetServing(serving bool)
}

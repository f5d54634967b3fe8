package workers

import (
	"context"
	"sync"
)

// Workers runs a set of workers side by side.
type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run starts every worker in its own goroutine and returns once all of them
// have stopped.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Add(1)
		go func(worker Worker) {
			defer wg.Done()
			worker.Run(ctx)
		}(worker)
	}
	wg.Wait()
}

// Len reports how many workers are registered.
func (w *Workers) Len() int {
	return len(w.workers)
}

package worker

import "sync/atomic"

// WorkerPool fans submitted tasks out over a fixed set of workers. Submit is
// safe for concurrent use; the manual scan endpoint and the scheduled scan
// both feed the same pool.
type WorkerPool struct {
	workers []*Worker
	next    atomic.Uint64
	stop    chan struct{}
}

// NewWorkerPool starts numWorkers workers and returns the pool.
func NewWorkerPool(numWorkers int) *WorkerPool {
	pool := &WorkerPool{
		workers: make([]*Worker, numWorkers),
		stop:    make(chan struct{}),
	}

	for i := 0; i < numWorkers; i++ {
		worker := NewWorker()
		worker.Start()
		pool.workers[i] = worker
	}

	return pool
}

// Stop stops all workers in the pool
func (p *WorkerPool) Stop() {
	for _, worker := range p.workers {
		worker.Stop()
	}
	close(p.stop)
}

// Submit hands the task to the next worker round-robin.
func (p *WorkerPool) Submit(task Task) {
	index := p.next.Add(1) - 1
	p.workers[index%uint64(len(p.workers))].Submit(task)
}

package worker

// Task is a unit of work. Reminder sends run as tasks so one slow mail relay
// call never blocks the scan loop.
type Task func()

// Worker drains its own unbuffered task queue on a single goroutine.
type Worker struct {
	taskQueue chan Task
	stop      chan struct{}
}

func NewWorker() *Worker {
	return &Worker{
		taskQueue: make(chan Task),
		stop:      make(chan struct{}),
	}
}

// Start launches the worker goroutine. It runs until Stop is called; tasks
// in flight finish, queued submissions after Stop may be dropped.
func (w *Worker) Start() {
	go func() {
		for {
			select {
			case task := <-w.taskQueue:
				task()
			case <-w.stop:
				return
			}
		}
	}()
}

func (w *Worker) Stop() {
	close(w.stop)
}

// Submit blocks until the worker accepts the task.
func (w *Worker) Submit(task Task) {
	w.taskQueue <- task
}

package parallel

import (
	"runtime"
	"sync"
)

// WorkerPool runs submitted tasks on a fixed set of worker goroutines.
// It is used to rebuild independent nets' routing trees concurrently
// after the sequential delimiting pass.
type WorkerPool struct {
	workers   int
	taskQueue chan func()
	wg        sync.WaitGroup
	once      sync.Once
	mu        sync.RWMutex // protects taskQueue from close during send
	closed    bool
}

// NewWorkerPool creates a pool with the given number of workers. A
// non-positive count selects GOMAXPROCS workers.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	pool := &WorkerPool{
		workers:   workers,
		taskQueue: make(chan func(), workers*2),
	}
	for i := 0; i < workers; i++ {
		pool.wg.Add(1)
		go pool.worker()
	}
	return pool
}

func (wp *WorkerPool) worker() {
	defer wp.wg.Done()
	for task := range wp.taskQueue {
		task()
	}
}

// Submit adds a task to the pool. Returns false if the pool is closed.
func (wp *WorkerPool) Submit(task func()) bool {
	wp.mu.RLock()
	defer wp.mu.RUnlock()

	if wp.closed {
		return false
	}
	wp.taskQueue <- task
	return true
}

// Close shuts the pool down and waits for in-flight tasks to finish.
func (wp *WorkerPool) Close() {
	wp.once.Do(func() {
		wp.mu.Lock()
		wp.closed = true
		close(wp.taskQueue)
		wp.mu.Unlock()
	})
	wp.wg.Wait()
}

// ForEach runs fn(0) .. fn(n-1) across the given number of workers and
// returns when all invocations completed. Each index is handed to
// exactly one worker, so fn may write to index-distinct slots of a
// shared slice without further synchronization.
func ForEach(workers, n int, fn func(i int)) {
	if n == 0 {
		return
	}
	pool := NewWorkerPool(workers)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		i := i
		pool.Submit(func() {
			defer wg.Done()
			fn(i)
		})
	}
	wg.Wait()
	pool.Close()
}

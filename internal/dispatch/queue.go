package dispatch

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
	"time"
)

// Queue is a single-goroutine serial executor. Every asynchronous unit in the
// composition core (debounce expiry, media conversion completion, render
// completion, dictation events) runs on one queue, so tasks never execute in
// parallel; ordering races are the only races possible.
type Queue struct {
	tasks  chan func()
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewQueue() *Queue {
	ctx, cancel := context.WithCancel(context.Background())

	q := &Queue{
		tasks:  make(chan func(), 1024),
		ctx:    ctx,
		cancel: cancel,
	}

	q.wg.Add(1)
	go q.run()

	return q
}

func (q *Queue) run() {
	defer q.wg.Done()

	for {
		select {
		case task := <-q.tasks:
			task()
		case <-q.ctx.Done():
			return
		}
	}
}

// Post enqueues a task for serial execution. Tasks posted after Shutdown are
// dropped.
func (q *Queue) Post(task func()) {
	select {
	case q.tasks <- task:
	case <-q.ctx.Done():
	default:
		log.Printf("dispatch queue full, dropping task")
	}
}

// Timer is a pending delayed task. Stop guarantees the task will not run,
// even if the underlying timer has already fired.
type Timer struct {
	stopped atomic.Bool
	timer   *time.Timer
}

// Stop cancels the pending task. Safe to call more than once.
func (t *Timer) Stop() {
	t.stopped.Store(true)
	t.timer.Stop()
}

// After schedules task on the queue once d has elapsed. The stopped check
// happens on the queue goroutine, so a Stop that races with timer expiry
// still wins.
func (q *Queue) After(d time.Duration, task func()) *Timer {
	t := &Timer{}
	t.timer = time.AfterFunc(d, func() {
		q.Post(func() {
			if t.stopped.Load() {
				return
			}
			task()
		})
	})
	return t
}

// Flush blocks until every task posted before it has executed. Must not be
// called from the queue goroutine itself.
func (q *Queue) Flush() {
	done := make(chan struct{})
	q.Post(func() { close(done) })
	select {
	case <-done:
	case <-q.ctx.Done():
	}
}

// Shutdown stops the worker. Pending tasks may be dropped.
func (q *Queue) Shutdown() {
	q.cancel()
	q.wg.Wait()
}

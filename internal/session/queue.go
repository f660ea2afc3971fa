package session

import (
	"context"
	"log"
	"sync"
)

// QueueSize is the number of pending events a Queue buffers before Post blocks
const QueueSize = 64

// Queue runs session work on a single worker goroutine in the order it was
// posted. Front-ends that receive events on several goroutines post them
// here instead of calling the session directly.
type Queue struct {
	ctx     context.Context
	session *Session

	mu     sync.RWMutex
	jobs   chan func()
	done   chan struct{}
	closed bool
}

// NewQueue starts the worker for s
func NewQueue(ctx context.Context, s *Session) *Queue {
	q := &Queue{
		ctx:     ctx,
		session: s,
		jobs:    make(chan func(), QueueSize),
		done:    make(chan struct{}),
	}
	go q.run()
	return q
}

func (q *Queue) run() {
	defer close(q.done)
	for job := range q.jobs {
		job()
	}
}

// Post appends job to the queue. It reports false once the queue is closed.
func (q *Queue) Post(job func()) bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.closed {
		return false
	}
	q.jobs <- job
	return true
}

// Start queues the initial catalog load
func (q *Queue) Start() {
	q.Post(func() {
		if err := q.session.Start(q.ctx); err != nil {
			log.Printf("Initial load failed: %v", err)
		}
	})
}

// Dispatch queues cmd
func (q *Queue) Dispatch(cmd Command) {
	q.Post(func() {
		if err := q.session.Dispatch(q.ctx, cmd); err != nil {
			log.Printf("Command %s failed: %v", cmd, err)
		}
	})
}

// Activate queues a focus-and-toggle of the bouquet at index
func (q *Queue) Activate(index int) {
	q.Post(func() {
		q.session.Activate(index)
	})
}

// Close stops accepting work and waits until every queued job has run
func (q *Queue) Close() {
	q.mu.Lock()
	if !q.closed {
		q.closed = true
		close(q.jobs)
	}
	q.mu.Unlock()
	<-q.done
}

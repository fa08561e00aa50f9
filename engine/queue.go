package engine

import "sync"

// CommandQueue is an unbounded multi-producer command queue.
//
// Thread-Safety:
//   - Enqueue: mutex append, safe for concurrent producers, never blocks
//   - Dequeue: single consumer (the worker), blocks until work arrives
//
// No backpressure: the queue grows as needed
type CommandQueue struct {
	mu      sync.Mutex
	cond    *sync.Cond
	pending []Command
}

// NewCommandQueue creates an empty command queue
func NewCommandQueue() *CommandQueue {
	q := &CommandQueue{}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// Enqueue appends a command. Producers never block
func (q *CommandQueue) Enqueue(cmd Command) {
	q.mu.Lock()
	q.pending = append(q.pending, cmd)
	q.mu.Unlock()
	q.cond.Signal()
}

// Dequeue blocks until a command is available and returns the oldest one
func (q *CommandQueue) Dequeue() Command {
	q.mu.Lock()
	defer q.mu.Unlock()

	for len(q.pending) == 0 {
		q.cond.Wait()
	}

	cmd := q.pending[0]
	q.pending = q.pending[1:]
	return cmd
}

// Len returns the number of pending commands
func (q *CommandQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// RunWorker drains the queue forever, applying each command to gs in FIFO
// order. It is the queue's only consumer and has no termination condition;
// run it on its own goroutine and let it die with the process
func (q *CommandQueue) RunWorker(gs *GameState) {
	for {
		q.Dequeue().Apply(gs)
	}
}

package conqueue

import (
	"errors"
	"sync"
	"sync/atomic"
)

// ErrNotEmpty is returned by Close when the queue still holds payloads.
var ErrNotEmpty = errors.New("conqueue: queue is not empty")

// ErrClosed is returned by Close when the queue was already closed.
var ErrClosed = errors.New("conqueue: queue is closed")

// node is a single link of the queue. Whichever node currently serves as the
// sentinel carries no logical payload; its payload field is garbage and is
// never read.
//
// next is atomic because it is the one field touched from both sides of the
// queue: an enqueuer stores it (under the tail lock) while a dequeuer may be
// loading it (under the head lock) when the queue holds a single node. The
// field transitions from nil to its final value exactly once, so the loader
// observes either "not linked yet" (empty) or the fully linked node, never
// anything in between.
type node[T any] struct {
	payload T
	next    atomic.Pointer[node[T]]
}

// Queue is a concurrency-safe, unbounded FIFO queue for multiple producers
// and multiple consumers. It uses the classic two-lock design: one mutex
// serializes enqueuers at the tail, a second mutex serializes dequeuers at
// the head, and an enqueue never blocks a dequeue or vice versa.
//
// Enqueues among themselves are FIFO-ordered by tail lock acquisition;
// dequeues remove in that same order, and each value is delivered to exactly
// one dequeuer. The zero value is not ready for use; construct via New.
type Queue[T any] struct {
	headMu sync.Mutex // guards first and reads of first's link
	first  *node[T]   // sentinel; its successors carry the queued payloads

	tailMu sync.Mutex // guards last and writes of last's link
	last   *node[T]   // most recently appended node, reachable from first

	length atomic.Int64
}

// New creates an empty queue.
//
// The queue starts with a single sentinel node referenced by both the head
// and the tail. All exported methods except Close are safe for concurrent
// use.
func New[T any]() *Queue[T] {
	sentinel := &node[T]{}
	return &Queue[T]{
		first: sentinel,
		last:  sentinel,
	}
}

// Enqueue appends v to the tail.
//
// The queue stores v as given and never inspects or mutates it; the caller
// retains ownership of whatever v references until a Dequeue returns it.
// Enqueue acquires only the tail lock, so it contends with other enqueuers
// but never with dequeuers. Complexity: O(1).
func (q *Queue[T]) Enqueue(v T) {
	n := &node[T]{payload: v}
	// Count before publishing so a successful Dequeue always decrements a
	// counter that was already incremented; Len never reads negative.
	q.length.Add(1)
	q.tailMu.Lock()
	q.last.next.Store(n)
	q.last = n
	q.tailMu.Unlock()
}

// Dequeue removes and returns the head value.
//
// The second result is false when the queue is empty. Note that a caller may
// legitimately enqueue a zero value (or a nil reference), which Dequeue
// returns as (zero, true); only the boolean distinguishes "empty" from "got a
// zero payload". Dequeue acquires only the head lock, so it contends with
// other dequeuers but never with enqueuers. Complexity: O(1).
func (q *Queue[T]) Dequeue() (T, bool) {
	var zero T
	q.headMu.Lock()
	candidate := q.first.next.Load()
	if candidate == nil {
		q.headMu.Unlock()
		return zero, false
	}
	v := candidate.payload
	candidate.payload = zero // candidate becomes the sentinel; drop the reference
	q.first = candidate
	q.headMu.Unlock()
	q.length.Add(-1)
	return v, true
}

// Peek returns the head value without removing it.
// The second result is false when the queue is empty. Complexity: O(1).
func (q *Queue[T]) Peek() (T, bool) {
	var zero T
	q.headMu.Lock()
	candidate := q.first.next.Load()
	if candidate == nil {
		q.headMu.Unlock()
		return zero, false
	}
	v := candidate.payload
	q.headMu.Unlock()
	return v, true
}

// Len returns the number of elements currently queued.
//
// Under concurrent use the result is an instantaneous snapshot and may be
// stale by the time it is observed. Complexity: O(1).
func (q *Queue[T]) Len() int {
	return int(q.length.Load())
}

// IsEmpty reports whether the queue is empty.
// Equivalent to Len() == 0.
func (q *Queue[T]) IsEmpty() bool {
	return q.Len() == 0
}

// Close tears the queue down.
//
// The queue must be logically empty: Close returns ErrNotEmpty, leaving the
// queue usable, if any payload has not been dequeued. A second Close returns
// ErrClosed. After a successful Close any further operation panics. Close
// must not be called concurrently with any other method.
func (q *Queue[T]) Close() error {
	if q.first == nil {
		return ErrClosed
	}
	if q.first.next.Load() != nil {
		return ErrNotEmpty
	}
	q.first = nil
	q.last = nil
	return nil
}

package blockingqueue

import (
	"context"
	"errors"
	"sync"

	base "github.com/xyhelper/conqueue"
)

// Queue is a blocking FIFO built on the conqueue two-lock queue. Put wakes
// consumers waiting in Take; Take blocks until an element is available or the
// context is done.
//
// The outer mutex only sequences the wait/wake protocol; the underlying
// queue keeps its own head and tail locks, so Put and TryTake still avoid
// contending with each other inside the core.
//
// All methods are safe for concurrent use by multiple goroutines.
type Queue[T any] struct {
	mu sync.Mutex
	cv *sync.Cond
	q  *base.Queue[T]
}

// New creates a new blocking queue.
func New[T any]() *Queue[T] {
	b := &Queue[T]{q: base.New[T]()}
	b.cv = sync.NewCond(&b.mu)
	return b
}

// Put appends v to the tail and wakes waiters.
func (b *Queue[T]) Put(v T) {
	b.mu.Lock()
	b.q.Enqueue(v)
	b.cv.Broadcast()
	b.mu.Unlock()
}

// PutMany enqueues items in order and broadcasts once.
func (b *Queue[T]) PutMany(items ...T) {
	if len(items) == 0 {
		return
	}
	b.mu.Lock()
	for _, v := range items {
		b.q.Enqueue(v)
	}
	b.cv.Broadcast()
	b.mu.Unlock()
}

// TryTake removes and returns the head value without blocking.
// ok is false if the queue is empty.
func (b *Queue[T]) TryTake() (v T, ok bool) {
	b.mu.Lock()
	v, ok = b.q.Dequeue()
	b.mu.Unlock()
	return
}

// Take blocks until an element is available or ctx is done. On success returns
// (value, nil). On cancellation returns the zero value and ctx.Err().
func (b *Queue[T]) Take(ctx context.Context) (T, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	b.mu.Lock()
	// Fast path
	if v, ok := b.q.Dequeue(); ok {
		b.mu.Unlock()
		return v, nil
	}
	// Wait with context cancellation. We spawn a short-lived watcher that
	// broadcasts on cancellation to wake Wait.
	for {
		done := make(chan struct{})
		go func() {
			select {
			case <-ctx.Done():
				b.mu.Lock()
				b.cv.Broadcast()
				b.mu.Unlock()
			case <-done:
			}
		}()

		b.cv.Wait() // releases and re-acquires b.mu
		close(done)

		if v, ok := b.q.Dequeue(); ok {
			b.mu.Unlock()
			return v, nil
		}
		if err := ctx.Err(); err != nil {
			b.mu.Unlock()
			var zero T
			return zero, err
		}
	}
}

// Peek returns the head value without removing it. ok is false when empty.
func (b *Queue[T]) Peek() (v T, ok bool) {
	b.mu.Lock()
	v, ok = b.q.Peek()
	b.mu.Unlock()
	return
}

// Len returns the number of elements currently queued.
func (b *Queue[T]) Len() int {
	b.mu.Lock()
	n := b.q.Len()
	b.mu.Unlock()
	return n
}

// IsEmpty reports whether the queue is empty.
func (b *Queue[T]) IsEmpty() bool { return b.Len() == 0 }

// IsContextError reports whether err equals context.Canceled or context.DeadlineExceeded.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

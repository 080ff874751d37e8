// Package conqueue provides a generic, unbounded FIFO queue for concurrent
// producers and consumers, built on the two-lock design.
//
// Instead of a single mutex (or a lock-free compare-and-swap loop), the queue
// keeps two independent mutexes over one sentinel-based linked list: the tail
// lock serializes enqueuers, the head lock serializes dequeuers, and an
// enqueue and a dequeue proceed fully in parallel. Construct a queue with
// New; Enqueue and Dequeue may then be called from any number of goroutines.
//
// Dequeue is non-blocking: it reports false when the queue is empty rather
// than waiting for an item. Callers that need blocking semantics can layer
// them on top (see the blockingqueue subpackage) or coordinate shutdown with
// poison values (see the workerpool subpackage).
package conqueue

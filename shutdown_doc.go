package conqueue

// Advanced: Shutdown and Blocking Patterns
//
// conqueue exposes a non-blocking, concurrency-safe FIFO API: Dequeue reports
// false on an empty queue instead of waiting. The queue deliberately has no
// wait-for-item primitive, so consumer shutdown is a caller-level protocol.
// Two patterns cover most uses.
//
// Poison values. When producers are done, the coordinator pushes one
// distinguished "poison" payload per consumer; each consumer exits its poll
// loop the first time it dequeues one. Because each payload is delivered to
// exactly one dequeuer, every consumer receives exactly one poison and no
// real payload is lost. The workerpool subpackage implements this protocol
// end to end.
//
// Minimal outline:
//
//	const poison = -1 // never produced as a real value
//
//	for {
//	    v, ok := q.Dequeue()
//	    if !ok {
//	        runtime.Gosched() // empty is expected under races; poll again
//	        continue
//	    }
//	    if v == poison {
//	        return
//	    }
//	    handle(v)
//	}
//
// Blocking wrapper. When polling is unacceptable, layer a sync.Cond plus
// context over the queue so producers wake waiting consumers; the
// blockingqueue subpackage provides this. Keep the condition variable's mutex
// outside the queue; the two internal locks stay private to the enqueue and
// dequeue paths.
//
// For short-lived drains, a polling loop with a deadline is often enough:
//
//	deadline := time.After(200 * time.Millisecond)
//	for {
//	    if v, ok := q.Dequeue(); ok { /* use v */ break }
//	    select {
//	    case <-deadline:
//	        return // timeout handling
//	    default:
//	        time.Sleep(time.Millisecond)
//	    }
//	}

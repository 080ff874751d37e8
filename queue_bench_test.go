package conqueue

import (
	"testing"
)

func BenchmarkEnqueue(b *testing.B) {
	q := New[int]()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Enqueue(i)
	}
}

func BenchmarkEnqueueDequeue(b *testing.B) {
	q := New[int]()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Enqueue(i)
		if i%2 == 1 { // keep size bounded
			q.Dequeue()
		}
	}
}

// Mixed producers and consumers contending on both locks at once.
func BenchmarkMPMC(b *testing.B) {
	q := New[int]()
	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			if i%2 == 0 {
				q.Enqueue(i)
			} else {
				q.Dequeue()
			}
			i++
		}
	})
}

// Baseline: the same mixed workload over a buffered channel, for comparing
// the two-lock queue against the standard library approach.
func BenchmarkMPMC_Channel(b *testing.B) {
	ch := make(chan int, 1<<20)
	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			if i%2 == 0 {
				select {
				case ch <- i:
				default:
				}
			} else {
				select {
				case <-ch:
				default:
				}
			}
			i++
		}
	})
}

func BenchmarkDequeueEmpty(b *testing.B) {
	q := New[int]()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Dequeue()
	}
}

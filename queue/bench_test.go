package queue_test

import (
	"testing"

	"github.com/katalvlaran/crntk/queue"
)

// BenchmarkQueue_Rotate measures the steady-state dequeue/enqueue cycle the
// ray partitioning performs on every constraint.
func BenchmarkQueue_Rotate(b *testing.B) {
	q := queue.New[int]()
	for i := 0; i < 1024; i++ {
		q.Enqueue(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x, _ := q.Dequeue()
		q.Enqueue(x)
	}
}

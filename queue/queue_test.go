package queue_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crntk/queue"
)

func TestQueue_ZeroValue(t *testing.T) {
	var q queue.Queue[int]
	assert.Equal(t, 0, q.Len())

	_, ok := q.Dequeue()
	assert.False(t, ok)
	_, ok = q.Peek()
	assert.False(t, ok)

	q.Enqueue(7)
	x, ok := q.Dequeue()
	require.True(t, ok)
	assert.Equal(t, 7, x)
}

func TestQueue_FIFO(t *testing.T) {
	q := queue.New(1, 2, 3)
	q.Enqueue(4)

	var got []int
	for q.Len() > 0 {
		x, _ := q.Dequeue()
		got = append(got, x)
	}
	assert.Equal(t, []int{1, 2, 3, 4}, got)
}

// TestQueue_WrapAndGrow forces the live window across the end of the buffer
// before growing, so the unwrap copy has two halves.
func TestQueue_WrapAndGrow(t *testing.T) {
	q := queue.New[int]()
	for i := 0; i < 6; i++ {
		q.Enqueue(i)
	}
	for i := 0; i < 5; i++ {
		_, _ = q.Dequeue()
	}
	for i := 6; i < 30; i++ {
		q.Enqueue(i)
	}

	want := make([]int, 0, 25)
	for i := 5; i < 30; i++ {
		want = append(want, i)
	}
	assert.Equal(t, want, q.Slice())
	assert.Equal(t, 25, q.Len())

	front, ok := q.Peek()
	require.True(t, ok)
	assert.Equal(t, 5, front)
}

// TestQueue_CapturedPass checks the drain-and-refill pattern: a pass bounded
// by the length captured up front sees each original element exactly once.
func TestQueue_CapturedPass(t *testing.T) {
	q := queue.New("a", "b", "c")

	var seen []string
	n := q.Len()
	for i := 0; i < n; i++ {
		x, _ := q.Dequeue()
		seen = append(seen, x)
		q.Enqueue(x + "'")
	}
	assert.Equal(t, []string{"a", "b", "c"}, seen)
	assert.Equal(t, []string{"a'", "b'", "c'"}, q.Slice())
}

func TestQueue_AllStopsEarly(t *testing.T) {
	q := queue.New(1, 2, 3, 4)

	var got []int
	for x := range q.All() {
		if x == 3 {
			break
		}
		got = append(got, x)
	}
	assert.Equal(t, []int{1, 2}, got)
	assert.Equal(t, 4, q.Len(), "All must not consume")
}

func TestQueue_NewCopiesInput(t *testing.T) {
	in := []int{1, 2}
	q := queue.New(in...)
	in[0] = 99
	assert.Equal(t, []int{1, 2}, q.Slice())
}

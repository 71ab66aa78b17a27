package aoc

func NewQueue[T any](in ...T) Queue[T] {
	return Queue[T]{
		q: in,
	}
}

// Queue is a FIFO queue.
type Queue[T any] struct {
	q []T
}

func (q *Queue[T]) Len() int {
	return len(q.q)
}

func (q *Queue[T]) Push(v T) {
	q.q = append(q.q, v)
}

func (q *Queue[T]) Pop() (T, bool) {
	if len(q.q) == 0 {
		var zero T
		return zero, false
	}
	v := q.q[0]
	q.q = q.q[1:]
	return v, true
}

// While pops values and hands them to f until the queue is empty or f
// returns false. f may push more values.
func (q *Queue[T]) While(f func(T) bool) {
	for {
		v, ok := q.Pop()
		if !ok {
			return
		}
		if !f(v) {
			return
		}
	}
}

package core

// DroppingBuffer is a fixed-capacity FIFO; Put beyond capacity evicts the oldest value
// Newest value is always at the tail
type DroppingBuffer[T any] struct {
	values   []T
	capacity int
}

// NewDroppingBuffer creates a buffer holding at most capacity values
// Negative capacity is treated as 0, which keeps the buffer permanently empty
func NewDroppingBuffer[T any](capacity int) *DroppingBuffer[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &DroppingBuffer[T]{
		values:   make([]T, 0, capacity),
		capacity: capacity,
	}
}

// Put appends v, evicting the oldest value when full
func (b *DroppingBuffer[T]) Put(v T) {
	if b.capacity == 0 {
		return
	}
	if len(b.values) == b.capacity {
		copy(b.values, b.values[1:])
		b.values[len(b.values)-1] = v
		return
	}
	b.values = append(b.values, v)
}

// Values returns a copy, oldest first
func (b *DroppingBuffer[T]) Values() []T {
	out := make([]T, len(b.values))
	copy(out, b.values)
	return out
}

// At returns the i-th value, oldest first
func (b *DroppingBuffer[T]) At(i int) T {
	return b.values[i]
}

// Last returns the newest value and false when empty
func (b *DroppingBuffer[T]) Last() (T, bool) {
	var zero T
	if len(b.values) == 0 {
		return zero, false
	}
	return b.values[len(b.values)-1], true
}

func (b *DroppingBuffer[T]) Len() int { return len(b.values) }
func (b *DroppingBuffer[T]) Cap() int { return b.capacity }

package priority

import "errors"

var (
	// ErrUnderflow is returned when reading from an empty queue.
	ErrUnderflow = errors.New("priority queue is empty")

	// ErrEmptyBucket is the panic value raised when the queue tries to pop from
	// a bucket that has no elements. It indicates corrupted internal state and is
	// never returned as an error.
	ErrEmptyBucket = errors.New("pop from empty bucket")
)

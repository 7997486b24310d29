// Package priority implements a generic stable priority queue. Elements are
// unique, ordered by a caller-supplied priority, and elements sharing a
// priority are extracted in the order they were most recently assigned it.
//
// The queue keeps two indexes:
//   - a B-tree mapping each priority in use to a FIFO bucket of elements
//   - a map from each element to the node that carries it inside its bucket
//
// Buckets are doubly linked lists, so moving an element to another priority is
// a constant-time detach followed by an append to the tail of the new bucket.
// A bucket is dropped from the B-tree as soon as it becomes empty.
//
// Key features:
//   - Generic implementation over any comparable element and any priority type
//   - O(log P) add, update, peek and extraction, where P is the number of
//     distinct priorities currently queued
//   - O(1) size, emptiness and membership queries
//   - FIFO order within a priority, reset whenever an element is re-added
//
// Basic usage:
//
//	pq := priority.NewOrdered[string, int]()
//
//	pq.Add("task1", 10)
//	pq.Add("task2", 10)
//	pq.Add("task3", 1)
//
//	// Move task1 behind task2
//	pq.Add("task1", 10)
//
//	for !pq.Empty() {
//	    task, _ := pq.ExtractMinimum()
//	    fmt.Println(task) // task3, task2, task1
//	}
//
// Top and ExtractMinimum return an error wrapping ErrUnderflow when the queue
// is empty. A Queue is not safe for concurrent use; callers sharing one across
// goroutines must serialise access themselves.
package priority

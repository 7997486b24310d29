package priority

import (
	"cmp"
	"fmt"
	"iter"
)

// Queue is a stable priority queue of unique elements. Elements leave in
// ascending priority order; elements sharing a priority leave in the order they
// were last assigned it.
//
// A Queue is not safe for concurrent use.
type Queue[E comparable, P any] struct {
	priorities *priorityIndex[E, P]
	elements   elementIndex[E, P]
}

// NewQueue creates a new stable priority queue ordered by less, which returns
// true if a is extracted before b. Priorities for which neither less(a, b) nor
// less(b, a) holds share a bucket.
func NewQueue[E comparable, P any](less func(a, b P) bool, opts ...Option) *Queue[E, P] {
	o := buildOptions(opts)
	return &Queue[E, P]{
		priorities: newPriorityIndex[E](o.degree, less),
		elements:   make(elementIndex[E, P], o.capacity),
	}
}

// NewOrdered creates a queue that extracts the smallest priority first.
func NewOrdered[E comparable, P cmp.Ordered](opts ...Option) *Queue[E, P] {
	return NewQueue[E](cmp.Less[P], opts...)
}

// Add inserts e with the given priority. If e is already queued it is moved to
// the back of the priority's bucket, even when the priority is unchanged.
func (pq *Queue[E, P]) Add(e E, priority P) {
	n, exists := pq.elements.get(e)
	if !exists {
		n = &node[E, P]{element: e, priority: priority}
		pq.priorities.bucketFor(priority).appendTail(n)
		pq.elements.put(e, n)
		return
	}

	old := n.owner
	old.detach(n)
	pq.priorities.removeIfEmpty(old)
	n.priority = priority
	pq.priorities.bucketFor(priority).appendTail(n)
}

// Top returns the next element to be extracted without removing it.
func (pq *Queue[E, P]) Top() (E, error) {
	b, ok := pq.priorities.minimum()
	if !ok {
		var zero E
		return zero, fmt.Errorf("top: %w", ErrUnderflow)
	}
	e, _ := b.peek()
	return e, nil
}

// TopPriority returns the priority of the element Top would return.
func (pq *Queue[E, P]) TopPriority() (P, error) {
	b, ok := pq.priorities.minimum()
	if !ok {
		var zero P
		return zero, fmt.Errorf("top priority: %w", ErrUnderflow)
	}
	_, p := b.peek()
	return p, nil
}

// ExtractMinimum removes and returns the head of the smallest-priority bucket.
func (pq *Queue[E, P]) ExtractMinimum() (E, error) {
	e, _, err := pq.extract()
	if err != nil {
		var zero E
		return zero, fmt.Errorf("extract minimum: %w", err)
	}
	return e, nil
}

func (pq *Queue[E, P]) extract() (E, P, error) {
	b, ok := pq.priorities.minimum()
	if !ok {
		var zeroE E
		var zeroP P
		return zeroE, zeroP, ErrUnderflow
	}

	e, p := b.popHead()
	pq.elements.remove(e)
	pq.priorities.removeIfEmpty(b)
	return e, p, nil
}

// Remove drops e from the queue. It reports whether e was present.
func (pq *Queue[E, P]) Remove(e E) bool {
	n, exists := pq.elements.get(e)
	if !exists {
		return false
	}

	b := n.owner
	b.detach(n)
	pq.elements.remove(e)
	pq.priorities.removeIfEmpty(b)
	return true
}

// Priority returns the priority currently assigned to e.
func (pq *Queue[E, P]) Priority(e E) (P, bool) {
	n, exists := pq.elements.get(e)
	if !exists {
		var zero P
		return zero, false
	}
	return n.priority, true
}

// Contains reports whether e is queued.
func (pq *Queue[E, P]) Contains(e E) bool {
	return pq.elements.contains(e)
}

// Len returns the number of elements in the queue.
func (pq *Queue[E, P]) Len() int {
	return len(pq.elements)
}

// Empty reports whether the queue holds no elements.
func (pq *Queue[E, P]) Empty() bool {
	return len(pq.elements) == 0
}

// Clear removes every element.
func (pq *Queue[E, P]) Clear() {
	pq.priorities.clear()
	clear(pq.elements)
}

// All yields every element with its priority in extraction order without
// removing anything. The queue must not be modified during iteration.
func (pq *Queue[E, P]) All() iter.Seq2[E, P] {
	return func(yield func(E, P) bool) {
		pq.priorities.ascend(func(b *bucket[E, P]) bool {
			for n := b.head; n != nil; n = n.next {
				if !yield(n.element, n.priority) {
					return false
				}
			}
			return true
		})
	}
}

// Drain extracts elements in order until the queue is empty or the consumer
// stops. Elements not reached stay queued.
func (pq *Queue[E, P]) Drain() iter.Seq2[E, P] {
	return func(yield func(E, P) bool) {
		for {
			e, p, err := pq.extract()
			if err != nil {
				return
			}
			if !yield(e, p) {
				return
			}
		}
	}
}

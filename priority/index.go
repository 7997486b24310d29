package priority

import (
	"github.com/google/btree"
)

// priorityIndex maps each priority in use to its bucket. It never holds an
// empty bucket once the operation that emptied it returns.
type priorityIndex[E comparable, P any] struct {
	tree  *btree.BTreeG[*bucket[E, P]]
	probe bucket[E, P]
}

func newPriorityIndex[E comparable, P any](degree int, less func(a, b P) bool) *priorityIndex[E, P] {
	return &priorityIndex[E, P]{
		tree: btree.NewG[*bucket[E, P]](degree, func(a, b *bucket[E, P]) bool {
			return less(a.priority, b.priority)
		}),
	}
}

// lookup returns the bucket for priority, if one exists.
func (x *priorityIndex[E, P]) lookup(priority P) (*bucket[E, P], bool) {
	x.probe.priority = priority
	b, ok := x.tree.Get(&x.probe)
	var zero P
	x.probe.priority = zero
	return b, ok
}

// bucketFor returns the bucket for priority, creating it if absent.
func (x *priorityIndex[E, P]) bucketFor(priority P) *bucket[E, P] {
	if b, ok := x.lookup(priority); ok {
		return b
	}
	b := newBucket[E](priority)
	x.tree.ReplaceOrInsert(b)
	return b
}

// minimum returns the bucket with the smallest priority.
func (x *priorityIndex[E, P]) minimum() (*bucket[E, P], bool) {
	return x.tree.Min()
}

// removeIfEmpty drops b from the index when it holds no nodes.
func (x *priorityIndex[E, P]) removeIfEmpty(b *bucket[E, P]) bool {
	if !b.isEmpty() {
		return false
	}
	x.tree.Delete(b)
	return true
}

func (x *priorityIndex[E, P]) len() int {
	return x.tree.Len()
}

// ascend visits buckets in priority order until fn returns false.
func (x *priorityIndex[E, P]) ascend(fn func(b *bucket[E, P]) bool) {
	x.tree.Ascend(fn)
}

func (x *priorityIndex[E, P]) clear() {
	x.tree.Clear(false)
}

// elementIndex maps each live element to the node that carries it.
type elementIndex[E comparable, P any] map[E]*node[E, P]

func (m elementIndex[E, P]) contains(e E) bool {
	_, ok := m[e]
	return ok
}

func (m elementIndex[E, P]) get(e E) (*node[E, P], bool) {
	n, ok := m[e]
	return n, ok
}

func (m elementIndex[E, P]) put(e E, n *node[E, P]) {
	m[e] = n
}

func (m elementIndex[E, P]) remove(e E) {
	delete(m, e)
}

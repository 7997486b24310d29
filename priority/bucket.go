package priority

// node holds one element inside a bucket. The bucket it is linked into owns it;
// the element index only points at it.
type node[E comparable, P any] struct {
	element  E
	priority P // as last passed to Add, not the bucket key
	prev     *node[E, P]
	next     *node[E, P]
	owner    *bucket[E, P]
}

// bucket is the FIFO run of elements sharing one priority. Its priority is
// only the key in the priority index.
type bucket[E comparable, P any] struct {
	priority P
	head     *node[E, P]
	tail     *node[E, P]
	size     int
}

func newBucket[E comparable, P any](priority P) *bucket[E, P] {
	return &bucket[E, P]{priority: priority}
}

// appendTail links n as the new tail and makes b its owner.
func (b *bucket[E, P]) appendTail(n *node[E, P]) {
	n.owner = b
	n.next = nil
	n.prev = b.tail

	if b.tail == nil {
		b.head = n
	} else {
		b.tail.next = n
	}
	b.tail = n
	b.size++
}

// popHead unlinks the head node and returns its element and priority. Calling
// it on an empty bucket means the queue's indexes disagree, so it panics.
func (b *bucket[E, P]) popHead() (E, P) {
	if b.head == nil {
		panic(ErrEmptyBucket)
	}

	n := b.head
	b.head = n.next
	if b.head == nil {
		b.tail = nil
	} else {
		b.head.prev = nil
	}
	b.size--

	n.next, n.owner = nil, nil
	return n.element, n.priority
}

// detach unlinks n without releasing it. The caller either re-appends n to
// another bucket or drops it.
func (b *bucket[E, P]) detach(n *node[E, P]) {
	if n.prev == nil {
		b.head = n.next
	} else {
		n.prev.next = n.next
	}

	if n.next == nil {
		b.tail = n.prev
	} else {
		n.next.prev = n.prev
	}

	b.size--
	n.prev, n.next, n.owner = nil, nil, nil
}

func (b *bucket[E, P]) isEmpty() bool {
	return b.head == nil
}

func (b *bucket[E, P]) len() int {
	return b.size
}

// peek returns the head element and its priority. The bucket must not be empty.
func (b *bucket[E, P]) peek() (E, P) {
	if b.head == nil {
		panic(ErrEmptyBucket)
	}
	return b.head.element, b.head.priority
}

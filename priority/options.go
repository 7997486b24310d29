package priority

const defaultDegree = 8

// options defines the configuration of a Queue.
type options struct {
	degree   int // B-tree degree of the priority index
	capacity int // size hint for the element index
}

// Option is a function that configures a Queue.
type Option func(*options)

// WithDegree sets the degree of the B-tree that orders priorities.
// Values below 2 fall back to the default.
func WithDegree(degree int) Option {
	return func(o *options) {
		o.degree = degree
	}
}

// WithCapacity pre-sizes the element index for n elements.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		degree:   defaultDegree,
		capacity: 0,
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.degree < 2 {
		o.degree = defaultDegree
	}
	if o.capacity < 0 {
		o.capacity = 0
	}
	return o
}

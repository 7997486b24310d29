// Package scenario holds the self-checking runs driven by cmd/spqcheck. Each
// scenario exercises a priority.Queue and records its observations in a
// check.Reporter.
package scenario

import (
	"errors"
	"fmt"

	"github.com/davidvella/spq/check"
	"github.com/davidvella/spq/priority"
)

// ErrUnknown is returned by Run for a name that matches no scenario.
var ErrUnknown = errors.New("unknown scenario")

// Scenario is a named check run.
type Scenario struct {
	Name string
	Run  func(r *check.Reporter)
}

var all = []Scenario{
	{Name: "distinct", Run: Distinct},
	{Name: "ties", Run: Ties},
	{Name: "update", Run: Update},
	{Name: "top-underflow", Run: TopUnderflow},
	{Name: "extract-underflow", Run: ExtractUnderflow},
	{Name: "size", Run: Size},
	{Name: "empty", Run: Empty},
}

// All returns every scenario in run order.
func All() []Scenario {
	return append([]Scenario(nil), all...)
}

// Lookup finds a scenario by name.
func Lookup(name string) (Scenario, bool) {
	for _, s := range all {
		if s.Name == name {
			return s, true
		}
	}
	return Scenario{}, false
}

// Run executes the named scenarios in the given order, or all of them when
// names is empty. Unknown names are rejected before anything runs.
func Run(r *check.Reporter, names ...string) error {
	selected := all
	if len(names) > 0 {
		selected = make([]Scenario, 0, len(names))
		for _, name := range names {
			s, ok := Lookup(name)
			if !ok {
				return fmt.Errorf("%w: %q", ErrUnknown, name)
			}
			selected = append(selected, s)
		}
	}

	for _, s := range selected {
		s.Run(r)
	}
	return nil
}

func extractEquals[E comparable, P any](r *check.Reporter, q *priority.Queue[E, P], want E) bool {
	r.Logger().Helper()

	got, err := q.ExtractMinimum()
	return r.Record(err == nil && got == want, fmt.Sprintf("q.ExtractMinimum() == %v", want))
}

// Distinct extracts elements with distinct priorities in ascending order.
func Distinct(r *check.Reporter) {
	q := priority.NewOrdered[int, int]()
	q.Add(2, 2)
	q.Add(3, 3)
	q.Add(1, 1)

	extractEquals(r, q, 1)
	extractEquals(r, q, 2)
	extractEquals(r, q, 3)
}

// Ties extracts equal priorities in insertion order.
func Ties(r *check.Reporter) {
	q := priority.NewOrdered[int, int]()
	q.Add(1, 10)
	q.Add(2, 10)
	q.Add(3, 1)

	extractEquals(r, q, 3)
	extractEquals(r, q, 1)
	extractEquals(r, q, 2)
}

// Update moves elements between priorities and checks their new positions.
func Update(r *check.Reporter) {
	q := priority.NewOrdered[string, int]()
	q.Add("X", 10)
	q.Add("Y", 10)
	q.Add("Z", 10)
	q.Add("Y", 9)
	q.Add("X", 11)

	extractEquals(r, q, "Y")
	extractEquals(r, q, "Z")
	extractEquals(r, q, "X")
}

// TopUnderflow peeks into an empty queue.
func TopUnderflow(r *check.Reporter) {
	q := priority.NewOrdered[int, int]()
	_, err := q.Top()
	r.Record(errors.Is(err, priority.ErrUnderflow), "q.Top() fails with underflow")
	r.Record(q.Empty(), "q.Empty()")
}

// ExtractUnderflow extracts from an empty queue.
func ExtractUnderflow(r *check.Reporter) {
	q := priority.NewOrdered[int, int]()
	_, err := q.ExtractMinimum()
	r.Record(errors.Is(err, priority.ErrUnderflow), "q.ExtractMinimum() fails with underflow")
	r.Record(q.Len() == 0, "q.Len() == 0")
}

// Size tracks Len through ten adds and ten extractions.
func Size(r *check.Reporter) {
	q := priority.NewOrdered[int, int]()

	for i := 0; i < 10; i++ {
		r.Record(q.Len() == i, fmt.Sprintf("q.Len() == %d", i))
		q.Add(i, i)
		r.Record(q.Len() == i+1, fmt.Sprintf("q.Len() == %d", i+1))
	}

	for i := 10; i > 0; i-- {
		r.Record(q.Len() == i, fmt.Sprintf("q.Len() == %d", i))
		_, err := q.ExtractMinimum()
		r.Record(err == nil, "q.ExtractMinimum() succeeds")
		r.Record(q.Len() == i-1, fmt.Sprintf("q.Len() == %d", i-1))
	}
}

// Empty follows Empty through two adds and two extractions.
func Empty(r *check.Reporter) {
	q := priority.NewOrdered[int, int]()
	r.Record(q.Empty(), "q.Empty() on a new queue")

	q.Add(1, 1)
	r.Record(!q.Empty(), "!q.Empty() after one add")

	q.Add(2, 2)
	r.Record(!q.Empty(), "!q.Empty() after two adds")

	_, err := q.ExtractMinimum()
	r.Record(err == nil && !q.Empty(), "!q.Empty() after one extraction")

	_, err = q.ExtractMinimum()
	r.Record(err == nil && q.Empty(), "q.Empty() after two extractions")
}

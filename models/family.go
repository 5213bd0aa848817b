package models

import "github.com/cockroachdb/errors"

// Family is the id -> Person mapping of one load session.
// Iteration always follows insertion order, which is the order records were read.
type Family struct {
	order []int
	byID  map[int]*Person
}

// NewFamily returns an empty family with room for sizeHint persons.
func NewFamily(sizeHint int) *Family {
	if sizeHint < 0 {
		sizeHint = 0
	}
	return &Family{
		order: make([]int, 0, sizeHint),
		byID:  make(map[int]*Person, sizeHint),
	}
}

// Add inserts p. Adding an id that is already present is an error; nothing is replaced.
func (f *Family) Add(p *Person) error {
	if p == nil {
		return errors.New("cannot add nil person")
	}
	if _, exists := f.byID[p.ID]; exists {
		return errors.Newf("person id %d already present", p.ID)
	}
	f.byID[p.ID] = p
	f.order = append(f.order, p.ID)
	return nil
}

// Get returns the person with the given id.
func (f *Family) Get(id int) (*Person, bool) {
	p, ok := f.byID[id]
	return p, ok
}

// Len returns the number of persons.
func (f *Family) Len() int {
	return len(f.order)
}

// IDs returns the person ids in insertion order.
func (f *Family) IDs() []int {
	ids := make([]int, len(f.order))
	copy(ids, f.order)
	return ids
}

// Persons returns all persons in insertion order.
func (f *Family) Persons() []*Person {
	persons := make([]*Person, 0, len(f.order))
	for _, id := range f.order {
		persons = append(persons, f.byID[id])
	}
	return persons
}

// Each calls fn for every person in insertion order and stops at the first error.
func (f *Family) Each(fn func(p *Person) error) error {
	for _, id := range f.order {
		if err := fn(f.byID[id]); err != nil {
			return err
		}
	}
	return nil
}

// ChildrenOf resolves the children ids of p to persons.
func (f *Family) ChildrenOf(p *Person) []*Person {
	children := make([]*Person, 0, len(p.Children))
	for _, id := range p.Children {
		if c, ok := f.byID[id]; ok {
			children = append(children, c)
		}
	}
	return children
}

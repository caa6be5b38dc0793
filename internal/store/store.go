// Package store holds the console's in-memory entity collections. The
// collections are seeded once per session from fixture data and live for
// the session's lifetime; there is no backing database for them — real
// persistence is an external collaborator outside this service's scope.
//
// Add is the only mutation guaranteed to affect subsequent List calls.
// The UI's edit and delete affordances are deliberately inert: they emit
// auditable intents but never touch the collections.
package store

import "errors"

// ErrNotFound is returned when an id does not resolve in a collection.
var ErrNotFound = errors.New("store: record not found")

// Collection is an ordered, id-keyed record list. Insertion order is
// stable and List always returns records in that order. Collections are
// not internally locked; the owning session serializes access.
type Collection[T any] struct {
	items []T
	getID func(T) int
	setID func(*T, int)
}

// NewCollection seeds a collection. getID and setID adapt the record
// type's id field.
func NewCollection[T any](seed []T, getID func(T) int, setID func(*T, int)) *Collection[T] {
	c := &Collection[T]{
		items: make([]T, 0, len(seed)),
		getID: getID,
		setID: setID,
	}
	c.items = append(c.items, seed...)
	return c
}

// List returns the records in insertion order. The returned slice is a
// copy; mutating it does not affect the collection.
func (c *Collection[T]) List() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Add assigns the next unused id, appends the record, and returns it.
func (c *Collection[T]) Add(record T) T {
	next := 1
	for _, it := range c.items {
		if id := c.getID(it); id >= next {
			next = id + 1
		}
	}
	c.setID(&record, next)
	c.items = append(c.items, record)
	return record
}

// FindByID returns the record with the given id.
func (c *Collection[T]) FindByID(id int) (T, error) {
	for _, it := range c.items {
		if c.getID(it) == id {
			return it, nil
		}
	}
	var zero T
	return zero, ErrNotFound
}

// Patch applies fn to the stored record with the given id. It exists so
// creation can attach the vault reference after the id is assigned; it is
// not a general update operation — the console has none.
func (c *Collection[T]) Patch(id int, fn func(*T)) {
	for i := range c.items {
		if c.getID(c.items[i]) == id {
			fn(&c.items[i])
			return
		}
	}
}

// Len returns the number of records.
func (c *Collection[T]) Len() int {
	return len(c.items)
}

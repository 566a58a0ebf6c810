package sets

import (
	"fmt"
	"iter"

	"github.com/npillmayer/bplist/btree"
	"github.com/npillmayer/bplist/sortedlist"
)

// setCore implements the element operations and the algebra shared by both
// set variants. Elements of type T are stored as entries of type E, sorted
// by the entry comparator of items.
type setCore[T, E any] struct {
	items    *sortedlist.List[E]
	comparer comparerIdentity
	entry    func(T) E
	value    func(E) T
	// eq decides equality within a run of entries ranking equal. It is nil
	// if ranking equal already means being equal.
	eq func(a, b T) bool
}

type coreHolder[T, E any] interface {
	core() *setCore[T, E]
}

func (c *setCore[T, E]) core() *setCore[T, E] {
	return c
}

// emptyCore returns an empty core with the same comparers and configuration.
func (c *setCore[T, E]) emptyCore() *setCore[T, E] {
	clone := *c
	clone.items = c.items.EmptyClone()
	return &clone
}

// peer returns the core of other if other is a set of the same variant
// ordered the same way, and nil otherwise.
func (c *setCore[T, E]) peer(other Collection[T]) *setCore[T, E] {
	h, ok := other.(coreHolder[T, E])
	if !ok {
		return nil
	}
	o := h.core()
	if o == nil || !c.comparer.sameAs(o.comparer) {
		return nil
	}
	return o
}

func (c *setCore[T, E]) sameEntry(a, b E) bool {
	return c.eq == nil || c.eq(c.value(a), c.value(b))
}

// Len returns the number of elements.
func (c *setCore[T, E]) Len() int {
	return c.items.Len()
}

// IndexOf returns the position of v within the set's order, or -1.
func (c *setCore[T, E]) IndexOf(v T) int {
	e := c.entry(v)
	if c.eq == nil {
		return c.items.IndexOf(e)
	}
	for i, x := range c.items.Run(e) {
		if c.eq(c.value(x), v) {
			return i
		}
	}
	return -1
}

// Contains reports whether v is an element of the set.
func (c *setCore[T, E]) Contains(v T) bool {
	return c.IndexOf(v) >= 0
}

// Add inserts v and reports whether it was not yet present.
func (c *setCore[T, E]) Add(v T) bool {
	if c.eq == nil {
		return c.items.Add(c.entry(v), false)
	}
	if c.IndexOf(v) >= 0 {
		return false
	}
	return c.items.Add(c.entry(v), true)
}

// Remove removes v and reports whether it was present.
func (c *setCore[T, E]) Remove(v T) bool {
	i := c.IndexOf(v)
	if i < 0 {
		return false
	}
	if err := c.items.RemoveAt(i); err != nil {
		panic(err)
	}
	return true
}

// TryGetValue returns the stored element equal to v. This matters for
// comparers which regard distinguishable values as equal.
func (c *setCore[T, E]) TryGetValue(v T) (T, bool) {
	i := c.IndexOf(v)
	if i < 0 {
		var zero T
		return zero, false
	}
	e, err := c.items.At(i)
	if err != nil {
		panic(err)
	}
	return c.value(e), true
}

// At returns the element at position index of the set's order.
func (c *setCore[T, E]) At(index int) (T, error) {
	e, err := c.items.At(index)
	if err != nil {
		var zero T
		return zero, err
	}
	return c.value(e), nil
}

// Clear removes all elements.
func (c *setCore[T, E]) Clear() {
	c.items.Clear()
}

// Values returns an iterator over the elements in the set's order.
func (c *setCore[T, E]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := range c.items.Values() {
			if !yield(c.value(e)) {
				return
			}
		}
	}
}

// ToSlice returns the elements in the set's order.
func (c *setCore[T, E]) ToSlice() []T {
	out := make([]T, 0, c.items.Len())
	for e := range c.items.Values() {
		out = append(out, c.value(e))
	}
	return out
}

// Check validates the underlying sorted list and rejects duplicate elements.
func (c *setCore[T, E]) Check(rules btree.ValidationRules) error {
	if err := c.items.Check(rules); err != nil {
		return err
	}
	entries := c.items.ToSlice()
	order := c.items.Comparator()
	for i := range entries {
		for j := i + 1; j < len(entries) && order(entries[i], entries[j]) == 0; j++ {
			if c.sameEntry(entries[i], entries[j]) {
				return fmt.Errorf("%w: duplicate elements at %d and %d", btree.ErrInvariant, i, j)
			}
		}
	}
	return nil
}

package sortedlist

import (
	"cmp"
	"fmt"
	"iter"
	"slices"

	"github.com/npillmayer/bplist/btree"
)

// List is a sequence of items kept in ascending order with respect to a
// comparison function. Items ranking equal are permitted and stay in
// insertion order.
//
// The zero value is not usable; create lists with New, NewOrdered or FromSlice.
type List[T any] struct {
	items *btree.List[T]
	cmp   func(a, b T) int
}

// New creates an empty list ordered by cmp.
func New[T any](cmp func(a, b T) int, cfg btree.Config) (*List[T], error) {
	if cmp == nil {
		return nil, fmt.Errorf("%w: comparison function is nil", btree.ErrInvalidArgument)
	}
	items, err := btree.New[T](cfg)
	if err != nil {
		return nil, err
	}
	return &List[T]{items: items, cmp: cmp}, nil
}

// NewOrdered creates an empty list using the natural order of T.
func NewOrdered[T cmp.Ordered](cfg btree.Config) (*List[T], error) {
	return New(cmp.Compare[T], cfg)
}

// FromSlice creates a list holding the items of s. s may be unsorted and is
// not modified.
func FromSlice[T any](cmp func(a, b T) int, cfg btree.Config, s []T) (*List[T], error) {
	l, err := New(cmp, cfg)
	if err != nil {
		return nil, err
	}
	l.ReplaceAll(s)
	return l, nil
}

// Call sites select the outcome of an "equal" comparison: steering to the
// start of a run of equals or to the position behind it.
const (
	runStart = +1
	runEnd   = -1
)

// coercingComparer wraps a comparison function. It never reports "equal";
// instead it returns onEqual and remembers that an equal item was seen.
// This lets a single binary search find a run boundary and tell whether
// the run is empty.
type coercingComparer[T any] struct {
	cmp     func(a, b T) int
	onEqual int
	matched bool
}

func (c *coercingComparer[T]) compare(elem, target T) int {
	if r := c.cmp(elem, target); r != 0 {
		return r
	}
	c.matched = true
	return c.onEqual
}

// search returns the run boundary of item within span s selected by onEqual,
// and whether s holds an item ranking equal to item.
func (l *List[T]) search(s btree.Span, item T, onEqual int) (int, bool) {
	c := coercingComparer[T]{cmp: l.cmp, onEqual: onEqual}
	pos, _, err := l.items.BinarySearchIn(s, item, c.compare)
	if err != nil {
		panic(err) // spans are validated by the callers
	}
	return pos, c.matched
}

func (l *List[T]) whole() btree.Span {
	return btree.NewSpan(0, l.items.Len())
}

func (l *List[T]) span(start, count int) (btree.Span, error) {
	if start < 0 || count < 0 || start+count > l.items.Len() {
		return btree.Span{}, fmt.Errorf("%w: range of %d at %d, length %d", btree.ErrIndexOutOfBounds,
			count, start, l.items.Len())
	}
	return btree.NewSpan(start, count), nil
}

// Len returns the number of items.
func (l *List[T]) Len() int {
	return l.items.Len()
}

// Comparator returns the comparison function ordering the list.
func (l *List[T]) Comparator() func(a, b T) int {
	return l.cmp
}

// Config returns the configuration of the underlying tree.
func (l *List[T]) Config() btree.Config {
	return l.items.Config()
}

// Version returns the structural modification counter of the underlying tree.
func (l *List[T]) Version() uint64 {
	return l.items.Version()
}

// Add inserts item behind all items ranking equal to it. If such items exist
// and addIfPresent is false, the list is left unchanged and Add returns false.
func (l *List[T]) Add(item T, addIfPresent bool) bool {
	pos, matched := l.search(l.whole(), item, runEnd)
	if matched && !addIfPresent {
		return false
	}
	if err := l.items.Insert(pos, item); err != nil {
		panic(err)
	}
	return true
}

// Search returns the position of the first item not ranked before item, and
// whether that item ranks equal to item.
func (l *List[T]) Search(item T) (int, bool) {
	return l.search(l.whole(), item, runStart)
}

// IndexOf returns the position of the first item ranking equal to item, or -1.
func (l *List[T]) IndexOf(item T) int {
	pos, matched := l.search(l.whole(), item, runStart)
	if !matched {
		return -1
	}
	return pos
}

// IndexOfFrom is IndexOf restricted to positions start and above.
func (l *List[T]) IndexOfFrom(item T, start int) (int, error) {
	return l.IndexOfRange(item, start, l.items.Len()-start)
}

// IndexOfRange is IndexOf restricted to count positions from start on.
func (l *List[T]) IndexOfRange(item T, start, count int) (int, error) {
	s, err := l.span(start, count)
	if err != nil {
		return -1, err
	}
	pos, matched := l.search(s, item, runStart)
	if !matched {
		return -1, nil
	}
	return pos, nil
}

// LastIndexOf returns the position of the last item ranking equal to item,
// or -1.
func (l *List[T]) LastIndexOf(item T) int {
	pos, matched := l.search(l.whole(), item, runEnd)
	if !matched {
		return -1
	}
	return pos - 1
}

// LastIndexOfFrom is LastIndexOf restricted to positions start and above.
func (l *List[T]) LastIndexOfFrom(item T, start int) (int, error) {
	return l.LastIndexOfRange(item, start, l.items.Len()-start)
}

// LastIndexOfRange is LastIndexOf restricted to count positions from start on.
func (l *List[T]) LastIndexOfRange(item T, start, count int) (int, error) {
	s, err := l.span(start, count)
	if err != nil {
		return -1, err
	}
	pos, matched := l.search(s, item, runEnd)
	if !matched {
		return -1, nil
	}
	return pos - 1, nil
}

// FindRun returns the position and length of the run of items ranking equal
// to item. An absent item yields a run of length 0 at its insertion position.
func (l *List[T]) FindRun(item T) (start, count int) {
	start, matched := l.search(l.whole(), item, runStart)
	if !matched {
		return start, 0
	}
	end, _ := l.search(btree.NewSpan(start, l.items.Len()-start), item, runEnd)
	return start, end - start
}

// Run returns an iterator over the positions and items ranking equal to item.
// It panics with btree.ErrStaleEnumerator if the list is modified meanwhile.
func (l *List[T]) Run(item T) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		start, count := l.FindRun(item)
		e, err := l.items.EnumeratorSpan(btree.NewSpan(start, count))
		if err != nil {
			panic(err)
		}
		for e.Next() {
			if !yield(e.Index(), e.Item()) {
				return
			}
		}
		if err := e.Err(); err != nil {
			panic(err)
		}
	}
}

// Contains reports whether an item ranking equal to item is present.
func (l *List[T]) Contains(item T) bool {
	_, matched := l.search(l.whole(), item, runStart)
	return matched
}

// Remove removes the first item ranking equal to item and reports whether
// there was one.
func (l *List[T]) Remove(item T) bool {
	pos, matched := l.search(l.whole(), item, runStart)
	if !matched {
		return false
	}
	if err := l.items.RemoveAt(pos); err != nil {
		panic(err)
	}
	return true
}

// RemoveAt removes the item at position index.
func (l *List[T]) RemoveAt(index int) error {
	return l.items.RemoveAt(index)
}

// RemoveRange removes count items starting at position index.
func (l *List[T]) RemoveRange(index, count int) error {
	return l.items.RemoveRange(index, count)
}

// RemoveAll removes every item satisfying match and returns their number.
func (l *List[T]) RemoveAll(match func(T) bool) (int, error) {
	return l.items.RemoveAll(match)
}

// Clear removes all items.
func (l *List[T]) Clear() {
	l.items.Clear()
}

// ReplaceAll discards the current content and fills the list with the items
// of s, sorted stably. s is not modified.
func (l *List[T]) ReplaceAll(s []T) {
	if slices.IsSortedFunc(s, l.cmp) {
		l.items.ReplaceAll(s)
		return
	}
	sorted := slices.Clone(s)
	slices.SortStableFunc(sorted, l.cmp)
	tracer().Debugf("sortedlist: sorted %d items for bulk load", len(sorted))
	l.items.ReplaceAll(sorted)
}

// At returns the item at position index.
func (l *List[T]) At(index int) (T, error) {
	return l.items.At(index)
}

// First returns the smallest item, if any.
func (l *List[T]) First() (T, bool) {
	return l.items.First()
}

// Last returns the largest item, if any.
func (l *List[T]) Last() (T, bool) {
	return l.items.Last()
}

// Values returns an iterator over the items in ascending order.
func (l *List[T]) Values() iter.Seq[T] {
	return l.items.Values()
}

// All returns an iterator over positions and items in ascending order.
func (l *List[T]) All() iter.Seq2[int, T] {
	return l.items.All()
}

// Enumerator returns an enumerator over all items.
func (l *List[T]) Enumerator() *btree.Enumerator[T] {
	return l.items.Enumerator()
}

// ToSlice returns a copy of all items in ascending order.
func (l *List[T]) ToSlice() []T {
	return l.items.ToSlice()
}

// TrimExcess repacks the underlying tree; see btree.List.TrimExcess.
func (l *List[T]) TrimExcess() bool {
	return l.items.TrimExcess()
}

// EmptyClone returns an empty list with the same comparison function and
// configuration.
func (l *List[T]) EmptyClone() *List[T] {
	items, err := btree.New[T](l.items.Config())
	if err != nil {
		panic(err)
	}
	return &List[T]{items: items, cmp: l.cmp}
}

// Clone returns a copy of the list.
func (l *List[T]) Clone() *List[T] {
	return &List[T]{items: l.items.Clone(), cmp: l.cmp}
}

// Check validates the underlying tree and the ordering of the items.
func (l *List[T]) Check(rules btree.ValidationRules) error {
	if err := l.items.Check(rules); err != nil {
		return err
	}
	var prev T
	i := 0
	for item := range l.items.Values() {
		if i > 0 && l.cmp(prev, item) > 0 {
			return fmt.Errorf("%w: items at %d and %d out of order", btree.ErrInvariant, i-1, i)
		}
		prev = item
		i++
	}
	return nil
}

package btree

import "fmt"

// At returns the item at position index.
func (l *List[T]) At(index int) (T, error) {
	var zero T
	if index < 0 || index >= l.Len() {
		return zero, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfBounds, index, l.Len())
	}
	return itemAt(l.root, index), nil
}

// Set replaces the item at position index. Replacing an item is not a
// structural change and leaves running enumerators valid.
func (l *List[T]) Set(index int, item T) error {
	if index < 0 || index >= l.Len() {
		return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfBounds, index, l.Len())
	}
	leaf, local := locateIn(l.root, index)
	leaf.items[local] = item
	return nil
}

// First returns the first item, if any.
func (l *List[T]) First() (T, bool) {
	var zero T
	if l.root == nil {
		return zero, false
	}
	return l.firstLeaf().items[0], true
}

// Last returns the last item, if any.
func (l *List[T]) Last() (T, bool) {
	var zero T
	if l.root == nil {
		return zero, false
	}
	return itemAt(l.root, l.Len()-1), true
}

// locate returns the leaf holding position index and the offset within it.
func (l *List[T]) locate(index int) (*leafNode[T], int) {
	assert(l.root != nil, "locate called on empty list")
	return locateIn(l.root, index)
}

// collect copies the items of span s into a new slice.
func (l *List[T]) collect(s Span) []T {
	out := make([]T, 0, s.Count())
	if s.IsEmpty() {
		return out
	}
	leaf, local := l.locate(s.Start())
	for len(out) < s.Count() {
		take := min(len(leaf.items)-local, s.Count()-len(out))
		out = append(out, leaf.items[local:local+take]...)
		leaf, local = leaf.next, 0
	}
	return out
}

// scatter overwrites items starting at position start with values.
func (l *List[T]) scatter(start int, values []T) {
	if len(values) == 0 {
		return
	}
	leaf, local := l.locate(start)
	for len(values) > 0 {
		n := copy(leaf.items[local:], values)
		values = values[n:]
		leaf, local = leaf.next, 0
	}
}

// ToSlice returns a copy of all items in order.
func (l *List[T]) ToSlice() []T {
	return l.collect(NewSpan(0, l.Len()))
}

// GetRange returns a new list holding a copy of count items starting at
// position index. The new list shares no nodes with l.
func (l *List[T]) GetRange(index, count int) (*List[T], error) {
	if index < 0 || count < 0 || index+count > l.Len() {
		return nil, fmt.Errorf("%w: range of %d at %d, length %d", ErrIndexOutOfBounds,
			count, index, l.Len())
	}
	return FromSlice(l.cfg, l.collect(NewSpan(index, count)))
}

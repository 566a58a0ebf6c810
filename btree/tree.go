package btree

import (
	"fmt"
	"iter"
)

// List is an ordered, index-addressable sequence stored in a B+ tree.
//
// The zero value is not usable; create lists with New or FromSlice.
type List[T any] struct {
	cfg Config
	// root is nil for an empty list.
	root   treeNode[T]
	height int // 0 means empty, 1 means a leaf root
	// version is bumped on every structural mutation.
	version uint64
}

// New creates an empty list with validated configuration.
func New[T any](cfg Config) (*List[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &List[T]{cfg: cfg.normalized()}, nil
}

// FromSlice creates a list holding a copy of items. Every node but the last
// one of each level will be full.
func FromSlice[T any](cfg Config, items []T) (*List[T], error) {
	l, err := New[T](cfg)
	if err != nil {
		return nil, err
	}
	l.root, l.height = l.build(items)
	return l, nil
}

// Config returns a copy of the effective list configuration.
func (l *List[T]) Config() Config {
	return l.cfg
}

// Degree returns the branching factor of the list.
func (l *List[T]) Degree() int {
	return l.cfg.Degree
}

// Len returns the number of items in the list.
func (l *List[T]) Len() int {
	if l == nil || l.root == nil {
		return 0
	}
	return l.root.size()
}

// IsEmpty reports whether the list has no items.
func (l *List[T]) IsEmpty() bool {
	return l == nil || l.root == nil
}

// Height returns the tree height, where 0 means empty and 1 means a leaf root.
func (l *List[T]) Height() int {
	if l == nil {
		return 0
	}
	return l.height
}

// Version returns the modification counter. It increases with every
// insertion, removal, clear, repacking and sort of at least two items. Set
// and reads leave it unchanged.
func (l *List[T]) Version() uint64 {
	return l.version
}

// Insert inserts item at position index, 0 ≤ index ≤ Len().
func (l *List[T]) Insert(index int, item T) error {
	if index < 0 || index > l.Len() {
		return fmt.Errorf("%w: insert at %d, length %d", ErrIndexOutOfBounds, index, l.Len())
	}
	l.insert(index, item)
	return nil
}

// Append adds item to the end of the list.
func (l *List[T]) Append(item T) {
	l.insert(l.Len(), item)
}

func (l *List[T]) insert(index int, item T) {
	l.version++
	if l.root == nil {
		leaf := newLeaf[T](l.cfg.Degree)
		leaf.items = append(leaf.items, item)
		l.root, l.height = leaf, 1
		return
	}
	if sib := l.insertNode(l.root, index, item); sib != nil {
		l.growRoot(sib)
	}
}

// InsertRange inserts items at position index, keeping their order.
func (l *List[T]) InsertRange(index int, items ...T) error {
	if index < 0 || index > l.Len() {
		return fmt.Errorf("%w: insert at %d, length %d", ErrIndexOutOfBounds, index, l.Len())
	}
	if len(items) == 0 {
		return nil
	}
	l.version++
	if l.root == nil {
		l.root, l.height = l.build(items)
		return nil
	}
	if sibs := l.insertItems(l.root, index, items); len(sibs) > 0 {
		l.growRoot(sibs...)
	}
	return nil
}

// InsertSeq inserts all values produced by seq at position index, keeping
// their order.
//
// Values are inserted one at a time as seq produces them, each one right
// behind its predecessor, so seq is never buffered. Every insertion counts
// as a modification of its own.
func (l *List[T]) InsertSeq(index int, seq iter.Seq[T]) error {
	if seq == nil {
		return fmt.Errorf("%w: sequence is nil", ErrInvalidArgument)
	}
	if index < 0 || index > l.Len() {
		return fmt.Errorf("%w: insert at %d, length %d", ErrIndexOutOfBounds, index, l.Len())
	}
	for item := range seq {
		l.insert(index, item)
		index++
	}
	return nil
}

// RemoveAt removes the item at position index.
func (l *List[T]) RemoveAt(index int) error {
	if index < 0 || index >= l.Len() {
		return fmt.Errorf("%w: remove at %d, length %d", ErrIndexOutOfBounds, index, l.Len())
	}
	l.version++
	l.removeOne(index)
	return nil
}

func (l *List[T]) removeOne(index int) {
	if index == l.Len()-1 {
		l.removeTail(l.root, nil)
	} else {
		l.removeNode(l.root, nil, index)
	}
	l.shrinkRoot()
}

// RemoveRange removes count items starting at position index.
//
// Items are removed one at a time from the end of the range down to its start.
func (l *List[T]) RemoveRange(index, count int) error {
	if index < 0 || count < 0 || index+count > l.Len() {
		return fmt.Errorf("%w: remove %d items at %d, length %d", ErrIndexOutOfBounds,
			count, index, l.Len())
	}
	if count == 0 {
		return nil
	}
	l.version++
	for i := index + count - 1; i >= index; i-- {
		l.removeOne(i)
	}
	return nil
}

// RemoveAll removes every item for which match returns true and returns the
// number of removed items.
func (l *List[T]) RemoveAll(match func(T) bool) (int, error) {
	if match == nil {
		return 0, fmt.Errorf("%w: predicate is nil", ErrInvalidArgument)
	}
	kept := make([]T, 0, l.Len())
	for leaf := l.firstLeaf(); leaf != nil; leaf = leaf.next {
		for _, item := range leaf.items {
			if !match(item) {
				kept = append(kept, item)
			}
		}
	}
	removed := l.Len() - len(kept)
	if removed == 0 {
		return 0, nil
	}
	tracer().Debugf("btree: remove-all drops %d items, rebuilding %d", removed, len(kept))
	l.version++
	l.root, l.height = l.build(kept)
	return removed, nil
}

// Clear removes all items.
func (l *List[T]) Clear() {
	l.version++
	l.root, l.height = nil, 0
}

// ReplaceAll discards the current content and fills the list with a copy of
// items, packed as by FromSlice.
func (l *List[T]) ReplaceAll(items []T) {
	l.version++
	l.root, l.height = l.build(items)
}

// growRoot stacks new levels on top of the root until a single node holds
// the root and its new right siblings.
func (l *List[T]) growRoot(sibs ...treeNode[T]) {
	level := append([]treeNode[T]{l.root}, sibs...)
	for len(level) > 1 {
		level = linkInners(l.cfg.Degree, partition(level, l.cfg.Degree, false))
		l.height++
	}
	l.root = level[0]
	tracer().Debugf("btree: root grew to height %d", l.height)
}

// shrinkRoot replaces a root having a single child by that child, repeatedly,
// and resets the list to the empty state once the last item is gone.
func (l *List[T]) shrinkRoot() {
	for {
		switch r := l.root.(type) {
		case nil:
			l.height = 0
			return
		case *leafNode[T]:
			if len(r.items) == 0 {
				l.root, l.height = nil, 0
			}
			return
		case *innerNode[T]:
			switch len(r.children) {
			case 0:
				l.root, l.height = nil, 0
				return
			case 1:
				l.root = r.children[0]
				l.height--
				tracer().Debugf("btree: root collapsed to height %d", l.height)
			default:
				return
			}
		default:
			panic("unknown tree node type")
		}
	}
}

// build creates a packed tree holding a copy of items.
func (l *List[T]) build(items []T) (treeNode[T], int) {
	if len(items) == 0 {
		return nil, 0
	}
	degree := l.cfg.Degree
	runs := partition(items, degree, true)
	level := make([]treeNode[T], 0, len(runs))
	var prev *leafNode[T]
	for _, run := range runs {
		leaf := newLeaf[T](degree)
		leaf.items = append(leaf.items, run...)
		if prev != nil {
			prev.next = leaf
		}
		prev = leaf
		level = append(level, leaf)
	}
	height := 1
	for len(level) > 1 {
		level = linkInners(degree, partition(level, degree, true))
		height++
	}
	return level[0], height
}

// linkInners creates one chained inner node per group of children.
func linkInners[T any](degree int, groups [][]treeNode[T]) []treeNode[T] {
	level := make([]treeNode[T], 0, len(groups))
	var prev *innerNode[T]
	for _, group := range groups {
		inner := newInner(degree, group...)
		if prev != nil {
			prev.next = inner
		}
		prev = inner
		level = append(level, inner)
	}
	return level
}

// partition splits items into runs of at most degree elements. A packed
// partition fills every run but the last; otherwise runs differ in length by
// at most one, which keeps each of them at least half full.
func partition[E any](items []E, degree int, packed bool) [][]E {
	n := len(items)
	if n <= degree {
		return [][]E{items}
	}
	var runs [][]E
	if packed {
		for len(items) > degree {
			runs = append(runs, items[:degree])
			items = items[degree:]
		}
		return append(runs, items)
	}
	q := (n + degree - 1) / degree
	size, extra := n/q, n%q
	for k := 0; k < q; k++ {
		m := size
		if k < extra {
			m++
		}
		runs = append(runs, items[:m])
		items = items[m:]
	}
	return runs
}

func (l *List[T]) firstLeaf() *leafNode[T] {
	if l.root == nil {
		return nil
	}
	return l.root.firstLeaf()
}

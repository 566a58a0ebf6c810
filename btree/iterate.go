package btree

import "iter"

// All returns an iterator over positions and items, in order.
//
// The iterator panics with ErrStaleEnumerator if the list is structurally
// modified while the loop is running.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		e := l.Enumerator()
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

// Values returns an iterator over the items, in order. It panics like All on
// concurrent structural modification.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range l.All() {
			if !yield(item) {
				return
			}
		}
	}
}

// Backward returns an iterator over positions and items in reverse order.
//
// Leaves are only chained forward, so every step starts from the root; a full
// backward walk costs O(N log N).
func (l *List[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		version := l.version
		for i := l.Len() - 1; i >= 0; i-- {
			if l.version != version {
				panic(ErrStaleEnumerator)
			}
			if !yield(i, itemAt(l.root, i)) {
				return
			}
		}
	}
}

// ForEachItem walks items in order.
//
// Iteration stops early if fn returns false.
func (l *List[T]) ForEachItem(fn func(item T) bool) {
	if l == nil || l.root == nil || fn == nil {
		return
	}
	for leaf := l.firstLeaf(); leaf != nil; leaf = leaf.next {
		for _, item := range leaf.items {
			if !fn(item) {
				return
			}
		}
	}
}

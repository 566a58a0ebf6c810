package btree

import "fmt"

// Enumerator walks the items of a span of a list, leaf by leaf.
//
// An enumerator remembers the list's version when it is created or reset.
// If the list is structurally modified afterwards, the next call to Next
// fails and Err reports ErrStaleEnumerator; the enumeration cannot be
// resumed. Replacing items with List.Set does not invalidate enumerators.
//
// Usage follows the scanner pattern:
//
//	e := list.Enumerator()
//	for e.Next() {
//	    use(e.Item())
//	}
//	if err := e.Err(); err != nil { … }
type Enumerator[T any] struct {
	list    *List[T]
	span    Span
	version uint64
	leaf    *leafNode[T] // leaf of the next item, nil before the first step
	local   int          // offset of the next item within leaf
	pos     int          // absolute position of the next item
	current T
	err     error
}

// Enumerator returns an enumerator over all items of the list.
func (l *List[T]) Enumerator() *Enumerator[T] {
	e, err := l.EnumeratorSpan(NewSpan(0, l.Len()))
	assert(err == nil, "full-length span rejected")
	return e
}

// EnumeratorSpan returns an enumerator over the items of span s.
func (l *List[T]) EnumeratorSpan(s Span) (*Enumerator[T], error) {
	if err := l.checkSpan(s); err != nil {
		return nil, err
	}
	e := &Enumerator[T]{list: l, span: s}
	e.Reset()
	return e, nil
}

// Reset rewinds the enumerator to the start of its span and re-captures the
// list's version. The span is clipped if the list has shrunk meanwhile.
func (e *Enumerator[T]) Reset() {
	e.span = e.span.Intersect(NewSpan(0, e.list.Len()))
	e.version = e.list.version
	e.leaf, e.local = nil, 0
	e.pos = e.span.Start()
	e.err = nil
	var zero T
	e.current = zero
}

// Next advances to the next item. It returns false at the end of the span or
// if the list has been modified; Err tells both cases apart.
func (e *Enumerator[T]) Next() bool {
	if e.err != nil {
		return false
	}
	if e.list.version != e.version {
		e.err = fmt.Errorf("%w: version %d, enumerator started at %d", ErrStaleEnumerator,
			e.list.version, e.version)
		return false
	}
	if e.pos >= e.span.End() {
		return false
	}
	if e.leaf == nil {
		e.leaf, e.local = e.list.locate(e.pos)
	}
	for e.local >= len(e.leaf.items) {
		e.leaf, e.local = e.leaf.next, 0
		assert(e.leaf != nil, "leaf chain ends before span end")
	}
	e.current = e.leaf.items[e.local]
	e.local++
	e.pos++
	return true
}

// Item returns the item most recently produced by Next.
func (e *Enumerator[T]) Item() T {
	return e.current
}

// Index returns the list position of the item most recently produced by Next.
func (e *Enumerator[T]) Index() int {
	return e.pos - 1
}

// Err returns ErrStaleEnumerator (wrapped) if the list has been modified
// during enumeration, and nil otherwise.
func (e *Enumerator[T]) Err() error {
	return e.err
}

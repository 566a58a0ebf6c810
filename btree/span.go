package btree

import "fmt"

// Span is an immutable window [start, start+count) over item positions.
type Span struct {
	start, count int
}

// NewSpan creates a span. It panics for negative arguments.
func NewSpan(start, count int) Span {
	assert(start >= 0 && count >= 0, "span with negative start or count")
	return Span{start: start, count: count}
}

// Start returns the first position of the span.
func (s Span) Start() int { return s.start }

// Count returns the number of positions in the span.
func (s Span) Count() int { return s.count }

// End returns the position just behind the span.
func (s Span) End() int { return s.start + s.count }

// IsEmpty reports whether the span covers no position.
func (s Span) IsEmpty() bool { return s.count == 0 }

// Contains reports whether pos lies within the span.
func (s Span) Contains(pos int) bool {
	return pos >= s.start && pos < s.End()
}

// Intersect returns the overlap of two spans. Disjoint spans yield an empty
// span positioned at the larger start.
func (s Span) Intersect(other Span) Span {
	from := max(s.start, other.start)
	to := min(s.End(), other.End())
	if to < from {
		return Span{start: from}
	}
	return Span{start: from, count: to - from}
}

// Shift moves the span by delta positions.
func (s Span) Shift(delta int) Span {
	return NewSpan(s.start+delta, s.count)
}

func (s Span) String() string {
	return fmt.Sprintf("[%d…%d)", s.start, s.End())
}

func (l *List[T]) checkSpan(s Span) error {
	if s.start < 0 || s.count < 0 || s.End() > l.Len() {
		return fmt.Errorf("%w: span %v exceeds length %d", ErrIndexOutOfBounds, s, l.Len())
	}
	return nil
}

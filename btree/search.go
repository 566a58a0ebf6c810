package btree

import (
	"fmt"
	"slices"
	"sort"
)

// BinarySearch searches the whole list for item, which must be sorted in
// ascending order with respect to cmp. See BinarySearchIn.
func (l *List[T]) BinarySearch(item T, cmp func(elem, target T) int) (int, bool) {
	pos, found, err := l.BinarySearchIn(NewSpan(0, l.Len()), item, cmp)
	assert(err == nil, "full-length span rejected")
	return pos, found
}

// BinarySearchIn searches span s for item. The items of s must be sorted in
// ascending order with respect to cmp, which is called as cmp(elem, item).
//
// It returns the position of the first item of s with cmp(elem, item) ≥ 0, or
// s.End() if there is none, and whether that item compares equal to item.
//
// Leaves are searched directly over their item arrays; inner nodes pick the
// child to descend into by comparing the first in-span item of each child.
func (l *List[T]) BinarySearchIn(s Span, item T, cmp func(elem, target T) int) (int, bool, error) {
	if cmp == nil {
		return 0, false, fmt.Errorf("%w: comparison function is nil", ErrInvalidArgument)
	}
	if err := l.checkSpan(s); err != nil {
		return 0, false, err
	}
	if s.IsEmpty() {
		return s.Start(), false, nil
	}
	atOrAbove := func(x T) bool { return cmp(x, item) >= 0 }
	pos := searchNode(l.root, 0, s.Start(), s.End(), atOrAbove)
	if pos == s.End() {
		return pos, false, nil
	}
	return pos, cmp(itemAt(l.root, pos), item) == 0, nil
}

// searchNode returns the first position p in [lo,hi) within subtree n with
// pred(item at p), or hi if there is none. base is the position of the first
// item of n. pred must be monotone over [lo,hi).
func searchNode[T any](n treeNode[T], base, lo, hi int, pred func(T) bool) int {
	switch n := n.(type) {
	case *leafNode[T]:
		from, to := max(lo-base, 0), min(hi-base, len(n.items))
		i := sort.Search(to-from, func(k int) bool { return pred(n.items[from+k]) })
		if i == to-from {
			return hi
		}
		return base + from + i
	case *innerNode[T]:
		bases := n.childBases()
		first, last := overlapping(bases, base, lo, hi)
		firstInSpan := func(c int) T {
			start := max(lo, base+bases[c])
			return itemAt(n.children[c], start-base-bases[c])
		}
		j := first + sort.Search(last-first+1, func(k int) bool {
			return pred(firstInSpan(first + k))
		})
		if j == first {
			return max(lo, base+bases[first])
		}
		if p := searchNode(n.children[j-1], base+bases[j-1], lo, hi, pred); p != hi {
			return p
		}
		if j <= last {
			return base + bases[j]
		}
		return hi
	default:
		panic("unknown tree node type")
	}
}

// overlapping returns the range of children [first,last] of an inner node
// which hold positions of [lo,hi). bases are the children's relative start
// positions, base the node's absolute start position.
func overlapping(bases []int, base, lo, hi int) (first, last int) {
	children := len(bases) - 1
	first = 0
	for first < children-1 && base+bases[first+1] <= lo {
		first++
	}
	last = first
	for last < children-1 && base+bases[last+1] < hi {
		last++
	}
	return first, last
}

// FindIndex returns the position of the first item satisfying match, or -1.
func (l *List[T]) FindIndex(match func(T) bool) int {
	pos, err := l.FindIndexIn(NewSpan(0, l.Len()), match)
	if err != nil {
		return -1
	}
	return pos
}

// FindIndexIn returns the position of the first item within span s
// satisfying match, or -1.
func (l *List[T]) FindIndexIn(s Span, match func(T) bool) (int, error) {
	if match == nil {
		return -1, fmt.Errorf("%w: predicate is nil", ErrInvalidArgument)
	}
	if err := l.checkSpan(s); err != nil {
		return -1, err
	}
	if s.IsEmpty() {
		return -1, nil
	}
	return findNode(l.root, 0, s.Start(), s.End(), match), nil
}

func findNode[T any](n treeNode[T], base, lo, hi int, match func(T) bool) int {
	switch n := n.(type) {
	case *leafNode[T]:
		from, to := max(lo-base, 0), min(hi-base, len(n.items))
		if i := slices.IndexFunc(n.items[from:to], match); i >= 0 {
			return base + from + i
		}
		return -1
	case *innerNode[T]:
		bases := n.childBases()
		first, last := overlapping(bases, base, lo, hi)
		for c := first; c <= last; c++ {
			if p := findNode(n.children[c], base+bases[c], lo, hi, match); p >= 0 {
				return p
			}
		}
		return -1
	default:
		panic("unknown tree node type")
	}
}

// FindLastIndex returns the position of the last item satisfying match, or -1.
func (l *List[T]) FindLastIndex(match func(T) bool) int {
	pos, err := l.FindLastIndexIn(NewSpan(0, l.Len()), match)
	if err != nil {
		return -1
	}
	return pos
}

// FindLastIndexIn returns the position of the last item within span s
// satisfying match, or -1.
func (l *List[T]) FindLastIndexIn(s Span, match func(T) bool) (int, error) {
	if match == nil {
		return -1, fmt.Errorf("%w: predicate is nil", ErrInvalidArgument)
	}
	if err := l.checkSpan(s); err != nil {
		return -1, err
	}
	if s.IsEmpty() {
		return -1, nil
	}
	return findLastNode(l.root, 0, s.Start(), s.End(), match), nil
}

func findLastNode[T any](n treeNode[T], base, lo, hi int, match func(T) bool) int {
	switch n := n.(type) {
	case *leafNode[T]:
		from, to := max(lo-base, 0), min(hi-base, len(n.items))
		for i := to - 1; i >= from; i-- {
			if match(n.items[i]) {
				return base + i
			}
		}
		return -1
	case *innerNode[T]:
		bases := n.childBases()
		first, last := overlapping(bases, base, lo, hi)
		for c := last; c >= first; c-- {
			if p := findLastNode(n.children[c], base+bases[c], lo, hi, match); p >= 0 {
				return p
			}
		}
		return -1
	default:
		panic("unknown tree node type")
	}
}

// Sort sorts the whole list with respect to cmp. The sort is stable.
func (l *List[T]) Sort(cmp func(a, b T) int) error {
	return l.SortSpan(NewSpan(0, l.Len()), cmp)
}

// SortSpan sorts the items of span s with respect to cmp. The sort is stable.
// Sorting rearranges items but not nodes, so running enumerators stay valid.
func (l *List[T]) SortSpan(s Span, cmp func(a, b T) int) error {
	if cmp == nil {
		return fmt.Errorf("%w: comparison function is nil", ErrInvalidArgument)
	}
	if err := l.checkSpan(s); err != nil {
		return err
	}
	if s.Count() < 2 {
		return nil
	}
	l.version++
	buf := l.collect(s)
	slices.SortStableFunc(buf, cmp)
	l.scatter(s.Start(), buf)
	return nil
}

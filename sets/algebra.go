package sets

import (
	"github.com/bits-and-blooms/bitset"
)

// markFound looks up every element of other in the set. Bit i of marks is set
// if the element at position i has been matched, so unique is the number of
// distinct set elements matched, however often other repeats them. unfound
// counts the elements of other which are not in the set; with stopOnUnfound
// set, the scan ends at the first of them.
func (c *setCore[T, E]) markFound(other Collection[T], stopOnUnfound bool) (marks *bitset.BitSet, unique, unfound int) {
	marks = bitset.New(uint(c.items.Len()))
	for v := range other.Values() {
		i := c.IndexOf(v)
		if i < 0 {
			unfound++
			if stopOnUnfound {
				break
			}
			continue
		}
		marks.Set(uint(i))
	}
	return marks, int(marks.Count()), unfound
}

// mergeMarks walks two sorted entry sequences in parallel. It marks the
// positions of a and of b holding elements present on both sides and returns
// their number. Runs of entries ranking equal are matched pairwise.
func (c *setCore[T, E]) mergeMarks(a, b []E) (inA, inB *bitset.BitSet, matched int) {
	order := c.items.Comparator()
	inA, inB = bitset.New(uint(len(a))), bitset.New(uint(len(b)))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch r := order(a[i], b[j]); {
		case r < 0:
			i++
			continue
		case r > 0:
			j++
			continue
		}
		endA, endB := i+1, j+1
		for endA < len(a) && order(a[i], a[endA]) == 0 {
			endA++
		}
		for endB < len(b) && order(b[j], b[endB]) == 0 {
			endB++
		}
		for x := i; x < endA; x++ {
			for y := j; y < endB; y++ {
				if !inB.Test(uint(y)) && c.sameEntry(a[x], b[y]) {
					inA.Set(uint(x))
					inB.Set(uint(y))
					matched++
					break
				}
			}
		}
		i, j = endA, endB
	}
	return inA, inB, matched
}

// merge runs mergeMarks against the entries of a peer set.
func (c *setCore[T, E]) merge(o *setCore[T, E]) (a, b []E, inA, inB *bitset.BitSet, matched int) {
	a, b = c.items.ToSlice(), o.items.ToSlice()
	inA, inB, matched = c.mergeMarks(a, b)
	return a, b, inA, inB, matched
}

// removeWhere removes the entries whose mark equals marked, from the highest
// position down, which keeps lower positions stable.
func (c *setCore[T, E]) removeWhere(marks *bitset.BitSet, marked bool) {
	for i := c.items.Len() - 1; i >= 0; i-- {
		if marks.Test(uint(i)) == marked {
			if err := c.items.RemoveAt(i); err != nil {
				panic(err)
			}
		}
	}
}

// UnionWith adds all elements of other to the set.
func (c *setCore[T, E]) UnionWith(other Collection[T]) {
	o := c.peer(other)
	if o == nil {
		tracer().Debugf("sets: union via element lookup")
		for v := range other.Values() {
			c.Add(v)
		}
		return
	}
	if o == c {
		return
	}
	a, b, _, inB, matched := c.merge(o)
	if matched == len(b) {
		return
	}
	for j, e := range b {
		if !inB.Test(uint(j)) {
			a = append(a, e)
		}
	}
	c.items.ReplaceAll(a)
}

// IntersectWith removes all elements not contained in other.
func (c *setCore[T, E]) IntersectWith(other Collection[T]) {
	if c.Len() == 0 {
		return
	}
	o := c.peer(other)
	if o == c {
		return
	}
	var marks *bitset.BitSet
	if o != nil {
		_, _, marks, _, _ = c.merge(o)
	} else {
		tracer().Debugf("sets: intersection via element lookup")
		marks, _, _ = c.markFound(other, false)
	}
	c.removeWhere(marks, false)
}

// ExceptWith removes all elements contained in other.
func (c *setCore[T, E]) ExceptWith(other Collection[T]) {
	if c.Len() == 0 {
		return
	}
	o := c.peer(other)
	if o == c {
		c.Clear()
		return
	}
	if o == nil {
		for v := range other.Values() {
			c.Remove(v)
		}
		return
	}
	_, _, inA, _, matched := c.merge(o)
	if matched > 0 {
		c.removeWhere(inA, true)
	}
}

// SymmetricExceptWith keeps the elements contained either in the set or in
// other, but not in both.
func (c *setCore[T, E]) SymmetricExceptWith(other Collection[T]) {
	o := c.peer(other)
	if o == c {
		c.Clear()
		return
	}
	if o == nil {
		// other may repeat elements; collect it into a set first
		o = c.emptyCore()
		o.UnionWith(other)
	}
	a, b, inA, inB, _ := c.merge(o)
	out := make([]E, 0, len(a)+len(b))
	for i, e := range a {
		if !inA.Test(uint(i)) {
			out = append(out, e)
		}
	}
	for j, e := range b {
		if !inB.Test(uint(j)) {
			out = append(out, e)
		}
	}
	c.items.ReplaceAll(out)
}

// IsSubsetOf reports whether every element of the set is contained in other.
func (c *setCore[T, E]) IsSubsetOf(other Collection[T]) bool {
	if c.Len() == 0 {
		return true
	}
	o := c.peer(other)
	if o == c {
		return true
	}
	if o != nil {
		if o.Len() < c.Len() {
			return false
		}
		_, _, _, _, matched := c.merge(o)
		return matched == c.Len()
	}
	_, unique, unfound := c.markFound(other, false)
	return unique == c.Len() && unfound >= 0
}

// IsProperSubsetOf reports whether the set is a subset of other and other
// holds at least one element not in the set.
// An empty set only checks whether other yields any element, consuming at
// most one element of a single-use Seq.
func (c *setCore[T, E]) IsProperSubsetOf(other Collection[T]) bool {
	if c.Len() == 0 {
		return hasAny(other)
	}
	o := c.peer(other)
	if o == c {
		return false
	}
	if o != nil {
		if o.Len() <= c.Len() {
			return false
		}
		_, _, _, _, matched := c.merge(o)
		return matched == c.Len()
	}
	_, unique, unfound := c.markFound(other, false)
	return unique == c.Len() && unfound > 0
}

// IsSupersetOf reports whether every element of other is contained in the
// set.
// An empty set only checks whether other yields any element, consuming at
// most one element of a single-use Seq.
func (c *setCore[T, E]) IsSupersetOf(other Collection[T]) bool {
	if c.Len() == 0 {
		return !hasAny(other)
	}
	o := c.peer(other)
	if o == c {
		return true
	}
	if o != nil {
		if o.Len() > c.Len() {
			return false
		}
		_, _, _, _, matched := c.merge(o)
		return matched == o.Len()
	}
	for v := range other.Values() {
		if !c.Contains(v) {
			return false
		}
	}
	return true
}

// IsProperSupersetOf reports whether the set is a superset of other and
// holds at least one element not in other.
func (c *setCore[T, E]) IsProperSupersetOf(other Collection[T]) bool {
	if c.Len() == 0 {
		return false
	}
	o := c.peer(other)
	if o == c {
		return false
	}
	if o != nil {
		if o.Len() >= c.Len() {
			return false
		}
		_, _, _, _, matched := c.merge(o)
		return matched == o.Len()
	}
	_, unique, unfound := c.markFound(other, true)
	return unique < c.Len() && unfound == 0
}

// Overlaps reports whether the set and other share at least one element.
func (c *setCore[T, E]) Overlaps(other Collection[T]) bool {
	if c.Len() == 0 {
		return false
	}
	if o := c.peer(other); o == c {
		return true
	}
	for v := range other.Values() {
		if c.Contains(v) {
			return true
		}
	}
	return false
}

// SetEquals reports whether the set and other contain the same elements,
// ignoring repetitions within other.
// An empty set only checks whether other yields any element, consuming at
// most one element of a single-use Seq.
func (c *setCore[T, E]) SetEquals(other Collection[T]) bool {
	if c.Len() == 0 {
		return !hasAny(other)
	}
	o := c.peer(other)
	if o == c {
		return true
	}
	if o != nil {
		if o.Len() != c.Len() {
			return false
		}
		_, _, _, _, matched := c.merge(o)
		return matched == c.Len()
	}
	_, unique, unfound := c.markFound(other, true)
	return unique == c.Len() && unfound == 0
}

package btree

// insertNode inserts item at local position index of subtree n.
//
// It returns the new right sibling of n if n had to split, and nil otherwise.
func (l *List[T]) insertNode(n treeNode[T], index int, item T) treeNode[T] {
	switch n := n.(type) {
	case *leafNode[T]:
		if sib := l.insertIntoLeaf(n, index, item); sib != nil {
			return sib
		}
		return nil
	case *innerNode[T]:
		i, local := n.route(index, true)
		n.total++
		sib := l.insertNode(n.children[i], local, item)
		if sib == nil {
			return nil
		}
		if split := l.insertChild(n, i+1, sib); split != nil {
			return split
		}
		return nil
	default:
		panic("unknown tree node type")
	}
}

// insertIntoLeaf inserts item at a local leaf offset. If the leaf is full it
// returns a new leaf, already chained behind leaf.
func (l *List[T]) insertIntoLeaf(leaf *leafNode[T], index int, item T) *leafNode[T] {
	assert(index >= 0 && index <= len(leaf.items), "insertIntoLeaf index out of range")
	degree := l.cfg.Degree
	if len(leaf.items) < degree {
		leaf.items = insertAt(leaf.items, index, item)
		return nil
	}
	sib := newLeaf[T](degree)
	if leaf.next == nil && index == len(leaf.items) {
		// appending to the whole sequence: start a new leaf, move nothing
		sib.items = append(sib.items, item)
		leaf.next = sib
		return sib
	}
	split, upper := splitPoint(len(leaf.items), degree, index)
	sib.items = append(sib.items, leaf.items[split:]...)
	clear(leaf.items[split:])
	leaf.items = leaf.items[:split]
	if upper {
		sib.items = insertAt(sib.items, index-split, item)
	} else {
		leaf.items = insertAt(leaf.items, index, item)
	}
	sib.next = leaf.next
	leaf.next = sib
	return sib
}

// insertChild inserts child at position index of n's children. If n is full
// it returns a new inner node, already chained behind n.
func (l *List[T]) insertChild(n *innerNode[T], index int, child treeNode[T]) *innerNode[T] {
	degree := l.cfg.Degree
	if len(n.children) < degree {
		n.children = insertAt(n.children, index, child)
		return nil
	}
	var sib *innerNode[T]
	if n.next == nil && index == len(n.children) {
		sib = newInner(degree, child)
	} else {
		split, upper := splitPoint(len(n.children), degree, index)
		sib = newInner(degree, n.children[split:]...)
		clear(n.children[split:])
		n.children = n.children[:split]
		if upper {
			sib.children = insertAt(sib.children, index-split, child)
		} else {
			n.children = insertAt(n.children, index, child)
		}
		sib.recount()
	}
	n.recount()
	sib.next = n.next
	n.next = sib
	return sib
}

// splitPoint returns where a full node of the given count splits when a new
// entry is inserted at index, and whether the entry goes to the upper half.
//
// For odd degrees an entry landing above the middle moves the split point up
// by one; otherwise the lower half would be left below ⌈degree/2⌉.
func splitPoint(count, degree, index int) (split int, upper bool) {
	split = count / 2
	upper = index > split
	if upper && degree%2 == 1 {
		split++
	}
	return split, upper
}

// insertItems inserts a run of items at local position index of subtree n and
// returns the new right siblings of n, in order.
func (l *List[T]) insertItems(n treeNode[T], index int, items []T) []treeNode[T] {
	switch n := n.(type) {
	case *leafNode[T]:
		return l.insertLeafItems(n, index, items)
	case *innerNode[T]:
		i, local := n.route(index, true)
		n.total += len(items)
		sibs := l.insertItems(n.children[i], local, items)
		if len(sibs) == 0 {
			return nil
		}
		return l.spliceChildren(n, i+1, sibs)
	default:
		panic("unknown tree node type")
	}
}

func (l *List[T]) insertLeafItems(leaf *leafNode[T], index int, items []T) []treeNode[T] {
	degree := l.cfg.Degree
	if len(leaf.items)+len(items) <= degree {
		leaf.items = insertSliceAt(leaf.items, index, items)
		return nil
	}
	packed := leaf.next == nil && index == len(leaf.items)
	combined := make([]T, 0, len(leaf.items)+len(items))
	combined = append(combined, leaf.items[:index]...)
	combined = append(combined, items...)
	combined = append(combined, leaf.items[index:]...)
	runs := partition(combined, degree, packed)
	clear(leaf.items)
	leaf.items = append(leaf.items[:0], runs[0]...)
	after := leaf.next
	prev := leaf
	sibs := make([]treeNode[T], 0, len(runs)-1)
	for _, run := range runs[1:] {
		sib := newLeaf[T](degree)
		sib.items = append(sib.items, run...)
		prev.next = sib
		prev = sib
		sibs = append(sibs, sib)
	}
	prev.next = after
	return sibs
}

// spliceChildren inserts new children at position index of n. Overflowing
// children are distributed over new inner nodes, which are returned.
func (l *List[T]) spliceChildren(n *innerNode[T], index int, children []treeNode[T]) []treeNode[T] {
	degree := l.cfg.Degree
	if len(n.children)+len(children) <= degree {
		n.children = insertSliceAt(n.children, index, children)
		return nil
	}
	packed := n.next == nil && index == len(n.children)
	combined := make([]treeNode[T], 0, len(n.children)+len(children))
	combined = append(combined, n.children[:index]...)
	combined = append(combined, children...)
	combined = append(combined, n.children[index:]...)
	runs := partition(combined, degree, packed)
	clear(n.children)
	n.children = append(n.children[:0], runs[0]...)
	n.recount()
	after := n.next
	prev := n
	sibs := make([]treeNode[T], 0, len(runs)-1)
	for _, run := range runs[1:] {
		sib := newInner(degree, run...)
		prev.next = sib
		prev = sib
		sibs = append(sibs, sib)
	}
	prev.next = after
	return sibs
}

// removeNode removes the item at local position index of subtree n. prev is
// the left neighbour of n on its level, if any.
func (l *List[T]) removeNode(n treeNode[T], prev treeNode[T], index int) {
	switch n := n.(type) {
	case *leafNode[T]:
		n.items = removeAt(n.items, index)
	case *innerNode[T]:
		i, local := n.route(index, false)
		n.total--
		l.removeNode(n.children[i], predecessor(n, prev, i), local)
		l.repairChild(n, prev, i)
	default:
		panic("unknown tree node type")
	}
}

// removeTail removes the last item of subtree n. The rightmost node of every
// level is exempt from the occupancy bound, so the only repair needed is
// dropping a node which became empty.
func (l *List[T]) removeTail(n treeNode[T], prev treeNode[T]) {
	switch n := n.(type) {
	case *leafNode[T]:
		n.items = removeAt(n.items, len(n.items)-1)
	case *innerNode[T]:
		i := len(n.children) - 1
		n.total--
		child := n.children[i]
		pred := predecessor(n, prev, i)
		l.removeTail(child, pred)
		if child.width() == 0 {
			linkAfter(pred, nil)
			n.children = removeAt(n.children, i)
		}
	default:
		panic("unknown tree node type")
	}
}

// predecessor returns the left neighbour of n.children[i] on its level. prev
// is the left neighbour of n.
func predecessor[T any](n *innerNode[T], prev treeNode[T], i int) treeNode[T] {
	if i > 0 {
		return n.children[i-1]
	}
	if prev == nil {
		return nil
	}
	p := prev.(*innerNode[T])
	return p.children[len(p.children)-1]
}

// repairChild restores the occupancy bound of n.children[i] after a removal
// in its subtree.
func (l *List[T]) repairChild(n *innerNode[T], prev treeNode[T], i int) {
	child := n.children[i]
	switch {
	case child.width() == 0:
		linkAfter(predecessor(n, prev, i), child.nextNode())
		n.children = removeAt(n.children, i)
	case child.width() >= l.cfg.minFill() || child.nextNode() == nil:
		return
	case i+1 < len(n.children):
		l.rebalance(n, i)
	default:
		assert(i > 0, "underfull child without a sibling")
		l.rebalance(n, i-1)
	}
}

// rebalance fixes an underfull child at position i or i+1 of n by merging the
// pair or by moving just enough entries into the underfull one.
func (l *List[T]) rebalance(n *innerNode[T], i int) {
	minFill, degree := l.cfg.minFill(), l.cfg.Degree
	switch left := n.children[i].(type) {
	case *leafNode[T]:
		right := n.children[i+1].(*leafNode[T])
		switch {
		case len(left.items)+len(right.items) <= degree:
			left.items = append(left.items, right.items...)
			left.next = right.next
			n.children = removeAt(n.children, i+1)
		case len(left.items) < minFill:
			k := minFill - len(left.items)
			left.items = append(left.items, right.items[:k]...)
			right.items = removeRange(right.items, 0, k)
		default:
			k := minFill - len(right.items)
			from := len(left.items) - k
			right.items = insertSliceAt(right.items, 0, left.items[from:])
			left.items = removeRange(left.items, from, len(left.items))
		}
	case *innerNode[T]:
		right := n.children[i+1].(*innerNode[T])
		switch {
		case len(left.children)+len(right.children) <= degree:
			left.children = append(left.children, right.children...)
			left.total += right.total
			left.next = right.next
			n.children = removeAt(n.children, i+1)
		case len(left.children) < minFill:
			k := minFill - len(left.children)
			left.children = append(left.children, right.children[:k]...)
			right.children = removeRange(right.children, 0, k)
			left.recount()
			right.recount()
		default:
			k := minFill - len(right.children)
			from := len(left.children) - k
			right.children = insertSliceAt(right.children, 0, left.children[from:])
			left.children = removeRange(left.children, from, len(left.children))
			left.recount()
			right.recount()
		}
	default:
		panic("unknown tree node type")
	}
}

// insertAt inserts v at position i, shifting later elements right. The slice
// must have spare capacity for the new element.
func insertAt[E any](s []E, i int, v E) []E {
	assert(i >= 0 && i <= len(s), "insertAt index out of range")
	assert(len(s) < cap(s), "insertAt exceeds node capacity")
	s = s[:len(s)+1]
	copy(s[i+1:], s[i:])
	s[i] = v
	return s
}

// insertSliceAt inserts vs at position i within the spare capacity of s.
func insertSliceAt[E any](s []E, i int, vs []E) []E {
	assert(i >= 0 && i <= len(s), "insertSliceAt index out of range")
	assert(len(s)+len(vs) <= cap(s), "insertSliceAt exceeds node capacity")
	n := len(s)
	s = s[:n+len(vs)]
	copy(s[i+len(vs):], s[i:n])
	copy(s[i:], vs)
	return s
}

// removeAt removes the element at position i, shifting later elements left.
func removeAt[E any](s []E, i int) []E {
	return removeRange(s, i, i+1)
}

// removeRange removes the half-open interval [from,to) in place and zeroes the
// vacated slots.
func removeRange[E any](s []E, from, to int) []E {
	assert(from >= 0 && from <= to && to <= len(s), "removeRange bounds invalid")
	n := copy(s[from:], s[to:])
	clear(s[from+n:])
	return s[:from+n]
}

package btree

import "fmt"

// ValidationRules select optional checks performed by Check.
type ValidationRules uint8

const (
	// RequirePacked additionally demands that every node but the last one of
	// its level is completely full, as after FromSlice or TrimExcess.
	RequirePacked ValidationRules = 1 << iota
)

// Check validates structural tree invariants:
//
//   - leaves hold between 1 and degree items, inner nodes between 1 and
//     degree children, and an inner root at least 2 children,
//   - all leaves have the same depth, and inner nodes know their item count,
//   - every node but the last one of its level is at least half full,
//   - following the level links visits the nodes of each level in order.
//
// Check is intended for tests and diagnostics; it walks the whole tree.
func (l *List[T]) Check(rules ValidationRules) error {
	if l == nil {
		return fmt.Errorf("%w: nil list", ErrInvariant)
	}
	if l.root == nil {
		if l.height != 0 {
			return fmt.Errorf("%w: empty list must have height 0", ErrInvariant)
		}
		return nil
	}
	levels := make([][]treeNode[T], 0, l.height)
	_, height, err := l.checkNode(l.root, 0, &levels)
	if err != nil {
		return err
	}
	if height != l.height {
		return fmt.Errorf("%w: height mismatch (%d != %d)", ErrInvariant, height, l.height)
	}
	if root, ok := l.root.(*innerNode[T]); ok && len(root.children) < 2 {
		return fmt.Errorf("%w: inner root with %d children", ErrInvariant, len(root.children))
	}
	for depth, level := range levels {
		if err := l.checkLevel(depth, level, rules); err != nil {
			return err
		}
	}
	return nil
}

func (l *List[T]) checkNode(n treeNode[T], depth int, levels *[][]treeNode[T]) (items int, height int, err error) {
	if n == nil {
		return 0, 0, fmt.Errorf("%w: nil node at depth %d", ErrInvariant, depth)
	}
	if depth == len(*levels) {
		*levels = append(*levels, nil)
	}
	(*levels)[depth] = append((*levels)[depth], n)
	switch n := n.(type) {
	case *leafNode[T]:
		if err := l.checkLeafStorage(n); err != nil {
			return 0, 0, err
		}
		return len(n.items), 1, nil
	case *innerNode[T]:
		if err := l.checkInnerStorage(n); err != nil {
			return 0, 0, err
		}
		var total, childHeight int
		for i, child := range n.children {
			cItems, cHeight, cErr := l.checkNode(child, depth+1, levels)
			if cErr != nil {
				return 0, 0, cErr
			}
			total += cItems
			if i == 0 {
				childHeight = cHeight
			} else if cHeight != childHeight {
				return 0, 0, fmt.Errorf("%w: non-uniform subtree heights at depth %d", ErrInvariant, depth)
			}
		}
		if total != n.total {
			return 0, 0, fmt.Errorf("%w: inner node counts %d items, holds %d", ErrInvariant, n.total, total)
		}
		return total, childHeight + 1, nil
	default:
		panic("unknown tree node type")
	}
}

// checkLevel compares the level links with the in-order node sequence of a
// level and checks occupancy bounds.
func (l *List[T]) checkLevel(depth int, level []treeNode[T], rules ValidationRules) error {
	for i, n := range level {
		last := i == len(level)-1
		next := n.nextNode()
		switch {
		case last && next != nil:
			return fmt.Errorf("%w: last node at depth %d has a successor", ErrInvariant, depth)
		case !last && next != level[i+1]:
			return fmt.Errorf("%w: broken level link at depth %d, node %d", ErrInvariant, depth, i)
		}
		if last {
			break
		}
		if n.width() < l.cfg.minFill() {
			return fmt.Errorf("%w: node %d at depth %d holds %d < %d entries", ErrInvariant,
				i, depth, n.width(), l.cfg.minFill())
		}
		if rules&RequirePacked != 0 && n.width() != l.cfg.Degree {
			return fmt.Errorf("%w: node %d at depth %d not packed (%d of %d)", ErrInvariant,
				i, depth, n.width(), l.cfg.Degree)
		}
	}
	return nil
}

// TrimExcess repacks the list so that every node but the last one of each
// level is full, removing the fragmentation left by removals and splits. It
// reports whether anything moved; a packed list is left untouched.
func (l *List[T]) TrimExcess() bool {
	if l.isPacked() {
		return false
	}
	before := l.height
	l.version++
	l.root, l.height = l.build(l.ToSlice())
	tracer().Debugf("btree: trimmed %d items, height %d → %d", l.Len(), before, l.height)
	return true
}

func (l *List[T]) isPacked() bool {
	for _, head := range l.levelHeads() {
		for n := head; n.nextNode() != nil; n = n.nextNode() {
			if n.width() != l.cfg.Degree {
				return false
			}
		}
	}
	return true
}

// levelHeads returns the leftmost node of every level, from the root down.
func (l *List[T]) levelHeads() []treeNode[T] {
	heads := make([]treeNode[T], 0, l.height)
	for n := l.root; n != nil; {
		heads = append(heads, n)
		inner, ok := n.(*innerNode[T])
		if !ok {
			break
		}
		n = inner.children[0]
	}
	return heads
}

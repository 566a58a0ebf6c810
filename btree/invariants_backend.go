package btree

import "fmt"

func (l *List[T]) checkLeafStorage(leaf *leafNode[T]) error {
	if leaf == nil {
		return fmt.Errorf("%w: nil leaf node", ErrInvariant)
	}
	if len(leaf.items) == 0 {
		return fmt.Errorf("%w: empty leaf node", ErrInvariant)
	}
	if len(leaf.items) > l.cfg.Degree {
		return fmt.Errorf("%w: leaf len exceeds degree (%d > %d)", ErrInvariant, len(leaf.items), l.cfg.Degree)
	}
	if cap(leaf.items) != l.cfg.Degree {
		return fmt.Errorf("%w: leaf storage cap mismatch (%d != %d)", ErrInvariant, cap(leaf.items), l.cfg.Degree)
	}
	return nil
}

func (l *List[T]) checkInnerStorage(inner *innerNode[T]) error {
	if inner == nil {
		return fmt.Errorf("%w: nil inner node", ErrInvariant)
	}
	if len(inner.children) == 0 {
		return fmt.Errorf("%w: inner node has no children", ErrInvariant)
	}
	if len(inner.children) > l.cfg.Degree {
		return fmt.Errorf("%w: child count exceeds degree (%d > %d)", ErrInvariant, len(inner.children), l.cfg.Degree)
	}
	if cap(inner.children) != l.cfg.Degree {
		return fmt.Errorf("%w: child storage cap mismatch (%d != %d)", ErrInvariant, cap(inner.children), l.cfg.Degree)
	}
	for i, child := range inner.children {
		if child == nil {
			return fmt.Errorf("%w: nil child at index %d", ErrInvariant, i)
		}
	}
	return nil
}

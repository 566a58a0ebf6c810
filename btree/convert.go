package btree

import "fmt"

// Convert maps every item of src through fn into a new list.
//
// The new tree mirrors the shape of src node for node: leaf occupancy and
// inner fan-out are copied, not recomputed. No node is shared between the
// lists.
func Convert[T, U any](src *List[T], fn func(T) U) (*List[U], error) {
	if src == nil || fn == nil {
		return nil, fmt.Errorf("%w: convert needs a list and a mapping function", ErrInvalidArgument)
	}
	dst := &List[U]{cfg: src.cfg, height: src.height}
	if src.root == nil {
		return dst, nil
	}
	lastAt := make([]treeNode[U], src.height)
	dst.root = convertNode(src.root, fn, src.cfg.Degree, 0, lastAt)
	return dst, nil
}

// convertNode copies subtree n at the given depth. lastAt holds the most
// recently created node of every depth, which becomes the left neighbour of
// the next node created there.
func convertNode[T, U any](n treeNode[T], fn func(T) U, degree, depth int, lastAt []treeNode[U]) treeNode[U] {
	var out treeNode[U]
	switch n := n.(type) {
	case *leafNode[T]:
		leaf := newLeaf[U](degree)
		for _, item := range n.items {
			leaf.items = append(leaf.items, fn(item))
		}
		out = leaf
	case *innerNode[T]:
		inner := newInner[U](degree)
		for _, child := range n.children {
			inner.children = append(inner.children, convertNode(child, fn, degree, depth+1, lastAt))
		}
		inner.total = n.total
		out = inner
	default:
		panic("unknown tree node type")
	}
	linkAfter(lastAt[depth], out)
	lastAt[depth] = out
	return out
}

// Clone returns a deep copy of the list with the same tree shape.
func (l *List[T]) Clone() *List[T] {
	c, err := Convert(l, func(item T) T { return item })
	assert(err == nil, "clone of a nil list")
	return c
}

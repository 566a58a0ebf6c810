package btree

// treeNode is implemented by exactly two node kinds, *leafNode and
// *innerNode. Structural code switches over both and panics on anything else.
type treeNode[T any] interface {
	isLeaf() bool
	// size is the number of items in the subtree.
	size() int
	// width is the occupancy counted against the degree: items for a leaf,
	// children for an inner node.
	width() int
	firstLeaf() *leafNode[T]
	// nextNode is the right neighbour on the same level, or nil for the last
	// node of a level.
	nextNode() treeNode[T]
}

type leafNode[T any] struct {
	// items holds the leaf's run of the sequence; cap(items) == degree.
	items []T
	// next is the leaf holding the following run. It does not own it.
	next *leafNode[T]
}

func newLeaf[T any](degree int) *leafNode[T] {
	return &leafNode[T]{items: make([]T, 0, degree)}
}

func (l *leafNode[T]) isLeaf() bool            { return true }
func (l *leafNode[T]) size() int               { return len(l.items) }
func (l *leafNode[T]) width() int              { return len(l.items) }
func (l *leafNode[T]) firstLeaf() *leafNode[T] { return l }
func (l *leafNode[T]) nextNode() treeNode[T] {
	if l.next == nil {
		return nil
	}
	return l.next
}

type innerNode[T any] struct {
	// children is owned by this node; cap(children) == degree.
	children []treeNode[T]
	// total is the number of items in all child subtrees.
	total int
	next  *innerNode[T]
}

func newInner[T any](degree int, children ...treeNode[T]) *innerNode[T] {
	inner := &innerNode[T]{children: make([]treeNode[T], 0, degree)}
	inner.children = append(inner.children, children...)
	inner.recount()
	return inner
}

func (n *innerNode[T]) isLeaf() bool            { return false }
func (n *innerNode[T]) size() int               { return n.total }
func (n *innerNode[T]) width() int              { return len(n.children) }
func (n *innerNode[T]) firstLeaf() *leafNode[T] { return n.children[0].firstLeaf() }
func (n *innerNode[T]) nextNode() treeNode[T] {
	if n.next == nil {
		return nil
	}
	return n.next
}

func (n *innerNode[T]) recount() {
	n.total = 0
	for _, child := range n.children {
		n.total += child.size()
	}
}

// route finds the child holding item position index. With inserting set, a
// position equal to the subtree size resolves to the end of the last child.
func (n *innerNode[T]) route(index int, inserting bool) (child int, local int) {
	last := len(n.children) - 1
	for i, c := range n.children {
		sz := c.size()
		if index < sz || (inserting && i == last && index == sz) {
			return i, index
		}
		index -= sz
	}
	panic("route: index exceeds subtree size")
}

// childBases returns the position of each child's first item, relative to
// the start of n.
func (n *innerNode[T]) childBases() []int {
	bases := make([]int, len(n.children)+1)
	for i, c := range n.children {
		bases[i+1] = bases[i] + c.size()
	}
	return bases
}

// linkAfter makes succ the level neighbour of pred.
func linkAfter[T any](pred, succ treeNode[T]) {
	switch p := pred.(type) {
	case nil:
	case *leafNode[T]:
		if succ == nil {
			p.next = nil
		} else {
			p.next = succ.(*leafNode[T])
		}
	case *innerNode[T]:
		if succ == nil {
			p.next = nil
		} else {
			p.next = succ.(*innerNode[T])
		}
	default:
		panic("unknown tree node type")
	}
}

// itemAt descends from n to the item at local position index.
func itemAt[T any](n treeNode[T], index int) T {
	leaf, local := locateIn(n, index)
	return leaf.items[local]
}

func locateIn[T any](n treeNode[T], index int) (*leafNode[T], int) {
	for {
		switch node := n.(type) {
		case *leafNode[T]:
			assert(index >= 0 && index < len(node.items), "locate index outside leaf")
			return node, index
		case *innerNode[T]:
			var i int
			i, index = node.route(index, false)
			n = node.children[i]
		default:
			panic("unknown tree node type")
		}
	}
}

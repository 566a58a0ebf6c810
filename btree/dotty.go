package btree

import (
	"fmt"
	"io"
	"strings"
)

type nodeids[T any] struct {
	idTable map[treeNode[T]]int
	max     int
}

func newtable[T any]() nodeids[T] {
	return nodeids[T]{
		idTable: make(map[treeNode[T]]int),
		max:     1,
	}
}

func (ids *nodeids[T]) alloc(node treeNode[T]) int {
	if id := ids.idTable[node]; id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// ToDot outputs the internal structure of a list in Graphviz DOT format
// (for debugging purposes). Solid edges are ownership, dashed edges are
// level links.
func (l *List[T]) ToDot(w io.Writer) error {
	var b strings.Builder
	b.WriteString("strict digraph {\n")
	b.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable[T]()
	var nodelist, edgelist strings.Builder
	var walk func(n treeNode[T], pos int)
	walk = func(n treeNode[T], pos int) {
		ID := ids.alloc(n)
		if next := n.nextNode(); next != nil {
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\" [style=dashed,constraint=false];\n", ID, ids.alloc(next))
		}
		switch n := n.(type) {
		case *leafNode[T]:
			label := fmt.Sprintf("%d @%d\\n%s", len(n.items), pos, leafstart(n))
			fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", ID, label, nodeDotStyles(true))
		case *innerNode[T]:
			fmt.Fprintf(&nodelist, "\"%d\" [label=%d %s];\n", ID, n.total, nodeDotStyles(false))
			for _, child := range n.children {
				fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, ids.alloc(child))
				walk(child, pos)
				pos += child.size()
			}
		default:
			panic("unknown tree node type")
		}
	}
	if l.root != nil {
		walk(l.root, 0)
	}
	b.WriteString(nodelist.String())
	b.WriteString(edgelist.String())
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	if err != nil {
		tracer().Errorf("list DOT: %s", err.Error())
	}
	return err
}

// leafstart renders the first few items of a leaf as a node label.
func leafstart[T any](leaf *leafNode[T]) string {
	const shown = 4
	parts := make([]string, 0, shown+1)
	for i, item := range leaf.items {
		if i == shown {
			parts = append(parts, "…")
			break
		}
		parts = append(parts, fmt.Sprintf("%v", item))
	}
	s := "“" + strings.Join(parts, ",") + "”"
	return strings.ReplaceAll(s, "\"", "\\\"")
}

func nodeDotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	return s
}

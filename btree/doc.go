/*
Package btree provides an indexable, ordered sequence backed by a B+ tree.

The sequence behaves like a slice, but inserting or removing at an arbitrary
position costs O(log N) instead of O(N). Items live in leaves of a fixed
capacity (the degree, or branching factor); inner nodes route positional
lookups by the item count of their subtrees. All leaves are chained left to
right, and every inner level is chained the same way, which makes sequential
scans and sibling repairs cheap.

Package overview:
  - distinct `leafNode` and `innerNode` representations behind a closed `treeNode` interface,
  - tail appends chain a new leaf instead of splitting a full one,
  - true splits keep both halves at least half full, for odd degrees as well,
  - removals repair underfull nodes by merging with or borrowing from a sibling,
  - a version counter guards enumerators against structural mutation,
  - span-scoped binary search, find, find-last and sort,
  - structural conversion to a mirrored tree of another item type,
  - an invariant checker (`Check`) and a Graphviz dump (`ToDot`) for diagnostics.

A List is not safe for concurrent mutation. Any number of enumerators may read
a list concurrently, as long as no goroutine mutates it in the meantime.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package btree

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'bplist'
func tracer() tracing.Trace {
	return tracing.Select("bplist")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}

/*
Package sortedlist provides a sorted sequence which permits duplicates.

A List keeps its items ordered by a comparison function, where items ranking
equal form a run of adjacent positions. New items are inserted behind the run
of their equals, so insertion order is kept within a run. Storage is a
btree.List, which makes insertion and removal at any position O(log N).

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package sortedlist

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bplist'
func tracer() tracing.Trace {
	return tracing.Select("bplist")
}

/*
Package sets provides sets on top of sorted B+ tree sequences.

Two variants share one implementation of the set algebra:

  - OrderedSet keeps its elements sorted by a Comparer.
  - HashSet keeps (hash, element) pairs sorted by hash. Elements with
    colliding hashes form a run, which is searched with the equality function
    of an EqualityComparer.

Set operations take any Collection as operand. If the operand is a set of the
same variant using the same comparer, both sorted sequences are merged in a
single linear pass. Otherwise every element of the operand is looked up in
the receiver, and a bitset with one bit per receiver position records which
elements have been matched, so that duplicates in the operand are counted once.

Sets are not safe for concurrent mutation.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package sets

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bplist'
func tracer() tracing.Trace {
	return tracing.Select("bplist")
}

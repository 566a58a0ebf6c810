package sets

import (
	"cmp"
	"fmt"

	"github.com/npillmayer/bplist/btree"
	"github.com/npillmayer/bplist/sortedlist"
)

// hashed is the stored form of a HashSet element.
type hashed[T any] struct {
	hash  uint64
	value T
}

func byHash[T any](a, b hashed[T]) int {
	return cmp.Compare(a.hash, b.hash)
}

// HashSet is a set of elements sorted by their hash. Lookups binary search
// for the run of elements sharing a hash and compare within the run.
type HashSet[T any] struct {
	setCore[T, hashed[T]]
	equality *EqualityComparer[T]
}

// NewHash creates an empty set using eq for hashing and equality.
func NewHash[T any](eq *EqualityComparer[T], cfg btree.Config) (*HashSet[T], error) {
	if eq == nil || eq.equal == nil || eq.hash == nil {
		return nil, fmt.Errorf("%w: equality comparer is incomplete", btree.ErrInvalidArgument)
	}
	items, err := sortedlist.New(byHash[T], cfg)
	if err != nil {
		return nil, err
	}
	s := &HashSet[T]{equality: eq}
	s.setCore = setCore[T, hashed[T]]{
		items:    items,
		comparer: eq,
		entry:    func(v T) hashed[T] { return hashed[T]{hash: eq.hash(v), value: v} },
		value:    func(e hashed[T]) T { return e.value },
		eq:       eq.equal,
	}
	return s, nil
}

// HashFrom creates a set using eq holding the elements of values. Of equal
// elements, the first one is kept.
func HashFrom[T any](eq *EqualityComparer[T], cfg btree.Config, values Collection[T]) (*HashSet[T], error) {
	s, err := NewHash(eq, cfg)
	if err != nil {
		return nil, err
	}
	if values != nil {
		s.UnionWith(values)
	}
	return s, nil
}

// Comparer returns the equality comparer of the set.
func (s *HashSet[T]) Comparer() *EqualityComparer[T] {
	return s.equality
}

// Check validates the set and verifies the stored hashes.
func (s *HashSet[T]) Check(rules btree.ValidationRules) error {
	if err := s.setCore.Check(rules); err != nil {
		return err
	}
	for i, e := range s.items.All() {
		if e.hash != s.equality.hash(e.value) {
			return fmt.Errorf("%w: stale hash at %d", btree.ErrInvariant, i)
		}
	}
	return nil
}

// Clone returns a copy of the set using the same comparer.
func (s *HashSet[T]) Clone() *HashSet[T] {
	c := &HashSet[T]{setCore: s.setCore, equality: s.equality}
	c.items = s.items.Clone()
	return c
}

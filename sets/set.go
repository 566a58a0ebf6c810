package sets

// Set is the common interface of OrderedSet and HashSet.
type Set[T any] interface {
	Collection[T]
	Len() int
	Add(v T) bool
	Remove(v T) bool
	Contains(v T) bool
	TryGetValue(v T) (T, bool)
	Clear()
	UnionWith(other Collection[T])
	IntersectWith(other Collection[T])
	ExceptWith(other Collection[T])
	SymmetricExceptWith(other Collection[T])
	IsSubsetOf(other Collection[T]) bool
	IsProperSubsetOf(other Collection[T]) bool
	IsSupersetOf(other Collection[T]) bool
	IsProperSupersetOf(other Collection[T]) bool
	Overlaps(other Collection[T]) bool
	SetEquals(other Collection[T]) bool
	ToSlice() []T
}

var (
	_ Set[int] = (*OrderedSet[int])(nil)
	_ Set[int] = (*HashSet[int])(nil)
)

// SetComparer returns an EqualityComparer comparing sets by content. A set's
// hash is the sum of its element hashes under elem, which is independent of
// element order. Equality is decided by SetEquals of the first set.
func SetComparer[T any](elem *EqualityComparer[T]) *EqualityComparer[Set[T]] {
	return &EqualityComparer[Set[T]]{
		equal: func(a, b Set[T]) bool {
			if a == nil || b == nil {
				return a == nil && b == nil
			}
			return a.SetEquals(b)
		},
		hash: func(s Set[T]) uint64 {
			var h uint64
			if s == nil {
				return h
			}
			for v := range s.Values() {
				h += elem.hash(v)
			}
			return h
		},
	}
}

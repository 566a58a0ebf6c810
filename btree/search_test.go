package btree

import (
	"cmp"
	"errors"
	"math/rand"
	"slices"
	"testing"
)

// sortedWithDuplicates returns n ascending values where most values repeat.
func sortedWithDuplicates(rnd *rand.Rand, n int) []int {
	out := make([]int, n)
	v := 0
	for i := range out {
		if rnd.Intn(3) == 0 {
			v += rnd.Intn(3)
		}
		out[i] = v
	}
	return out
}

func TestBinarySearchMatchesSliceSearch(t *testing.T) {
	rnd := rand.New(rand.NewSource(41))
	for _, degree := range []int{2, 3, 4, 7, 12} {
		items := sortedWithDuplicates(rnd, 200)
		l, err := FromSlice(Config{Degree: degree}, items)
		if err != nil {
			t.Fatalf("FromSlice failed: %v", err)
		}
		for range 300 {
			start := rnd.Intn(len(items) + 1)
			count := rnd.Intn(len(items) - start + 1)
			target := rnd.Intn(items[len(items)-1] + 3) - 1
			window := items[start : start+count]
			wantPos, wantFound := slices.BinarySearchFunc(window, target, cmp.Compare[int])
			pos, found, err := l.BinarySearchIn(NewSpan(start, count), target, cmp.Compare[int])
			if err != nil {
				t.Fatalf("BinarySearchIn failed: %v", err)
			}
			if pos != start+wantPos || found != wantFound {
				t.Fatalf("degree %d span [%d,%d) target %d: got (%d,%v), want (%d,%v)",
					degree, start, start+count, target, pos, found, start+wantPos, wantFound)
			}
		}
	}
}

func TestBinarySearchFindsRunBoundaries(t *testing.T) {
	items := []int{1, 1, 2, 3, 3, 3, 3, 3, 4, 9}
	l, err := FromSlice(Config{Degree: 3}, items)
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	if pos, found := l.BinarySearch(3, cmp.Compare[int]); pos != 3 || !found {
		t.Fatalf("lower bound of 3: got (%d,%v)", pos, found)
	}
	// strictly-greater comparison yields the position behind the run
	above := func(elem, target int) int {
		if elem > target {
			return 1
		}
		return -1
	}
	if pos, _ := l.BinarySearch(3, above); pos != 8 {
		t.Fatalf("upper bound of 3: got %d", pos)
	}
	if pos, found := l.BinarySearch(5, cmp.Compare[int]); pos != 9 || found {
		t.Fatalf("search for absent 5: got (%d,%v)", pos, found)
	}
	if pos, found := l.BinarySearch(10, cmp.Compare[int]); pos != 10 || found {
		t.Fatalf("search past the end: got (%d,%v)", pos, found)
	}
}

func TestBinarySearchErrors(t *testing.T) {
	l, err := FromSlice(Config{Degree: 4}, intRange(0, 10))
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	if _, _, err := l.BinarySearchIn(NewSpan(5, 6), 3, cmp.Compare[int]); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("expected ErrIndexOutOfBounds, got %v", err)
	}
	if _, _, err := l.BinarySearchIn(NewSpan(0, 3), 3, nil); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	pos, found, err := l.BinarySearchIn(NewSpan(4, 0), 3, cmp.Compare[int])
	if err != nil || pos != 4 || found {
		t.Fatalf("empty span search: got (%d,%v,%v)", pos, found, err)
	}
	empty := newIntList(t, 4)
	if pos, found := empty.BinarySearch(1, cmp.Compare[int]); pos != 0 || found {
		t.Fatalf("search in empty list: got (%d,%v)", pos, found)
	}
}

func TestFindIndexAndFindLastIndex(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	items := make([]int, 120)
	for i := range items {
		items[i] = rnd.Intn(15)
	}
	for _, degree := range []int{2, 5, 12} {
		l, err := FromSlice(Config{Degree: degree}, items)
		if err != nil {
			t.Fatalf("FromSlice failed: %v", err)
		}
		for range 200 {
			start := rnd.Intn(len(items) + 1)
			count := rnd.Intn(len(items) - start + 1)
			target := rnd.Intn(16)
			match := func(x int) bool { return x == target }
			window := items[start : start+count]

			want := slices.IndexFunc(window, match)
			if want >= 0 {
				want += start
			}
			got, err := l.FindIndexIn(NewSpan(start, count), match)
			if err != nil || got != want {
				t.Fatalf("FindIndexIn [%d,%d) %d: got %d (%v), want %d", start, start+count, target, got, err, want)
			}

			wantLast := -1
			for i := len(window) - 1; i >= 0; i-- {
				if window[i] == target {
					wantLast = start + i
					break
				}
			}
			gotLast, err := l.FindLastIndexIn(NewSpan(start, count), match)
			if err != nil || gotLast != wantLast {
				t.Fatalf("FindLastIndexIn [%d,%d) %d: got %d (%v), want %d", start, start+count, target,
					gotLast, err, wantLast)
			}
		}
		if l.FindIndex(func(x int) bool { return x < 0 }) != -1 {
			t.Fatalf("FindIndex should report -1 for no match")
		}
		if l.FindLastIndex(func(x int) bool { return x < 0 }) != -1 {
			t.Fatalf("FindLastIndex should report -1 for no match")
		}
	}
	l := newIntList(t, 4)
	if _, err := l.FindIndexIn(NewSpan(0, 0), nil); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

type keyed struct {
	key, seq int
}

func TestSortIsStable(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	items := make([]keyed, 90)
	for i := range items {
		items[i] = keyed{key: rnd.Intn(8), seq: i}
	}
	l, err := FromSlice(Config{Degree: 4}, items)
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	byKey := func(a, b keyed) int { return cmp.Compare(a.key, b.key) }
	version := l.Version()
	if err := l.Sort(byKey); err != nil {
		t.Fatalf("Sort failed: %v", err)
	}
	if l.Version() != version+1 {
		t.Fatalf("expected sorting to bump the version once, got %d → %d", version, l.Version())
	}
	want := slices.Clone(items)
	slices.SortStableFunc(want, byKey)
	if got := l.ToSlice(); !slices.Equal(got, want) {
		t.Fatalf("sort is not stable:\n got=%v\nwant=%v", got, want)
	}
	if err := l.Check(0); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
}

func TestSortSpanLeavesOutsideUntouched(t *testing.T) {
	model := []int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}
	l, err := FromSlice(Config{Degree: 3}, model)
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	if err := l.SortSpan(NewSpan(2, 5), cmp.Compare[int]); err != nil {
		t.Fatalf("SortSpan failed: %v", err)
	}
	assertMatchesModel(t, l, []int{9, 8, 3, 4, 5, 6, 7, 2, 1, 0})
	version := l.Version()
	if err := l.SortSpan(NewSpan(4, 1), cmp.Compare[int]); err != nil {
		t.Fatalf("SortSpan failed: %v", err)
	}
	if l.Version() != version {
		t.Fatalf("sorting a single item must not bump the version")
	}
	if err := l.SortSpan(NewSpan(8, 3), cmp.Compare[int]); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("expected ErrIndexOutOfBounds, got %v", err)
	}
	if err := l.Sort(nil); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestSpanIntersect(t *testing.T) {
	a, b := NewSpan(2, 5), NewSpan(4, 10)
	if got := a.Intersect(b); got != NewSpan(4, 3) {
		t.Fatalf("intersection %v", got)
	}
	if got := a.Intersect(NewSpan(9, 2)); !got.IsEmpty() || got.Start() != 9 {
		t.Fatalf("disjoint intersection %v", got)
	}
	if !a.Contains(6) || a.Contains(7) {
		t.Fatalf("containment of %v is wrong", a)
	}
	if a.Shift(3) != NewSpan(5, 5) {
		t.Fatalf("shift of %v is wrong", a)
	}
}

package btree

import (
	"cmp"
	"errors"
	"slices"
	"testing"
)

func TestEnumeratorVisitsAllItems(t *testing.T) {
	for _, degree := range []int{2, 3, 4, 12} {
		l, err := FromSlice(Config{Degree: degree}, intRange(0, 57))
		if err != nil {
			t.Fatalf("FromSlice failed: %v", err)
		}
		e := l.Enumerator()
		var got []int
		for e.Next() {
			if e.Index() != len(got) {
				t.Fatalf("index %d reported for item #%d", e.Index(), len(got))
			}
			got = append(got, e.Item())
		}
		if err := e.Err(); err != nil {
			t.Fatalf("unexpected enumerator error: %v", err)
		}
		if !slices.Equal(got, intRange(0, 57)) {
			t.Fatalf("degree %d: enumerated %v", degree, got)
		}
		if e.Next() {
			t.Fatalf("exhausted enumerator advanced again")
		}
	}
}

func TestEnumeratorSpan(t *testing.T) {
	l, err := FromSlice(Config{Degree: 3}, intRange(0, 20))
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	e, err := l.EnumeratorSpan(NewSpan(5, 8))
	if err != nil {
		t.Fatalf("EnumeratorSpan failed: %v", err)
	}
	var got []int
	for e.Next() {
		got = append(got, e.Item())
	}
	if !slices.Equal(got, intRange(5, 13)) {
		t.Fatalf("span enumeration yielded %v", got)
	}
	if _, err := l.EnumeratorSpan(NewSpan(15, 6)); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("expected ErrIndexOutOfBounds, got %v", err)
	}
	empty := newIntList(t, 4)
	if e := empty.Enumerator(); e.Next() || e.Err() != nil {
		t.Fatalf("enumerator over empty list produced an item or an error")
	}
}

func TestEnumeratorDetectsStructuralChange(t *testing.T) {
	l, err := FromSlice(Config{Degree: 4}, intRange(0, 10))
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	e := l.Enumerator()
	if !e.Next() || !e.Next() {
		t.Fatalf("expected two items")
	}
	l.Append(10)
	if e.Next() {
		t.Fatalf("stale enumerator advanced")
	}
	if !errors.Is(e.Err(), ErrStaleEnumerator) {
		t.Fatalf("expected ErrStaleEnumerator, got %v", e.Err())
	}
	if e.Next() {
		t.Fatalf("failed enumerator must stay failed")
	}
	e.Reset()
	if e.Err() != nil {
		t.Fatalf("Reset should clear the error")
	}
	n := 0
	for e.Next() {
		n++
	}
	if n != 10 {
		t.Fatalf("reset enumerator keeps its original span, visited %d items", n)
	}
}

func TestEnumeratorResetClipsSpan(t *testing.T) {
	l, err := FromSlice(Config{Degree: 4}, intRange(0, 10))
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	e := l.Enumerator()
	if err := l.RemoveRange(6, 4); err != nil {
		t.Fatalf("RemoveRange failed: %v", err)
	}
	e.Reset()
	var got []int
	for e.Next() {
		got = append(got, e.Item())
	}
	if e.Err() != nil || !slices.Equal(got, intRange(0, 6)) {
		t.Fatalf("clipped enumeration yielded %v (%v)", got, e.Err())
	}
}

func TestSetAndReadsKeepEnumeratorValid(t *testing.T) {
	l, err := FromSlice(Config{Degree: 4}, intRange(0, 10))
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	version := l.Version()
	e := l.Enumerator()
	var got []int
	for e.Next() {
		if err := l.Set(e.Index(), e.Item()*10); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		_, _ = l.At(e.Index())
		_ = l.FindIndex(func(x int) bool { return x == 3 })
		got = append(got, e.Item())
	}
	if e.Err() != nil {
		t.Fatalf("Set invalidated the enumerator: %v", e.Err())
	}
	if !slices.Equal(got, intRange(0, 10)) {
		t.Fatalf("enumerated %v", got)
	}
	if l.Version() != version {
		t.Fatalf("reads and Set bumped the version")
	}
	if x, _ := l.At(9); x != 90 {
		t.Fatalf("Set did not replace the item, found %d", x)
	}
}

func TestSortInvalidatesEnumerator(t *testing.T) {
	l, err := FromSlice(Config{Degree: 3}, []int{4, 3, 2, 1, 0})
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	e := l.Enumerator()
	if !e.Next() || e.Item() != 4 {
		t.Fatalf("expected first item 4")
	}
	if err := l.Sort(cmp.Compare[int]); err != nil {
		t.Fatalf("Sort failed: %v", err)
	}
	if e.Next() {
		t.Fatalf("enumerator kept running after the list was sorted, yielding %d", e.Item())
	}
	if !errors.Is(e.Err(), ErrStaleEnumerator) {
		t.Fatalf("expected ErrStaleEnumerator, got %v", e.Err())
	}
}

func TestAllPanicsOnStaleUse(t *testing.T) {
	l, err := FromSlice(Config{Degree: 4}, intRange(0, 10))
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrStaleEnumerator) {
			t.Fatalf("expected panic with ErrStaleEnumerator, got %v", r)
		}
	}()
	for i := range l.All() {
		if i == 3 {
			l.Append(99)
		}
	}
	t.Fatalf("loop over a modified list completed")
}

func TestIterators(t *testing.T) {
	l, err := FromSlice(Config{Degree: 3}, intRange(0, 14))
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	if got := slices.Collect(l.Values()); !slices.Equal(got, intRange(0, 14)) {
		t.Fatalf("Values yielded %v", got)
	}
	var back []int
	for i, x := range l.Backward() {
		if i != x {
			t.Fatalf("Backward pairs index %d with %d", i, x)
		}
		back = append(back, x)
	}
	want := intRange(0, 14)
	slices.Reverse(want)
	if !slices.Equal(back, want) {
		t.Fatalf("Backward yielded %v", back)
	}
	var firstFive []int
	l.ForEachItem(func(x int) bool {
		firstFive = append(firstFive, x)
		return len(firstFive) < 5
	})
	if !slices.Equal(firstFive, intRange(0, 5)) {
		t.Fatalf("ForEachItem did not stop early: %v", firstFive)
	}
	for i := range l.All() {
		if i == 2 {
			break
		}
	}
}

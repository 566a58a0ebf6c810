package btree

import (
	"math/rand"
	"slices"
	"strconv"
	"testing"
)

type opKind uint8

const (
	opInsert opKind = iota
	opAppend
	opRemove
	opRemoveRange
	opInsertRange
	opSet
	opTrim
	opKinds
)

// applyRandomOp performs one random operation on both the list and a slice
// model and returns the updated model.
func applyRandomOp(t *testing.T, rnd *rand.Rand, l *List[int], model []int, next *int) []int {
	t.Helper()
	op := opKind(rnd.Intn(int(opKinds)))
	if len(model) == 0 && (op == opRemove || op == opRemoveRange || op == opSet) {
		op = opInsert
	}
	*next++
	switch op {
	case opInsert:
		pos := rnd.Intn(len(model) + 1)
		if err := l.Insert(pos, *next); err != nil {
			t.Fatalf("Insert(%d) failed: %v", pos, err)
		}
		return slices.Insert(model, pos, *next)
	case opAppend:
		l.Append(*next)
		return append(model, *next)
	case opRemove:
		pos := rnd.Intn(len(model))
		if err := l.RemoveAt(pos); err != nil {
			t.Fatalf("RemoveAt(%d) failed: %v", pos, err)
		}
		return slices.Delete(model, pos, pos+1)
	case opRemoveRange:
		pos := rnd.Intn(len(model))
		count := rnd.Intn(min(len(model)-pos, 9) + 1)
		if err := l.RemoveRange(pos, count); err != nil {
			t.Fatalf("RemoveRange(%d,%d) failed: %v", pos, count, err)
		}
		return slices.Delete(model, pos, pos+count)
	case opInsertRange:
		pos := rnd.Intn(len(model) + 1)
		items := make([]int, rnd.Intn(30))
		for i := range items {
			items[i] = *next*100 + i
		}
		if err := l.InsertRange(pos, items...); err != nil {
			t.Fatalf("InsertRange(%d, #%d) failed: %v", pos, len(items), err)
		}
		return slices.Insert(model, pos, items...)
	case opSet:
		pos := rnd.Intn(len(model))
		if err := l.Set(pos, -*next); err != nil {
			t.Fatalf("Set(%d) failed: %v", pos, err)
		}
		model[pos] = -*next
		return model
	case opTrim:
		l.TrimExcess()
		if err := l.Check(RequirePacked); err != nil {
			t.Fatalf("list not packed after TrimExcess: %v", err)
		}
		return model
	}
	panic("unknown operation")
}

func TestRandomOperationsMatchModel(t *testing.T) {
	for _, degree := range []int{2, 3, 4, 5, 7, 12} {
		t.Run("degree="+strconv.Itoa(degree), func(t *testing.T) {
			rnd := rand.New(rand.NewSource(int64(degree) * 1009))
			l := newIntList(t, degree)
			var model []int
			next := 0
			for step := range 1500 {
				model = applyRandomOp(t, rnd, l, model, &next)
				if l.Len() != len(model) {
					t.Fatalf("step %d: length %d, model %d", step, l.Len(), len(model))
				}
				if err := l.Check(0); err != nil {
					t.Fatalf("step %d: %v", step, err)
				}
				if step%50 == 0 {
					assertMatchesModel(t, l, model)
				}
			}
			assertMatchesModel(t, l, model)
			for l.Len() > 0 {
				pos := rnd.Intn(l.Len())
				if err := l.RemoveAt(pos); err != nil {
					t.Fatalf("RemoveAt failed: %v", err)
				}
				model = slices.Delete(model, pos, pos+1)
				if err := l.Check(0); err != nil {
					t.Fatalf("draining: %v", err)
				}
			}
			assertMatchesModel(t, l, model)
			if l.Height() != 0 {
				t.Fatalf("drained list has height %d", l.Height())
			}
		})
	}
}

func FuzzListOperations(f *testing.F) {
	f.Add(int64(1), uint8(4), uint16(200))
	f.Add(int64(99), uint8(2), uint16(500))
	f.Add(int64(-7), uint8(5), uint16(50))
	f.Fuzz(func(t *testing.T, seed int64, degree uint8, steps uint16) {
		d := int(degree)%16 + MinDegree
		l := newIntList(t, d)
		rnd := rand.New(rand.NewSource(seed))
		var model []int
		next := 0
		for range int(steps) % 1000 {
			model = applyRandomOp(t, rnd, l, model, &next)
			if err := l.Check(0); err != nil {
				t.Fatalf("degree %d: %v", d, err)
			}
		}
		assertMatchesModel(t, l, model)
	})
}

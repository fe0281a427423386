package list

import (
	"testing"

	"primcoll/interface/collection"
)

func TestViewAliasing(t *testing.T) {
	l := NewArrayListOf[int32](0, 1, 2, 3, 4, 5)
	view, err := l.SubList(1, 4)
	if err != nil {
		t.Fatal(err)
	}
	mustEqual[int32](t, view, 1, 2, 3)

	_, _ = view.Set(0, 10)
	mustEqual[int32](t, l, 0, 10, 2, 3, 4, 5)
	_, _ = l.Set(3, 30)
	mustEqual[int32](t, view, 10, 2, 30)

	if err := view.Add(7); err != nil {
		t.Fatal(err)
	}
	mustEqual[int32](t, view, 10, 2, 30, 7)
	mustEqual[int32](t, l, 0, 10, 2, 30, 7, 4, 5)

	v, err := view.RemoveAt(1)
	if err != nil || v != 2 {
		t.Fatalf("remove at returned %d, %v", v, err)
	}
	mustEqual[int32](t, l, 0, 10, 30, 7, 4, 5)

	if err := view.Clear(); err != nil {
		t.Fatal(err)
	}
	if !view.IsEmpty() {
		t.Fatal("view should be empty")
	}
	mustEqual[int32](t, l, 0, 4, 5)
}

func TestViewBounds(t *testing.T) {
	l := NewArrayListOf[int32](0, 1, 2, 3)
	for _, r := range [][2]int{{-1, 2}, {1, 5}, {3, 2}} {
		_, err := l.SubList(r[0], r[1])
		mustFail(t, err, collection.ErrIndexOutOfBounds)
	}
	view, _ := l.SubList(1, 3)
	_, err := view.Get(2)
	mustFail(t, err, collection.ErrIndexOutOfBounds)
	mustFail(t, view.Insert(3, 1), collection.ErrIndexOutOfBounds)
	_, err = view.ToArrayRange(0, 3)
	mustFail(t, err, collection.ErrIndexOutOfBounds)
	empty, _ := l.SubList(2, 2)
	_, err = empty.First()
	mustFail(t, err, collection.ErrIndexOutOfBounds)
}

func TestNestedView(t *testing.T) {
	l := NewArrayListOf[int16](0, 1, 2, 3, 4, 5, 6, 7)
	outer, _ := l.SubList(1, 7)
	inner, _ := outer.SubList(2, 4)
	mustEqual[int16](t, inner, 3, 4)

	_ = inner.Insert(1, 99)
	mustEqual[int16](t, inner, 3, 99, 4)
	mustEqual[int16](t, outer, 1, 2, 3, 99, 4, 5, 6)
	mustEqual[int16](t, l, 0, 1, 2, 3, 99, 4, 5, 6, 7)

	_, _ = inner.AddAll([]int16{50, 51})
	if outer.Size() != 9 || inner.Size() != 5 {
		t.Fatalf("sizes outer=%d inner=%d", outer.Size(), inner.Size())
	}
	_, _ = inner.RemoveAll([]int16{99, 50})
	mustEqual[int16](t, inner, 3, 4, 51)
	mustEqual[int16](t, outer, 1, 2, 3, 4, 51, 5, 6)
	_, _ = inner.RetainAll([]int16{4})
	mustEqual[int16](t, outer, 1, 2, 4, 5, 6)
	changed, _ := inner.Remove(4)
	if !changed || !inner.IsEmpty() {
		t.Fatal("remove through nested view failed")
	}
	mustEqual[int16](t, l, 0, 1, 2, 5, 6, 7)
}

func TestViewQueries(t *testing.T) {
	l := NewArrayListOf[int64](5, 1, 2, 1, 2, 5)
	view, _ := l.SubList(1, 5)
	if view.IndexOf(2) != 1 || view.LastIndexOf(2) != 3 || view.IndexOf(5) != -1 {
		t.Fatal("unexpected view index")
	}
	if view.IndexOfFrom(1, 1) != 2 || view.LastIndexOfFrom(1, 1) != 0 {
		t.Fatal("unexpected view index from")
	}
	if !view.Contains(1) || view.Contains(5) || !view.ContainsAll([]int64{1, 2}) {
		t.Fatal("unexpected view membership")
	}
	arr := view.ToArray()
	arr[0] = 100
	mustEqual[int64](t, view, 1, 2, 1, 2)
	if view.HashCode() != NewArrayListOf[int64](1, 2, 1, 2).HashCode() {
		t.Fatal("view hash differs from equal list")
	}
	if !NewArrayListOf[int64](1, 2, 1, 2).Equals(view) {
		t.Fatal("list should equal matching view")
	}
	first, _ := view.First()
	last, _ := view.Last()
	if first != 1 || last != 2 {
		t.Fatalf("first=%d last=%d", first, last)
	}
	if view.String() != "[1, 2, 1, 2]" {
		t.Fatalf("got %s", view)
	}

	it := view.ListIterator()
	_, _ = it.Next()
	_ = it.Remove()
	mustEqual[int64](t, l, 5, 2, 1, 2, 5)
}

func TestViewConcurrentModification(t *testing.T) {
	l := NewArrayListOf[int32](0, 1, 2, 3)
	view, _ := l.SubList(2, 4)
	_, _ = l.RemoveRange(0, 2)
	_, err := view.Get(0)
	mustFail(t, err, collection.ErrConcurrentModification)
	mustFail(t, view.Add(1), collection.ErrConcurrentModification)
	mustEqual[int32](t, l, 2, 3)
}

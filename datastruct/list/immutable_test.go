package list

import (
	"testing"

	"primcoll/interface/collection"
)

func TestEmptyListSingleton(t *testing.T) {
	if EmptyList[int32]() != EmptyList[int32]() {
		t.Fatal("empty list should be a singleton")
	}
	if ImmutableOf[float64]() != EmptyList[float64]() {
		t.Fatal("immutable of nothing should be the empty singleton")
	}
	if EmptyList[bool]().Size() != 0 || NewArrayList[uint16]().Freeze() != EmptyList[uint16]() {
		t.Fatal("unexpected empty list")
	}
}

func TestImmutableRejectsMutation(t *testing.T) {
	l := ImmutableOf[int32](1, 2, 3)
	mutations := map[string]func() error{
		"set": func() error {
			_, err := l.Set(0, 9)
			return err
		},
		"add": func() error {
			return l.Add(4)
		},
		"insert": func() error {
			return l.Insert(0, 4)
		},
		"add all": func() error {
			_, err := l.AddAll([]int32{4})
			return err
		},
		"insert all": func() error {
			_, err := l.InsertAll(0, []int32{4})
			return err
		},
		"remove at": func() error {
			_, err := l.RemoveAt(0)
			return err
		},
		"remove": func() error {
			_, err := l.Remove(1)
			return err
		},
		"remove range": func() error {
			_, err := l.RemoveRange(0, 1)
			return err
		},
		"remove all": func() error {
			_, err := l.RemoveAll([]int32{1})
			return err
		},
		"retain all": func() error {
			_, err := l.RetainAll([]int32{1})
			return err
		},
		"clear": l.Clear,
	}
	for name, mutate := range mutations {
		if err := mutate(); err == nil {
			t.Errorf("%s: expected error", name)
		} else {
			mustFail(t, err, collection.ErrUnsupportedOperation)
		}
		mustEqual[int32](t, l, 1, 2, 3)
	}
	mustFail(t, EmptyList[int32]().Clear(), collection.ErrUnsupportedOperation)
}

func TestImmutableReads(t *testing.T) {
	l := ImmutableOf[int16](4, 5, 6, 5)
	if l.Clone() != l {
		t.Fatal("clone of immutable list should be itself")
	}
	if v, _ := l.Get(2); v != 6 {
		t.Fatalf("get returned %d", v)
	}
	_, err := l.Get(4)
	mustFail(t, err, collection.ErrIndexOutOfBounds)
	if l.IndexOf(5) != 1 || l.LastIndexOf(5) != 3 || !l.Contains(6) || !l.ContainsAll([]int16{4, 6}) {
		t.Fatal("unexpected query result")
	}
	sub, err := l.SubList(1, 3)
	if err != nil {
		t.Fatal(err)
	}
	mustEqual[int16](t, sub, 5, 6)
	mustFail(t, sub.Add(1), collection.ErrUnsupportedOperation)
	if empty, _ := l.SubList(2, 2); empty != collection.List[int16](EmptyList[int16]()) {
		t.Fatal("empty sub list should be the empty singleton")
	}

	m := l.Mutable()
	_ = m.Add(7)
	mustEqual[int16](t, l, 4, 5, 6, 5)
	mustEqual[int16](t, m, 4, 5, 6, 5, 7)

	raw := []int16{1, 2}
	copied := ImmutableOf(raw...)
	raw[0] = 9
	mustEqual[int16](t, copied, 1, 2)
	if copied.HashCode() != NewArrayListOf[int16](1, 2).HashCode() || copied.String() != "[1, 2]" {
		t.Fatal("immutable list should hash and print like an equal array list")
	}
}

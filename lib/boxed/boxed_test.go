package boxed

import (
	"math"
	"testing"

	"github.com/pkg/errors"

	"primcoll/interface/collection"
)

func TestKindOf(t *testing.T) {
	cases := []struct {
		kind     Kind
		expected string
	}{
		{KindOf[bool](), "boolean"},
		{KindOf[int8](), "byte"},
		{KindOf[uint16](), "char"},
		{KindOf[int16](), "short"},
		{KindOf[int32](), "int"},
		{KindOf[int64](), "long"},
		{KindOf[float32](), "float"},
		{KindOf[float64](), "double"},
	}
	for _, c := range cases {
		if c.kind.String() != c.expected {
			t.Errorf("expected %s but got %s", c.expected, c.kind)
		}
		parsed, err := ParseKind(c.expected)
		if err != nil || parsed != c.kind {
			t.Errorf("parse %s returned %v, %v", c.expected, parsed, err)
		}
	}
	if _, err := ParseKind("invalid"); err == nil {
		t.Fatal("invalid should not parse")
	}
	if Kind(42).String() != "Kind(42)" {
		t.Fatalf("got %s", Kind(42))
	}
}

func TestUnbox(t *testing.T) {
	v, err := Unbox[int16](Box[int16](7))
	if err != nil || v != 7 {
		t.Fatalf("unbox returned %d, %v", v, err)
	}
	for _, b := range []any{nil, 7, int32(7), "7", uint16(7)} {
		if _, err := Unbox[int16](b); !errors.Is(err, collection.ErrType) {
			t.Errorf("unbox %#v: expected type error, got %v", b, err)
		}
	}
	values, err := UnboxAll[bool]([]any{true, false})
	if err != nil || len(values) != 2 || !values[0] || values[1] {
		t.Fatalf("unbox all returned %v, %v", values, err)
	}
	if _, err := UnboxAll[bool]([]any{true, 1}); !errors.Is(err, collection.ErrType) {
		t.Fatalf("expected type error, got %v", err)
	}
	if values, err := UnboxAll[bool](nil); err != nil || len(values) != 0 {
		t.Fatalf("unbox all of nil returned %v, %v", values, err)
	}
}

func TestEqual(t *testing.T) {
	nan64 := math.NaN()
	nan32 := float32(nan64)
	if !Equal(nan64, nan64) || !Equal(nan32, nan32) {
		t.Fatal("NaN should equal NaN")
	}
	if !Equal(math.Float64frombits(0x7ff8000000000001), nan64) {
		t.Fatal("all NaN payloads should be equal")
	}
	if Equal(0.0, math.Copysign(0, -1)) {
		t.Fatal("+0 and -0 should differ")
	}
	if !Equal(int64(3), int64(3)) || Equal(true, false) {
		t.Fatal("unexpected equality")
	}
}

func TestHash(t *testing.T) {
	cases := []struct {
		name     string
		hash     int32
		expected int32
	}{
		{"true", Hash(true), 1231},
		{"false", Hash(false), 1237},
		{"byte", Hash(int8(-3)), -3},
		{"char", Hash(uint16('a')), 97},
		{"short", Hash(int16(300)), 300},
		{"int", Hash(int32(-7)), -7},
		{"long", Hash(int64(1) << 32), 1},
		{"long negative", Hash(int64(-1)), 0},
		{"float", Hash(float32(1)), 0x3f800000},
		{"double", Hash(1.0), 0x3ff00000},
		{"double zero", Hash(0.0), 0},
	}
	for _, c := range cases {
		if c.hash != c.expected {
			t.Errorf("%s: expected %d but got %d", c.name, c.expected, c.hash)
		}
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		got      string
		expected string
	}{
		{Format(true), "true"},
		{Format(int8(-1)), "-1"},
		{Format(uint16('z')), "z"},
		{Format(int64(1) << 40), "1099511627776"},
		{Format(float32(0.5)), "0.5"},
		{Format(2.25), "2.25"},
	}
	for _, c := range cases {
		if c.got != c.expected {
			t.Errorf("expected %s but got %s", c.expected, c.got)
		}
	}
}

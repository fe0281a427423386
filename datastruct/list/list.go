package list

import (
	"slices"
	"strings"

	"primcoll/interface/collection"
	"primcoll/lib/boxed"
)

type EqualsFunc[T collection.Scalar] func(T) bool

type Consumer[T collection.Scalar] func(int, T) bool

// minGrowth 是扩容后的最小容量
const minGrowth = 4

// elements 由本包中的列表实现，返回当前存活的元素（与底层存储共享）
type elements[T collection.Scalar] interface {
	elems() []T
}

var (
	_ collection.List[int32]         = (*ArrayList[int32])(nil)
	_ collection.List[int32]         = (*View[int32])(nil)
	_ collection.List[int32]         = (*ImmutableList[int32])(nil)
	_ collection.ListIterator[int32] = (*Cursor[int32])(nil)
	_ collection.BoxedSequence       = (*BoxedList[int32])(nil)
)

func indexOf[T collection.Scalar](s []T, v T, from int) int {
	if from < 0 {
		from = 0
	}
	for i := from; i < len(s); i++ {
		if boxed.Equal(s[i], v) {
			return i
		}
	}
	return -1
}

func lastIndexOf[T collection.Scalar](s []T, v T, from int) int {
	if from >= len(s) {
		from = len(s) - 1
	}
	for i := from; i >= 0; i-- {
		if boxed.Equal(s[i], v) {
			return i
		}
	}
	return -1
}

func containsAll[T collection.Scalar](s []T, values []T) bool {
	for _, v := range values {
		if indexOf(s, v, 0) < 0 {
			return false
		}
	}
	return true
}

// values 可能与被修改的列表共享存储，先复制
func memberOf[T collection.Scalar](values []T) EqualsFunc[T] {
	values = slices.Clone(values)
	return func(v T) bool {
		return indexOf(values, v, 0) >= 0
	}
}

func notMemberOf[T collection.Scalar](values []T) EqualsFunc[T] {
	values = slices.Clone(values)
	return func(v T) bool {
		return indexOf(values, v, 0) < 0
	}
}

func equalSlices[T collection.Scalar](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !boxed.Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// equals 比较 s 与另一个有序集合，other 可以是同类型的基本类型列表、[]T、
// []any 或 BoxedSequence；装箱元素必须都能拆箱为 T
func equals[T collection.Scalar](s []T, other any) bool {
	switch o := other.(type) {
	case nil:
		return false
	case elements[T]:
		return equalSlices(s, o.elems())
	case []T:
		return equalSlices(s, o)
	case collection.List[T]:
		if o.Size() != len(s) {
			return false
		}
		for i, v := range s {
			w, err := o.Get(i)
			if err != nil || !boxed.Equal(v, w) {
				return false
			}
		}
		return true
	case []any:
		if len(o) != len(s) {
			return false
		}
		for i, v := range s {
			w, err := boxed.Unbox[T](o[i])
			if err != nil || !boxed.Equal(v, w) {
				return false
			}
		}
		return true
	case collection.BoxedSequence:
		if o.Size() != len(s) {
			return false
		}
		for i, v := range s {
			b, err := o.BoxedAt(i)
			if err != nil {
				return false
			}
			w, err := boxed.Unbox[T](b)
			if err != nil || !boxed.Equal(v, w) {
				return false
			}
		}
		return true
	}
	return false
}

func hashCode[T collection.Scalar](s []T) int32 {
	h := int32(1)
	for _, v := range s {
		h = 31*h + boxed.Hash(v)
	}
	return h
}

func format[T collection.Scalar](s []T) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range s {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(boxed.Format(v))
	}
	sb.WriteByte(']')
	return sb.String()
}

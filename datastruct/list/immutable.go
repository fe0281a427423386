package list

import (
	"iter"

	"github.com/pkg/errors"

	"primcoll/interface/collection"
	"primcoll/lib/boxed"
	"primcoll/lib/utils"
)

// ImmutableList 是不可变的基本类型列表，所有修改类操作返回 ErrUnsupportedOperation
type ImmutableList[T collection.Scalar] struct {
	data []T
}

// 每种基本类型共用一个空实例
var emptyLists = map[boxed.Kind]any{
	boxed.Boolean: &ImmutableList[bool]{},
	boxed.Byte:    &ImmutableList[int8]{},
	boxed.Char:    &ImmutableList[uint16]{},
	boxed.Short:   &ImmutableList[int16]{},
	boxed.Int:     &ImmutableList[int32]{},
	boxed.Long:    &ImmutableList[int64]{},
	boxed.Float:   &ImmutableList[float32]{},
	boxed.Double:  &ImmutableList[float64]{},
}

func EmptyList[T collection.Scalar]() *ImmutableList[T] {
	return emptyLists[boxed.KindOf[T]()].(*ImmutableList[T])
}

// ImmutableOf 复制 values 构造不可变列表
func ImmutableOf[T collection.Scalar](values ...T) *ImmutableList[T] {
	if len(values) == 0 {
		return EmptyList[T]()
	}
	data := make([]T, len(values))
	copy(data, values)
	return &ImmutableList[T]{data: data}
}

func unsupported(op string) error {
	return errors.Wrapf(collection.ErrUnsupportedOperation, "%s on immutable list", op)
}

func (l *ImmutableList[T]) elems() []T {
	return l.data
}

func (l *ImmutableList[T]) Size() int {
	return len(l.data)
}

func (l *ImmutableList[T]) IsEmpty() bool {
	return len(l.data) == 0
}

func (l *ImmutableList[T]) Get(index int) (T, error) {
	if err := utils.CheckIndex(index, len(l.data)); err != nil {
		var zero T
		return zero, err
	}
	return l.data[index], nil
}

func (l *ImmutableList[T]) First() (T, error) {
	if len(l.data) == 0 {
		var zero T
		return zero, errors.Wrap(collection.ErrIndexOutOfBounds, "first of empty list")
	}
	return l.data[0], nil
}

func (l *ImmutableList[T]) Last() (T, error) {
	if len(l.data) == 0 {
		var zero T
		return zero, errors.Wrap(collection.ErrIndexOutOfBounds, "last of empty list")
	}
	return l.data[len(l.data)-1], nil
}

func (l *ImmutableList[T]) Set(int, T) (old T, err error) {
	return old, unsupported("set")
}

func (l *ImmutableList[T]) Add(T) error {
	return unsupported("add")
}

func (l *ImmutableList[T]) Insert(int, T) error {
	return unsupported("insert")
}

func (l *ImmutableList[T]) AddAll([]T) (bool, error) {
	return false, unsupported("add all")
}

func (l *ImmutableList[T]) InsertAll(int, []T) (bool, error) {
	return false, unsupported("insert all")
}

func (l *ImmutableList[T]) RemoveAt(int) (T, error) {
	var zero T
	return zero, unsupported("remove at")
}

func (l *ImmutableList[T]) Remove(T) (bool, error) {
	return false, unsupported("remove")
}

func (l *ImmutableList[T]) RemoveRange(int, int) (bool, error) {
	return false, unsupported("remove range")
}

func (l *ImmutableList[T]) RemoveAll([]T) (bool, error) {
	return false, unsupported("remove all")
}

func (l *ImmutableList[T]) RetainAll([]T) (bool, error) {
	return false, unsupported("retain all")
}

func (l *ImmutableList[T]) Clear() error {
	return unsupported("clear")
}

func (l *ImmutableList[T]) Contains(v T) bool {
	return indexOf(l.data, v, 0) >= 0
}

func (l *ImmutableList[T]) ContainsAll(values []T) bool {
	return containsAll(l.data, values)
}

func (l *ImmutableList[T]) IndexOf(v T) int {
	return indexOf(l.data, v, 0)
}

func (l *ImmutableList[T]) IndexOfFrom(v T, from int) int {
	return indexOf(l.data, v, from)
}

func (l *ImmutableList[T]) LastIndexOf(v T) int {
	return lastIndexOf(l.data, v, len(l.data)-1)
}

func (l *ImmutableList[T]) LastIndexOfFrom(v T, from int) int {
	return lastIndexOf(l.data, v, from)
}

func (l *ImmutableList[T]) ToArray() []T {
	res, _ := l.ToArrayRange(0, len(l.data))
	return res
}

func (l *ImmutableList[T]) ToArrayRange(from, to int) ([]T, error) {
	if err := utils.CheckRange(from, to, len(l.data)); err != nil {
		return nil, err
	}
	if from == to {
		return []T{}, nil
	}
	res := make([]T, to-from)
	copy(res, l.data[from:to])
	return res, nil
}

// SubList 与原列表共享存储，内容不会变化所以共享是安全的
func (l *ImmutableList[T]) SubList(from, to int) (collection.List[T], error) {
	if err := utils.CheckRange(from, to, len(l.data)); err != nil {
		return nil, err
	}
	if from == to {
		return EmptyList[T](), nil
	}
	return &ImmutableList[T]{data: l.data[from:to:to]}, nil
}

// Clone 返回自身
func (l *ImmutableList[T]) Clone() *ImmutableList[T] {
	return l
}

// Mutable 返回内容相同的可变列表
func (l *ImmutableList[T]) Mutable() *ArrayList[T] {
	return NewArrayListOf(l.data...)
}

func (l *ImmutableList[T]) Iterator() collection.Iterator[T] {
	return newCursor[T](l, 0)
}

func (l *ImmutableList[T]) ListIterator() collection.ListIterator[T] {
	return newCursor[T](l, 0)
}

func (l *ImmutableList[T]) ListIteratorAt(index int) (collection.ListIterator[T], error) {
	if err := utils.CheckPosition(index, len(l.data)); err != nil {
		return nil, err
	}
	return newCursor[T](l, index), nil
}

func (l *ImmutableList[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range l.data {
			if !yield(i, v) {
				return
			}
		}
	}
}

func (l *ImmutableList[T]) Equals(other any) bool {
	return equals(l.data, other)
}

func (l *ImmutableList[T]) HashCode() int32 {
	return hashCode(l.data)
}

func (l *ImmutableList[T]) String() string {
	return format(l.data)
}

package list

import (
	"iter"
	"slices"

	"github.com/pkg/errors"

	"primcoll/interface/collection"
	"primcoll/lib/boxed"
	"primcoll/lib/utils"
)

// ArrayList 是基于可增长数组的基本类型列表。
// len(data) 即容量，data[:size] 为存活的元素。
// 非并发安全。
type ArrayList[T collection.Scalar] struct {
	data []T
	size int
}

// NewArrayList 返回一个空列表，不分配存储
func NewArrayList[T collection.Scalar]() *ArrayList[T] {
	return &ArrayList[T]{}
}

// NewArrayListSize 预分配 n 个槽位，n <= 0 时等同于 NewArrayList
func NewArrayListSize[T collection.Scalar](n int) *ArrayList[T] {
	if n <= 0 {
		return NewArrayList[T]()
	}
	return &ArrayList[T]{data: make([]T, n)}
}

// NewArrayListOf 复制 values 构造列表，之后二者互不影响。nil 视为空
func NewArrayListOf[T collection.Scalar](values ...T) *ArrayList[T] {
	if len(values) == 0 {
		return NewArrayList[T]()
	}
	data := make([]T, len(values))
	copy(data, values)
	return &ArrayList[T]{data: data, size: len(data)}
}

// WrapArray 直接接管 values 作为底层存储，调用方不应再修改 values。nil 视为空
func WrapArray[T collection.Scalar](values []T) *ArrayList[T] {
	if len(values) == 0 {
		return NewArrayList[T]()
	}
	return &ArrayList[T]{data: values, size: len(values)}
}

// NewArrayListFrom 复制另一个集合的内容
func NewArrayListFrom[T collection.Scalar](c collection.Collection[T]) *ArrayList[T] {
	if c == nil {
		return NewArrayList[T]()
	}
	if e, ok := c.(elements[T]); ok {
		return NewArrayListOf(e.elems()...)
	}
	return WrapArray(c.ToArray())
}

// NewArrayListFromBoxed 对每个装箱元素拆箱后构造列表
func NewArrayListFromBoxed[T collection.Scalar](values []any) (*ArrayList[T], error) {
	data, err := boxed.UnboxAll[T](values)
	if err != nil {
		return nil, err
	}
	return WrapArray(data), nil
}

func (l *ArrayList[T]) elems() []T {
	return l.data[:l.size]
}

func (l *ArrayList[T]) Size() int {
	return l.size
}

func (l *ArrayList[T]) IsEmpty() bool {
	return l.size == 0
}

func (l *ArrayList[T]) Capacity() int {
	return len(l.data)
}

func (l *ArrayList[T]) Get(index int) (T, error) {
	if err := utils.CheckIndex(index, l.size); err != nil {
		var zero T
		return zero, err
	}
	return l.data[index], nil
}

func (l *ArrayList[T]) First() (T, error) {
	if l.size == 0 {
		var zero T
		return zero, errors.Wrap(collection.ErrIndexOutOfBounds, "first of empty list")
	}
	return l.data[0], nil
}

func (l *ArrayList[T]) Last() (T, error) {
	if l.size == 0 {
		var zero T
		return zero, errors.Wrap(collection.ErrIndexOutOfBounds, "last of empty list")
	}
	return l.data[l.size-1], nil
}

func (l *ArrayList[T]) Set(index int, v T) (old T, err error) {
	if err = utils.CheckIndex(index, l.size); err != nil {
		return
	}
	old = l.data[index]
	l.data[index] = v
	return
}

func (l *ArrayList[T]) Add(v T) error {
	l.ensure(l.size + 1)
	l.data[l.size] = v
	l.size++
	return nil
}

func (l *ArrayList[T]) Insert(index int, v T) error {
	if err := utils.CheckPosition(index, l.size); err != nil {
		return err
	}
	l.ensure(l.size + 1)
	copy(l.data[index+1:l.size+1], l.data[index:l.size])
	l.data[index] = v
	l.size++
	return nil
}

func (l *ArrayList[T]) AddAll(values []T) (changed bool, err error) {
	return l.InsertAll(l.size, values)
}

func (l *ArrayList[T]) InsertAll(index int, values []T) (changed bool, err error) {
	if err = utils.CheckPosition(index, l.size); err != nil {
		return false, err
	}
	n := len(values)
	if n == 0 {
		return false, nil
	}
	// values 可能与 data 共享存储，移动前先复制一份
	values = slices.Clone(values)
	l.ensure(l.size + n)
	copy(l.data[index+n:l.size+n], l.data[index:l.size])
	copy(l.data[index:index+n], values)
	l.size += n
	return true, nil
}

func (l *ArrayList[T]) RemoveAt(index int) (T, error) {
	if err := utils.CheckIndex(index, l.size); err != nil {
		var zero T
		return zero, err
	}
	v := l.data[index]
	copy(l.data[index:l.size-1], l.data[index+1:l.size])
	l.size--
	return v, nil
}

// Remove 移除第一个等于 v 的元素
func (l *ArrayList[T]) Remove(v T) (changed bool, err error) {
	index := indexOf(l.elems(), v, 0)
	if index < 0 {
		return false, nil
	}
	_, err = l.RemoveAt(index)
	return err == nil, err
}

// RemoveRange 移除 [from, to) 内的元素
func (l *ArrayList[T]) RemoveRange(from, to int) (changed bool, err error) {
	if err = utils.CheckRange(from, to, l.size); err != nil {
		return false, err
	}
	if from == to {
		return false, nil
	}
	copy(l.data[from:], l.data[to:l.size])
	l.size -= to - from
	return true, nil
}

func (l *ArrayList[T]) RemoveAll(values []T) (changed bool, err error) {
	if len(values) == 0 {
		return false, nil
	}
	return l.removeIfRange(0, l.size, memberOf(values)) > 0, nil
}

func (l *ArrayList[T]) RetainAll(values []T) (changed bool, err error) {
	return l.removeIfRange(0, l.size, notMemberOf(values)) > 0, nil
}

func (l *ArrayList[T]) Clear() error {
	_, err := l.RemoveRange(0, l.size)
	return err
}

func (l *ArrayList[T]) Contains(v T) bool {
	return indexOf(l.elems(), v, 0) >= 0
}

func (l *ArrayList[T]) ContainsAll(values []T) bool {
	return containsAll(l.elems(), values)
}

func (l *ArrayList[T]) IndexOf(v T) int {
	return indexOf(l.elems(), v, 0)
}

// IndexOfFrom 从 from（含）开始向后查找，from 为负时从 0 开始，越界时返回 -1
func (l *ArrayList[T]) IndexOfFrom(v T, from int) int {
	return indexOf(l.elems(), v, from)
}

func (l *ArrayList[T]) LastIndexOf(v T) int {
	return lastIndexOf(l.elems(), v, l.size-1)
}

// LastIndexOfFrom 从 from（含）开始向前查找，from >= size 时从末尾开始，为负时返回 -1
func (l *ArrayList[T]) LastIndexOfFrom(v T, from int) int {
	return lastIndexOf(l.elems(), v, from)
}

func (l *ArrayList[T]) ToArray() []T {
	res, _ := l.ToArrayRange(0, l.size)
	return res
}

// ToArrayRange 返回 [from, to) 的副本
func (l *ArrayList[T]) ToArrayRange(from, to int) ([]T, error) {
	if err := utils.CheckRange(from, to, l.size); err != nil {
		return nil, err
	}
	if from == to {
		return []T{}, nil
	}
	res := make([]T, to-from)
	copy(res, l.data[from:to])
	return res, nil
}

// SubList 返回 [from, to) 上的视图，视图与列表共享存储，双方的修改互相可见
func (l *ArrayList[T]) SubList(from, to int) (collection.List[T], error) {
	if err := utils.CheckRange(from, to, l.size); err != nil {
		return nil, err
	}
	return newView(l, nil, from, to-from), nil
}

// EnsureCapacity 保证容量至少为 n
func (l *ArrayList[T]) EnsureCapacity(n int) {
	l.ensure(n)
}

// Optimize 将容量收缩到恰好等于 size
func (l *ArrayList[T]) Optimize() {
	if len(l.data) <= l.size {
		return
	}
	if l.size == 0 {
		l.data = nil
		return
	}
	data := make([]T, l.size)
	copy(data, l.data[:l.size])
	l.data = data
}

func (l *ArrayList[T]) Clone() *ArrayList[T] {
	return NewArrayListOf(l.elems()...)
}

// Freeze 返回当前内容的不可变副本
func (l *ArrayList[T]) Freeze() *ImmutableList[T] {
	return ImmutableOf(l.elems()...)
}

func (l *ArrayList[T]) Iterator() collection.Iterator[T] {
	return newCursor[T](l, 0)
}

func (l *ArrayList[T]) ListIterator() collection.ListIterator[T] {
	return newCursor[T](l, 0)
}

func (l *ArrayList[T]) ListIteratorAt(index int) (collection.ListIterator[T], error) {
	if err := utils.CheckPosition(index, l.size); err != nil {
		return nil, err
	}
	return newCursor[T](l, index), nil
}

// Cursor 返回从 index 开始的游标
func (l *ArrayList[T]) Cursor(index int) (*Cursor[T], error) {
	if err := utils.CheckPosition(index, l.size); err != nil {
		return nil, err
	}
	return newCursor[T](l, index), nil
}

func (l *ArrayList[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < l.size; i++ {
			if !yield(i, l.data[i]) {
				return
			}
		}
	}
}

func (l *ArrayList[T]) Equals(other any) bool {
	return equals(l.elems(), other)
}

func (l *ArrayList[T]) HashCode() int32 {
	return hashCode(l.elems())
}

func (l *ArrayList[T]) String() string {
	return format(l.elems())
}

func (l *ArrayList[T]) Count(equals EqualsFunc[T]) int {
	res := 0
	for _, v := range l.elems() {
		if equals(v) {
			res++
		}
	}
	return res
}

// RemoveIf 移除所有满足 equals 的元素，返回移除的个数
func (l *ArrayList[T]) RemoveIf(equals EqualsFunc[T]) int {
	return l.removeIfRange(0, l.size, equals)
}

// RemoveN 从头开始移除最多 n 个满足 equals 的元素
func (l *ArrayList[T]) RemoveN(equals EqualsFunc[T], n int) int {
	if n < 1 {
		return 0
	}
	w, res := 0, 0
	for r := 0; r < l.size; r++ {
		if res < n && equals(l.data[r]) {
			res++
			continue
		}
		l.data[w] = l.data[r]
		w++
	}
	l.size = w
	return res
}

// RemoveLastN 从尾部开始移除最多 n 个满足 equals 的元素
func (l *ArrayList[T]) RemoveLastN(equals EqualsFunc[T], n int) int {
	if n < 1 {
		return 0
	}
	w, res := l.size, 0
	for r := l.size - 1; r >= 0; r-- {
		if res < n && equals(l.data[r]) {
			res++
			continue
		}
		w--
		l.data[w] = l.data[r]
	}
	if res > 0 {
		copy(l.data, l.data[w:l.size])
		l.size -= res
	}
	return res
}

func (l *ArrayList[T]) ForEach(c Consumer[T]) {
	for i := 0; i < l.size; i++ {
		if !c(i, l.data[i]) {
			break
		}
	}
}

// removeIfRange 移除 [from, to) 中满足 equals 的元素，后续元素前移，返回移除的个数
func (l *ArrayList[T]) removeIfRange(from, to int, equals EqualsFunc[T]) int {
	w := from
	for r := from; r < to; r++ {
		if !equals(l.data[r]) {
			l.data[w] = l.data[r]
			w++
		}
	}
	res := to - w
	if res > 0 {
		copy(l.data[w:], l.data[to:l.size])
		l.size -= res
	}
	return res
}

func (l *ArrayList[T]) ensure(need int) {
	if need > len(l.data) {
		l.grow(need)
	}
}

// grow 将容量扩大到 max(need, 1.5 倍旧容量, minGrowth)
func (l *ArrayList[T]) grow(need int) {
	old := len(l.data)
	data := make([]T, utils.Max(need, old+old>>1, minGrowth))
	copy(data, l.data[:l.size])
	l.data = data
}

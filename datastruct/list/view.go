package list

import (
	"iter"
	"slices"

	"github.com/pkg/errors"

	"primcoll/interface/collection"
	"primcoll/lib/utils"
)

// View 是 ArrayList 某一区间上的视图。
// 视图与根列表共享存储：通过视图的修改对根列表及所有祖先视图可见，反之亦然。
// 绕过视图对根列表做的结构修改若使视图越界，视图上的操作返回 ErrConcurrentModification。
type View[T collection.Scalar] struct {
	root   *ArrayList[T]
	parent *View[T]
	offset int // 相对于 root 的绝对偏移
	size   int
}

func newView[T collection.Scalar](root *ArrayList[T], parent *View[T], offset, size int) *View[T] {
	return &View[T]{
		root:   root,
		parent: parent,
		offset: offset,
		size:   size,
	}
}

func (v *View[T]) check() error {
	if v.offset+v.size > v.root.size {
		return errors.Wrapf(collection.ErrConcurrentModification,
			"view [%d, %d) outside list of size %d", v.offset, v.offset+v.size, v.root.size)
	}
	return nil
}

// resize 将 delta 同步到自身和所有祖先视图
func (v *View[T]) resize(delta int) {
	for p := v; p != nil; p = p.parent {
		p.size += delta
	}
}

func (v *View[T]) elems() []T {
	if v.check() != nil {
		return nil
	}
	return v.root.data[v.offset : v.offset+v.size]
}

func (v *View[T]) Size() int {
	return v.size
}

func (v *View[T]) IsEmpty() bool {
	return v.size == 0
}

func (v *View[T]) Get(index int) (T, error) {
	var zero T
	if err := v.check(); err != nil {
		return zero, err
	}
	if err := utils.CheckIndex(index, v.size); err != nil {
		return zero, err
	}
	return v.root.data[v.offset+index], nil
}

func (v *View[T]) First() (T, error) {
	if v.size == 0 {
		var zero T
		return zero, errors.Wrap(collection.ErrIndexOutOfBounds, "first of empty view")
	}
	return v.Get(0)
}

func (v *View[T]) Last() (T, error) {
	if v.size == 0 {
		var zero T
		return zero, errors.Wrap(collection.ErrIndexOutOfBounds, "last of empty view")
	}
	return v.Get(v.size - 1)
}

func (v *View[T]) Set(index int, x T) (old T, err error) {
	if err = v.check(); err != nil {
		return
	}
	if err = utils.CheckIndex(index, v.size); err != nil {
		return
	}
	return v.root.Set(v.offset+index, x)
}

func (v *View[T]) Add(x T) error {
	return v.Insert(v.size, x)
}

func (v *View[T]) Insert(index int, x T) error {
	if err := v.check(); err != nil {
		return err
	}
	if err := utils.CheckPosition(index, v.size); err != nil {
		return err
	}
	if err := v.root.Insert(v.offset+index, x); err != nil {
		return err
	}
	v.resize(1)
	return nil
}

func (v *View[T]) AddAll(values []T) (changed bool, err error) {
	return v.InsertAll(v.size, values)
}

func (v *View[T]) InsertAll(index int, values []T) (changed bool, err error) {
	if err = v.check(); err != nil {
		return false, err
	}
	if err = utils.CheckPosition(index, v.size); err != nil {
		return false, err
	}
	changed, err = v.root.InsertAll(v.offset+index, values)
	if changed {
		v.resize(len(values))
	}
	return changed, err
}

func (v *View[T]) RemoveAt(index int) (T, error) {
	var zero T
	if err := v.check(); err != nil {
		return zero, err
	}
	if err := utils.CheckIndex(index, v.size); err != nil {
		return zero, err
	}
	x, err := v.root.RemoveAt(v.offset + index)
	if err != nil {
		return zero, err
	}
	v.resize(-1)
	return x, nil
}

func (v *View[T]) Remove(x T) (changed bool, err error) {
	if err = v.check(); err != nil {
		return false, err
	}
	index := indexOf(v.elems(), x, 0)
	if index < 0 {
		return false, nil
	}
	_, err = v.RemoveAt(index)
	return err == nil, err
}

func (v *View[T]) RemoveRange(from, to int) (changed bool, err error) {
	if err = v.check(); err != nil {
		return false, err
	}
	if err = utils.CheckRange(from, to, v.size); err != nil {
		return false, err
	}
	changed, err = v.root.RemoveRange(v.offset+from, v.offset+to)
	if changed {
		v.resize(from - to)
	}
	return changed, err
}

func (v *View[T]) RemoveAll(values []T) (changed bool, err error) {
	if err = v.check(); err != nil {
		return false, err
	}
	if len(values) == 0 {
		return false, nil
	}
	n := v.root.removeIfRange(v.offset, v.offset+v.size, memberOf(values))
	v.resize(-n)
	return n > 0, nil
}

func (v *View[T]) RetainAll(values []T) (changed bool, err error) {
	if err = v.check(); err != nil {
		return false, err
	}
	n := v.root.removeIfRange(v.offset, v.offset+v.size, notMemberOf(values))
	v.resize(-n)
	return n > 0, nil
}

func (v *View[T]) Clear() error {
	_, err := v.RemoveRange(0, v.size)
	return err
}

func (v *View[T]) Contains(x T) bool {
	return indexOf(v.elems(), x, 0) >= 0
}

func (v *View[T]) ContainsAll(values []T) bool {
	return containsAll(v.elems(), values)
}

func (v *View[T]) IndexOf(x T) int {
	return indexOf(v.elems(), x, 0)
}

func (v *View[T]) IndexOfFrom(x T, from int) int {
	return indexOf(v.elems(), x, from)
}

func (v *View[T]) LastIndexOf(x T) int {
	return lastIndexOf(v.elems(), x, v.size-1)
}

func (v *View[T]) LastIndexOfFrom(x T, from int) int {
	return lastIndexOf(v.elems(), x, from)
}

func (v *View[T]) ToArray() []T {
	res, err := v.ToArrayRange(0, v.size)
	if err != nil {
		return []T{}
	}
	return res
}

func (v *View[T]) ToArrayRange(from, to int) ([]T, error) {
	if err := v.check(); err != nil {
		return nil, err
	}
	if err := utils.CheckRange(from, to, v.size); err != nil {
		return nil, err
	}
	if from == to {
		return []T{}, nil
	}
	return slices.Clone(v.root.data[v.offset+from : v.offset+to]), nil
}

// SubList 返回嵌套视图，仍然直接建立在根列表上
func (v *View[T]) SubList(from, to int) (collection.List[T], error) {
	if err := v.check(); err != nil {
		return nil, err
	}
	if err := utils.CheckRange(from, to, v.size); err != nil {
		return nil, err
	}
	return newView(v.root, v, v.offset+from, to-from), nil
}

func (v *View[T]) Iterator() collection.Iterator[T] {
	return newCursor[T](v, 0)
}

func (v *View[T]) ListIterator() collection.ListIterator[T] {
	return newCursor[T](v, 0)
}

func (v *View[T]) ListIteratorAt(index int) (collection.ListIterator[T], error) {
	if err := utils.CheckPosition(index, v.size); err != nil {
		return nil, err
	}
	return newCursor[T](v, index), nil
}

func (v *View[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, x := range v.elems() {
			if !yield(i, x) {
				return
			}
		}
	}
}

func (v *View[T]) Equals(other any) bool {
	return equals(v.elems(), other)
}

func (v *View[T]) HashCode() int32 {
	return hashCode(v.elems())
}

func (v *View[T]) String() string {
	return format(v.elems())
}

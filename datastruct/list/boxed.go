package list

import (
	"primcoll/interface/collection"
	"primcoll/lib/boxed"
)

// BoxedList 以装箱值（any）的形式暴露一个基本类型列表，供只接受 any 的调用方使用。
// 所有操作都是拆箱后转发给底层列表
type BoxedList[T collection.Scalar] struct {
	list collection.List[T]
}

func Boxed[T collection.Scalar](l collection.List[T]) *BoxedList[T] {
	return &BoxedList[T]{list: l}
}

func (b *BoxedList[T]) Unwrap() collection.List[T] {
	return b.list
}

func (b *BoxedList[T]) Size() int {
	return b.list.Size()
}

func (b *BoxedList[T]) BoxedAt(index int) (any, error) {
	v, err := b.list.Get(index)
	if err != nil {
		return nil, err
	}
	return boxed.Box(v), nil
}

func (b *BoxedList[T]) Get(index int) (any, error) {
	return b.BoxedAt(index)
}

func (b *BoxedList[T]) Set(index int, val any) (any, error) {
	v, err := boxed.Unbox[T](val)
	if err != nil {
		return nil, err
	}
	old, err := b.list.Set(index, v)
	if err != nil {
		return nil, err
	}
	return boxed.Box(old), nil
}

func (b *BoxedList[T]) Add(val any) error {
	v, err := boxed.Unbox[T](val)
	if err != nil {
		return err
	}
	return b.list.Add(v)
}

func (b *BoxedList[T]) Insert(index int, val any) error {
	v, err := boxed.Unbox[T](val)
	if err != nil {
		return err
	}
	return b.list.Insert(index, v)
}

// RemoveAt 移除并返回装箱后的元素，不装箱的版本是 Unwrap().RemoveAt
func (b *BoxedList[T]) RemoveAt(index int) (any, error) {
	v, err := b.list.RemoveAt(index)
	if err != nil {
		return nil, err
	}
	return boxed.Box(v), nil
}

// Remove 移除第一个等于 val 的元素，val 无法拆箱时返回 ErrType
func (b *BoxedList[T]) Remove(val any) (bool, error) {
	v, err := boxed.Unbox[T](val)
	if err != nil {
		return false, err
	}
	return b.list.Remove(v)
}

func (b *BoxedList[T]) Contains(val any) bool {
	v, err := boxed.Unbox[T](val)
	if err != nil {
		return false
	}
	return b.list.Contains(v)
}

func (b *BoxedList[T]) Values() []any {
	res := make([]any, 0, b.list.Size())
	it := b.list.Iterator()
	for it.HasNext() {
		v, err := it.Next()
		if err != nil {
			break
		}
		res = append(res, boxed.Box(v))
	}
	return res
}

func (b *BoxedList[T]) Equals(other any) bool {
	if o, ok := other.(*BoxedList[T]); ok {
		return b.list.Equals(o.list)
	}
	return b.list.Equals(other)
}

func (b *BoxedList[T]) HashCode() int32 {
	return b.list.HashCode()
}

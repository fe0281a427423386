package collection

// Scalar 是八种基本数值类型的集合：
// boolean, byte, char, short, int, long, float, double
type Scalar interface {
	bool | int8 | uint16 | int16 | int32 | int64 | float32 | float64
}

// Iterator 是基本类型集合上的单向迭代器
type Iterator[T Scalar] interface {
	HasNext() bool
	Next() (T, error)
	Remove() error
	Reset()
}

// ListIterator 是基本类型列表上的双向游标
type ListIterator[T Scalar] interface {
	Iterator[T]
	HasPrevious() bool
	Previous() (T, error)
	NextIndex() int
	PreviousIndex() int
	Set(v T) error
	Add(v T) error
}

// Collection 是基本类型集合的抽象，修改类操作是可选的，
// 不可变的实现对这些操作返回 ErrUnsupportedOperation
type Collection[T Scalar] interface {
	Size() int
	IsEmpty() bool
	Contains(v T) bool
	ContainsAll(values []T) bool
	ToArray() []T
	Iterator() Iterator[T]
	Add(v T) error
	AddAll(values []T) (changed bool, err error)
	Remove(v T) (changed bool, err error)
	RemoveAll(values []T) (changed bool, err error)
	RetainAll(values []T) (changed bool, err error)
	Clear() error
}

// List 是有序、可按下标访问的基本类型集合
type List[T Scalar] interface {
	Collection[T]
	Get(index int) (T, error)
	First() (T, error)
	Last() (T, error)
	Set(index int, v T) (old T, err error)
	Insert(index int, v T) error
	InsertAll(index int, values []T) (changed bool, err error)
	RemoveAt(index int) (T, error)
	RemoveRange(from, to int) (changed bool, err error)
	IndexOf(v T) int
	IndexOfFrom(v T, from int) int
	LastIndexOf(v T) int
	LastIndexOfFrom(v T, from int) int
	ToArrayRange(from, to int) ([]T, error)
	SubList(from, to int) (List[T], error)
	ListIterator() ListIterator[T]
	ListIteratorAt(index int) (ListIterator[T], error)
	Equals(other any) bool
	HashCode() int32
}

// BoxedSequence 是以装箱值（any）对外暴露元素的有序集合，
// 用于和基本类型列表比较相等
type BoxedSequence interface {
	Size() int
	BoxedAt(index int) (any, error)
}

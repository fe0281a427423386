package list

import (
	"github.com/pkg/errors"

	"primcoll/interface/collection"
)

// Cursor 是列表上的双向游标。
// last 记录最近一次 Next/Previous 返回的下标，-1 表示没有；
// Set/Remove 只能紧跟在 Next/Previous 之后调用。
// 多个游标之间相互独立，绕过游标修改列表后游标的行为不做保证。
type Cursor[T collection.Scalar] struct {
	owner collection.List[T]
	start int
	pos   int
	last  int
}

func newCursor[T collection.Scalar](owner collection.List[T], start int) *Cursor[T] {
	return &Cursor[T]{
		owner: owner,
		start: start,
		pos:   start,
		last:  -1,
	}
}

func (c *Cursor[T]) HasNext() bool {
	return c.pos < c.owner.Size()
}

func (c *Cursor[T]) Next() (T, error) {
	if !c.HasNext() {
		var zero T
		return zero, errors.Wrapf(collection.ErrNoSuchElement, "next at %d", c.pos)
	}
	v, err := c.owner.Get(c.pos)
	if err != nil {
		return v, err
	}
	c.last = c.pos
	c.pos++
	return v, nil
}

func (c *Cursor[T]) HasPrevious() bool {
	return c.pos > 0
}

func (c *Cursor[T]) Previous() (T, error) {
	if !c.HasPrevious() {
		var zero T
		return zero, errors.Wrap(collection.ErrNoSuchElement, "previous at 0")
	}
	v, err := c.owner.Get(c.pos - 1)
	if err != nil {
		return v, err
	}
	c.pos--
	c.last = c.pos
	return v, nil
}

func (c *Cursor[T]) NextIndex() int {
	return c.pos
}

func (c *Cursor[T]) PreviousIndex() int {
	return c.pos - 1
}

// Remove 移除最近一次 Next/Previous 返回的元素
func (c *Cursor[T]) Remove() error {
	if c.last < 0 {
		return errors.Wrap(collection.ErrIllegalState, "remove without next or previous")
	}
	if c.last >= c.owner.Size() {
		return errors.Wrapf(collection.ErrConcurrentModification,
			"cursor at %d, list size %d", c.last, c.owner.Size())
	}
	if _, err := c.owner.RemoveAt(c.last); err != nil {
		return err
	}
	c.pos = c.last
	c.last = -1
	return nil
}

// Set 替换最近一次 Next/Previous 返回的元素
func (c *Cursor[T]) Set(v T) error {
	if c.last < 0 {
		return errors.Wrap(collection.ErrIllegalState, "set without next or previous")
	}
	_, err := c.owner.Set(c.last, v)
	return err
}

// Add 在游标位置插入 v，游标随后位于 v 之后
func (c *Cursor[T]) Add(v T) error {
	if c.pos > c.owner.Size() {
		return errors.Wrapf(collection.ErrConcurrentModification,
			"cursor at %d, list size %d", c.pos, c.owner.Size())
	}
	if err := c.owner.Insert(c.pos, v); err != nil {
		if errors.Is(err, collection.ErrIndexOutOfBounds) {
			return errors.Wrap(collection.ErrConcurrentModification, err.Error())
		}
		return err
	}
	c.pos++
	c.last = -1
	return nil
}

// Reset 回到游标创建时的位置
func (c *Cursor[T]) Reset() {
	c.pos = c.start
	c.last = -1
}

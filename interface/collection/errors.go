package collection

import "github.com/pkg/errors"

var (
	// ErrIndexOutOfBounds 下标或区间越界
	ErrIndexOutOfBounds = errors.New("index out of bounds")
	// ErrUnsupportedOperation 对不可变集合调用了修改类操作
	ErrUnsupportedOperation = errors.New("unsupported operation")
	// ErrIllegalState 游标在没有 Next/Previous 的情况下调用了 Set/Remove
	ErrIllegalState = errors.New("illegal state")
	// ErrNoSuchElement 游标在该方向上已没有元素
	ErrNoSuchElement = errors.New("no such element")
	// ErrType 装箱值无法拆箱为目标基本类型
	ErrType = errors.New("type mismatch")
	// ErrConcurrentModification 游标或视图发现底层列表的结构已被外部修改
	ErrConcurrentModification = errors.New("concurrent modification")
)

package list

import (
	"context"

	pool "github.com/jolestar/go-commons-pool/v2"
	"github.com/pkg/errors"

	"primcoll/interface/collection"
)

type listFactory[T collection.Scalar] struct {
	capacity int
}

func (f *listFactory[T]) MakeObject(_ context.Context) (*pool.PooledObject, error) {
	return pool.NewPooledObject(NewArrayListSize[T](f.capacity)), nil
}

func (f *listFactory[T]) DestroyObject(_ context.Context, obj *pool.PooledObject) error {
	if _, ok := obj.Object.(*ArrayList[T]); !ok {
		return errors.New("type mismatch")
	}
	return nil
}

func (f *listFactory[T]) ValidateObject(_ context.Context, obj *pool.PooledObject) bool {
	l, ok := obj.Object.(*ArrayList[T])
	return ok && l.IsEmpty()
}

func (f *listFactory[T]) ActivateObject(_ context.Context, _ *pool.PooledObject) error {
	return nil
}

// PassivateObject 在归还时清空列表，保留已分配的容量
func (f *listFactory[T]) PassivateObject(_ context.Context, obj *pool.PooledObject) error {
	l, ok := obj.Object.(*ArrayList[T])
	if !ok {
		return errors.New("type mismatch")
	}
	return l.Clear()
}

// Pool 复用已分配存储的 ArrayList。每个借出的列表只属于借用方，
// 池本身可以被多个 goroutine 使用，列表仍然不是并发安全的
type Pool[T collection.Scalar] struct {
	objects *pool.ObjectPool
}

// NewPool 创建列表池，新建的列表预分配 capacity 个槽位，最多保留 maxIdle 个空闲列表
func NewPool[T collection.Scalar](ctx context.Context, capacity, maxIdle int) *Pool[T] {
	config := pool.NewDefaultPoolConfig()
	config.MaxIdle = maxIdle
	config.TestOnBorrow = true
	return &Pool[T]{
		objects: pool.NewObjectPool(ctx, &listFactory[T]{capacity: capacity}, config),
	}
}

// Borrow 借出一个空列表
func (p *Pool[T]) Borrow(ctx context.Context) (*ArrayList[T], error) {
	obj, err := p.objects.BorrowObject(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "borrow list")
	}
	l, ok := obj.(*ArrayList[T])
	if !ok {
		return nil, errors.New("type mismatch")
	}
	return l, nil
}

// Return 归还列表，列表会被清空
func (p *Pool[T]) Return(ctx context.Context, l *ArrayList[T]) error {
	return errors.Wrap(p.objects.ReturnObject(ctx, l), "return list")
}

func (p *Pool[T]) Idle() int {
	return p.objects.GetNumIdle()
}

func (p *Pool[T]) Close(ctx context.Context) {
	p.objects.Close(ctx)
}

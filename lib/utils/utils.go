package utils

import (
	"math/rand"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"

	"primcoll/interface/collection"
)

// CheckIndex 要求 0 <= index < size
func CheckIndex(index, size int) error {
	if index < 0 || index >= size {
		return errors.Wrapf(collection.ErrIndexOutOfBounds, "index: %d, size: %d", index, size)
	}
	return nil
}

// CheckPosition 要求 0 <= index <= size，用于插入位置
func CheckPosition(index, size int) error {
	if index < 0 || index > size {
		return errors.Wrapf(collection.ErrIndexOutOfBounds, "position: %d, size: %d", index, size)
	}
	return nil
}

// CheckRange 要求 0 <= from <= to <= size
func CheckRange(from, to, size int) error {
	if from < 0 || to > size || from > to {
		return errors.Wrapf(collection.ErrIndexOutOfBounds, "range: [%d, %d), size: %d", from, to, size)
	}
	return nil
}

func Max[T constraints.Ordered](a T, rest ...T) T {
	for _, b := range rest {
		if b > a {
			a = b
		}
	}
	return a
}

// RandomScalars 生成 n 个随机的 T
func RandomScalars[T collection.Scalar](r *rand.Rand, n int) []T {
	if n <= 0 {
		return []T{}
	}
	res := make([]T, n)
	for i := 0; i < n; i++ {
		var v any
		switch any(res[i]).(type) {
		case bool:
			v = r.Intn(2) == 1
		case int8:
			v = int8(r.Intn(1 << 8))
		case uint16:
			// 只取可打印的字母和数字，和 AlnumString 一样
			index := r.Intn(62)
			if index < 10 {
				v = uint16(48 + index)
			} else if index < 36 {
				v = uint16(55 + index)
			} else {
				v = uint16(61 + index)
			}
		case int16:
			v = int16(r.Intn(1 << 16))
		case int32:
			v = int32(r.Uint32())
		case int64:
			v = int64(r.Uint64())
		case float32:
			v = r.Float32()
		case float64:
			v = r.NormFloat64()
		}
		res[i] = v.(T)
	}
	return res
}

package boxed

import (
	"math"
	"strconv"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"

	"primcoll/interface/collection"
)

// Kind 标识八种基本类型之一
type Kind uint8

const (
	Invalid Kind = iota
	Boolean
	Byte
	Char
	Short
	Int
	Long
	Float
	Double
)

var kindNames = [...]string{
	Invalid: "invalid",
	Boolean: "boolean",
	Byte:    "byte",
	Char:    "char",
	Short:   "short",
	Int:     "int",
	Long:    "long",
	Float:   "float",
	Double:  "double",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// ParseKind 将类型名（如 "int"、"double"）解析为 Kind
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if Kind(k) != Invalid && n == name {
			return Kind(k), nil
		}
	}
	return Invalid, errors.Errorf("unknown scalar kind %q", name)
}

// KindOf 返回类型参数 T 对应的 Kind
func KindOf[T collection.Scalar]() Kind {
	var zero T
	switch any(zero).(type) {
	case bool:
		return Boolean
	case int8:
		return Byte
	case uint16:
		return Char
	case int16:
		return Short
	case int32:
		return Int
	case int64:
		return Long
	case float32:
		return Float
	case float64:
		return Double
	}
	return Invalid
}

// Box 返回 v 的装箱表示
func Box[T collection.Scalar](v T) any {
	return v
}

// Unbox 将装箱值还原为 T，nil 或动态类型不符时返回 ErrType
func Unbox[T collection.Scalar](b any) (T, error) {
	var zero T
	if b == nil {
		return zero, errors.Wrapf(collection.ErrType, "cannot unbox nil to %s", KindOf[T]())
	}
	v, ok := b.(T)
	if !ok {
		return zero, errors.Wrapf(collection.ErrType, "cannot unbox %T to %s", b, KindOf[T]())
	}
	return v, nil
}

// UnboxAll 依次拆箱 values 中的每个元素，遇到第一个无法拆箱的元素即返回错误
func UnboxAll[T collection.Scalar](values []any) ([]T, error) {
	if len(values) == 0 {
		return []T{}, nil
	}
	res := make([]T, len(values))
	for i, b := range values {
		v, err := Unbox[T](b)
		if err != nil {
			return nil, errors.Wrapf(err, "element %d", i)
		}
		res[i] = v
	}
	return res, nil
}

// Equal 按装箱值的语义比较两个元素：浮点数按规范化后的位模式比较，
// 因此 NaN 与 NaN 相等，+0 与 -0 不相等
func Equal[T collection.Scalar](a, b T) bool {
	switch x := any(a).(type) {
	case float32:
		return floatBits(x) == floatBits(any(b).(float32))
	case float64:
		return floatBits(x) == floatBits(any(b).(float64))
	}
	return a == b
}

// Hash 返回与装箱类型一致的 32 位哈希值
func Hash[T collection.Scalar](v T) int32 {
	switch x := any(v).(type) {
	case bool:
		if x {
			return 1231
		}
		return 1237
	case int8:
		return int32(x)
	case uint16:
		return int32(x)
	case int16:
		return int32(x)
	case int32:
		return x
	case int64:
		return int32(x ^ int64(uint64(x)>>32))
	case float32:
		return int32(floatBits(x))
	case float64:
		bits := floatBits(x)
		return int32(bits ^ bits>>32)
	}
	return 0
}

// Format 返回元素的文本表示，char 按字符输出
func Format[T collection.Scalar](v T) string {
	switch x := any(v).(type) {
	case bool:
		return strconv.FormatBool(x)
	case int8:
		return strconv.FormatInt(int64(x), 10)
	case uint16:
		return string(rune(x))
	case int16:
		return strconv.FormatInt(int64(x), 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	}
	return ""
}

// floatBits 与 floatToIntBits 一致：所有 NaN 折叠为同一个位模式
func floatBits[F constraints.Float](f F) uint64 {
	switch x := any(f).(type) {
	case float32:
		if x != x {
			return 0x7fc00000
		}
		return uint64(math.Float32bits(x))
	case float64:
		if x != x {
			return 0x7ff8000000000000
		}
		return math.Float64bits(x)
	}
	return 0
}

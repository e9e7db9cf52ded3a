package xfd

import "errors"

var (
	// ErrInvalidVector 表示 IoVec 的 (偏移, 长度) 超出底层缓冲区边界。
	ErrInvalidVector = errors.New("xfd: vector window out of buffer bounds")

	// ErrNilFunc 表示作用域化获取收到了 nil 的作用域函数。
	ErrNilFunc = errors.New("xfd: scoped function is nil")
)

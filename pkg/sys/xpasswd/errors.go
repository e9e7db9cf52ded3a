package xpasswd

import "errors"

var (
	// ErrMalformedEntry 表示数据库中某行不符合 passwd(5)/group(5) 格式。
	// 包装后的错误携带行号与具体原因。
	ErrMalformedEntry = errors.New("xpasswd: malformed database entry")

	// ErrNilFunc 表示枚举收到了 nil 回调。
	ErrNilFunc = errors.New("xpasswd: entry function is nil")
)

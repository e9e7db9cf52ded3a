//go:build unix

package xcall

import (
	"errors"
	"strings"

	"golang.org/x/sys/unix"
)

var (
	// ErrNilCall 表示传入的原始调用为 nil（校验错误，未发生原始调用）。
	ErrNilCall = errors.New("xcall: nil call")

	// ErrEmptyOp 表示操作名为空（校验错误，未发生原始调用）。
	ErrEmptyOp = errors.New("xcall: empty operation name")
)

// Error 是附加了诊断上下文的系统调用错误。
//
// 三个字段各自独立：Errno 是原始错误类别，Op 是产生错误的操作名，
// Context 是渲染后的诊断文本。丰富化只填充 Context，绝不改变前
// 两者——这是本包的核心不变量。
//
// Unwrap 返回原始错误，errors.Is / errors.As 穿透包装后行为不变。
type Error struct {
	// Errno 原始 OS 错误类别；原始错误不含 errno 时为 0。
	Errno unix.Errno
	// Op 产生错误的操作名，逐字进入错误文本，是日志抓取依赖的
	// 稳定接口。
	Op string
	// Context 渲染后的诊断上下文（单行），可能为空。
	Context string

	// wrapped 原始错误对象，保持完整链条。
	wrapped error
}

// newError 从终局失败构造丰富化错误。
func newError(op string, err error, ctx string) *Error {
	e := &Error{Op: op, Context: ctx, wrapped: err}
	if errno, ok := ErrnoOf(err); ok {
		e.Errno = errno
	}
	return e
}

// Error 渲染为 "op: 原始错误文本 [上下文]"。
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Op)
	b.WriteString(": ")
	if e.wrapped != nil {
		b.WriteString(e.wrapped.Error())
	}
	if e.Context != "" {
		b.WriteString(" [")
		b.WriteString(e.Context)
		b.WriteByte(']')
	}
	return b.String()
}

// Unwrap 返回原始错误，保持 errors.Is/As 链条。
func (e *Error) Unwrap() error { return e.wrapped }

// ErrnoOf 从错误链中提取原始 errno。
func ErrnoOf(err error) (unix.Errno, bool) {
	var errno unix.Errno
	if errors.As(err, &errno) {
		return errno, true
	}
	return 0, false
}

// IsInterrupted 报告错误是否为"被信号打断"（EINTR）——唯一的
// 瞬态可重试类别。
func IsInterrupted(err error) bool {
	return errors.Is(err, unix.EINTR)
}

// IsWouldBlock 报告错误是否为"将会阻塞"（EAGAIN/EWOULDBLOCK）。
func IsWouldBlock(err error) bool {
	return errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EWOULDBLOCK)
}

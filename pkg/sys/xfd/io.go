//go:build unix

package xfd

import (
	"strconv"

	"golang.org/x/sys/unix"

	"github.com/omeyang/oskit/pkg/sys/xcall"
	"github.com/omeyang/oskit/pkg/sys/xflag"
)

// 原始调用以包级变量持有，便于测试替换。
var (
	sysOpen     = unix.Open
	sysClose    = unix.Close
	sysRead     = unix.Read
	sysWrite    = unix.Write
	sysShutdown = unix.Shutdown
	sysPipe     = unix.Pipe
)

// Open 打开 path 并返回新句柄。
//
// 调用经 [xcall.InvokeRet] 包装：EINTR 透明重试，失败时错误携带
// 路径、渲染后的打开标志与权限位。
func Open(path string, flags xflag.Set[int], perm uint32, opts ...xcall.Option) (Fd, error) {
	opts = append(opts, xcall.WithRetryOnInterrupted(true))
	raw, err := xcall.InvokeRet("open", func() (int, error) {
		return sysOpen(path, flags.Bits(), perm)
	}, func() xcall.Context {
		return xcall.Args(
			"path", path,
			"flags", xflag.OpenFlags().Render(flags),
			"perm", "0o"+strconv.FormatUint(uint64(perm), 8),
		)
	}, opts...)
	if err != nil {
		return -1, err
	}
	return FromInt(raw), nil
}

// Close 关闭句柄。
//
// 有意不重试 EINTR：close(2) 被打断后描述符状态未定义，重发可能
// 关闭一个已被内核复用给其他文件的描述符。
func Close(fd Fd, opts ...xcall.Option) error {
	return xcall.Invoke("close", func() error {
		return sysClose(fd.Int())
	}, func() xcall.Context {
		return xcall.Args("fd", fd.Int())
	}, opts...)
}

// Read 从 fd 读入向量窗口，返回读到的字节数。EINTR 透明重试。
// 返回 0 且无错误表示文件结束。
func Read(fd Fd, v IoVec, opts ...xcall.Option) (int, error) {
	opts = append(opts, xcall.WithRetryOnInterrupted(true))
	return xcall.InvokeRet("read", func() (int, error) {
		return sysRead(fd.Int(), v.Bytes())
	}, func() xcall.Context {
		return xcall.Args("fd", fd.Int(), "vec", v.String())
	}, opts...)
}

// Write 把向量窗口写入 fd，返回写出的字节数。EINTR 透明重试。
// 短写不视为错误，由调用方按返回值续写。
func Write(fd Fd, v IoVec, opts ...xcall.Option) (int, error) {
	opts = append(opts, xcall.WithRetryOnInterrupted(true))
	return xcall.InvokeRet("write", func() (int, error) {
		return sysWrite(fd.Int(), v.Bytes())
	}, func() xcall.Context {
		return xcall.Args("fd", fd.Int(), "vec", v.String())
	}, opts...)
}

// Shutdown 关闭套接字的一个或两个方向（how 取 unix.SHUT_*）。
//
// ENOTCONN 映射为成功：对端并发断开后再执行关闭是常见竞态，
// 套接字此时已处于调用方想要的状态。
func Shutdown(fd Fd, how int, opts ...xcall.Option) error {
	err := xcall.Invoke("shutdown", func() error {
		return sysShutdown(fd.Int(), how)
	}, func() xcall.Context {
		return xcall.Args("fd", fd.Int(), "how", how)
	}, opts...)
	if errno, ok := xcall.ErrnoOf(err); ok && errno == unix.ENOTCONN {
		return nil
	}
	return err
}

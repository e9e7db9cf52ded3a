//go:build unix

package xfd

import (
	"github.com/omeyang/oskit/pkg/sys/xcall"
	"github.com/omeyang/oskit/pkg/sys/xflag"
)

// WithFile 打开 path，在句柄上执行 fn，随后关闭。
//
// 关闭在所有退出路径上执行（含 fn 返回错误或 panic）。fn 已失败
// 时关闭只尽力而为，关闭错误不再上抛；fn 成功而关闭失败时返回
// 关闭错误——对写路径而言 close(2) 的失败意味着数据可能未落盘。
func WithFile(path string, flags xflag.Set[int], perm uint32, fn func(Fd) error) error {
	if fn == nil {
		return ErrNilFunc
	}
	fd, err := Open(path, flags, perm)
	if err != nil {
		return err
	}
	return runScoped(fn, fd)
}

// WithPipe 创建一对管道句柄 (读端, 写端)，在其上执行 fn，随后
// 两端都关闭。关闭纪律与 [WithFile] 相同；两端关闭都失败时返回
// 读端的错误。
func WithPipe(fn func(r, w Fd) error) error {
	if fn == nil {
		return ErrNilFunc
	}
	var p [2]int
	err := xcall.Invoke("pipe", func() error {
		return sysPipe(p[:])
	}, nil)
	if err != nil {
		return err
	}
	r, w := FromInt(p[0]), FromInt(p[1])
	return runScoped(func(Fd) error { return fn(r, w) }, r, w)
}

// runScoped 执行 fn 并保证 fds 在任何退出路径上被关闭。
func runScoped(fn func(Fd) error, fds ...Fd) (err error) {
	defer func() {
		for _, fd := range fds {
			closeErr := Close(fd)
			if err == nil {
				err = closeErr
			}
		}
	}()
	return fn(fds[0])
}

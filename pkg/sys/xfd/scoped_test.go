//go:build unix

package xfd

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	"github.com/omeyang/oskit/pkg/sys/xflag"
)

func TestWithFileClosesOnSuccess(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scoped.dat")
	var seen Fd

	err := WithFile(path, xflag.Of(xflag.Wronly, xflag.Creat), 0o600, func(fd Fd) error {
		seen = fd
		_, err := Write(fd, WholeBuffer([]byte("x")))
		return err
	})
	require.NoError(t, err)

	// 作用域结束后句柄已关闭：再写必然 EBADF
	_, err = Write(seen, WholeBuffer([]byte("y")))
	assert.ErrorIs(t, err, unix.EBADF)
}

func TestWithFileClosesOnFuncError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scoped.dat")
	boom := errors.New("domain failure")
	var seen Fd

	err := WithFile(path, xflag.Of(xflag.Wronly, xflag.Creat), 0o600, func(fd Fd) error {
		seen = fd
		return boom
	})
	assert.ErrorIs(t, err, boom, "主操作错误原样上抛")

	_, err = Write(seen, WholeBuffer([]byte("y")))
	assert.ErrorIs(t, err, unix.EBADF)
}

func TestWithFileCloseFailureNotRaisedAfterFuncError(t *testing.T) {
	boom := errors.New("primary failure")
	origClose := sysClose
	t.Cleanup(func() { sysClose = origClose })
	sysClose = func(fd int) error { return unix.EIO }

	err := WithFile(filepath.Join(t.TempDir(), "f"), xflag.Of(xflag.Wronly, xflag.Creat), 0o600,
		func(Fd) error { return boom })
	assert.ErrorIs(t, err, boom, "主操作已失败时关闭错误不得覆盖")
}

func TestWithFileCloseFailureRaisedAfterSuccess(t *testing.T) {
	origClose := sysClose
	t.Cleanup(func() { sysClose = origClose })
	sysClose = func(fd int) error { return unix.EIO }

	err := WithFile(filepath.Join(t.TempDir(), "f"), xflag.Of(xflag.Wronly, xflag.Creat), 0o600,
		func(Fd) error { return nil })
	assert.ErrorIs(t, err, unix.EIO, "主操作成功时关闭失败必须可见")
}

func TestWithFileOpenFailure(t *testing.T) {
	called := false
	err := WithFile(filepath.Join(t.TempDir(), "missing"), xflag.Of(xflag.Rdonly), 0,
		func(Fd) error {
			called = true
			return nil
		})
	assert.ErrorIs(t, err, unix.ENOENT)
	assert.False(t, called, "打开失败时作用域函数不得执行")
}

func TestWithFileNilFunc(t *testing.T) {
	err := WithFile("/tmp/x", xflag.Of(xflag.Rdonly), 0, nil)
	assert.ErrorIs(t, err, ErrNilFunc)
}

func TestWithPipe(t *testing.T) {
	var rSeen, wSeen Fd
	err := WithPipe(func(r, w Fd) error {
		rSeen, wSeen = r, w
		if _, err := Write(w, WholeBuffer([]byte("ping"))); err != nil {
			return err
		}
		buf := make([]byte, 8)
		n, err := Read(r, WholeBuffer(buf))
		if err != nil {
			return err
		}
		assert.Equal(t, "ping", string(buf[:n]))
		return nil
	})
	require.NoError(t, err)

	// 两端都已关闭
	_, err = Write(wSeen, WholeBuffer([]byte("x")))
	assert.ErrorIs(t, err, unix.EBADF)
	_, err = Read(rSeen, WholeBuffer(make([]byte, 1)))
	assert.ErrorIs(t, err, unix.EBADF)
}

func TestWithPipeNilFunc(t *testing.T) {
	assert.ErrorIs(t, WithPipe(nil), ErrNilFunc)
}

//go:build unix

package xcall_test

import (
	"errors"
	"fmt"

	"github.com/omeyang/oskit/pkg/sys/xcall"
	"golang.org/x/sys/unix"
)

func ExampleInvokeRet() {
	path := "/no/such/file"
	_, err := xcall.InvokeRet("open", func() (int, error) {
		return -1, unix.ENOENT // 演示用注入失败；真实代码里是 unix.Open(...)
	}, func() xcall.Context {
		return xcall.Args("path", path, "flags", 0)
	}, xcall.WithRetryOnInterrupted(true))

	fmt.Println(err)
	// 原始错误类别穿透包装
	fmt.Println(errors.Is(err, unix.ENOENT))
	// Output:
	// open: no such file or directory [path="/no/such/file" flags=0]
	// true
}

func ExampleError() {
	err := xcall.Invoke("connect", func() error {
		return unix.ECONNREFUSED
	}, func() xcall.Context {
		return xcall.Args("addr", "10.0.0.1:80")
	})

	var callErr *xcall.Error
	if errors.As(err, &callErr) {
		fmt.Println(callErr.Op)
		fmt.Println(callErr.Errno == unix.ECONNREFUSED)
		fmt.Println(callErr.Context)
	}
	// Output:
	// connect
	// true
	// addr="10.0.0.1:80"
}

//go:build unix

package xflag_test

import (
	"fmt"

	"github.com/omeyang/oskit/pkg/sys/xflag"
)

func ExampleTable_Render() {
	tbl := xflag.OpenFlags()

	s := xflag.Of(xflag.Wronly, xflag.Append)
	fmt.Println(tbl.Render(s))

	// 空集合渲染为默认访问模式 rdonly
	fmt.Println(tbl.Render(xflag.Set[int]{}))
	// Output:
	// (wronly append)
	// (rdonly)
}

func ExampleCanWrite() {
	s := xflag.Of(xflag.Wronly, xflag.Append)
	fmt.Println(xflag.CanWrite(s))
	fmt.Println(xflag.CanRead(s))
	// Output:
	// true
	// false
}

func ExampleMode_Apply() {
	// 访问模式作为整体写入，覆盖而非并集
	s := xflag.Of(xflag.Creat)
	s = xflag.AccessMode.Apply(s, xflag.Rdwr)
	fmt.Println(xflag.OpenFlags().Render(s))
	// Output: (rdwr creat)
}

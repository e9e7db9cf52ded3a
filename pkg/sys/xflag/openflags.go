//go:build unix

package xflag

import (
	"sync"

	"golang.org/x/sys/unix"
)

// open(2) 标志。名称即渲染记号。
//
// 注意：O_SYNC 在 Linux 上是两比特组合（__O_SYNC|O_DSYNC），不满足
// 单比特不变量，故表中使用单比特的 O_DSYNC。
var (
	// 访问模式（O_ACCMODE 子字段成员，作为整体读写）
	Rdonly = Flag[int]{Name: "rdonly", Value: unix.O_RDONLY} // 位模式为零的指定默认成员
	Wronly = Flag[int]{Name: "wronly", Value: unix.O_WRONLY}
	Rdwr   = Flag[int]{Name: "rdwr", Value: unix.O_RDWR}

	// 单比特标志
	Append    = Flag[int]{Name: "append", Value: unix.O_APPEND}
	Cloexec   = Flag[int]{Name: "cloexec", Value: unix.O_CLOEXEC}
	Creat     = Flag[int]{Name: "creat", Value: unix.O_CREAT}
	Directory = Flag[int]{Name: "directory", Value: unix.O_DIRECTORY}
	Dsync     = Flag[int]{Name: "dsync", Value: unix.O_DSYNC}
	Excl      = Flag[int]{Name: "excl", Value: unix.O_EXCL}
	Noctty    = Flag[int]{Name: "noctty", Value: unix.O_NOCTTY}
	Nofollow  = Flag[int]{Name: "nofollow", Value: unix.O_NOFOLLOW}
	Nonblock  = Flag[int]{Name: "nonblock", Value: unix.O_NONBLOCK}
	Trunc     = Flag[int]{Name: "trunc", Value: unix.O_TRUNC}
)

// AccessMode 是 open(2) 的三态访问模式子字段（O_ACCMODE）。
// 整数顺序承载内核调用约定，见 openflags_test.go 的映射表断言。
var AccessMode = Mode[int]{
	Name:   "accmode",
	Mask:   unix.O_ACCMODE,
	Values: []Flag[int]{Rdonly, Wronly, Rdwr},
}

var (
	openFlagsOnce sync.Once
	openFlagsTbl  *Table[int]
)

// OpenFlags 返回 open(2) 标志表。
// 首次调用时构造并探测，之后返回同一实例：过滤发生在初始化而非
// 使用时，进程生命周期内重复查询廉价且一致。
func OpenFlags() *Table[int] {
	openFlagsOnce.Do(func() {
		tbl, err := NewTable([]Flag[int]{
			Append, Cloexec, Creat, Directory, Dsync,
			Excl, Noctty, Nofollow, Nonblock, Trunc,
		}, WithMode(AccessMode))
		if err != nil {
			// 表定义是编译期常量，构造失败属于程序缺陷
			panic(err)
		}
		openFlagsTbl = tbl
	})
	return openFlagsTbl
}

// CanRead 报告访问模式是否允许读（rdonly 或 rdwr）。
func CanRead(s Set[int]) bool {
	mode := s.Bits() & unix.O_ACCMODE
	return mode == unix.O_RDONLY || mode == unix.O_RDWR
}

// CanWrite 报告访问模式是否允许写（wronly 或 rdwr）。
func CanWrite(s Set[int]) bool {
	mode := s.Bits() & unix.O_ACCMODE
	return mode == unix.O_WRONLY || mode == unix.O_RDWR
}

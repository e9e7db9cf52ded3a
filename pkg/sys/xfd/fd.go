package xfd

import (
	"encoding/binary"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Fd 是原始文件描述符的身份包装。
//
// 零值是描述符 0（标准输入），与整数的互转恒等；负值表示
// "无句柄"，可用 [Fd.Valid] 判别。Fd 可直接用 == 比较、可作
// map key。
type Fd int

// Stdin、Stdout、Stderr 是 POSIX 规定的三个标准描述符。
const (
	Stdin  Fd = 0
	Stdout Fd = 1
	Stderr Fd = 2
)

// FromInt 把原始描述符整数包装为 Fd。恒等转换，不做任何校验。
func FromInt(raw int) Fd {
	return Fd(raw)
}

// Int 返回底层的原始描述符整数。
func (fd Fd) Int() int {
	return int(fd)
}

// Valid 报告 fd 是否非负。负描述符从不指向内核对象。
func (fd Fd) Valid() bool {
	return fd >= 0
}

// String 返回描述符的十进制形式。
func (fd Fd) String() string {
	return strconv.Itoa(int(fd))
}

// Compare 按底层整数比较两个描述符，返回 -1、0 或 +1。
func (fd Fd) Compare(other Fd) int {
	switch {
	case fd < other:
		return -1
	case fd > other:
		return 1
	default:
		return 0
	}
}

// Hash 返回描述符的 64 位哈希，与 == 的相等性一致。
func (fd Fd) Hash() uint64 {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(int64(fd)))
	return xxhash.Sum64(buf[:])
}

package xfd

import "fmt"

// IoVec 是外部缓冲区上的一个读写窗口：(缓冲区, 偏移, 长度) 三元组。
//
// IoVec 只借用缓冲区，绝不复制；不变量 off >= 0 ∧ length >= 0 ∧
// off+length <= len(buf) 在构造时校验，此后按值传递的 IoVec 始终
// 合法。零值是空缓冲区上的空窗口，可安全使用。
type IoVec struct {
	buf    []byte
	off    int
	length int
}

// NewIoVec 在 buf 上构造 [off, off+length) 窗口。
// 窗口越界时返回 [ErrInvalidVector]，并在错误信息中给出越界的坐标。
func NewIoVec(buf []byte, off, length int) (IoVec, error) {
	if off < 0 || length < 0 || off+length > len(buf) {
		return IoVec{}, fmt.Errorf("%w: [%d, %d+%d) over %d bytes",
			ErrInvalidVector, off, off, length, len(buf))
	}
	return IoVec{buf: buf, off: off, length: length}, nil
}

// WholeBuffer 返回覆盖 buf 全部的窗口。
func WholeBuffer(buf []byte) IoVec {
	return IoVec{buf: buf, off: 0, length: len(buf)}
}

// Off 返回窗口在底层缓冲区中的起始偏移。
func (v IoVec) Off() int {
	return v.off
}

// Len 返回窗口长度（字节）。
func (v IoVec) Len() int {
	return v.length
}

// Bytes 返回窗口覆盖的字节切片。切片与底层缓冲区共享存储。
func (v IoVec) Bytes() []byte {
	return v.buf[v.off : v.off+v.length]
}

// Slice 在窗口内部再取 [off, off+length) 子窗口，坐标相对窗口起点。
func (v IoVec) Slice(off, length int) (IoVec, error) {
	if off < 0 || length < 0 || off+length > v.length {
		return IoVec{}, fmt.Errorf("%w: [%d, %d+%d) over %d-byte window",
			ErrInvalidVector, off, off, length, v.length)
	}
	return IoVec{buf: v.buf, off: v.off + off, length: length}, nil
}

// String 返回窗口坐标的可读形式，如 "[16, 16+64)"。
func (v IoVec) String() string {
	return fmt.Sprintf("[%d, %d+%d)", v.off, v.off, v.length)
}

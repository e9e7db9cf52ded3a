package xcidr

import (
	"encoding/binary"
	"fmt"
	"iter"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Block 表示一个 IPv4 CIDR 块：归一化基地址 + 前缀长度。
//
// 不变量：前缀长度之外的所有低位为零（由 [New] 归一化保证）。
// 值类型，可直接比较和作为 map key；相等性只看归一化地址和前缀长度，
// 与构造时传入的原始基地址无关。
type Block struct {
	addr Addr
	bits uint8
}

// New 构造 CIDR 块。bits 超出 [0,32] 返回 [ErrInvalidBits]。
//
// 基地址通过逻辑右移再左移清零前缀之外的 32-bits 个低位。
// 对已归一化的地址幂等：再次归一化不改变任何内容。
func New(base Addr, bits int) (Block, error) {
	if bits < 0 || bits > 32 {
		return Block{}, fmt.Errorf("%w: %d", ErrInvalidBits, bits)
	}
	// Go 规范保证无符号移位计数 >= 位宽时结果为 0，bits=0 时自然得到 0.0.0.0。
	shift := uint(32 - bits)
	return Block{addr: base >> shift << shift, bits: uint8(bits)}, nil
}

// OfString 解析 "a.b.c.d/bits" 规范形式。
//
// bits 必须是十进制且除单个 "0" 外不允许前导零；地址部分按
// [ParseAddr] 的严格规则解析。解析结果经过归一化，因此
// OfString 仅在归一化之后才是 [Block.String] 的精确逆运算。
func OfString(s string) (Block, error) {
	idx := strings.IndexByte(s, '/')
	if idx < 0 {
		return Block{}, fmt.Errorf("%w: missing '/' in %q", ErrInvalidBlock, s)
	}
	addr, err := ParseAddr(s[:idx])
	if err != nil {
		return Block{}, fmt.Errorf("%w: %w", ErrInvalidBlock, err)
	}
	bits, err := parseBits(s[idx+1:])
	if err != nil {
		return Block{}, fmt.Errorf("%w: bits %q in %q", ErrInvalidBlock, s[idx+1:], s)
	}
	return New(addr, bits)
}

// parseBits 解析前缀长度，拒绝空串、非数字、前导零和越界值。
func parseBits(s string) (int, error) {
	if s == "" || len(s) > 2 {
		return 0, ErrInvalidBits
	}
	if len(s) > 1 && s[0] == '0' {
		return 0, ErrInvalidBits
	}
	v := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, ErrInvalidBits
		}
		v = v*10 + int(c-'0')
	}
	if v > 32 {
		return 0, ErrInvalidBits
	}
	return v, nil
}

// MustOfString 是 [OfString] 的 panic 版本，便于测试和常量初始化。
func MustOfString(s string) Block {
	b, err := OfString(s)
	if err != nil {
		panic(err)
	}
	return b
}

// Addr 返回归一化后的基地址。
func (b Block) Addr() Addr { return b.addr }

// Bits 返回前缀长度。
func (b Block) Bits() int { return int(b.bits) }

// String 返回规范形式 "a.b.c.d/bits"（归一化后的基地址）。
func (b Block) String() string {
	return fmt.Sprintf("%s/%d", b.addr, b.bits)
}

// Match 判断地址是否落在块内：将地址按同一前缀长度归一化后
// 与块的归一化基地址比较。
func (b Block) Match(a Addr) bool {
	shift := uint(32 - b.bits)
	return a>>shift<<shift == b.addr
}

// MatchString 判断字符串地址是否落在块内。
// 无法解析或非 IPv4 的输入返回 false 而非错误：扫描混合地址族
// 列表时，"无关地址族"是常态而非异常。
func (b Block) MatchString(s string) bool {
	a, err := ParseAddr(s)
	if err != nil {
		return false
	}
	return b.Match(a)
}

// Size 返回块内地址总数 2^(32-bits)。
func (b Block) Size() uint64 {
	return uint64(1) << (32 - uint(b.bits))
}

// Addresses 返回块内全部地址的惰性升序序列。
//
// 序列有限且可重复遍历（每次 range 从头开始）。终止条件是
// "下一个整数不再匹配"，因此无需显式计数器即可精确枚举
// 2^(32-bits) 个元素；255.255.255.255 处的回绕单独防护。
func (b Block) Addresses() iter.Seq[Addr] {
	return func(yield func(Addr) bool) {
		for a := b.addr; b.Match(a); a++ {
			if !yield(a) {
				return
			}
			if a == maxAddr {
				return
			}
		}
	}
}

// Hash 返回与相等性一致的 64 位哈希：归一化相等的块哈希值必然相同。
// 使用 xxhash 计算大端地址 4 字节 + 前缀长度 1 字节。
func (b Block) Hash() uint64 {
	var buf [5]byte
	binary.BigEndian.PutUint32(buf[:4], uint32(b.addr))
	buf[4] = b.bits
	return xxhash.Sum64(buf[:])
}

package xcidr

import (
	"encoding/binary"
	"fmt"
	"net/netip"
	"strconv"
	"strings"
)

// Addr 是 IPv4 地址的 32 位无符号整数表示（网络字节序，大端）。
//
// 值类型，可直接比较、排序和作为 map key。
// 整数相等即地址相等；整数大小即地址顺序。
type Addr uint32

// maxAddr 是最大 IPv4 地址 255.255.255.255。
const maxAddr = Addr(^uint32(0))

// ParseAddr 将点分十进制字符串严格解析为 [Addr]。
//
// 每个八位段必须是 [0,255] 范围内的十进制数，恰好 4 段；
// 不接受空白、符号前缀和前导零（"010" 视为无效，与 [net/netip] 一致，
// 避免八进制歧义）。解析失败时错误信息包含违规八位段与原始字符串。
func ParseAddr(s string) (Addr, error) {
	parts := strings.SplitN(s, ".", 5)
	if len(parts) != 4 {
		return 0, fmt.Errorf("%w: expected 4 octets in %q", ErrInvalidAddress, s)
	}
	var v uint32
	for _, part := range parts {
		octet, err := parseOctet(part)
		if err != nil {
			return 0, fmt.Errorf("%w: octet %q in %q", ErrInvalidAddress, part, s)
		}
		v = v<<8 | uint32(octet)
	}
	return Addr(v), nil
}

// parseOctet 解析单个八位段，拒绝空段、非数字、前导零和越界值。
func parseOctet(s string) (uint8, error) {
	if s == "" || len(s) > 3 {
		return 0, ErrInvalidAddress
	}
	if len(s) > 1 && s[0] == '0' {
		return 0, ErrInvalidAddress
	}
	var v uint32
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, ErrInvalidAddress
		}
		v = v*10 + uint32(c-'0')
	}
	if v > 255 {
		return 0, ErrInvalidAddress
	}
	return uint8(v), nil
}

// MustParseAddr 是 [ParseAddr] 的 panic 版本，便于测试和常量初始化。
func MustParseAddr(s string) Addr {
	a, err := ParseAddr(s)
	if err != nil {
		panic(err)
	}
	return a
}

// String 返回点分十进制形式 "a.b.c.d"。
func (a Addr) String() string {
	var b strings.Builder
	b.Grow(15)
	b.WriteString(strconv.FormatUint(uint64(a>>24), 10))
	b.WriteByte('.')
	b.WriteString(strconv.FormatUint(uint64(a>>16&0xff), 10))
	b.WriteByte('.')
	b.WriteString(strconv.FormatUint(uint64(a>>8&0xff), 10))
	b.WriteByte('.')
	b.WriteString(strconv.FormatUint(uint64(a&0xff), 10))
	return b.String()
}

// Uint32 返回地址的整数值。
func (a Addr) Uint32() uint32 { return uint32(a) }

// AddrFromUint32 从 uint32 创建 [Addr]，恒等转换。
func AddrFromUint32(v uint32) Addr { return Addr(v) }

// ToNetip 将 [Addr] 转换为 [netip.Addr]。
func (a Addr) ToNetip() netip.Addr {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(a))
	return netip.AddrFrom4(b)
}

// AddrFromNetip 将 [netip.Addr] 转换为 [Addr]。
// 接受纯 IPv4 和 IPv4-mapped IPv6 地址；其他地址族返回 (0, false)。
func AddrFromNetip(addr netip.Addr) (Addr, bool) {
	if !addr.Is4() && !addr.Is4In6() {
		return 0, false
	}
	b := addr.Unmap().As4()
	return Addr(binary.BigEndian.Uint32(b[:])), true
}

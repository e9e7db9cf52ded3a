package xcidr

import (
	"fmt"
	"net/netip"

	"go4.org/netipx"
)

// Prefix 将块转换为 [netip.Prefix]，用于对接标准生态。
func (b Block) Prefix() netip.Prefix {
	return netip.PrefixFrom(b.addr.ToNetip(), int(b.bits))
}

// Range 将块转换为 [netipx.IPRange]（起止地址闭区间）。
func (b Block) Range() netipx.IPRange {
	return netipx.RangeOfPrefix(b.Prefix())
}

// FromPrefix 从 [netip.Prefix] 创建块。
// 非 IPv4 前缀返回 [ErrNotIPv4]；IPv4-mapped IPv6 地址按纯 IPv4 处理，
// 但要求 bits >= 96（映射前缀之外无 IPv4 语义）。
func FromPrefix(p netip.Prefix) (Block, error) {
	if !p.IsValid() {
		return Block{}, fmt.Errorf("%w: invalid prefix", ErrInvalidBlock)
	}
	bits := p.Bits()
	if p.Addr().Is4In6() {
		if bits < 96 {
			return Block{}, fmt.Errorf("%w: IPv4-mapped prefix %s has bits < 96", ErrNotIPv4, p)
		}
		bits -= 96
	}
	addr, ok := AddrFromNetip(p.Addr())
	if !ok {
		return Block{}, fmt.Errorf("%w: %s", ErrNotIPv4, p)
	}
	return New(addr, bits)
}

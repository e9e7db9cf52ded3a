package xcidr

import "errors"

var (
	// ErrInvalidAddress 表示无效的点分十进制 IPv4 地址。
	ErrInvalidAddress = errors.New("xcidr: invalid IPv4 address")

	// ErrInvalidBits 表示 CIDR 前缀长度越界（合法范围 [0,32]）。
	ErrInvalidBits = errors.New("xcidr: CIDR bits out of range")

	// ErrInvalidBlock 表示无效的 "a.b.c.d/bits" CIDR 字符串。
	ErrInvalidBlock = errors.New("xcidr: invalid CIDR block")

	// ErrNotIPv4 表示地址或前缀不属于 IPv4 地址族。
	ErrNotIPv4 = errors.New("xcidr: not an IPv4 address")
)

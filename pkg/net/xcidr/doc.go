// Package xcidr 提供 IPv4 地址与 CIDR 子网的位精确模型。
//
// xcidr 以 32 位无符号整数（网络字节序）作为 IPv4 地址的核心表示，
// CIDR 块由归一化后的基地址和前缀长度组成，保证与内核二进制布局
// 逐位一致的子网匹配运算。
//
// # 核心类型
//
//   - [Addr]: IPv4 地址的 uint32 表示，支持严格的点分十进制解析
//   - [Block]: CIDR 块（归一化基地址 + 前缀长度 0–32）
//
// # 归一化不变量
//
// [New] 通过逻辑右移再左移将前缀之外的低位清零：
//
//	b, _ := xcidr.OfString("192.168.1.101/24")
//	fmt.Println(b)  // 192.168.1.0/24
//
// 两个 Block 相等当且仅当归一化地址与前缀长度都相等；相等性不记录
// 构造历史。[Block.Hash] 与相等性一致：归一化相等的块哈希值相同。
//
// # 匹配与枚举
//
// [Block.Match] 判断地址是否落在块内；[Block.MatchString] 对无法解析
// 或非 IPv4 的输入返回 false 而非错误——扫描混合地址族列表的调用方
// 不应为常见的"无关地址族"情形处理异常。
//
// [Block.Addresses] 返回惰性、有限、可重复遍历的升序地址序列，
// 在最后一个仍匹配的整数之后自然终止（无需显式计数器即可
// 约束为 2^(32-bits) 个元素）：
//
//	b, _ := xcidr.OfString("10.0.0.0/30")
//	for a := range b.Addresses() {
//	    fmt.Println(a)  // 10.0.0.0, 10.0.0.1, 10.0.0.2, 10.0.0.3
//	}
//
// # 与 netip / netipx 的互操作
//
// 核心表示保持 uint32 以保证位运算语义，标准生态的边界通过
// [Addr.ToNetip]、[AddrFromNetip]、[Block.Prefix]、[Block.Range] 和
// [FromPrefix] 对接 [net/netip] 与 [go4.org/netipx]。
//
// # 文本格式
//
// 规范字符串形式为 "a.b.c.d/bits"，ASCII、无空白，bits 为十进制且
// 除单个 "0" 之外不允许前导零。解析仅在归一化之后才是渲染的精确
// 逆运算：由未归一化基地址构造的块重新渲染时显示归一化形式。
//
// # 错误处理
//
// 预定义错误变量支持 errors.Is 判断：
//
//	_, err := xcidr.New(base, 33)
//	if errors.Is(err, xcidr.ErrInvalidBits) {
//	    // 前缀长度越界
//	}
package xcidr

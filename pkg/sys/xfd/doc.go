// Package xfd 提供 OS 资源句柄的身份类型与作用域化获取。
//
// # 句柄身份
//
// [Fd] 是对原始文件描述符整数的薄身份包装：与整数的互转是恒等
// 操作（除 OS 调用本身已做的校验外不再校验），相等性、排序、
// 哈希与字符串形式全部派生自底层整数。[Fd] 可直接比较、可作
// map key，是上层各组件统一的键类型。
//
// Fd 自身绝不承担清理责任：关闭由调用方显式执行，或交给
// [WithFile] / [WithPipe] 的作用域化获取。
//
// # 离散向量
//
// [IoVec] 是 (底层缓冲区, 偏移, 长度) 三元组，借用外部缓冲区而
// 绝不复制；不变量 off >= 0 ∧ len >= 0 ∧ off+len <= cap 在构造时
// 校验（[ErrInvalidVector]），读写包装在其窗口上操作。
//
// # 原始调用包装
//
// [Open]、[Read]、[Write] 经 [xcall] 丰富化并透明重试 EINTR；
// [Close] 不重试——EINTR 后描述符状态未定义，重发可能关闭已被
// 复用的描述符。[Shutdown] 把 ENOTCONN 视为等价于成功的良性结果
// （对已断开的套接字执行关闭是常见且无害的竞态）。
//
// # 作用域化获取
//
// [WithFile] 与 [WithPipe] 保证句柄在所有退出路径（包括错误路径）
// 上被关闭；主操作已失败时关闭失败不再二次上抛，只尽力而为。
//
// 本包所有操作同步阻塞，不引入任何内部并发（并发由外围进程提供）。
package xfd

// Package xcall 把脆弱的原始系统调用包装成可诊断、可重试的类型化 API。
//
// 原始调用要么返回值、要么以原语级 OS 错误（errno）失败。xcall 在
// 失败路径上做两件事，且只做这两件事：
//
//   - 透明重试被信号打断（EINTR）的调用，对调用方不可见
//   - 给终局失败附加调用参数的结构化诊断上下文，绝不改变原始
//     错误类别和操作名
//
// # 惰性诊断上下文
//
// 上下文由 [ContextFunc] 惰性构造：成功路径零成本，只有调用终局
// 失败时才会求值并渲染。结构化值使用 [log/slog] 的 [slog.Attr]，
// 渲染为单行 key=value 文本（不换行，保证日志可 grep）：
//
//	fd, err := xcall.InvokeRet("open", func() (int, error) {
//	    return unix.Open(path, flags, perm)
//	}, func() xcall.Context {
//	    return xcall.Args("path", path, "flags", flags, "perm", perm)
//	}, xcall.WithRetryOnInterrupted(true))
//
// # 重试语义
//
// 重试发生在包装器内部、丰富化之前：重试掩盖的是瞬态条件，
// 丰富化解释的是终局失败，两者混在一起会为从未真正失败的调用
// 构造又丢弃上下文。启用重试时 EINTR 无限重试、无退避、无计数
// （信号打断被假定为罕见且重试廉价）；其他任何失败或成功立即
// 结束循环。禁用重试时调用恰好执行一次。
//
// 重试引擎复用 [github.com/avast/retry-go/v5]（UntilSucceeded +
// RetryIf + 零延迟），与未启用重试的单次快速路径完全隔离。
//
// # 错误不变量
//
// [*Error] 携带 {原始错误类别, 操作名, 渲染后的上下文} 三个独立
// 字段；Unwrap 返回原始错误，errors.Is(err, unix.ENOENT) 之类的
// 判断在包装前后行为一致。操作名逐字进入错误文本，是日志抓取
// 依赖的稳定接口。
//
// # 校验错误
//
// 在任何原始调用发生之前被拦截的非法输入（空操作名、nil 调用）
// 直接返回哨兵错误，不重试也不丰富化——没有原始调用就没有
// 调用上下文。
//
// # 指标
//
// [Metrics] 是可选的 OTel 观测器（调用/重试/失败计数），nil 安全，
// 不配置时零开销。
package xcall

//go:build unix

package xcall

import (
	retry "github.com/avast/retry-go/v5"
)

// Option 配置单次调用的包装行为。
type Option func(*config)

type config struct {
	retryOnInterrupted bool
	metrics            *Metrics
}

// WithRetryOnInterrupted 控制 EINTR 透明重试（默认关闭）。
//
// 开启后被信号打断的调用无限重试、无退避、无计数；关闭时调用
// 恰好执行一次。只对可安全重发的调用开启——close(2) 之类在
// EINTR 后描述符状态未定义的调用必须保持关闭。
func WithRetryOnInterrupted(retryOn bool) Option {
	return func(c *config) {
		c.retryOnInterrupted = retryOn
	}
}

// WithMetrics 挂接可选的指标观测器。nil 安全。
func WithMetrics(m *Metrics) Option {
	return func(c *config) {
		c.metrics = m
	}
}

// Invoke 执行无返回值的原始调用。语义与 [InvokeRet] 一致。
func Invoke(op string, call func() error, ctxFn ContextFunc, opts ...Option) error {
	if call == nil {
		return ErrNilCall
	}
	_, err := InvokeRet(op, func() (struct{}, error) {
		return struct{}{}, call()
	}, ctxFn, opts...)
	return err
}

// InvokeRet 执行带返回值的原始调用，失败时重试（可选）并丰富化。
//
//   - 校验错误（空操作名、nil 调用）直接返回哨兵错误：没有原始
//     调用就没有重试和上下文
//   - 启用重试时，EINTR 失败被丢弃并立即重发，其他失败或成功
//     结束循环；重试发生在丰富化之前
//   - 终局失败时才求值 ctxFn 并渲染，包装为 [*Error]，原始错误
//     类别与操作名原样保留
//   - 成功时原样返回调用结果，ctxFn 永不求值
func InvokeRet[T any](op string, call func() (T, error), ctxFn ContextFunc, opts ...Option) (T, error) {
	var zero T
	if op == "" {
		return zero, ErrEmptyOp
	}
	if call == nil {
		return zero, ErrNilCall
	}

	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	var (
		v   T
		err error
	)
	if cfg.retryOnInterrupted {
		v, err = invokeRetrying(call, &cfg)
	} else {
		v, err = call()
	}
	cfg.metrics.recordCall(op, err)

	if err != nil {
		return zero, newError(op, err, renderContext(ctxFn))
	}
	return v, nil
}

// invokeRetrying 以 retry-go 驱动 EINTR 重试循环：无限尝试、
// 零延迟、只对被打断的失败重发，最终只返回最后一个错误。
func invokeRetrying[T any](call func() (T, error), cfg *config) (T, error) {
	return retry.NewWithData[T](
		retry.UntilSucceeded(),
		retry.RetryIf(IsInterrupted),
		retry.Delay(0),
		retry.DelayType(retry.FixedDelay),
		retry.OnRetry(func(n uint, err error) {
			cfg.metrics.recordRetry()
		}),
		retry.LastErrorOnly(true),
	).Do(call)
}

// renderContext 求值并渲染惰性上下文；ctxFn 为 nil 时上下文为空。
func renderContext(ctxFn ContextFunc) string {
	if ctxFn == nil {
		return ""
	}
	return ctxFn().Render()
}

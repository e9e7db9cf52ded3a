//go:build unix

package xcall

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"golang.org/x/sys/unix"
)

// 设计决策: 指标前缀使用 "xcall.*"，各包自治命名，与 OTel Meter
// scope name 保持一致（Meter("xcall")），避免与 scope 名称冗余嵌套。
const (
	// metricNameCallsTotal 原始调用次数计数器
	metricNameCallsTotal = "xcall.calls.total"
	// metricNameRetriesTotal EINTR 重试次数计数器
	metricNameRetriesTotal = "xcall.retries.total"
	// metricNameFailuresTotal 终局失败次数计数器
	metricNameFailuresTotal = "xcall.failures.total"
)

// instrumentationVersion 上报给 OTel 的插桩版本。
const instrumentationVersion = "0.1.0"

// Metrics 系统调用指标收集器。
// 所有记录方法对 nil 接收者安全：不配置指标时零开销。
type Metrics struct {
	callsTotal    metric.Int64Counter
	retriesTotal  metric.Int64Counter
	failuresTotal metric.Int64Counter
}

// NewMetrics 创建指标收集器。
// meterProvider 为 nil 时返回 (nil, nil)，表示不收集指标。
func NewMetrics(meterProvider metric.MeterProvider) (*Metrics, error) {
	if meterProvider == nil {
		return nil, nil
	}

	meter := meterProvider.Meter("xcall",
		metric.WithInstrumentationVersion(instrumentationVersion),
	)

	m := &Metrics{}
	var err error
	if m.callsTotal, err = meter.Int64Counter(metricNameCallsTotal,
		metric.WithDescription("原始系统调用次数"), metric.WithUnit("{call}")); err != nil {
		return nil, err
	}
	if m.retriesTotal, err = meter.Int64Counter(metricNameRetriesTotal,
		metric.WithDescription("EINTR 透明重试次数"), metric.WithUnit("{retry}")); err != nil {
		return nil, err
	}
	if m.failuresTotal, err = meter.Int64Counter(metricNameFailuresTotal,
		metric.WithDescription("终局失败次数"), metric.WithUnit("{failure}")); err != nil {
		return nil, err
	}
	return m, nil
}

// recordCall 记录一次调用及其终局结果。
func (m *Metrics) recordCall(op string, err error) {
	if m == nil {
		return
	}
	ctx := context.Background()
	opAttr := metric.WithAttributes(attribute.String("op", op))
	m.callsTotal.Add(ctx, 1, opAttr)
	if err != nil {
		m.failuresTotal.Add(ctx, 1, metric.WithAttributes(
			attribute.String("op", op),
			attribute.String("errno", errnoLabel(err)),
		))
	}
}

// recordRetry 记录一次 EINTR 重试。
func (m *Metrics) recordRetry() {
	if m == nil {
		return
	}
	m.retriesTotal.Add(context.Background(), 1)
}

// errnoLabel 返回错误的 errno 符号名标签；无 errno 时为 "none"。
func errnoLabel(err error) string {
	errno, ok := ErrnoOf(err)
	if !ok {
		return "none"
	}
	if name := unix.ErrnoName(errno); name != "" {
		return name
	}
	return errno.Error()
}

package xcall

import (
	"log/slog"
	"strconv"
	"strings"
)

// Context 是按插入顺序排列的命名参数映射，渲染后作为诊断文本
// 附加到失败调用的错误上。纯值类型，构造即定形，构造过程不会
// 失败——无法渲染的值应在传入前转换为占位符。
//
// 每次调用尝试都会（惰性地）新建 Context，调用成功时直接丢弃。
type Context struct {
	attrs []slog.Attr
}

// ContextFunc 惰性生产诊断上下文。仅在调用终局失败时被求值，
// 成功路径绝不触发。
type ContextFunc func() Context

// NewContext 从现成的 [slog.Attr] 构造上下文。
func NewContext(attrs ...slog.Attr) Context {
	return Context{attrs: attrs}
}

// Args 从交替的 (名称, 值) 对构造上下文，遵循 [slog.Logger] 的
// Any 约定：名称必须是 string，落单或非法的元素以 !BADKEY 记号
// 保留而非报错（上下文构造永不失败）。
func Args(pairs ...any) Context {
	attrs := make([]slog.Attr, 0, len(pairs)/2)
	for i := 0; i < len(pairs); {
		name, ok := pairs[i].(string)
		if !ok || i+1 == len(pairs) {
			attrs = append(attrs, slog.Any("!BADKEY", pairs[i]))
			i++
			continue
		}
		attrs = append(attrs, slog.Any(name, pairs[i+1]))
		i += 2
	}
	return Context{attrs: attrs}
}

// Append 返回追加了更多属性的新上下文，原值不变。
func (c Context) Append(attrs ...slog.Attr) Context {
	merged := make([]slog.Attr, 0, len(c.attrs)+len(attrs))
	merged = append(merged, c.attrs...)
	merged = append(merged, attrs...)
	return Context{attrs: merged}
}

// Len 返回属性个数。
func (c Context) Len() int { return len(c.attrs) }

// Render 渲染为单行 "name=value name=value" 文本，保持插入顺序。
// 行宽视为无限：结构化值绝不跨行折行，诊断日志保持可 grep。
// 字符串值统一加引号，避免含空白的值破坏 key=value 语法。
func (c Context) Render() string {
	if len(c.attrs) == 0 {
		return ""
	}
	var b strings.Builder
	for i, attr := range c.attrs {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(attr.Key)
		b.WriteByte('=')
		b.WriteString(renderValue(attr.Value))
	}
	return b.String()
}

// renderValue 渲染单个结构化值。
func renderValue(v slog.Value) string {
	v = v.Resolve()
	if v.Kind() == slog.KindString {
		return strconv.Quote(v.String())
	}
	return v.String()
}

package xflag

import (
	"fmt"
	"strconv"
	"strings"
)

// Table 是不可变的标志描述表：经过探测过滤的单比特标志集合，
// 外加至多一个模式子字段。一次构造，进程生命周期内重复使用。
type Table[T Bits] struct {
	flags       []Flag[T]
	mode        *Mode[T]
	unsupported []string
	known       T // 所有已知位的并集（含模式掩码），Strip 的依据
}

// TableOption 配置 [NewTable]。
type TableOption[T Bits] func(*tableConfig[T])

type tableConfig[T Bits] struct {
	mode  *Mode[T]
	probe func(T) bool
}

// WithMode 设置模式子字段。每张表至多一个。
func WithMode[T Bits](m Mode[T]) TableOption[T] {
	return func(c *tableConfig[T]) {
		c.mode = &m
	}
}

// WithProbe 设置宿主可用性探测函数。probe 返回 false 的标志在
// 构造时被静默过滤出已知集合（可通过 [Table.Unsupported] 查询）。
// 模式成员不参与探测：模式子字段属于调用约定而非可选能力。
func WithProbe[T Bits](probe func(T) bool) TableOption[T] {
	return func(c *tableConfig[T]) {
		if probe != nil {
			c.probe = probe
		}
	}
}

// NewTable 构造标志表。
//
// 过滤策略（构造时一次完成，使用时零成本）：
//   - 位值无法识别的标志——零值、非单比特、或探测报告不可用——
//     被静默移出已知集合，名称记入 [Table.Unsupported]
//   - 与模式掩码重叠的标志返回 [ErrFlagOverlapsMode]（这是表定义
//     错误而非宿主能力差异）
//   - 重名标志返回 [ErrDuplicateFlag]
//
// 模式子字段要求掩码非零、成员位模式都落在掩码内、零值成员至多
// 一个，否则返回 [ErrInvalidMode]。
func NewTable[T Bits](flags []Flag[T], opts ...TableOption[T]) (*Table[T], error) {
	cfg := &tableConfig[T]{}
	for _, opt := range opts {
		opt(cfg)
	}

	t := &Table[T]{mode: cfg.mode}

	if cfg.mode != nil {
		if err := validateMode(*cfg.mode); err != nil {
			return nil, err
		}
		t.known |= cfg.mode.Mask
	}

	seen := make(map[string]struct{}, len(flags))
	for _, f := range flags {
		if _, dup := seen[f.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateFlag, f.Name)
		}
		seen[f.Name] = struct{}{}

		if cfg.mode != nil && f.Value&cfg.mode.Mask != 0 {
			return nil, fmt.Errorf("%w: %q", ErrFlagOverlapsMode, f.Name)
		}
		if !isSingleBit(f.Value) || (cfg.probe != nil && !cfg.probe(f.Value)) {
			t.unsupported = append(t.unsupported, f.Name)
			continue
		}
		t.flags = append(t.flags, f)
		t.known |= f.Value
	}
	return t, nil
}

// validateMode 校验模式子字段定义。
func validateMode[T Bits](m Mode[T]) error {
	if m.Mask == 0 {
		return fmt.Errorf("%w: %q has empty mask", ErrInvalidMode, m.Name)
	}
	zeros := 0
	for _, v := range m.Values {
		if v.Value&^m.Mask != 0 {
			return fmt.Errorf("%w: member %q outside mask", ErrInvalidMode, v.Name)
		}
		if v.Value == 0 {
			zeros++
		}
	}
	if zeros > 1 {
		return fmt.Errorf("%w: %q has %d zero-valued members", ErrInvalidMode, m.Name, zeros)
	}
	return nil
}

// isSingleBit 报告 v 是否恰好占一个比特位。
func isSingleBit[T Bits](v T) bool {
	return v != 0 && v&(v-1) == 0
}

// Flags 返回过滤后保留的单比特标志（声明顺序）。
func (t *Table[T]) Flags() []Flag[T] { return t.flags }

// Mode 返回模式子字段；无模式时返回 (Mode{}, false)。
func (t *Table[T]) Mode() (Mode[T], bool) {
	if t.mode == nil {
		return Mode[T]{}, false
	}
	return *t.mode, true
}

// Unsupported 返回构造时被过滤掉的标志名称。
// 调用方可据此把静默降级转为显式能力检查。
func (t *Table[T]) Unsupported() []string { return t.unsupported }

// Strip 移除集合中表不认识的位（既非已知单比特标志也不在模式
// 掩码内），用于把任意来源的整数收敛到宿主支持的标志子集。
func (t *Table[T]) Strip(s Set[T]) Set[T] {
	return Set[T]{bits: s.bits & t.known}
}

// Render 渲染集合为括号包裹、空格分隔的标志名列表。
//
// 存在模式子字段时先把它作为一个记号提取（零位模式渲染为默认
// 成员名，绝非"无标志"），从剩余位中减去掩码后再按表序渲染
// 单比特标志；表不认识的残余位以一个 0x 前缀的十六进制记号收尾。
func (t *Table[T]) Render(s Set[T]) string {
	var tokens []string
	rem := s.bits

	if t.mode != nil {
		if member, ok := t.mode.Extract(s); ok {
			tokens = append(tokens, member.Name)
			rem &^= t.mode.Mask
		}
		// 位模式不对应任何成员时保留掩码位，由残余记号兜底
	}
	for _, f := range t.flags {
		if rem&f.Value == f.Value {
			tokens = append(tokens, f.Name)
			rem &^= f.Value
		}
	}
	if rem != 0 {
		tokens = append(tokens, "0x"+strconv.FormatUint(toUint64(rem), 16))
	}
	return "(" + strings.Join(tokens, " ") + ")"
}

// toUint64 把位域按无符号语义扩展为 uint64，供十六进制渲染。
func toUint64[T Bits](v T) uint64 {
	return uint64(v) & (1<<64 - 1)
}

package xflag

// Bits 约束标志集合的整数底层类型。
// 覆盖内核接口常见的有符号与无符号位域宽度。
type Bits interface {
	~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64
}

// Flag 是一个命名标志：名称 1:1 对应一个位值。
// 单比特标志的 Value 恰好有一个比特位；模式成员的 Value 是
// 掩码内的位模式（允许指定默认成员为零）。
type Flag[T Bits] struct {
	Name  string
	Value T
}

// Mode 是多比特模式子字段：Mask 划定保留比特区间，Values 是
// 区间内合法位模式的成员集合。模式字段作为整体读写。
//
// 恰好允许一个 Value 为零的成员作为指定默认值（如 O_RDONLY），
// 该成员按名称渲染而非"无标志"。
type Mode[T Bits] struct {
	Name   string
	Mask   T
	Values []Flag[T]
}

// Extract 将 s 中的模式子字段作为整体取出。
// 返回匹配的成员；位模式不对应任何成员时返回 (Flag{}, false)。
// 零位模式匹配指定默认成员（若有），因此空集合也能取出默认模式。
func (m Mode[T]) Extract(s Set[T]) (Flag[T], bool) {
	pattern := s.bits & m.Mask
	for _, v := range m.Values {
		if v.Value == pattern {
			return v, true
		}
	}
	return Flag[T]{}, false
}

// Apply 将模式子字段作为整体设置为成员 f：先清空掩码区间再写入
// 位模式，绝不与旧值做位并集。
func (m Mode[T]) Apply(s Set[T], f Flag[T]) Set[T] {
	return Set[T]{bits: s.bits&^m.Mask | f.Value&m.Mask}
}

// Set 是整数背书的标志集合。值类型，零值为空集。
type Set[T Bits] struct {
	bits T
}

// FromBits 从整数恢复集合，恒等转换：FromBits(s.Bits()) == s，
// 空集 ↔ 0。
func FromBits[T Bits](v T) Set[T] { return Set[T]{bits: v} }

// Of 构造包含给定标志的集合。
func Of[T Bits](flags ...Flag[T]) Set[T] {
	var s Set[T]
	return s.With(flags...)
}

// Bits 返回集合的整数值。
func (s Set[T]) Bits() T { return s.bits }

// IsEmpty 报告集合是否为空（整数值为 0）。
func (s Set[T]) IsEmpty() bool { return s.bits == 0 }

// Union 返回两个集合的并集。
func (s Set[T]) Union(o Set[T]) Set[T] { return Set[T]{bits: s.bits | o.bits} }

// Intersects 报告两个集合是否有公共位。
func (s Set[T]) Intersects(o Set[T]) bool { return s.bits&o.bits != 0 }

// Disjoint 报告两个集合是否无公共位。
func (s Set[T]) Disjoint(o Set[T]) bool { return s.bits&o.bits == 0 }

// With 返回加入给定标志后的集合。
func (s Set[T]) With(flags ...Flag[T]) Set[T] {
	for _, f := range flags {
		s.bits |= f.Value
	}
	return s
}

// Without 返回移除给定标志后的集合。
func (s Set[T]) Without(flags ...Flag[T]) Set[T] {
	for _, f := range flags {
		s.bits &^= f.Value
	}
	return s
}

// Has 报告集合是否包含单比特标志 f 的全部位。
// 模式成员请通过 [Mode.Extract] 作为整体判断，零值默认成员
// 无法用位测试表达。
func (s Set[T]) Has(f Flag[T]) bool {
	return f.Value != 0 && s.bits&f.Value == f.Value
}

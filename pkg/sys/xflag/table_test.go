package xflag

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTable(t *testing.T, opts ...TableOption[uint32]) *Table[uint32] {
	t.Helper()
	tbl, err := NewTable([]Flag[uint32]{tFoo, tBar, tBaz}, opts...)
	require.NoError(t, err)
	return tbl
}

func TestNewTableValidation(t *testing.T) {
	t.Run("duplicate name", func(t *testing.T) {
		_, err := NewTable([]Flag[uint32]{tFoo, {Name: "foo", Value: 0x8}})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrDuplicateFlag))
	})

	t.Run("flag overlaps mode mask", func(t *testing.T) {
		_, err := NewTable([]Flag[uint32]{{Name: "bad", Value: 0x1}}, WithMode(tMode))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrFlagOverlapsMode))
	})

	t.Run("mode with empty mask", func(t *testing.T) {
		_, err := NewTable(nil, WithMode(Mode[uint32]{Name: "m"}))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidMode))
	})

	t.Run("mode member outside mask", func(t *testing.T) {
		_, err := NewTable(nil, WithMode(Mode[uint32]{
			Name: "m", Mask: 0x3,
			Values: []Flag[uint32]{{Name: "x", Value: 0x4}},
		}))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidMode))
	})

	t.Run("two zero-valued members", func(t *testing.T) {
		_, err := NewTable(nil, WithMode(Mode[uint32]{
			Name: "m", Mask: 0x3,
			Values: []Flag[uint32]{{Name: "x", Value: 0}, {Name: "y", Value: 0}},
		}))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidMode))
	})
}

// 位值无法识别的标志在构造时静默过滤，而非构造失败。
func TestNewTableFiltersUnrecognized(t *testing.T) {
	tbl, err := NewTable([]Flag[uint32]{
		tFoo,
		{Name: "zero", Value: 0},       // 零值：无法识别
		{Name: "multi", Value: 0x18},   // 非单比特：无法识别
		tBar,
	})
	require.NoError(t, err)
	assert.Len(t, tbl.Flags(), 2)
	assert.Equal(t, []string{"zero", "multi"}, tbl.Unsupported())
}

// 探测在构造时一次完成，之后的所有查询不再触发。
func TestNewTableProbeOnce(t *testing.T) {
	probed := 0
	tbl, err := NewTable([]Flag[uint32]{tFoo, tBar, tBaz},
		WithProbe[uint32](func(v uint32) bool {
			probed++
			return v != tBar.Value // 宿主报告 bar 不可用
		}))
	require.NoError(t, err)
	assert.Equal(t, 3, probed)

	assert.Len(t, tbl.Flags(), 2)
	assert.Equal(t, []string{"bar"}, tbl.Unsupported())

	// 使用阶段不再探测
	for i := 0; i < 10; i++ {
		_ = tbl.Render(Of(tFoo, tBar))
		_ = tbl.Strip(Of(tBar))
	}
	assert.Equal(t, 3, probed)
}

func TestStrip(t *testing.T) {
	tbl := newTestTable(t)
	s := FromBits(uint32(0xff))
	// 已知位：foo|bar|baz = 0x1c
	assert.Equal(t, uint32(0x1c), tbl.Strip(s).Bits())

	withMode, err := NewTable([]Flag[uint32]{tFoo}, WithMode(tMode))
	require.NoError(t, err)
	// 模式掩码属于已知位
	assert.Equal(t, uint32(0x7), withMode.Strip(s).Bits())
}

func TestRender(t *testing.T) {
	tbl, err := NewTable([]Flag[uint32]{tFoo, tBar, tBaz}, WithMode(tMode))
	require.NoError(t, err)

	tests := []struct {
		name string
		set  Set[uint32]
		want string
	}{
		{name: "empty renders default mode", set: Set[uint32]{}, want: "(a)"},
		{name: "mode token first", set: tMode.Apply(Of(tFoo), tModeC), want: "(c foo)"},
		{name: "flags in table order", set: Of(tBaz, tFoo), want: "(a foo baz)"},
		{name: "unknown residue as hex", set: FromBits(uint32(0x40)), want: "(a 0x40)"},
		{name: "unknown mode pattern falls to residue", set: FromBits(uint32(0x3)), want: "(0x3)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tbl.Render(tt.set))
		})
	}
}

func TestRenderWithoutMode(t *testing.T) {
	tbl := newTestTable(t)
	assert.Equal(t, "()", tbl.Render(Set[uint32]{}))
	assert.Equal(t, "(foo bar)", tbl.Render(Of(tBar, tFoo)))
}

func BenchmarkRender(b *testing.B) {
	tbl, err := NewTable([]Flag[uint32]{tFoo, tBar, tBaz}, WithMode(tMode))
	if err != nil {
		b.Fatal(err)
	}
	s := tMode.Apply(Of(tFoo, tBaz), tModeB)
	for b.Loop() {
		_ = tbl.Render(s)
	}
}

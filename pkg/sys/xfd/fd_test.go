package xfd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFdIdentity(t *testing.T) {
	tests := []struct {
		name string
		raw  int
	}{
		{name: "stdin", raw: 0},
		{name: "typical", raw: 7},
		{name: "large", raw: 1 << 20},
		{name: "invalid", raw: -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fd := FromInt(tt.raw)
			assert.Equal(t, tt.raw, fd.Int())
			assert.Equal(t, tt.raw >= 0, fd.Valid())
		})
	}
}

func TestFdString(t *testing.T) {
	assert.Equal(t, "0", Stdin.String())
	assert.Equal(t, "2", Stderr.String())
	assert.Equal(t, "-1", FromInt(-1).String())
	assert.Equal(t, "42", FromInt(42).String())
}

func TestFdCompare(t *testing.T) {
	assert.Equal(t, -1, FromInt(3).Compare(FromInt(5)))
	assert.Equal(t, 1, FromInt(5).Compare(FromInt(3)))
	assert.Equal(t, 0, FromInt(5).Compare(FromInt(5)))
}

func TestFdHashConsistency(t *testing.T) {
	// 相等句柄哈希必相等；不同句柄哈希应当不同（xxhash 对 8 字节
	// 输入无碰撞是可依赖的工程事实，这里只抽查）
	assert.Equal(t, FromInt(7).Hash(), FromInt(7).Hash())
	assert.NotEqual(t, FromInt(7).Hash(), FromInt(8).Hash())
	assert.NotEqual(t, FromInt(0).Hash(), FromInt(-1).Hash())
}

func TestFdAsMapKey(t *testing.T) {
	seen := map[Fd]string{
		Stdin:       "in",
		Stdout:      "out",
		FromInt(10): "data",
	}
	assert.Equal(t, "in", seen[FromInt(0)])
	assert.Equal(t, "data", seen[FromInt(10)])
}

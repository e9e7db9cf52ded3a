//go:build unix

package xcall

import (
	"testing"

	"go.uber.org/goleak"
)

// TestMain 在所有测试完成后检测 goroutine 泄漏：
// 包装器必须保持同步语义，不得偷偷引入后台 goroutine。
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

//go:build unix

package xwait

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// Kind 标识终止状态的变体。整数值是稳定契约的一部分
// （见 kindDiscriminants），不随声明顺序变化。
type Kind uint8

const (
	// KindExited 进程正常退出（携带退出码）。
	KindExited Kind = 0
	// KindSignaled 进程被信号终止。
	KindSignaled Kind = 1
	// KindStopped 进程被信号停止（尚未终止）。
	KindStopped Kind = 2
)

// kindDiscriminants 把每个变体映射到 wait(2) 文档约定的原始状态
// 判别方式。表与转换函数相邻维护，由测试逐项断言，确保变体判别
// 依据内核契约而非枚举声明顺序。
//
// wait(2) 的低 7 位布局：
//
//	0x00      → exited，退出码在 bits 8–15
//	0x01–0x7e → signaled，信号号即低 7 位
//	0x7f      → stopped，停止信号在 bits 8–15
var kindDiscriminants = map[Kind]string{
	KindExited:   "low 7 bits == 0x00, exit code in bits 8-15",
	KindSignaled: "low 7 bits in 0x01-0x7e, signal number in low 7 bits",
	KindStopped:  "low 7 bits == 0x7f, stop signal in bits 8-15",
}

// String 返回变体名称。
func (k Kind) String() string {
	switch k {
	case KindExited:
		return "exited"
	case KindSignaled:
		return "signaled"
	case KindStopped:
		return "stopped"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Outcome 是进程终止状态的封闭表示。由 [From] 从原始状态一次性
// 构造，之后不可变；每个原始状态恰好对应一个变体。
type Outcome struct {
	kind   Kind
	code   int
	signal unix.Signal
}

// From 把原始 wait 状态全域转换为 [Outcome]。
//
// 三种变体之外的原始状态（如 Linux 的 WCONTINUED 通知 0xffff）
// 不属于终止状态空间，属于调用方等待模式契约违背，直接 panic。
func From(ws unix.WaitStatus) Outcome {
	switch {
	case ws.Exited():
		return Outcome{kind: KindExited, code: ws.ExitStatus()}
	case ws.Signaled():
		return Outcome{kind: KindSignaled, signal: ws.Signal()}
	case ws.Stopped():
		return Outcome{kind: KindStopped, signal: ws.StopSignal()}
	default:
		panic(fmt.Sprintf("xwait: raw status %#x is not a termination status (wait mode mismatch)", uint32(ws)))
	}
}

// Kind 返回变体标识。
func (o Outcome) Kind() Kind { return o.kind }

// Ok 报告进程是否以退出码 0 正常结束（唯一的成功情形）。
func (o Outcome) Ok() bool { return o.kind == KindExited && o.code == 0 }

// ExitCode 返回退出码；仅 [KindExited] 变体有值。
func (o Outcome) ExitCode() (int, bool) {
	return o.code, o.kind == KindExited
}

// Signal 返回终止或停止信号；[KindExited] 变体无值。
func (o Outcome) Signal() (unix.Signal, bool) {
	return o.signal, o.kind != KindExited
}

// String 返回人类可读的渲染文本。
func (o Outcome) String() string {
	switch o.kind {
	case KindExited:
		if o.code == 0 {
			return "exited normally"
		}
		return (&ExitError{Code: o.code}).Error()
	case KindSignaled:
		return (&SignalError{Signal: o.signal}).Error()
	default:
		return (&StopError{Signal: o.signal}).Error()
	}
}

// OrError 把 Outcome 投影为通用的成功/失败结果：成功返回 nil，
// 失败返回携带渲染文本的对应错误类型。
func (o Outcome) OrError() error {
	switch o.kind {
	case KindExited:
		if o.code == 0 {
			return nil
		}
		return &ExitError{Code: o.code}
	case KindSignaled:
		return &SignalError{Signal: o.signal}
	default:
		return &StopError{Signal: o.signal}
	}
}

// Exit 是最窄的转换层级：退出码 0 返回 nil，非零返回 [*ExitError]。
//
// 被信号终止或停止的状态无法在此层级表示，说明调用方请求的等待
// 模式与可能到达的通知不匹配，属于程序契约违背，直接 panic
// 而非静默折算到邻近变体。
func Exit(ws unix.WaitStatus) error {
	o := From(ws)
	switch o.kind {
	case KindExited:
		if o.code == 0 {
			return nil
		}
		return &ExitError{Code: o.code}
	case KindSignaled:
		panic(fmt.Sprintf("xwait: signaled status (%s) passed to Exit converter", signalName(o.signal)))
	default:
		panic(fmt.Sprintf("xwait: stopped status (%s) passed to Exit converter", signalName(o.signal)))
	}
}

// ExitOrSignal 是中间转换层级：在 [Exit] 之上增加 [*SignalError]。
// 停止状态仍然无法表示，panic。
func ExitOrSignal(ws unix.WaitStatus) error {
	o := From(ws)
	switch o.kind {
	case KindExited:
		if o.code == 0 {
			return nil
		}
		return &ExitError{Code: o.code}
	case KindSignaled:
		return &SignalError{Signal: o.signal}
	default:
		panic(fmt.Sprintf("xwait: stopped status (%s) passed to ExitOrSignal converter", signalName(o.signal)))
	}
}

// Widen 把三级错误还原为 [Outcome]，与窄化转换构成显式转换对。
// nil 还原为退出码 0；不属于本包错误类型的 err 返回 (Outcome{}, false)。
func Widen(err error) (Outcome, bool) {
	if err == nil {
		return Outcome{kind: KindExited, code: 0}, true
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return Outcome{kind: KindExited, code: exitErr.Code}, true
	}
	var sigErr *SignalError
	if errors.As(err, &sigErr) {
		return Outcome{kind: KindSignaled, signal: sigErr.Signal}, true
	}
	var stopErr *StopError
	if errors.As(err, &stopErr) {
		return Outcome{kind: KindStopped, signal: stopErr.Signal}, true
	}
	return Outcome{}, false
}

//go:build unix

package xwait

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// ExitError 表示进程以非零退出码结束。
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exited with code %d", e.Code)
}

// SignalError 表示进程被信号终止。
type SignalError struct {
	Signal unix.Signal
}

func (e *SignalError) Error() string {
	return fmt.Sprintf("died after receiving %s (signal number %d)",
		signalName(e.Signal), int(e.Signal))
}

// StopError 表示进程被信号停止（尚未终止）。
type StopError struct {
	Signal unix.Signal
}

func (e *StopError) Error() string {
	return fmt.Sprintf("stopped by %s (signal number %d)",
		signalName(e.Signal), int(e.Signal))
}

// signalName 返回信号的符号名；未知信号退化为 "signal N"。
func signalName(sig unix.Signal) string {
	if name := unix.SignalName(sig); name != "" {
		return name
	}
	return fmt.Sprintf("signal %d", int(sig))
}

//go:build unix

// oskitctl 是 oskit 各库的命令行检查工具。
//
// 用法:
//
//	oskitctl <命令> [命令参数]
//
// 命令:
//
//	cidr expand <block>        枚举 CIDR 块内的全部地址（有界打印）
//	cidr match <block> <addr>  判断地址是否落在块内
//	flags decode <int>         把 open(2) 标志整数渲染为可读形式
//	status decode <int>        解读 wait(2) 原始终止状态
//	help                       显示帮助信息
//
// 退出码:
//
//	0: 命令执行成功（match 命令: 地址在块内；status 命令: 正常退出）
//	1: 否定结果（地址不在块内、异常终止）或执行失败
//	2: 参数错误（非法块、非法整数、缺少参数、未知命令等）
//
// 示例:
//
//	oskitctl cidr expand 192.168.1.0/30
//	oskitctl cidr match 10.0.0.0/8 10.34.67.1
//	oskitctl flags decode 0x441
//	oskitctl status decode 4352
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
)

// 版本信息（可通过 -ldflags 注入，例如:
//
//	go build -ldflags "-X main.Version=1.0.0 -X main.GitCommit=$(git rev-parse --short HEAD)"
//
// ）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
)

func main() {
	os.Exit(run(os.Args))
}

// createApp 创建 CLI 应用。
func createApp() *cli.Command {
	return &cli.Command{
		Name:           "oskitctl",
		Usage:          "oskit 库检查工具",
		Version:        fmt.Sprintf("%s (commit: %s)", Version, GitCommit),
		Commands:       createCommands(),
		DefaultCommand: "help",
		// 禁止 urfave/cli 直接调用 os.Exit，由 run() 统一处理
		// 退出码映射，确保与文档退出码契约一致。
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(os.Stderr, err)
			}
		},
	}
}

func run(args []string) int {
	app := createApp()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	setupSignalHandler(cancel)

	if err := app.Run(ctx, args); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			return exitErr.code
		}
		var usageErr *usageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(os.Stderr, "参数错误: %v\n", usageErr)
			return 2
		}
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		return 1
	}
	return 0
}

// setupSignalHandler 第一次信号优雅取消，第二次信号强制退出
// （退出码 130 = 128 + SIGINT）。
func setupSignalHandler(cancel context.CancelFunc) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()

		<-sigCh
		signal.Stop(sigCh)
		os.Exit(130)
	}()
}

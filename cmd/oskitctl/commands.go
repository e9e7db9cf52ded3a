//go:build unix

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/urfave/cli/v3"
	"golang.org/x/sys/unix"

	"github.com/omeyang/oskit/pkg/net/xcidr"
	"github.com/omeyang/oskit/pkg/sys/xflag"
	"github.com/omeyang/oskit/pkg/sys/xwait"
)

// exitError 表示需要非零退出码但已完成输出的场景。
// 命令内部已完成所有输出，main 只需设置退出码。
type exitError struct {
	code int
}

func (e *exitError) Error() string { return "" }

// usageError 表示参数错误，按文档契约映射到退出码 2。
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

// defaultExpandLimit 是 cidr expand 的默认打印上限。/8 这类大块
// 有上千万地址，无界打印没有意义。
const defaultExpandLimit = 256

// 创建所有子命令。
func createCommands() []*cli.Command {
	return []*cli.Command{
		createCidrCommand(),
		createFlagsCommand(),
		createStatusCommand(),
	}
}

func createCidrCommand() *cli.Command {
	return &cli.Command{
		Name:  "cidr",
		Usage: "IPv4 CIDR 块操作",
		Commands: []*cli.Command{
			{
				Name:      "expand",
				Usage:     "枚举块内全部地址（有界）",
				ArgsUsage: "<block>",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "limit",
						Aliases: []string{"l"},
						Usage:   "最多打印的地址数",
						Value:   defaultExpandLimit,
					},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					if cmd.Args().Len() != 1 {
						return &usageError{msg: "expand 需要恰好一个 CIDR 块参数"}
					}
					return cmdCidrExpand(stdout(cmd), cmd.Args().First(), cmd.Int("limit"))
				},
			},
			{
				Name:      "match",
				Usage:     "判断地址是否落在块内",
				ArgsUsage: "<block> <addr>",
				Action: func(_ context.Context, cmd *cli.Command) error {
					if cmd.Args().Len() != 2 {
						return &usageError{msg: "match 需要块和地址两个参数"}
					}
					return cmdCidrMatch(stdout(cmd), cmd.Args().Get(0), cmd.Args().Get(1))
				},
			},
		},
	}
}

func createFlagsCommand() *cli.Command {
	return &cli.Command{
		Name:  "flags",
		Usage: "open(2) 标志检查",
		Commands: []*cli.Command{
			{
				Name:      "decode",
				Usage:     "把标志整数渲染为可读形式",
				ArgsUsage: "<int>",
				Action: func(_ context.Context, cmd *cli.Command) error {
					if cmd.Args().Len() != 1 {
						return &usageError{msg: "decode 需要一个整数参数"}
					}
					return cmdFlagsDecode(stdout(cmd), cmd.Args().First())
				},
			},
		},
	}
}

func createStatusCommand() *cli.Command {
	return &cli.Command{
		Name:  "status",
		Usage: "wait(2) 终止状态检查",
		Commands: []*cli.Command{
			{
				Name:      "decode",
				Usage:     "解读原始终止状态",
				ArgsUsage: "<int>",
				Action: func(_ context.Context, cmd *cli.Command) error {
					if cmd.Args().Len() != 1 {
						return &usageError{msg: "decode 需要一个整数参数"}
					}
					return cmdStatusDecode(stdout(cmd), cmd.Args().First())
				},
			},
		},
	}
}

func cmdCidrExpand(w io.Writer, blockArg string, limit int) error {
	block, err := xcidr.OfString(blockArg)
	if err != nil {
		return &usageError{msg: err.Error()}
	}
	if limit <= 0 {
		return &usageError{msg: "limit 必须为正数"}
	}

	printed := 0
	for addr := range block.Addresses() {
		if printed == limit {
			fmt.Fprintf(w, "... (%d more)\n", block.Size()-uint64(limit))
			break
		}
		fmt.Fprintln(w, addr)
		printed++
	}
	return nil
}

func cmdCidrMatch(w io.Writer, blockArg, addrArg string) error {
	block, err := xcidr.OfString(blockArg)
	if err != nil {
		return &usageError{msg: err.Error()}
	}
	addr, err := xcidr.ParseAddr(addrArg)
	if err != nil {
		return &usageError{msg: err.Error()}
	}

	if !block.Match(addr) {
		fmt.Fprintf(w, "%s does not match %s\n", addr, block)
		return &exitError{code: 1}
	}
	fmt.Fprintf(w, "%s matches %s\n", addr, block)
	return nil
}

func cmdFlagsDecode(w io.Writer, arg string) error {
	bits, err := strconv.ParseInt(arg, 0, 64)
	if err != nil {
		return &usageError{msg: fmt.Sprintf("非法标志整数 %q", arg)}
	}
	fmt.Fprintln(w, xflag.OpenFlags().Render(xflag.FromBits(int(bits))))
	return nil
}

func cmdStatusDecode(w io.Writer, arg string) error {
	raw, err := strconv.ParseInt(arg, 0, 32)
	if err != nil {
		return &usageError{msg: fmt.Sprintf("非法状态整数 %q", arg)}
	}
	ws := unix.WaitStatus(raw)
	if !ws.Exited() && !ws.Signaled() && !ws.Stopped() {
		return &usageError{msg: fmt.Sprintf("%#x 不是终止状态", raw)}
	}

	outcome := xwait.From(ws)
	fmt.Fprintln(w, outcome)
	if !outcome.Ok() {
		return &exitError{code: 1}
	}
	return nil
}

// stdout 返回应用的输出流，便于测试捕获；未设置时落到标准输出。
func stdout(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

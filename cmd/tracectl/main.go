// tracectl 是 W3C Trace Context 头的离线诊断工具。
//
// 用法:
//
//	tracectl [全局选项] <命令> [命令参数]
//
// 全局选项:
//
//	-c, --config   配置文件路径 (yaml/json)，提供 distributed_tracing 配置段
//	-v, --verbose  输出解码过程的诊断日志
//
// 命令:
//
//	decode         解析并校验一对 traceparent/tracestate 头值
//	encode         从命令行参数生成出站头值
//	gen            生成新的 trace id / span id
//	help           显示帮助信息
//
// 退出码:
//
//	0: 命令执行成功（decode 命令: 头值全部通过校验）
//	1: 头值被拒绝或命令执行失败
//	2: 参数错误（缺少必需参数、未知命令等）
//
// 示例:
//
//	tracectl decode -p 00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01 \
//	    -s "190@nr=0-0-33-5043----1-0.5-1518469636035" --account-id 33 --app-id 5043 --trusted-key 190
//	tracectl -c agent.yaml decode -p <traceparent> -s <tracestate>
//	tracectl encode --trace-id 4bf92f3577b34da6a3ce929d0e0e4736 --sampled --account-id 33 --app-id 5043
//	tracectl gen
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

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
	os.Exit(run())
}

// exitError 携带显式退出码的错误。
type exitError struct {
	code int
	msg  string
}

func (e *exitError) Error() string { return e.msg }

// usageError 参数错误，映射为退出码 2。
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

// createApp 创建 CLI 应用。
func createApp() *cli.Command {
	return &cli.Command{
		Name:    "tracectl",
		Usage:   "W3C Trace Context 头离线诊断工具",
		Version: fmt.Sprintf("%s (commit: %s)", Version, GitCommit),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "配置文件路径 (yaml/json)",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "输出解码过程的诊断日志",
			},
		},
		Commands:       createCommands(),
		DefaultCommand: "help",
		// 设计决策: 禁止 urfave/cli 直接调用 os.Exit，
		// 由 run() 统一处理退出码映射，确保与文档退出码契约一致。
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(os.Stderr, err)
			}
		},
	}
}

func run() int {
	app := createApp()

	if err := app.Run(context.Background(), os.Args); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			if exitErr.msg != "" {
				fmt.Fprintln(os.Stderr, exitErr.msg)
			}
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

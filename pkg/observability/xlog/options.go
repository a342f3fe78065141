package xlog

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// RotationConfig 日志文件轮转配置（lumberjack）。
type RotationConfig struct {
	// Filename 日志文件路径，必填。
	Filename string

	// MaxSizeMB 单个文件最大体积（MB），默认 100。
	MaxSizeMB int

	// MaxBackups 保留的旧文件数量，0 表示不限制。
	MaxBackups int

	// MaxAgeDays 旧文件保留天数，0 表示不限制。
	MaxAgeDays int

	// Compress 是否压缩旧文件。
	Compress bool
}

type config struct {
	output    io.Writer
	level     Level
	format    string
	addSource bool
	enrich    bool
	rotation  *RotationConfig
	err       error
}

// Option 定义 Logger 配置选项。
type Option func(*config)

func defaultConfig() *config {
	return &config{
		output: os.Stderr,
		level:  LevelInfo,
		format: "text",
		enrich: true, // 默认注入 context 追踪字段
	}
}

// WithWriter 设置日志输出目标，默认 os.Stderr。
// 与 WithRotation 同时设置时，以 WithRotation 为准。
func WithWriter(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.output = w
		}
	}
}

// WithLevel 设置初始日志级别，默认 Info。
func WithLevel(level Level) Option {
	return func(c *config) {
		c.level = level
	}
}

// WithLevelString 通过字符串设置日志级别。
func WithLevelString(s string) Option {
	return func(c *config) {
		level, err := ParseLevel(s)
		if err != nil {
			c.err = err
			return
		}
		c.level = level
	}
}

// WithFormat 设置输出格式："text" 或 "json"，默认 "text"。
func WithFormat(format string) Option {
	return func(c *config) {
		normalized := strings.ToLower(strings.TrimSpace(format))
		if normalized == "" {
			// 空值视为使用默认格式，避免误把"没填"变成配置错误
			return
		}
		if normalized != "text" && normalized != "json" {
			c.err = fmt.Errorf("xlog: unknown format %q", format)
			return
		}
		c.format = normalized
	}
}

// WithAddSource 是否在日志中记录源码位置，默认关闭。
func WithAddSource(enable bool) Option {
	return func(c *config) {
		c.addSource = enable
	}
}

// WithEnrich 是否启用 context 追踪字段自动注入，默认开启。
func WithEnrich(enable bool) Option {
	return func(c *config) {
		c.enrich = enable
	}
}

// WithRotation 启用基于 lumberjack 的文件轮转输出。
func WithRotation(rc RotationConfig) Option {
	return func(c *config) {
		if rc.Filename == "" {
			c.err = fmt.Errorf("xlog: rotation filename is empty")
			return
		}
		c.rotation = &rc
	}
}

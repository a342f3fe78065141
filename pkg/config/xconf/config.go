package xconf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// Format 定义配置文件格式。
type Format string

// 支持的配置格式。
const (
	// FormatYAML YAML 格式（推荐用于 K8s ConfigMap）。
	FormatYAML Format = "yaml"

	// FormatJSON JSON 格式。
	FormatJSON Format = "json"
)

// Config 传播配置实例。
//
// 持有底层 koanf 实例和一份已校验的 [Settings] 快照。
// Settings() 返回值拷贝，调用方可在工作单元生命周期内安全持有。
type Config struct {
	mu       sync.RWMutex
	k        *koanf.Koanf
	settings Settings
	path     string
	format   Format
	isBytes  bool // 标记是否从字节数据创建
}

// New 从文件路径创建配置实例。
// 根据文件扩展名自动检测格式（.yaml/.yml 或 .json）。
func New(path string) (*Config, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	format, err := detectFormat(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}

	k, settings, err := load(data, format)
	if err != nil {
		return nil, err
	}

	return &Config{
		k:        k,
		settings: settings,
		path:     path,
		format:   format,
		isBytes:  false,
	}, nil
}

// NewFromBytes 从字节数据创建配置实例。
// 需要显式指定格式，适用于 K8s ConfigMap 等场景。
func NewFromBytes(data []byte, format Format) (*Config, error) {
	if !isValidFormat(format) {
		return nil, ErrUnsupportedFormat
	}

	k, settings, err := load(data, format)
	if err != nil {
		return nil, err
	}

	return &Config{
		k:        k,
		settings: settings,
		format:   format,
		isBytes:  true,
	}, nil
}

// Settings 返回当前配置快照（值拷贝）。
func (c *Config) Settings() Settings {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.settings
}

// Client 返回底层的 koanf 实例，用于读取 Settings 之外的配置项。
func (c *Config) Client() *koanf.Koanf {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.k
}

// Reload 重新加载配置文件并替换内部快照。
// 此方法是并发安全的。
// 仅对从文件创建的 Config 有效，从字节数据创建的 Config 调用会返回错误。
func (c *Config) Reload() error {
	if c.isBytes {
		return fmt.Errorf("%w: cannot reload config created from bytes", ErrLoadFailed)
	}

	data, err := os.ReadFile(c.path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}

	k, settings, err := load(data, c.format)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.k = k
	c.settings = settings
	c.mu.Unlock()

	return nil
}

// Path 返回配置文件路径。
// 从字节数据创建的 Config 返回空字符串。
func (c *Config) Path() string {
	return c.path
}

// Format 返回配置格式。
func (c *Config) Format() Format {
	return c.format
}

// =============================================================================
// 内部辅助函数
// =============================================================================

// detectFormat 根据文件扩展名检测配置格式。
func detectFormat(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: unknown extension %s", ErrUnsupportedFormat, ext)
	}
}

// isValidFormat 检查格式是否有效。
func isValidFormat(format Format) bool {
	switch format {
	case FormatYAML, FormatJSON:
		return true
	default:
		return false
	}
}

// load 把数据解析进新的 koanf 实例，并抽取校验后的 Settings。
// 空数据允许通过解析，但 Settings 校验会因缺少必填项失败。
func load(data []byte, format Format) (*koanf.Koanf, Settings, error) {
	var parser koanf.Parser
	switch format {
	case FormatYAML:
		parser = yaml.Parser()
	case FormatJSON:
		parser = json.Parser()
	default:
		return nil, Settings{}, ErrUnsupportedFormat
	}

	k := koanf.New(".")
	if len(data) > 0 {
		if err := k.Load(rawbytes.Provider(data), parser); err != nil {
			return nil, Settings{}, fmt.Errorf("%w: %w", ErrParseFailed, err)
		}
	}

	settings := defaultSettings()
	if err := k.Unmarshal(settingsPath, &settings); err != nil {
		return nil, Settings{}, fmt.Errorf("%w: %w", ErrUnmarshalFailed, err)
	}
	if err := settings.Validate(); err != nil {
		return nil, Settings{}, err
	}

	return k, settings, nil
}

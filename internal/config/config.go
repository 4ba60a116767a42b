// Package config 读取 phplint.toml 配置
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// FileName 配置文件名
const FileName = "phplint.toml"

// Config 分析器配置
type Config struct {
	Analysis AnalysisConfig `toml:"analysis"`
	Report   ReportConfig   `toml:"report"`
	Log      LogConfig      `toml:"log"`
	I18n     I18nConfig     `toml:"i18n"`
}

// AnalysisConfig 分析选项
type AnalysisConfig struct {
	// Notices 是否报告提示级诊断
	Notices bool `toml:"notices"`

	// RecursionLimit require/autoload 嵌套加载的最大深度
	RecursionLimit int `toml:"recursion_limit"`

	// Extensions 展开目录参数时收集的源文件扩展名
	Extensions []string `toml:"extensions"`
}

// ReportConfig 输出选项
type ReportConfig struct {
	Unused bool   `toml:"unused"` // 是否报告未使用的私有符号与源单元
	Format string `toml:"format"` // text 或 json
	Color  string `toml:"color"`  // auto、always 或 never
}

// LogConfig 调试日志选项
type LogConfig struct {
	Level string `toml:"level"` // debug、info、warn、error；为空时由 PHPLINT_DEBUG 决定
	File  string `toml:"file"`  // 日志文件路径，为空则输出到 stderr
}

// I18nConfig 语言选项
type I18nConfig struct {
	Lang string `toml:"lang"`
}

// Default 返回默认配置
func Default() *Config {
	return &Config{
		Analysis: AnalysisConfig{
			Notices:        true,
			RecursionLimit: 100,
			Extensions:     []string{".php"},
		},
		Report: ReportConfig{
			Unused: true,
			Format: "text",
			Color:  "auto",
		},
	}
}

// Load 从文件加载配置，未出现的键保持默认值
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse 解析 TOML 配置内容
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 检查取值范围
func (c *Config) Validate() error {
	var errs []error
	if c.Analysis.RecursionLimit <= 0 {
		errs = append(errs, fmt.Errorf("analysis.recursion_limit must be positive, got %d", c.Analysis.RecursionLimit))
	}
	for i, ext := range c.Analysis.Extensions {
		if !strings.HasPrefix(ext, ".") {
			c.Analysis.Extensions[i] = "." + ext
		}
	}
	switch c.Report.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("report.format must be text or json, got %q", c.Report.Format))
	}
	switch c.Report.Color {
	case "auto", "always", "never":
	default:
		errs = append(errs, fmt.Errorf("report.color must be auto, always or never, got %q", c.Report.Color))
	}
	return errors.Join(errs...)
}

// Find 从指定路径向上查找配置文件，找不到时返回空字符串
func Find(startPath string) string {
	info, err := os.Stat(startPath)
	if err != nil {
		return ""
	}

	dir := startPath
	if !info.IsDir() {
		dir = filepath.Dir(startPath)
	}
	dir, err = filepath.Abs(dir)
	if err != nil {
		return ""
	}

	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return path
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// LoadFor 查找并加载适用于 startPath 的配置；没有配置文件时返回默认配置
func LoadFor(startPath string) (*Config, string, error) {
	path := Find(startPath)
	if path == "" {
		return Default(), "", nil
	}
	cfg, err := Load(path)
	return cfg, path, err
}

// Package log 提供分析器的调试日志（基于 zap）
package log

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EnvDebug 启用调试日志的环境变量
const EnvDebug = "PHPLINT_DEBUG"

// Options 日志选项
type Options struct {
	Level string // debug、info、warn、error；为空时由环境变量决定
	File  string // 日志文件，为空则写 stderr
}

// New 创建日志记录器
//
// 未指定级别时，PHPLINT_DEBUG=1/true/on 打开 debug 级别，否则只输出警告及以上。
func New(opts Options) (*zap.Logger, error) {
	level, err := parseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05")
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	if opts.File != "" {
		cfg.Encoding = "json"
		cfg.EncoderConfig = zap.NewProductionEncoderConfig()
		cfg.OutputPaths = []string{opts.File}
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger.Named("phplint"), nil
}

// Nop 返回不输出任何内容的记录器
func Nop() *zap.Logger {
	return zap.NewNop()
}

// DebugEnabled 检查 PHPLINT_DEBUG 环境变量
func DebugEnabled() bool {
	switch strings.ToLower(os.Getenv(EnvDebug)) {
	case "1", "true", "on":
		return true
	}
	return false
}

func parseLevel(s string) (zapcore.Level, error) {
	if s == "" {
		if DebugEnabled() {
			return zapcore.DebugLevel, nil
		}
		return zapcore.WarnLevel, nil
	}
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(strings.ToLower(s))); err != nil {
		return l, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return l, nil
}

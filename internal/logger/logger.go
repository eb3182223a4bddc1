// Package logger builds the diagnostic zap logger used by the CLI.
// User-facing output goes through internal/output instead.
package logger

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options configures the logger.
type Options struct {
	Level    string
	Encoding string
}

// Flags registers --log-level and --log-encoding on fs, bound to o.
func Flags(fs *pflag.FlagSet, o *Options) {
	fs.StringVar(&o.Level, "log-level", "warn", "Log `level`: debug, info, warn or error")
	fs.StringVar(&o.Encoding, "log-encoding", "console", "Log `encoding`: console or json")
}

// ParseLevel converts a level name to a zap level.
func ParseLevel(name string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return zap.DebugLevel, nil
	case "info":
		return zap.InfoLevel, nil
	case "", "warn", "warning":
		return zap.WarnLevel, nil
	case "error":
		return zap.ErrorLevel, nil
	}
	return zap.WarnLevel, fmt.Errorf("unknown log level %q (want debug, info, warn or error)", name)
}

// New builds a logger writing to w.
func New(o Options, w io.Writer) (*zap.Logger, error) {
	level, err := ParseLevel(o.Level)
	if err != nil {
		return nil, err
	}

	encoderConf := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}

	var encoder zapcore.Encoder
	switch o.Encoding {
	case "", "console":
		encoder = zapcore.NewConsoleEncoder(encoderConf)
	case "json":
		encoder = zapcore.NewJSONEncoder(encoderConf)
	default:
		return nil, fmt.Errorf("unknown log encoding %q (want console or json)", o.Encoding)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(w), zap.NewAtomicLevelAt(level))
	return zap.New(core).Named("trxreport"), nil
}

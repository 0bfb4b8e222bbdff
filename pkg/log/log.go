// Package log provides the leveled logger used by the commands.
package log

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the logging interface.
type Logger interface {
	Debug(args ...interface{})
	Debugf(template string, args ...interface{})
	Info(args ...interface{})
	Infof(template string, args ...interface{})
	Warning(args ...interface{})
	Warningf(template string, args ...interface{})
	Error(args ...interface{})
	Errorf(template string, args ...interface{})
	With(args ...interface{}) Logger
	Sync() error
}

// DefaultLogger logs info level and above to stderr.
var DefaultLogger Logger = mustLogger(NewDefaultProductionLogger())

type logger struct {
	sugar *zap.SugaredLogger
}

// NewDefaultProductionLogger returns a JSON logger with info level.
func NewDefaultProductionLogger() (Logger, error) {
	return NewLogger("info")
}

// NewLogger returns a JSON logger writing to stderr with the level.
// Supported levels are debug, info, warn and error.
func NewLogger(level string) (Logger, error) {
	zapLevel, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapLevel)
	config.OutputPaths = []string{"stderr"}
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zapLogger, err := config.Build()
	if err != nil {
		return nil, err
	}
	return &logger{sugar: zapLogger.Sugar()}, nil
}

// NewSilentLogger returns a logger which discards everything.
func NewSilentLogger() Logger {
	return &logger{sugar: zap.NewNop().Sugar()}
}

// newFromCore is used by tests to observe the logs.
func newFromCore(core zapcore.Core) Logger {
	return &logger{sugar: zap.New(core).Sugar()}
}

func mustLogger(l Logger, err error) Logger {
	if err != nil {
		panic(err)
	}
	return l
}

func (l *logger) Debug(args ...interface{}) {
	l.sugar.Debug(args...)
}

func (l *logger) Debugf(template string, args ...interface{}) {
	l.sugar.Debugf(template, args...)
}

func (l *logger) Info(args ...interface{}) {
	l.sugar.Info(args...)
}

func (l *logger) Infof(template string, args ...interface{}) {
	l.sugar.Infof(template, args...)
}

func (l *logger) Warning(args ...interface{}) {
	l.sugar.Warn(args...)
}

func (l *logger) Warningf(template string, args ...interface{}) {
	l.sugar.Warnf(template, args...)
}

func (l *logger) Error(args ...interface{}) {
	l.sugar.Error(args...)
}

func (l *logger) Errorf(template string, args ...interface{}) {
	l.sugar.Errorf(template, args...)
}

// With returns a child logger with the key value pairs attached.
func (l *logger) With(args ...interface{}) Logger {
	return &logger{sugar: l.sugar.With(args...)}
}

func (l *logger) Sync() error {
	return l.sugar.Sync()
}

package shared

import (
	"github.com/charmbracelet/log"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_logger.go -package mocks mention_herald/shared ILogger

// ILogger is the logging surface used throughout the service; backed by
// charmbracelet/log, mocked in tests.
type ILogger interface {
	Debug(msg interface{}, keyvals ...interface{})
	Debugf(format string, args ...interface{})
	Info(msg interface{}, keyvals ...interface{})
	Infof(format string, args ...interface{})
	Warn(msg interface{}, keyvals ...interface{})
	Warnf(format string, args ...interface{})
	Error(msg interface{}, keyvals ...interface{})
	Errorf(format string, args ...interface{})
	Printf(format string, args ...interface{})
}

type charmLogger struct {
	logger *log.Logger
}

func NewLogger(logger *log.Logger) ILogger {
	return &charmLogger{logger}
}

func (l *charmLogger) Debug(msg interface{}, keyvals ...interface{}) { l.logger.Debug(msg, keyvals...) }
func (l *charmLogger) Debugf(format string, args ...interface{})     { l.logger.Debugf(format, args...) }
func (l *charmLogger) Info(msg interface{}, keyvals ...interface{})  { l.logger.Info(msg, keyvals...) }
func (l *charmLogger) Infof(format string, args ...interface{})      { l.logger.Infof(format, args...) }
func (l *charmLogger) Warn(msg interface{}, keyvals ...interface{})  { l.logger.Warn(msg, keyvals...) }
func (l *charmLogger) Warnf(format string, args ...interface{})      { l.logger.Warnf(format, args...) }
func (l *charmLogger) Error(msg interface{}, keyvals ...interface{}) { l.logger.Error(msg, keyvals...) }
func (l *charmLogger) Errorf(format string, args ...interface{})     { l.logger.Errorf(format, args...) }
func (l *charmLogger) Printf(format string, args ...interface{})     { l.logger.Printf(format, args...) }

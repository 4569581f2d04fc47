// 指示: miu200521358
// Package logging はログ出力契約と既定ロガーの登録点を提供する。
package logging

import "sync"

// LogLevel はログ出力レベルを表す。
type LogLevel int

const (
	// LOG_LEVEL_DEBUG はデバッグレベル。
	LOG_LEVEL_DEBUG LogLevel = iota
	// LOG_LEVEL_INFO は情報レベル。
	LOG_LEVEL_INFO
	// LOG_LEVEL_WARN は警告レベル。
	LOG_LEVEL_WARN
	// LOG_LEVEL_ERROR はエラーレベル。
	LOG_LEVEL_ERROR
)

// ILogger はログ出力契約を表す。
type ILogger interface {
	// Debug はデバッグログを出力する。
	Debug(format string, params ...any)
	// Info は情報ログを出力する。
	Info(format string, params ...any)
	// Warn は警告ログを出力する。
	Warn(format string, params ...any)
	// Error はエラーログを出力する。
	Error(format string, params ...any)
	// SetLevel は出力レベルを設定する。
	SetLevel(level LogLevel)
	// Level は現在の出力レベルを返す。
	Level() LogLevel
}

var (
	defaultLoggerMutex sync.RWMutex
	defaultLogger      ILogger = noopLogger{}
)

// DefaultLogger は既定ロガーを返す。
func DefaultLogger() ILogger {
	defaultLoggerMutex.RLock()
	defer defaultLoggerMutex.RUnlock()
	return defaultLogger
}

// SetDefaultLogger は既定ロガーを差し替える。nilは無出力ロガーへ戻す。
func SetDefaultLogger(logger ILogger) {
	defaultLoggerMutex.Lock()
	defer defaultLoggerMutex.Unlock()
	if logger == nil {
		defaultLogger = noopLogger{}
		return
	}
	defaultLogger = logger
}

// noopLogger は何も出力しないロガーを表す。
type noopLogger struct{}

func (noopLogger) Debug(format string, params ...any) {}
func (noopLogger) Info(format string, params ...any)  {}
func (noopLogger) Warn(format string, params ...any)  {}
func (noopLogger) Error(format string, params ...any) {}
func (noopLogger) SetLevel(level LogLevel)            {}
func (noopLogger) Level() LogLevel                    { return LOG_LEVEL_ERROR }

// 指示: miu200521358
// Package plogging は slog ベースのロガー実装を提供する。
package plogging

import (
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/miu200521358/mu_pose_fk/pkg/shared/base/logging"
)

// Logger は slog を土台にした logging.ILogger 実装を表す。
type Logger struct {
	mutex sync.RWMutex
	base  *slog.Logger
	level logging.LogLevel
}

// NewLogger はロガーを生成する。baseがnilなら標準エラー出力のテキストハンドラを使う。
// レベル制御はラッパ側で行うため、既定ハンドラはDebugまで通す。
func NewLogger(base *slog.Logger) *Logger {
	if base == nil {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		base = slog.New(handler)
	}
	return &Logger{
		base:  base,
		level: logging.LOG_LEVEL_INFO,
	}
}

// SetLevel は出力レベルを設定する。
func (l *Logger) SetLevel(level logging.LogLevel) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.level = level
}

// Level は現在の出力レベルを返す。
func (l *Logger) Level() logging.LogLevel {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return l.level
}

// Debug はデバッグログを出力する。
func (l *Logger) Debug(format string, params ...any) {
	if l.Level() > logging.LOG_LEVEL_DEBUG {
		return
	}
	l.base.Debug(fmt.Sprintf(format, params...))
}

// Info は情報ログを出力する。
func (l *Logger) Info(format string, params ...any) {
	if l.Level() > logging.LOG_LEVEL_INFO {
		return
	}
	l.base.Info(fmt.Sprintf(format, params...))
}

// Warn は警告ログを出力する。
func (l *Logger) Warn(format string, params ...any) {
	if l.Level() > logging.LOG_LEVEL_WARN {
		return
	}
	l.base.Warn(fmt.Sprintf(format, params...))
}

// Error はエラーログを出力する。
func (l *Logger) Error(format string, params ...any) {
	l.base.Error(fmt.Sprintf(format, params...))
}

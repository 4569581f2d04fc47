// 指示: miu200521358
package plogging

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/miu200521358/mu_pose_fk/pkg/shared/base/logging"
)

func newBufferLogger() (*Logger, *bytes.Buffer) {
	buffer := bytes.NewBuffer(nil)
	base := slog.New(slog.NewTextHandler(buffer, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return NewLogger(base), buffer
}

func TestLoggerInfoWritesMessage(t *testing.T) {
	logger, buffer := newBufferLogger()
	logger.Info("適用完了: bones=%d", 24)
	if !strings.Contains(buffer.String(), "bones=24") {
		t.Fatalf("log output missing message: %s", buffer.String())
	}
}

func TestLoggerLevelSuppressesLowerLevels(t *testing.T) {
	logger, buffer := newBufferLogger()
	logger.SetLevel(logging.LOG_LEVEL_WARN)
	logger.Info("should be suppressed")
	if buffer.Len() != 0 {
		t.Fatalf("info should be suppressed at warn level: %s", buffer.String())
	}
	logger.Warn("visible")
	if !strings.Contains(buffer.String(), "visible") {
		t.Fatalf("warn should be visible: %s", buffer.String())
	}
}

func TestNewLoggerNilBaseEmitsDebugAfterSetLevel(t *testing.T) {
	reader, writer, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe failed: %v", err)
	}
	prevStderr := os.Stderr
	os.Stderr = writer

	logger := NewLogger(nil)
	logger.SetLevel(logging.LOG_LEVEL_DEBUG)
	logger.Debug("デバッグ出力確認 id=%d", 7)

	os.Stderr = prevStderr
	if err := writer.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
	captured, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if !strings.Contains(string(captured), "id=7") {
		t.Fatalf("debug should reach stderr handler: %s", string(captured))
	}
}

func TestDefaultLoggerRegistration(t *testing.T) {
	logger, buffer := newBufferLogger()
	prevLogger := logging.DefaultLogger()
	logging.SetDefaultLogger(logger)
	defer func() {
		logging.SetDefaultLogger(prevLogger)
	}()

	logging.DefaultLogger().Info("registered")
	if !strings.Contains(buffer.String(), "registered") {
		t.Fatalf("default logger should route to slog: %s", buffer.String())
	}
}

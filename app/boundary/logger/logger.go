package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// Logger はロギング機能を提供する構造体
// デバッグモードの時だけJSON形式で書き出す
type Logger struct {
	debugMode bool
	filePath  string
	file      *os.File
	base      *logrus.Logger
}

// New はファイルに書き出すLoggerを作成する
// ファイルは最初のログ出力時に開く
func New(debugMode bool, filePath string) *Logger {
	l := newLogger(debugMode, io.Discard)
	l.filePath = filePath
	return l
}

// NewWithWriter は任意のio.Writerに書き出すLoggerを作成する
func NewWithWriter(debugMode bool, out io.Writer) *Logger {
	return newLogger(debugMode, out)
}

func newLogger(debugMode bool, out io.Writer) *Logger {
	base := logrus.New()
	base.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	base.SetLevel(logrus.DebugLevel)
	base.SetOutput(out)
	return &Logger{
		debugMode: debugMode,
		base:      base,
	}
}

// Log はメッセージをログに記録する
func (l *Logger) Log(messageType string, message string) {
	if !l.debugMode {
		return
	}
	if err := l.open(); err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		l.debugMode = false
		return
	}

	entry := l.base.WithField("type", messageType)
	if messageType == "error" {
		entry.Error(message)
		return
	}
	entry.Debug(message)
}

// Flush は書き込み済みのログをディスクへ同期する
func (l *Logger) Flush() {
	if l.file == nil {
		return
	}
	l.file.Sync()
}

// Close はログファイルを閉じる
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	l.base.SetOutput(io.Discard)
	return err
}

// SetDebugMode はデバッグモードの状態を設定する
func (l *Logger) SetDebugMode(enabled bool) {
	l.debugMode = enabled
}

func (l *Logger) open() error {
	if l.filePath == "" || l.file != nil {
		return nil
	}
	f, err := os.OpenFile(l.filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", l.filePath, err)
	}
	l.file = f
	l.base.SetOutput(f)
	return nil
}

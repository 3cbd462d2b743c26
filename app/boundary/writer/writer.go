package writer

import (
	"io"
	"os"
)

//go:generate mockgen -source=writer.go -destination=mock_writer.go -package=writer

// MessageWriter はコンソールへのメッセージ出力を表すインターフェース
type MessageWriter interface {
	Write(s string) error
}

type ConsoleWriter struct {
	out io.Writer
}

// NewConsoleWriter は標準出力へ書き出すWriterを作成する
func NewConsoleWriter() *ConsoleWriter {
	return NewWriter(os.Stdout)
}

func NewWriter(out io.Writer) *ConsoleWriter {
	return &ConsoleWriter{out: out}
}

func (w *ConsoleWriter) Write(s string) error {
	_, err := io.WriteString(w.out, s)
	return err
}

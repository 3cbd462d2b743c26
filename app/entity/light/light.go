// light パッケージはコマンドの操作対象となるライトを定義します。
package light

import (
	"fmt"

	"github.com/wasya-io/go-remote/app/boundary/writer"
	"github.com/wasya-io/go-remote/app/entity/core"
)

const (
	MessageOn  = "Light is on"
	MessageOff = "Light is off"
)

// Light はオン/オフの状態を持つライトです。
// 同期は行わないので、複数のゴルーチンから操作する場合は呼び出し側で排他すること。
type Light struct {
	isOn   bool
	writer writer.MessageWriter
	logger core.Logger
}

// NewLight は消灯状態のライトを作成します。
func NewLight(writer writer.MessageWriter, logger core.Logger) *Light {
	return &Light{
		isOn:   false,
		writer: writer,
		logger: logger,
	}
}

// TurnOn はライトを点灯して通知します。
func (l *Light) TurnOn() {
	l.isOn = true
	l.signal(MessageOn)
}

// TurnOff はライトを消灯して通知します。
func (l *Light) TurnOff() {
	l.isOn = false
	l.signal(MessageOff)
}

func (l *Light) IsOn() bool {
	return l.isOn
}

func (l *Light) signal(message string) {
	l.logger.Log("light", message)
	if err := l.writer.Write(message + "\n"); err != nil {
		l.logger.Log("error", fmt.Errorf("failed to write light state: %w", err).Error())
	}
}

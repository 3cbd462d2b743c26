package command

import (
	"errors"

	"github.com/wasya-io/go-remote/app/entity/light"
)

//go:generate mockgen -source=command.go -destination=mock_command.go -package=command

var (
	ErrNilReceiver = errors.New("command: receiver must not be nil")
	ErrNilAction   = errors.New("command: action must not be nil")
)

type (
	// Command は呼び出し側から受け手への要求をひとつにまとめたもの
	Command interface {
		Execute()
	}

	StandardCommand struct {
		fn func()
	}

	// LightOnCommand は生成時に渡されたライトを点灯する
	LightOnCommand struct {
		light *light.Light
	}

	// LightOffCommand は生成時に渡されたライトを消灯する
	LightOffCommand struct {
		light *light.Light
	}
)

func NewCommand(execute func()) StandardCommand {
	if execute == nil {
		panic(ErrNilAction)
	}
	return StandardCommand{fn: execute}
}

func (c StandardCommand) Execute() {
	c.fn()
}

func NewLightOnCommand(l *light.Light) LightOnCommand {
	if l == nil {
		panic(ErrNilReceiver)
	}
	return LightOnCommand{light: l}
}

func (c LightOnCommand) Execute() {
	c.light.TurnOn()
}

func NewLightOffCommand(l *light.Light) LightOffCommand {
	if l == nil {
		panic(ErrNilReceiver)
	}
	return LightOffCommand{light: l}
}

func (c LightOffCommand) Execute() {
	c.light.TurnOff()
}

package remote

import (
	"fmt"

	"github.com/wasya-io/go-remote/app/entity/core"
	"github.com/wasya-io/go-remote/app/usecase/command"
)

// RemoteControl は割り当てられたコマンドをボタン操作で実行する
// コマンドが未設定の間はPressButtonは何もしない
type RemoteControl struct {
	command command.Command
	logger  core.Logger
}

func NewRemoteControl(logger core.Logger) *RemoteControl {
	return &RemoteControl{
		logger: logger,
	}
}

// SetCommand は現在のコマンドを置き換える
// nilを渡すと未設定の状態に戻る
func (r *RemoteControl) SetCommand(c command.Command) {
	r.command = c
	r.logger.Log("remote", fmt.Sprintf("command set: %T", c))
}

// HasCommand はコマンドが割り当てられているかを返す
func (r *RemoteControl) HasCommand() bool {
	return r.command != nil
}

// PressButton は割り当てられたコマンドを一度だけ実行する
func (r *RemoteControl) PressButton() {
	if r.command == nil {
		r.logger.Log("remote", "button pressed with no command assigned")
		return
	}
	r.logger.Log("remote", fmt.Sprintf("button pressed: %T", r.command))
	r.command.Execute()
}

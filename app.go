package main

import (
	"github.com/wasya-io/go-remote/app/boundary/writer"
	"github.com/wasya-io/go-remote/app/entity/core"
	"github.com/wasya-io/go-remote/app/entity/light"
	"github.com/wasya-io/go-remote/app/usecase/command"
	"github.com/wasya-io/go-remote/app/usecase/remote"
)

// run はリモコンでライトを点灯してから消灯する
func run(w writer.MessageWriter, logger core.Logger) {
	remoteControl := remote.NewRemoteControl(logger)
	l := light.NewLight(w, logger)

	lightOnCommand := command.NewLightOnCommand(l)
	lightOffCommand := command.NewLightOffCommand(l)

	remoteControl.SetCommand(lightOnCommand)
	remoteControl.PressButton() // Light is on

	remoteControl.SetCommand(lightOffCommand)
	remoteControl.PressButton() // Light is off

	logger.Flush()
}

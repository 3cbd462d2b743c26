package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/wasya-io/go-remote/app/boundary/logger"
	"github.com/wasya-io/go-remote/app/boundary/writer"
	"github.com/wasya-io/go-remote/app/config"
)

func main() {
	// グローバルなパニックハンドラを設定
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "remote crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s", debug.Stack())
			os.Exit(1)
		}
	}()

	conf := config.LoadConfig()
	logger := logger.New(conf.DebugMode, conf.LogFile)
	defer logger.Close()

	run(writer.NewConsoleWriter(), logger)
}

package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config はアプリケーションの設定を保持する構造体
type Config struct {
	DebugMode bool
	LogFile   string // デバッグログの出力先
}

// DefaultLogFile は起動時刻からログファイル名を作る
func DefaultLogFile(startTime time.Time) string {
	return fmt.Sprintf("log-%s.json", startTime.Format("20060102-150405"))
}

// LoadConfig は.envファイルと環境変数から設定を読み込む
func LoadConfig() *Config {
	// .envファイルは無くてもよい
	godotenv.Load()

	config := &Config{
		DebugMode: false,
		LogFile:   DefaultLogFile(time.Now()),
	}

	// DEBUG環境変数から設定を読み込む
	if debug := os.Getenv("DEBUG"); debug != "" {
		config.DebugMode = debug == "true"
	}

	if logFile := os.Getenv("LOG_FILE"); logFile != "" {
		config.LogFile = logFile
	}

	return config
}

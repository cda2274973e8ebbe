// Package config はアプリケーション設定を管理します。
package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config はアプリケーション全体の設定を保持します。
type Config struct {
	// データディレクトリのパス
	DataDir string

	// HTTPサーバーのポート
	Port string

	// API認証キー
	APIKey string

	// 集計に使用するタイムゾーン
	Location *time.Location
}

// NewConfig は環境変数から設定を読み込み、Configインスタンスを生成します。
func NewConfig() *Config {
	// データディレクトリの設定
	dataDir := os.Getenv("KUSA_DATA_DIR")
	if dataDir == "" {
		dataDir = filepath.Join(".", "data")
	}

	// ポートの設定
	port := os.Getenv("KUSA_SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	// API認証キーの設定
	apiKey := os.Getenv("KUSA_API_KEY")
	if apiKey == "" {
		// デフォルトキーは設定しない
		panic("KUSA_API_KEY is not set")
	}

	// タイムゾーンの設定（IANA名、デフォルトはUTC）
	loc := time.UTC
	if tz := os.Getenv("KUSA_TIMEZONE"); tz != "" {
		parsed, err := time.LoadLocation(tz)
		if err != nil {
			panic("KUSA_TIMEZONE is invalid: " + tz)
		}
		loc = parsed
	}

	return &Config{
		DataDir:  dataDir,
		Port:     port,
		APIKey:   apiKey,
		Location: loc,
	}
}

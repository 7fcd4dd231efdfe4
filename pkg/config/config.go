package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/shouni/gemini-invoice-analyzer/pkg/analyzer"
)

const (
	EnvAPIKey      = "GOOGLE_API_KEY"
	EnvModel       = "GEMINI_MODEL"
	EnvPort        = "PORT"
	EnvMaxUploadMB = "MAX_UPLOAD_MB"

	DefaultPort        = "8080"
	DefaultMaxUploadMB = 20
)

// ErrMissingAPIKey は API キーが設定されていないことを示します。
var ErrMissingAPIKey = errors.New(EnvAPIKey + " is required")

// Config は起動時に一度だけ読み込む設定です。
type Config struct {
	APIKey      string
	Model       string
	Port        string
	MaxUploadMB int
}

// Load は .env（存在すれば）と環境変数から設定を読み込み、検証します。
// 必須値が欠けている場合は処理を開始する前にエラーを返します。
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		slog.Debug(".env ファイルが見つからないため環境変数のみを使用します", "error", err)
	}
	return FromEnv()
}

// FromEnv は現在の環境変数のみから設定を組み立てます。
func FromEnv() (*Config, error) {
	maxUpload := DefaultMaxUploadMB
	if s := os.Getenv(EnvMaxUploadMB); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v <= 0 {
			return nil, fmt.Errorf("%s の値が不正です: %q", EnvMaxUploadMB, s)
		}
		maxUpload = v
	}

	cfg := &Config{
		APIKey:      strings.TrimSpace(os.Getenv(EnvAPIKey)),
		Model:       getEnv(EnvModel, analyzer.DefaultModel),
		Port:        getEnv(EnvPort, DefaultPort),
		MaxUploadMB: maxUpload,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate は必須項目を検証します。
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}

// MaxUploadBytes はアップロード上限をバイト数で返します。
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.MaxUploadMB) << 20
}

// Addr は HTTP サーバーの待ち受けアドレスです。
func (c *Config) Addr() string {
	return ":" + c.Port
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

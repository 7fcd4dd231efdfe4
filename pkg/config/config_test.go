package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shouni/gemini-invoice-analyzer/pkg/analyzer"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvAPIKey, EnvModel, EnvPort, EnvMaxUploadMB} {
		t.Setenv(k, "")
	}
}

func TestFromEnv(t *testing.T) {
	t.Run("API キーがない場合は ErrMissingAPIKey", func(t *testing.T) {
		clearEnv(t)

		_, err := FromEnv()

		assert.ErrorIs(t, err, ErrMissingAPIKey)
	})

	t.Run("空白だけの API キーも未設定扱い", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvAPIKey, "   ")

		_, err := FromEnv()

		assert.ErrorIs(t, err, ErrMissingAPIKey)
	})

	t.Run("未指定の項目はデフォルト値", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvAPIKey, "test-key")

		cfg, err := FromEnv()

		require.NoError(t, err)
		assert.Equal(t, "test-key", cfg.APIKey)
		assert.Equal(t, analyzer.DefaultModel, cfg.Model)
		assert.Equal(t, ":8080", cfg.Addr())
		assert.Equal(t, int64(20<<20), cfg.MaxUploadBytes())
	})

	t.Run("環境変数で上書きできる", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvAPIKey, "k")
		t.Setenv(EnvModel, "gemini-2.5-flash")
		t.Setenv(EnvPort, "9090")
		t.Setenv(EnvMaxUploadMB, "5")

		cfg, err := FromEnv()

		require.NoError(t, err)
		assert.Equal(t, "gemini-2.5-flash", cfg.Model)
		assert.Equal(t, ":9090", cfg.Addr())
		assert.Equal(t, 5, cfg.MaxUploadMB)
	})

	t.Run("不正な MAX_UPLOAD_MB はエラー", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvAPIKey, "k")
		t.Setenv(EnvMaxUploadMB, "lots")

		_, err := FromEnv()

		assert.Error(t, err)
	})
}

func TestLoad(t *testing.T) {
	t.Run(".env から API キーを読み込む", func(t *testing.T) {
		clearEnv(t)
		// godotenv は既存の環境変数を上書きしないので、事前に変数自体を消しておく
		require.NoError(t, os.Unsetenv(EnvAPIKey))

		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte(EnvAPIKey+"=from-dotenv\n"), 0o600))
		t.Cleanup(func() { os.Unsetenv(EnvAPIKey) })

		cfg, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "from-dotenv", cfg.APIKey)
	})

	t.Run(".env がなくても環境変数で動く", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvAPIKey, "env-key")

		cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))

		require.NoError(t, err)
		assert.Equal(t, "env-key", cfg.APIKey)
	})
}

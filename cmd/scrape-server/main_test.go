package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/darkkaiser/scrape-server/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	t.Run("인자 없음", func(t *testing.T) {
		cfg, err := loadConfig(nil)
		require.NoError(t, err)
		assert.Equal(t, config.ModeMock, cfg.Search.Mode)
	})

	t.Run("설정 파일 경로", func(t *testing.T) {
		path := filepath.Join(dir, "custom.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"search": {"result_limit": 2}}`), 0644))

		cfg, err := loadConfig([]string{path})
		require.NoError(t, err)
		assert.Equal(t, 2, cfg.Search.ResultLimit)
	})

	t.Run("존재하지 않는 파일", func(t *testing.T) {
		_, err := loadConfig([]string{filepath.Join(dir, "missing.json")})
		require.Error(t, err)
	})
}

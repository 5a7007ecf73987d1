package log

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions_Validate(t *testing.T) {
	t.Parallel()

	existingFile := filepath.Join(t.TempDir(), "existing_file")
	require.NoError(t, os.WriteFile(existingFile, []byte("x"), 0644))

	tests := []struct {
		name    string
		opts    Options
		wantErr string
	}{
		{"정상 설정", Options{Name: "app"}, ""},
		{"Name 누락", Options{}, "애플리케이션 식별자(Name)"},
		{"파일과 콘솔 모두 비활성화", Options{Name: "app", DisableFileLog: true}, "모두 비활성화"},
		{"디렉토리 경로가 파일", Options{Name: "app", Dir: existingFile}, "이미 파일로 존재합니다"},
		{"음수 MaxAge", Options{Name: "app", MaxAge: -1}, "MaxAge"},
		{"음수 MaxSizeMB", Options{Name: "app", MaxSizeMB: -1}, "MaxSizeMB"},
		{"음수 MaxBackups", Options{Name: "app", MaxBackups: -1}, "MaxBackups"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.opts.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestProfiles(t *testing.T) {
	t.Parallel()

	prod := NewProductionOptions("app")
	assert.Equal(t, InfoLevel, prod.Level)
	assert.True(t, prod.EnableCriticalLog)
	assert.False(t, prod.DisableFileLog)
	assert.NoError(t, prod.Validate())

	dev := NewDevelopmentOptions("app")
	assert.Equal(t, TraceLevel, dev.Level)
	assert.True(t, dev.EnableConsoleLog)
	assert.NoError(t, dev.Validate())

	sls := NewServerlessOptions("app")
	assert.True(t, sls.DisableFileLog)
	assert.True(t, sls.EnableConsoleLog)
	assert.True(t, sls.JSONFormat)
	assert.NoError(t, sls.Validate())
}

func TestSetupLogger_CreatesFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	l := logrus.New()

	c, err := setupLogger(l, Options{
		Name:              "scrape",
		Dir:               dir,
		Level:             TraceLevel,
		EnableCriticalLog: true,
		EnableVerboseLog:  true,
	})
	require.NoError(t, err)

	l.Info("info-line")
	l.Error("error-line")
	l.Debug("debug-line")
	require.NoError(t, c.Close())

	read := func(name string) string {
		b, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		return string(b)
	}

	mainLog := read("scrape.log")
	assert.Contains(t, mainLog, "info-line")
	assert.Contains(t, mainLog, "error-line")
	assert.NotContains(t, mainLog, "debug-line")

	assert.Contains(t, read("scrape.critical.log"), "error-line")
	assert.Contains(t, read("scrape.verbose.log"), "debug-line")
}

func TestSetupLogger_ConsoleOnly(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	l := logrus.New()

	c, err := setupLogger(l, Options{
		Name:             "scrape",
		Dir:              dir,
		EnableConsoleLog: true,
		DisableFileLog:   true,
		JSONFormat:       true,
	})
	require.NoError(t, err)
	defer c.Close()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "DisableFileLog 이면 파일을 만들지 않아야 합니다")
	assert.Equal(t, InfoLevel, l.GetLevel())
}

func TestSetupLogger_InvalidOptions(t *testing.T) {
	t.Parallel()

	_, err := setupLogger(logrus.New(), Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "유효하지 않은 로그 설정")
}

func TestNewFormatter(t *testing.T) {
	t.Parallel()

	_, ok := newFormatter(Options{JSONFormat: true}).(*logrus.JSONFormatter)
	assert.True(t, ok)

	_, ok = newFormatter(Options{}).(*logrus.TextFormatter)
	assert.True(t, ok)
}

func TestCloser_Idempotent(t *testing.T) {
	t.Parallel()

	h, _, _, _, _ := newTestHook()
	c := &closer{hook: h}

	assert.NoError(t, c.Close())
	assert.NoError(t, c.Close())
	assert.True(t, h.closed)
}

func TestWithComponentAndFields(t *testing.T) {
	t.Parallel()

	fields := Fields{"query": "phone"}
	entry := WithComponentAndFields("search.service", fields)

	assert.Equal(t, "search.service", entry.Data[ComponentKey])
	assert.Equal(t, "phone", entry.Data["query"])
	assert.NotContains(t, fields, ComponentKey, "입력 맵은 변경되지 않아야 합니다")

	assert.Equal(t, "api", WithComponent("api").Data[ComponentKey])
}

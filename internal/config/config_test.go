package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{"MEROJOB_URL", "MEROJOB_CSV_FILE", "MEROJOB_HEADLESS", "TELEGRAM_BOT_TOKEN", "TELEGRAM_CHAT_ID"} {
		t.Setenv(k, "")
	}
	// keep a stray .env in the package dir out of the picture
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func writeConfig(t *testing.T, body string) string {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	require.NoError(t, err)
	assert.Equal(t, DefaultURL, cfg.URL)
	assert.Equal(t, DefaultCSVFile, cfg.CSVFile)
	assert.Equal(t, DefaultCardSelector, cfg.CardSelector)
	assert.Equal(t, DefaultPrimaryButton, cfg.PrimaryButton)
	assert.Equal(t, DefaultFallbackButton, cfg.FallbackButton)
	assert.Equal(t, 10*time.Second, cfg.WaitTimeout)
	assert.Equal(t, 2*time.Minute, cfg.Timeout)
	assert.True(t, cfg.IsHeadless())
	assert.False(t, cfg.TelegramEnabled())
}

func TestLoad_YAML(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
url: https://example.com/jobs
csv_file: out/jobs.csv
headless: false
wait_timeout: 3s
telegram_token: abc
telegram_chat_id: 42
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "https://example.com/jobs", cfg.URL)
	assert.Equal(t, "out/jobs.csv", cfg.CSVFile)
	assert.False(t, cfg.IsHeadless())
	assert.Equal(t, 3*time.Second, cfg.WaitTimeout)
	assert.True(t, cfg.TelegramEnabled())
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "csv_file: from-yaml.csv\nheadless: true\n")
	t.Setenv("MEROJOB_CSV_FILE", "from-env.csv")
	t.Setenv("MEROJOB_HEADLESS", "false")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "from-env.csv", cfg.CSVFile)
	assert.False(t, cfg.IsHeadless())
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		env  map[string]string
	}{
		{name: "Broken YAML", yaml: "url: [unterminated"},
		{name: "Bad URL", yaml: "url: ftp://merojob.com"},
		{name: "Token without chat", yaml: "telegram_token: abc"},
		{name: "Bad chat id", env: map[string]string{"TELEGRAM_CHAT_ID": "abc"}},
		{name: "Bad headless", env: map[string]string{"MEROJOB_HEADLESS": "maybe"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(writeConfig(t, tt.yaml))
			assert.Error(t, err)
		})
	}
}

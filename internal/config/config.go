// Load envs from .env
// Load YAML config
// Override with env vars, fill defaults, validate

package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPath           = "configs/config.yaml"
	DefaultURL            = "https://merojob.com/"
	DefaultCSVFile        = "data_file/mero__jobs.csv"
	DefaultCardSelector   = `.rounded-lg.border.bg-card.text-card-foreground.shadow-sm.hover\:shadow-xl`
	DefaultPrimaryButton  = `button:has-text("Individual Jobs")`
	DefaultFallbackButton = `a:has-text("Jobs")`
	DefaultScreenshotDir  = "logs/screenshots"
)

type Config struct {
	URL     string `yaml:"url" env:"MEROJOB_URL"`
	CSVFile string `yaml:"csv_file" env:"MEROJOB_CSV_FILE"`
	//Browser
	Headless       *bool         `yaml:"headless" env:"MEROJOB_HEADLESS"`
	CardSelector   string        `yaml:"card_selector"`
	PrimaryButton  string        `yaml:"primary_button"`
	FallbackButton string        `yaml:"fallback_button"`
	WaitTimeout    time.Duration `yaml:"wait_timeout"`
	Timeout        time.Duration `yaml:"timeout"`
	//Paths
	CookiesFile   string `yaml:"cookies_file"`
	ScreenshotDir string `yaml:"screenshot_dir"`
	//Optional Telegram notification
	TelegramToken  string `yaml:"telegram_token" env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID int64  `yaml:"telegram_chat_id" env:"TELEGRAM_CHAT_ID"`
}

// Load reads .env, then the YAML file at path, then env overrides. A missing
// YAML file only logs a warning; everything has a default.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		log.Printf("⚠️ Could not read %s, using defaults", path)
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("MEROJOB_URL"); v != "" {
		c.URL = v
	}
	if v := os.Getenv("MEROJOB_CSV_FILE"); v != "" {
		c.CSVFile = v
	}
	if v := os.Getenv("MEROJOB_HEADLESS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid MEROJOB_HEADLESS: %w", err)
		}
		c.Headless = &b
	}
	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		c.TelegramToken = token
	}
	if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid TELEGRAM_CHAT_ID: %w", err)
		}
		c.TelegramChatID = id
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.URL == "" {
		c.URL = DefaultURL
	}
	if c.CSVFile == "" {
		c.CSVFile = DefaultCSVFile
	}
	if c.Headless == nil {
		headless := true
		c.Headless = &headless
	}
	if c.CardSelector == "" {
		c.CardSelector = DefaultCardSelector
	}
	if c.PrimaryButton == "" {
		c.PrimaryButton = DefaultPrimaryButton
	}
	if c.FallbackButton == "" {
		c.FallbackButton = DefaultFallbackButton
	}
	if c.WaitTimeout == 0 {
		c.WaitTimeout = 10 * time.Second
	}
	if c.Timeout == 0 {
		c.Timeout = 2 * time.Minute
	}
	if c.ScreenshotDir == "" {
		c.ScreenshotDir = DefaultScreenshotDir
	}
}

// Validate reports every problem at once.
func (c *Config) Validate() error {
	var errs []string

	if !strings.HasPrefix(c.URL, "http://") && !strings.HasPrefix(c.URL, "https://") {
		errs = append(errs, fmt.Sprintf("url must be http(s), got %q", c.URL))
	}
	if strings.TrimSpace(c.CSVFile) == "" {
		errs = append(errs, "csv_file is required")
	}
	if c.WaitTimeout < 0 {
		errs = append(errs, "wait_timeout must be >= 0")
	}
	if c.Timeout < 0 {
		errs = append(errs, "timeout must be >= 0")
	}
	if (c.TelegramToken == "") != (c.TelegramChatID == 0) {
		errs = append(errs, "telegram_token and telegram_chat_id must be set together")
	}

	if len(errs) > 0 {
		return errors.New("config validation failed:\n- " + strings.Join(errs, "\n- "))
	}
	return nil
}

// IsHeadless is true unless headless was explicitly turned off.
func (c *Config) IsHeadless() bool {
	return c.Headless == nil || *c.Headless
}

// TelegramEnabled reports whether run summaries should go to Telegram.
func (c *Config) TelegramEnabled() bool {
	return c.TelegramToken != "" && c.TelegramChatID != 0
}

// Load envs from .env
// Load YAML config
// Validate config
// Provide default values

package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Port string `yaml:"port" env:"PORT"`

	// Scoring oracle. An empty key disables AI filtering.
	OpenAIKey   string `yaml:"openai_key" env:"OPENAI_API_KEY"`
	OpenAIModel string `yaml:"openai_model"`

	// Search defaults
	SearchURL          string `yaml:"search_url"`
	DefaultTargetCount int    `yaml:"default_target_count"`

	// Throttling
	ProfileCooldownSec int `yaml:"profile_cooldown_sec"`

	// Paths
	ExportDir     string `yaml:"export_dir"`
	CookiesPath   string `yaml:"cookies_path"`
	ScreenshotDir string `yaml:"screenshot_dir"`

	// Browser
	Headless bool `yaml:"headless"`

	// Optional run reporting
	TelegramToken  string `yaml:"telegram_token" env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID int64  `yaml:"telegram_chat_id" env:"TELEGRAM_CHAT_ID"`
}

func Load() *Config {
	_ = godotenv.Load()

	// Load yaml config
	cfg := &Config{}

	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Printf("Warning: Could not read config.yaml: %v", err)
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			log.Fatalf("Error parsing config.yaml: %v", err)
		}
	}

	// Override with env vars
	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}

	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		cfg.OpenAIKey = key
	}

	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		cfg.TelegramToken = token
	}

	if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			log.Fatalf("Invalid TELEGRAM_CHAT_ID: %v", err)
		}
		cfg.TelegramChatID = id
	}

	// Set default values if not set
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	if cfg.OpenAIModel == "" {
		cfg.OpenAIModel = "gpt-4"
	}

	if cfg.SearchURL == "" {
		cfg.SearchURL = "https://www.linkedin.com/sales/search/people"
	}

	if cfg.DefaultTargetCount <= 0 {
		cfg.DefaultTargetCount = 30
	}

	if cfg.ProfileCooldownSec <= 0 {
		cfg.ProfileCooldownSec = 2
	}

	if cfg.ExportDir == "" {
		cfg.ExportDir = "static/exports"
	}

	if cfg.CookiesPath == "" {
		cfg.CookiesPath = ".cookies"
	}

	if cfg.ScreenshotDir == "" {
		cfg.ScreenshotDir = "logs/screenshots"
	}

	return cfg
}

// ProfileCooldown is the pause between consecutive profile visits.
func (c *Config) ProfileCooldown() time.Duration {
	return time.Duration(c.ProfileCooldownSec) * time.Second
}

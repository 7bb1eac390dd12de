package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   ServerCfg   `yaml:"server"`
	Order    OrderCfg    `yaml:"order"`
	Telegram TelegramCfg `yaml:"telegram"`
	Checkout CheckoutCfg `yaml:"checkout"`
}

type ServerCfg struct {
	Addr string `yaml:"addr" env:"SERVER_ADDR"`
}

type OrderCfg struct {
	SubmitURL string `yaml:"submit_url" env:"ORDER_SUBMIT_URL"`
}

type TelegramCfg struct {
	Token  string `yaml:"token" env:"TELEGRAM_BOT_TOKEN"`
	ChatID string `yaml:"chat_id" env:"TELEGRAM_CHAT_ID"`
}

type CheckoutCfg struct {
	CloseDelay time.Duration `yaml:"close_delay" env:"CHECKOUT_CLOSE_DELAY"`
}

// Load reads the YAML config file, then applies environment overrides.
// A missing file is not an error; defaults and environment still apply.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server:   ServerCfg{Addr: ":8080"},
		Checkout: CheckoutCfg{CloseDelay: 2 * time.Second},
	}

	raw, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	return cfg, nil
}

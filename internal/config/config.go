// Package config loads service settings from config.yaml, a .env file and the
// environment, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// defaultJWTSecret is only accepted when AppEnv is development.
const defaultJWTSecret = "super-secret-key"

type Config struct {
	AppEnv      string
	Port        string
	DatabaseURL string
	RedisAddr   string
	JWTSecret   string
	LogLevel    string

	CheckoutDelay         time.Duration
	CheckoutLockTTL       time.Duration
	TaxRate               float64
	ShippingFee           float64
	FreeShippingThreshold float64
	Currency              string

	RateLimitRPS   float64
	RateLimitBurst int
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_env", "development")
	v.SetDefault("port", "8080")
	v.SetDefault("database_url", "")
	v.SetDefault("redis_addr", "")
	v.SetDefault("jwt_secret", defaultJWTSecret)
	v.SetDefault("log_level", "info")
	v.SetDefault("checkout_delay", "2s")
	v.SetDefault("checkout_lock_ttl", "30s")
	v.SetDefault("tax_rate", 0.08)
	v.SetDefault("shipping_fee", 5.0)
	v.SetDefault("free_shipping_threshold", 100.0)
	v.SetDefault("currency", "LKR")
	v.SetDefault("rate_limit_rps", 5.0)
	v.SetDefault("rate_limit_burst", 10)
}

// Load reads configuration. configPath may be empty, in which case
// ./config.yaml is used when present.
func Load(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		AppEnv:                v.GetString("app_env"),
		Port:                  v.GetString("port"),
		DatabaseURL:           v.GetString("database_url"),
		RedisAddr:             v.GetString("redis_addr"),
		JWTSecret:             v.GetString("jwt_secret"),
		LogLevel:              v.GetString("log_level"),
		CheckoutDelay:         v.GetDuration("checkout_delay"),
		CheckoutLockTTL:       v.GetDuration("checkout_lock_ttl"),
		TaxRate:               v.GetFloat64("tax_rate"),
		ShippingFee:           v.GetFloat64("shipping_fee"),
		FreeShippingThreshold: v.GetFloat64("free_shipping_threshold"),
		Currency:              v.GetString("currency"),
		RateLimitRPS:          v.GetFloat64("rate_limit_rps"),
		RateLimitBurst:        v.GetInt("rate_limit_burst"),
	}
	return cfg, cfg.validate()
}

func (c *Config) validate() error {
	if c.JWTSecret == "" {
		return errors.New("jwt_secret must not be empty")
	}
	if c.UsesDefaultJWTSecret() && c.AppEnv != "development" {
		return fmt.Errorf("jwt_secret must be set when app_env is %q", c.AppEnv)
	}
	if c.CheckoutDelay < 0 {
		return errors.New("checkout_delay cannot be negative")
	}
	if c.TaxRate < 0 || c.ShippingFee < 0 || c.FreeShippingThreshold < 0 {
		return errors.New("tax_rate, shipping_fee and free_shipping_threshold cannot be negative")
	}
	if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 {
		return errors.New("rate limit must be positive")
	}
	return nil
}

// UsesDefaultJWTSecret reports whether tokens would be signed with the built-in key.
func (c *Config) UsesDefaultJWTSecret() bool {
	return c.JWTSecret == defaultJWTSecret
}

// Addr is the listen address derived from Port.
func (c *Config) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

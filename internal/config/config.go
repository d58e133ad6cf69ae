package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application, loaded from the
// environment. Credentials and policy choices live here rather than in code.
type Config struct {
	Port    string `mapstructure:"PORT"`
	GinMode string `mapstructure:"GIN_MODE"`
	DataDir string `mapstructure:"DATA_DIR"`

	JWTSecret string        `mapstructure:"JWT_SECRET"`
	TokenTTL  time.Duration `mapstructure:"TOKEN_TTL"`

	AdminUsername string `mapstructure:"ADMIN_USERNAME"`
	AdminPassword string `mapstructure:"ADMIN_PASSWORD"`

	// AdvanceRate is the upfront share of a quote's total cost.
	AdvanceRate float64 `mapstructure:"ADVANCE_RATE"`
	// IDPolicy selects how project identifiers are derived: "name" or "random".
	IDPolicy string `mapstructure:"ID_POLICY"`

	// Signup validation policy (anti-abuse rules kept configurable).
	AllowedEmailDomain  string `mapstructure:"ALLOWED_EMAIL_DOMAIN"`
	MaxAccountsPerEmail int    `mapstructure:"MAX_ACCOUNTS_PER_EMAIL"`

	// Outbound notification mail. Notifications are disabled when SMTPHost is empty.
	SMTPHost     string `mapstructure:"SMTP_HOST"`
	SMTPPort     string `mapstructure:"SMTP_PORT"`
	SMTPUsername string `mapstructure:"SMTP_USERNAME"`
	SMTPPassword string `mapstructure:"SMTP_PASSWORD"`
	NotifyEmail  string `mapstructure:"NOTIFY_EMAIL"`

	// Optional AMQP notification transport; takes precedence over SMTP when set.
	AMQPURL     string `mapstructure:"AMQP_URL"`
	NotifyQueue string `mapstructure:"NOTIFY_QUEUE"`

	// Optional Redis-backed token denylist for logout; in-memory when unset.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	ClientURL string `mapstructure:"CLIENT_URL"`
}

// LoadConfig loads configuration from environment variables using Viper.
func LoadConfig() (*Config, error) {
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set default values
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("GIN_MODE", "debug")
	viper.SetDefault("DATA_DIR", "data")
	viper.SetDefault("TOKEN_TTL", "24h")
	viper.SetDefault("ADVANCE_RATE", 0.4)
	viper.SetDefault("ID_POLICY", "name")
	viper.SetDefault("ALLOWED_EMAIL_DOMAIN", "gmail.com")
	viper.SetDefault("MAX_ACCOUNTS_PER_EMAIL", 10)
	viper.SetDefault("SMTP_PORT", "587")
	viper.SetDefault("NOTIFY_QUEUE", "project-notifications")

	// Bind environment variables
	for _, key := range []string{
		"PORT", "GIN_MODE", "DATA_DIR",
		"JWT_SECRET", "TOKEN_TTL",
		"ADMIN_USERNAME", "ADMIN_PASSWORD",
		"ADVANCE_RATE", "ID_POLICY",
		"ALLOWED_EMAIL_DOMAIN", "MAX_ACCOUNTS_PER_EMAIL",
		"SMTP_HOST", "SMTP_PORT", "SMTP_USERNAME", "SMTP_PASSWORD", "NOTIFY_EMAIL",
		"AMQP_URL", "NOTIFY_QUEUE",
		"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB",
		"CLIENT_URL",
	} {
		viper.BindEnv(key)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.New("failed to unmarshal config: " + err.Error())
	}

	// Validate required fields
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		return nil, errors.New("ADMIN_USERNAME and ADMIN_PASSWORD are required")
	}
	if cfg.AdvanceRate <= 0 || cfg.AdvanceRate >= 1 {
		return nil, errors.New("ADVANCE_RATE must be between 0 and 1 exclusive")
	}
	if cfg.IDPolicy != "name" && cfg.IDPolicy != "random" {
		return nil, errors.New("ID_POLICY must be \"name\" or \"random\"")
	}

	return &cfg, nil
}

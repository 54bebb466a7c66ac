package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"

	sharedConfig "clubgate/internal/shared/config"
)

type Config struct {
	Server       sharedConfig.ServerConfig       `mapstructure:"server"`
	Database     sharedConfig.DatabaseConfig     `mapstructure:"database"`
	Logger       sharedConfig.LoggerConfig       `mapstructure:"logger"`
	Email        sharedConfig.EmailConfig        `mapstructure:"email"`
	Redis        sharedConfig.RedisConfig        `mapstructure:"redis"`
	Verification sharedConfig.VerificationConfig `mapstructure:"verification"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load loads configuration from file and environment variables
func Load(env string) (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../configs")
	viper.AddConfigPath("../../configs")

	viper.SetEnvPrefix("CLUBGATE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// A missing file is fine when everything comes from the environment.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if env != "" && env != "default" {
		viper.Set("server.mode", env)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

// Validate rejects configurations the subsystem must not run with. An unset
// identity salt would silently weaken the daily IP hash, so it is a startup
// error rather than a fallback.
func (c *Config) Validate() error {
	if c.Verification.IdentitySalt == "" {
		return fmt.Errorf("verification.identity_salt must be set")
	}
	if c.Verification.EmailDomain == "" {
		return fmt.Errorf("verification.email_domain must be set")
	}
	if c.Server.BaseURL == "" {
		return fmt.Errorf("server.base_url must be set")
	}
	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.mode", "debug")
	viper.SetDefault("server.base_url", "")

	// Database defaults
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 3306)
	viper.SetDefault("database.username", "root")
	viper.SetDefault("database.password", "password")
	viper.SetDefault("database.database", "clubgate_dev")
	viper.SetDefault("database.max_idle_conns", 10)
	viper.SetDefault("database.max_open_conns", 100)
	viper.SetDefault("database.conn_max_lifetime", 60)

	// Logger defaults
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.format", "console")
	viper.SetDefault("logger.output_path", "stdout")

	// Email defaults
	viper.SetDefault("email.smtp_host", "localhost")
	viper.SetDefault("email.smtp_port", 1025)
	viper.SetDefault("email.smtp_user", "")
	viper.SetDefault("email.smtp_password", "")
	viper.SetDefault("email.from_address", "noreply@clubgate.local")
	viper.SetDefault("email.from_name", "Clubgate")

	// Redis defaults; empty host means the in-process limiter is used
	viper.SetDefault("redis.host", "")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	// Verification defaults
	viper.SetDefault("verification.identity_salt", "")
	viper.SetDefault("verification.turnstile_secret", "")
	viper.SetDefault("verification.turnstile_url", "https://challenges.cloudflare.com/turnstile/v0/siteverify")
	viper.SetDefault("verification.email_domain", "")
	viper.SetDefault("verification.community_url", "")
	viper.SetDefault("verification.committee_key", "")
	viper.SetDefault("verification.token_ttl_hours", 24)
	viper.SetDefault("verification.duplicate_window_days", 90)
	viper.SetDefault("verification.ip_limit_attempts", 5)
	viper.SetDefault("verification.ip_limit_window_minutes", 15)
	viper.SetDefault("verification.pair_limit_attempts", 3)
	viper.SetDefault("verification.pair_limit_window_minutes", 30)
}

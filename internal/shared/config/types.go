package config

import "fmt"

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	BaseURL        string   `mapstructure:"base_url"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type EmailConfig struct {
	SMTPHost     string `mapstructure:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port"`
	SMTPUser     string `mapstructure:"smtp_user"`
	SMTPPassword string `mapstructure:"smtp_password"`
	FromAddress  string `mapstructure:"from_address"`
	FromName     string `mapstructure:"from_name"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// VerificationConfig holds the knobs for the access-token subsystem.
type VerificationConfig struct {
	// IdentitySalt is mixed into the daily IP hash. It has no safe default;
	// startup fails when it is empty.
	IdentitySalt string `mapstructure:"identity_salt"`
	// TurnstileSecret authenticates us to the bot-challenge verifier.
	// When empty, every challenge verification fails closed.
	TurnstileSecret string `mapstructure:"turnstile_secret"`
	// TurnstileURL overrides the verifier endpoint, mainly for tests.
	TurnstileURL string `mapstructure:"turnstile_url"`
	// EmailDomain is the institutional suffix required on the automatic
	// path, e.g. "ac.uk".
	EmailDomain string `mapstructure:"email_domain"`
	// CommunityURL is the invite destination handed out on successful
	// redemption.
	CommunityURL string `mapstructure:"community_url"`
	// CommitteeKey guards the manual-approval endpoints. Committee staff
	// authentication proper lives with the identity provider; this is a
	// service-to-service shared secret.
	CommitteeKey string `mapstructure:"committee_key"`

	TokenTTLHours       int `mapstructure:"token_ttl_hours"`
	DuplicateWindowDays int `mapstructure:"duplicate_window_days"`

	IPLimitAttempts        int `mapstructure:"ip_limit_attempts"`
	IPLimitWindowMinutes   int `mapstructure:"ip_limit_window_minutes"`
	PairLimitAttempts      int `mapstructure:"pair_limit_attempts"`
	PairLimitWindowMinutes int `mapstructure:"pair_limit_window_minutes"`
}

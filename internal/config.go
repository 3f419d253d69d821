package internal

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server        ServerConfig        `mapstructure:"http_server"`
	Database      DatabaseConfig      `mapstructure:"database"`
	Security      SecurityConfig      `mapstructure:"security" validate:"required"`
	Mail          MailConfig          `mapstructure:"mail"`
	Observability ObservabilityConfig `mapstructure:"observability"`
}

type ServerConfig struct {
	Port              int           `mapstructure:"port"`
	BaseURL           string        `mapstructure:"base_url"`
	AllowedOrigins    string        `mapstructure:"allowed_origins"`
	PingMessage       string        `mapstructure:"ping_message"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
	ReadTimeout       time.Duration `mapstructure:"read_timeout"`
	IdleTimeout       time.Duration `mapstructure:"idle_timeout"`
	WriteTimeout      time.Duration `mapstructure:"write_timeout"`
}

type DatabaseConfig struct {
	MaxOpenConns    int           `mapstructure:"max_open_conns" validate:"required,min=1"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" validate:"required,min=1"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime" validate:"required,min=1m"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time" validate:"required,min=1m"`
	Source          string        `mapstructure:"source"`
}

type SecurityConfig struct {
	JWTSecret           string        `mapstructure:"jwt_secret" validate:"required,min=32"`
	AccessTokenDuration time.Duration `mapstructure:"access_token_duration" validate:"required,min=1m"`
	BCryptCost          int           `mapstructure:"bcrypt_cost" validate:"required,min=10,max=15"`
}

// MailConfig carries both delivery channels. SMTP wins when fully
// configured; otherwise delivery falls back to the Resend HTTP API.
type MailConfig struct {
	SMTPHost     string `mapstructure:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port"`
	SMTPUser     string `mapstructure:"smtp_user"`
	SMTPPassword string `mapstructure:"smtp_password"`
	SMTPFrom     string `mapstructure:"smtp_from"`

	ResendAPIKey string `mapstructure:"resend_api_key"`
	ResendFrom   string `mapstructure:"resend_from"`
}

type ObservabilityConfig struct {
	Logging LoggingConfig `mapstructure:"logging"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=json text"`
}

// ----------------- HELPERS -----------------

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvAsDuration(key string, defaultVal time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultVal
}

// LoadConfigFromEnv builds a Config from environment variables, used for
// container deployments where no config file is mounted.
func LoadConfigFromEnv() *Config {
	return &Config{
		Server: ServerConfig{
			Port:              getEnvAsInt("HTTP_PORT", 8080),
			BaseURL:           getEnv("BASE_URL", "http://localhost:8080"),
			AllowedOrigins:    getEnv("ALLOWED_ORIGINS", "*"),
			PingMessage:       getEnv("PING_MESSAGE", "ping"),
			ReadHeaderTimeout: getEnvAsDuration("READ_HEADER_TIMEOUT", 5*time.Second),
			ReadTimeout:       getEnvAsDuration("READ_TIMEOUT", 15*time.Second),
			IdleTimeout:       getEnvAsDuration("IDLE_TIMEOUT", 60*time.Second),
			WriteTimeout:      getEnvAsDuration("WRITE_TIMEOUT", 15*time.Second),
		},
		Database: DatabaseConfig{
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
			ConnMaxIdleTime: getEnvAsDuration("DB_CONN_MAX_IDLE_TIME", 5*time.Minute),
			Source:          getEnv("DATABASE_URL", ""),
		},
		Security: SecurityConfig{
			JWTSecret:           getEnv("JWT_SECRET", ""),
			AccessTokenDuration: getEnvAsDuration("ACCESS_TOKEN_DURATION", 8*time.Hour),
			BCryptCost:          getEnvAsInt("BCRYPT_COST", 12),
		},
		Mail: MailConfig{
			SMTPHost:     getEnv("SMTP_HOST", ""),
			SMTPPort:     getEnvAsInt("SMTP_PORT", 587),
			SMTPUser:     getEnv("SMTP_USER", ""),
			SMTPPassword: getEnv("SMTP_PASS", ""),
			SMTPFrom:     getEnv("SMTP_FROM", ""),
			ResendAPIKey: getEnv("RESEND_API_KEY", ""),
			ResendFrom:   getEnv("RESEND_FROM", "RH Disciplinar <onboarding@resend.dev>"),
		},
		Observability: ObservabilityConfig{
			Logging: LoggingConfig{
				Level:  getEnv("LOG_LEVEL", "info"),
				Format: getEnv("LOG_FORMAT", "json"),
			},
		},
	}
}

// ----------------- VALIDATION -----------------

func (c *Config) Validate() error {
	var errs []string

	if err := c.Server.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("server config: %v", err))
	}

	if err := c.Database.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("database config: %v", err))
	}

	if err := c.Security.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("security config: %v", err))
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

func (c *ServerConfig) Validate() error {
	if c.AllowedOrigins != "" {
		origins := strings.Split(c.AllowedOrigins, ",")
		for _, origin := range origins {
			origin = strings.TrimSpace(origin)
			if origin == "*" {
				continue
			}
			if _, err := url.Parse(origin); err != nil {
				return fmt.Errorf("invalid allowed origin %s: %w", origin, err)
			}
		}
	}
	if c.ReadTimeout < c.ReadHeaderTimeout {
		return errors.New("read_timeout must be >= read_header_timeout")
	}
	return nil
}

func (c *DatabaseConfig) Validate() error {
	if c.MaxIdleConns > c.MaxOpenConns {
		return errors.New("max_idle_conns cannot be greater than max_open_conns")
	}
	return nil
}

func (c *DatabaseConfig) GetDSN() string {
	return c.Source
}

func (c *SecurityConfig) Validate() error {
	if len(c.JWTSecret) < 32 {
		return errors.New("jwt secret must be at least 32 characters")
	}
	if c.BCryptCost < 10 || c.BCryptCost > 15 {
		return errors.New("bcrypt cost must be between 10 and 15")
	}
	return nil
}

// SMTPConfigured reports whether every field needed for SMTP delivery is set.
// A partially filled SMTP block is ignored rather than erroring out, so a
// deployment can keep stale SMTP vars around while using Resend.
func (c *MailConfig) SMTPConfigured() bool {
	return c.SMTPHost != "" && c.SMTPUser != "" && c.SMTPPassword != "" && c.SMTPFrom != ""
}

func (c *MailConfig) ResendConfigured() bool {
	return c.ResendAPIKey != ""
}

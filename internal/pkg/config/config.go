package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, secrets)
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	Store     StoreConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Staff     StaffConfig
	Cover     CoverConfig
	Mail      MailConfig
	Rabbit    RabbitConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Webhook   WebhookConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD"`
	DBName   string `envconfig:"DB_NAME" default:"macondo"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Europe/Warsaw"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

// StoreConfig selects the record store backend. "memory" keeps everything in process.
type StoreConfig struct {
	Driver string `envconfig:"STORE_DRIVER" default:"postgres"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8888"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Stripe-Signature"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Retry-After"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/Warsaw"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"3600"` // 1*60*60
}

type JWTConfig struct {
	AdminSecret   string        `envconfig:"ADMIN_TOKEN_SECRET" required:"true"`
	AdminDuration time.Duration `envconfig:"ADMIN_TOKEN_DURATION" default:"8h"`
	StaffSecret   string        `envconfig:"STAFF_TOKEN_SECRET" required:"true"`
	StaffDuration time.Duration `envconfig:"STAFF_TOKEN_DURATION" default:"12h"`
}

type StaffConfig struct {
	TicketListLimit int `envconfig:"STAFF_TICKET_LIST_LIMIT" default:"200"`
	// LegacyPINSalt verifies PIN hashes imported from the previous system.
	LegacyPINSalt string `envconfig:"STAFF_PIN_SALT"`
}

type CoverConfig struct {
	// BaseURL is resolved from URL, DEPLOY_PRIME_URL then SITE_URL when empty.
	BaseURL     string        `envconfig:"PUBLIC_BASE_URL"`
	TimeZone    string        `envconfig:"COVER_TIMEZONE" default:"Europe/Warsaw"`
	GraceWindow time.Duration `envconfig:"COVER_GRACE_WINDOW" default:"5m"`
}

type MailConfig struct {
	Token       string        `envconfig:"ZEPTOMAIL_TOKEN"`
	APIHost     string        `envconfig:"ZEPTOMAIL_API_HOST" default:"api.zeptomail.eu"`
	FromAddress string        `envconfig:"ZEPTOMAIL_FROM_ADDRESS_COVER" default:"cover@macondo.pl"`
	FromName    string        `envconfig:"ZEPTOMAIL_FROM_NAME" default:"Macondo Bar Latino"`
	Timeout     time.Duration `envconfig:"ZEPTOMAIL_TIMEOUT" default:"10s"`
}

type RabbitConfig struct {
	URL         string `envconfig:"RABBITMQ_URL"`
	Queue       string `envconfig:"RABBITMQ_EMAIL_QUEUE" default:"email.outbox"`
	MaxAttempts int    `envconfig:"RABBITMQ_EMAIL_MAX_ATTEMPTS" default:"5"`
	Prefetch    int    `envconfig:"RABBITMQ_PREFETCH" default:"10"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type RateLimitConfig struct {
	Enabled        bool          `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
	Prefix         string        `envconfig:"RATE_LIMIT_PREFIX" default:"rl"`
	Capacity       int           `envconfig:"RATE_LIMIT_CAPACITY" default:"20"`
	RefillTokens   int           `envconfig:"RATE_LIMIT_REFILL_TOKENS" default:"1"`
	RefillInterval time.Duration `envconfig:"RATE_LIMIT_REFILL_INTERVAL" default:"3s"`
	TTL            time.Duration `envconfig:"RATE_LIMIT_TTL" default:"10m"`
}

type WebhookConfig struct {
	Secret    string        `envconfig:"STRIPE_WEBHOOK_SECRET"`
	Tolerance time.Duration `envconfig:"STRIPE_WEBHOOK_TOLERANCE" default:"5m"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// ResolveBaseURL returns the public site origin without a trailing slash.
func (c CoverConfig) ResolveBaseURL() string {
	candidates := []string{c.BaseURL, os.Getenv("URL"), os.Getenv("DEPLOY_PRIME_URL"), os.Getenv("SITE_URL")}
	for _, v := range candidates {
		if v = strings.TrimSpace(v); v != "" {
			return strings.TrimRight(v, "/")
		}
	}
	return ""
}

func (c CoverConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func LoadConfig() (Config, error) {
	// .env is optional; real environment variables win
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Europe/Warsaw",
			MaxConns: 10,
		},
		Store: StoreConfig{Driver: "memory"},
		CORS: CORSConfig{
			AllowOrigins:  []string{"https://macondo.test"},
			AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", "Stripe-Signature", "X-Request-ID"},
			ExposeHeaders: []string{"X-Request-ID"},
			MaxAge:        time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Europe/Warsaw",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 3600,
		},
		JWT: JWTConfig{
			AdminSecret:   "test-admin-secret",
			AdminDuration: 8 * time.Hour,
			StaffSecret:   "test-staff-secret",
			StaffDuration: 12 * time.Hour,
		},
		Staff: StaffConfig{TicketListLimit: 200, LegacyPINSalt: "test-pin-salt"},
		Cover: CoverConfig{
			BaseURL:     "https://macondo.test",
			TimeZone:    "Europe/Warsaw",
			GraceWindow: 5 * time.Minute,
		},
		Rabbit: RabbitConfig{Queue: "email.outbox", MaxAttempts: 5, Prefetch: 10},
		RateLimit: RateLimitConfig{
			Enabled:        false,
			Prefix:         "rl-test",
			Capacity:       20,
			RefillTokens:   1,
			RefillInterval: 3 * time.Second,
			TTL:            10 * time.Minute,
		},
		Webhook: WebhookConfig{
			Secret:    "whsec_test",
			Tolerance: 5 * time.Minute,
		},
	}
}

package config

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
	"go.uber.org/zap"
)

type Config struct {
	Port     string `env:"PORT,default=8080"`
	AppEnv   string `env:"APP_ENV,default=development"`
	LogLevel string `env:"LOG_LEVEL,default=info"`

	DatabaseURL string `env:"DATABASE_URL"`
	RedisURL    string `env:"REDIS_URL"`

	// Origin the QR codes should resolve to, and the deployment origin that
	// early QR payloads were generated with.
	PublicBaseURL        string `env:"PUBLIC_BASE_URL,default=https://postcardads.com"`
	QRPlaceholderBaseURL string `env:"QR_PLACEHOLDER_BASE_URL,default=https://your-app.vercel.app"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS,default=*"`

	Mail MailConfig `env:",prefix=MAIL_"`

	ContactToEmail string `env:"CONTACT_TO_EMAIL,default=hello@postcardads.com"`
}

type MailConfig struct {
	Host     string `env:"HOST"`
	Port     int    `env:"PORT,default=587"`
	User     string `env:"USER"`
	Password string `env:"PASS"`
	From     string `env:"FROM,default=Postcard Ads <noreply@postcardads.com>"`
}

// Load reads .env (when present) and then the process environment.
func Load(ctx context.Context) (*Config, error) {
	_ = godotenv.Load()
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("failed to process environment config: %w", err)
	}

	cfg.PublicBaseURL = strings.TrimRight(cfg.PublicBaseURL, "/")
	cfg.QRPlaceholderBaseURL = strings.TrimRight(cfg.QRPlaceholderBaseURL, "/")

	return &cfg, nil
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// RequireDatabase is used by the maintenance scripts, which cannot do
// anything useful without a database.
func (c *Config) RequireDatabase() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is not set")
	}
	return nil
}

func (c *Config) Validate(log *zap.Logger) {
	if c.DatabaseURL == "" {
		log.Warn("DATABASE_URL is not set")
	}
	if c.Mail.Host == "" {
		log.Warn("MAIL_HOST is not set, contact form delivery will fail")
	}
	if c.RedisURL == "" {
		log.Info("REDIS_URL is not set, landing page cache disabled")
	}
	if _, err := url.Parse(c.PublicBaseURL); err != nil {
		log.Warn("PUBLIC_BASE_URL is not a valid URL", zap.String("value", c.PublicBaseURL), zap.Error(err))
	}
}

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/shopspring/decimal"
)

const (
	EnvLocal      = "local"
	EnvProduction = "production"
)

// Config holds application level configuration loaded from environment variables
// or, when CONFIG_PATH is set, from a YAML file with environment overrides.
type Config struct {
	Env     string  `yaml:"env" env:"APP_ENV" env-default:"local"`
	HTTP    HTTP    `yaml:"http"`
	MySQL   MySQL   `yaml:"mysql"`
	Redis   Redis   `yaml:"redis"`
	Auth    Auth    `yaml:"auth"`
	Gateway Gateway `yaml:"gateway"`
	Storage Storage `yaml:"storage"`
	AMQP    AMQP    `yaml:"amqp"`
	Log     Log     `yaml:"log"`
}

// HTTP configures the API server.
type HTTP struct {
	Port            string        `yaml:"port" env:"SERVER_PORT" env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"HTTP_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"HTTP_WRITE_TIMEOUT" env-default:"30s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"10s"`
	// PublicBaseURL is the externally visible origin used for gateway redirects.
	// Empty means derive it from the incoming request.
	PublicBaseURL string  `yaml:"public_base_url" env:"PUBLIC_BASE_URL"`
	SwaggerHost   string  `yaml:"swagger_host" env:"SWAGGER_HOST"`
	AuthRateLimit float64 `yaml:"auth_rate_limit" env:"AUTH_RATE_LIMIT" env-default:"5"`
	AuthRateBurst int     `yaml:"auth_rate_burst" env:"AUTH_RATE_BURST" env-default:"10"`
}

// MySQL configures the primary store.
type MySQL struct {
	DSN          string        `yaml:"dsn" env:"MYSQL_DSN" env-default:"user:password@tcp(localhost:3306)/league?charset=utf8mb4&parseTime=True&loc=Local"`
	MaxOpenConns int           `yaml:"max_open_conns" env:"MYSQL_MAX_OPEN_CONNS" env-default:"20"`
	MaxIdleConns int           `yaml:"max_idle_conns" env:"MYSQL_MAX_IDLE_CONNS" env-default:"5"`
	ConnMaxLife  time.Duration `yaml:"conn_max_lifetime" env:"MYSQL_CONN_MAX_LIFETIME" env-default:"30m"`
}

// Redis configures the cache used for token revocation and report caching.
type Redis struct {
	Addr     string `yaml:"addr" env:"REDIS_ADDR" env-default:"localhost:6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

// Auth configures session tokens.
type Auth struct {
	JWTSecret string        `yaml:"jwt_secret" env:"JWT_SECRET"`
	TokenTTL  time.Duration `yaml:"token_ttl" env:"JWT_TOKEN_TTL" env-default:"168h"`
}

// Gateway configures the UPI gateway client.
type Gateway struct {
	Key             string        `yaml:"key" env:"UPI_GATEWAY_KEY"`
	BaseURL         string        `yaml:"base_url" env:"UPI_GATEWAY_BASE_URL" env-default:"https://api.ekqr.in"`
	Timeout         time.Duration `yaml:"timeout" env:"UPI_GATEWAY_TIMEOUT" env-default:"15s"`
	WebhookSecret   string        `yaml:"webhook_secret" env:"UPI_GATEWAY_WEBHOOK_SECRET"`
	RegistrationFee string        `yaml:"registration_fee" env:"REGISTRATION_FEE" env-default:"1"`
	ProductInfo     string        `yaml:"product_info" env:"UPI_GATEWAY_PRODUCT_INFO" env-default:"Laharighat Premier League - Player Registration"`
	EmailDomain     string        `yaml:"email_domain" env:"UPI_GATEWAY_EMAIL_DOMAIN" env-default:"laharighatpl.in"`
}

// Fee returns the registration fee. Validate guarantees it parses.
func (g Gateway) Fee() decimal.Decimal {
	fee, err := decimal.NewFromString(g.RegistrationFee)
	if err != nil {
		return decimal.Zero
	}
	return fee
}

// Storage configures the image blob store.
type Storage struct {
	Endpoint   string        `yaml:"endpoint" env:"MINIO_ENDPOINT" env-default:"localhost:9000"`
	AccessKey  string        `yaml:"access_key" env:"MINIO_ACCESS_KEY"`
	SecretKey  string        `yaml:"secret_key" env:"MINIO_SECRET_KEY"`
	Bucket     string        `yaml:"bucket" env:"MINIO_BUCKET" env-default:"league"`
	Folder     string        `yaml:"folder" env:"MINIO_FOLDER" env-default:"cricket-club/players"`
	PublicURL  string        `yaml:"public_url" env:"MINIO_PUBLIC_URL"`
	UseSSL     bool          `yaml:"use_ssl" env:"MINIO_USE_SSL" env-default:"false"`
	PresignTTL time.Duration `yaml:"presign_ttl" env:"MINIO_PRESIGN_TTL" env-default:"15m"`
}

// Enabled reports whether blob storage credentials are present.
func (s Storage) Enabled() bool {
	return s.AccessKey != "" && s.SecretKey != ""
}

// AMQP configures settlement event publishing. An empty URL disables it.
type AMQP struct {
	URL      string `yaml:"url" env:"AMQP_URL"`
	Exchange string `yaml:"exchange" env:"AMQP_EXCHANGE" env-default:"league.payments"`
}

// Log configures the structured logger.
type Log struct {
	Level    string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	Encoding string `yaml:"encoding" env:"LOG_ENCODING" env-default:"json"`
}

// Load builds Config from CONFIG_PATH (if set) and the environment, then validates it.
func Load() (*Config, error) {
	var cfg Config

	var err error
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		err = cleanenv.ReadConfig(path, &cfg)
	} else {
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that must be present before the server starts.
// A missing gateway key is reported per request instead, so the rest of the
// portal keeps working without payments.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Auth.JWTSecret) == "" {
		return fmt.Errorf("config: JWT_SECRET is required")
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("config: JWT_TOKEN_TTL must be positive")
	}
	fee, err := decimal.NewFromString(c.Gateway.RegistrationFee)
	if err != nil || !fee.IsPositive() {
		return fmt.Errorf("config: REGISTRATION_FEE must be a positive amount, got %q", c.Gateway.RegistrationFee)
	}
	switch c.Log.Encoding {
	case "json", "console":
	default:
		return fmt.Errorf("config: LOG_ENCODING %q is not supported", c.Log.Encoding)
	}
	return nil
}

// IsProduction reports whether cookies must be marked secure.
func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

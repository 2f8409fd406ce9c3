package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Market    MarketConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Telemetry TelemetryConfig
	Events    EventsConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Retry-After"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

// MarketConfig holds the business windows evaluated lazily by the reconcilers.
type MarketConfig struct {
	Currency              string        `envconfig:"MARKET_CURRENCY" default:"EUR"`
	PaymentProvider       string        `envconfig:"PAYMENT_PROVIDER" default:"stripe"`
	ReservationHold       time.Duration `envconfig:"RESERVATION_HOLD" default:"24h"`
	ReservationMaxHold    time.Duration `envconfig:"RESERVATION_MAX_HOLD" default:"72h"`
	PaymentWindow         time.Duration `envconfig:"ORDER_PAYMENT_WINDOW" default:"1h"`
	HandoverWindow        time.Duration `envconfig:"HANDOVER_WINDOW" default:"48h"`
	ConfirmationWindow    time.Duration `envconfig:"CONFIRMATION_WINDOW" default:"48h"`
	ShippingGrace         time.Duration `envconfig:"SHIPPING_CONFIRMATION_GRACE" default:"72h"`
	PlatformFeeBps        int64         `envconfig:"PLATFORM_FEE_BPS" default:"500"`
	ProviderFeeBps        int64         `envconfig:"PROVIDER_FEE_BPS" default:"140"`
	ProviderFeeFixedCents int64         `envconfig:"PROVIDER_FEE_FIXED_CENTS" default:"25"`
	ShippingFlatCents     int64         `envconfig:"SHIPPING_FLAT_CENTS" default:"599"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type RateLimitConfig struct {
	Enabled bool   `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
	Backend string `envconfig:"RATE_LIMIT_BACKEND" default:"memory"` // memory | redis
	RPM     int    `envconfig:"RATE_LIMIT_RPM" default:"120"`
	Burst   int    `envconfig:"RATE_LIMIT_BURST" default:"20"`
}

type TelemetryConfig struct {
	Enabled      bool          `envconfig:"OTEL_ENABLED" default:"false"`
	ServiceName  string        `envconfig:"OTEL_SERVICE_NAME" default:"marketplace-core"`
	Environment  string        `envconfig:"OTEL_ENVIRONMENT" default:"development"`
	OTLPEndpoint string        `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT" default:"localhost:4317"`
	Insecure     bool          `envconfig:"OTEL_INSECURE" default:"true"`
	SampleRate   float64       `envconfig:"OTEL_SAMPLE_RATE" default:"1.0"`
	BatchTimeout time.Duration `envconfig:"OTEL_BATCH_TIMEOUT" default:"5s"`
}

type EventsConfig struct {
	Enabled bool   `envconfig:"EVENTS_ENABLED" default:"false"`
	Queue   string `envconfig:"EVENTS_QUEUE" default:"status"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	// .env is optional; real environment variables always win.
	_ = godotenv.Load()

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
			TimeZone: "UTC",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret-key-for-marketplace-core",
			Duration: "1h",
		},
		Market:    NewDefaultMarketConfig(),
		RateLimit: RateLimitConfig{Enabled: false, Backend: "memory", RPM: 600, Burst: 100},
	}
}

func NewDefaultMarketConfig() MarketConfig {
	return MarketConfig{
		Currency:              "EUR",
		PaymentProvider:       "stripe",
		ReservationHold:       24 * time.Hour,
		ReservationMaxHold:    72 * time.Hour,
		PaymentWindow:         time.Hour,
		HandoverWindow:        48 * time.Hour,
		ConfirmationWindow:    48 * time.Hour,
		ShippingGrace:         72 * time.Hour,
		PlatformFeeBps:        500,
		ProviderFeeBps:        140,
		ProviderFeeFixedCents: 25,
		ShippingFlatCents:     599,
	}
}

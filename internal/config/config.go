package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	AppOrders = "orders"
	AppBlog   = "blog"
)

type Config struct {
	App  string `validate:"required,oneof=orders blog"`
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Postgres Postgres `validate:"required"`

	Kafka Kafka

	// Only the section of the running app is populated.
	Orders *Orders `validate:"required_if=App orders"`
	Blog   *Blog   `validate:"required_if=App blog"`
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,numeric"`
}

type Kafka struct {
	Enabled bool
	GroupID string   `validate:"required_if=Enabled true"`
	Brokers []string `validate:"required_if=Enabled true,dive,hostname_port"`
	Topic   string   `validate:"required_if=Enabled true"`

	ReaderMaxWait time.Duration `validate:"gte=0"`
	BatchTimeout  time.Duration `validate:"gte=0"`
}

type Postgres struct {
	Host     string `validate:"required,hostname|ip"`
	Port     int    `validate:"required,gt=0,lte=65535"`
	DBName   string `validate:"required"`
	User     string `validate:"required"`
	Password string `validate:"required"`

	SSLMode string `validate:"required,oneof=disable require verify-ca verify-full"`

	MaxOpenConns    int           `validate:"gte=1"`
	MaxIdleConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

type Orders struct {
	// AdminPath is the unguessable path segment of the admin order listing.
	AdminPath string `validate:"required,alphanum"`
	// ShipAfter is how long an order stays Placed before the sweep marks it Shipped.
	ShipAfter time.Duration `validate:"gt=0"`
	// SweepInterval enables the periodic sweep when > 0.
	SweepInterval time.Duration `validate:"gte=0"`
}

type Blog struct {
	AdminSecretPath   string        `validate:"required,alphanum"`
	SessionMaxAge     time.Duration `validate:"gt=0"`
	PostCacheCapacity int           `validate:"gte=1"`
	PostCacheTTL      time.Duration `validate:"gt=0"`
}

func New(app string) Config {
	cfg := Config{
		App: app,
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "4131"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:4131"), ","),
		},

		Kafka: Kafka{
			Enabled: envBool("KAFKA_ENABLED", false),
			GroupID: env("KAFKA_GROUP_ID", "orders-intake"),
			Topic:   env("KAFKA_TOPIC", "orders"),
			Brokers: strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ","),

			ReaderMaxWait: envDuration("KAFKA_READER_MAX_WAIT", 10*time.Millisecond),
			BatchTimeout:  envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Postgres: Postgres{
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", app),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 5),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),
		},
	}

	switch app {
	case AppOrders:
		cfg.Orders = &Orders{
			AdminPath:     env("ORDERS_ADMIN_PATH", ""),
			ShipAfter:     envDuration("ORDERS_SHIP_AFTER", 5*time.Minute),
			SweepInterval: envDuration("ORDERS_SWEEP_INTERVAL", 0),
		}
	case AppBlog:
		cfg.Blog = &Blog{
			AdminSecretPath:   env("BLOG_ADMIN_SECRET_PATH", ""),
			SessionMaxAge:     envDuration("BLOG_SESSION_MAX_AGE", 15*time.Minute),
			PostCacheCapacity: envInt("BLOG_POST_CACHE_CAPACITY", 100),
			PostCacheTTL:      envDuration("BLOG_POST_CACHE_TTL", time.Minute),
		}
	}

	return cfg
}

func (c Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}

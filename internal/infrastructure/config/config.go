package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string        `env:"PORT,      default=8080"`
	Env       string        `env:"ENV,       default=development"`
	LogLevel  string        `env:"LOG_LEVEL, default=info"`
	JWTSecret string        `env:"JWT_SECRET"`
	JWTTTL    time.Duration `env:"JWT_TTL,   default=24h"`

	Mongo    MongoConfig
	Redis    RedisConfig
	SMTP     SMTPConfig
	Reminder ReminderConfig

	// NotifyWorkers is the number of async notification workers.
	NotifyWorkers int `env:"NOTIFY_WORKERS, default=4"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=rentapapa"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// SMTPConfig configures outbound mail. With an empty Host the service
// falls back to a log-only notifier.
type SMTPConfig struct {
	Host     string `env:"SMTP_HOST"`
	Port     string `env:"SMTP_PORT, default=587"`
	From     string `env:"SMTP_FROM, default=no-reply@rentapapa.cl"`
	Username string `env:"SMTP_USERNAME"`
	Password string `env:"SMTP_PASSWORD"`
}

type ReminderConfig struct {
	Enabled  bool          `env:"REMINDER_ENABLED,  default=true"`
	Interval time.Duration `env:"REMINDER_INTERVAL, default=1h"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/techcsc21/trade4u-sub008/pkg/postgresql"
	"github.com/techcsc21/trade4u-sub008/pkg/questdb"
)

// MustLoad loads the configuration from environment variables and .env file.
func MustLoad[T any](cfg T) {
	_ = godotenv.Load() // Load environment variables from .env file

	env.Must(cfg, env.Parse(cfg))
}

// Load loads the configuration from environment variables and .env file.
func Load[T any](cfg T) error {
	_ = godotenv.Load() // a missing .env file is not an error

	return env.Parse(cfg)
}

// Config holds the configuration for the trading core.
type Config struct {
	KafkaConfig  `envPrefix:"KAFKA_"`
	RedisConfig  `envPrefix:"REDIS_"`
	QuestDB      questdb.Config    `envPrefix:"QUESTDB_"`
	Postgres     postgresql.Config `envPrefix:"POSTGRES_"`
	EngineConfig `envPrefix:"ENGINE_"`
}

// KafkaConfig holds the configuration for the order intake consumer.
type KafkaConfig struct {
	Topic   string   `env:"TOPIC,required"`
	GroupID string   `env:"GROUP_ID" envDefault:"trading-core"`
	Brokers []string `env:"BROKER,required"`
}

// RedisConfig holds the configuration for the broadcast client.
type RedisConfig struct {
	Addrs    string `env:"ADDRESS,required"` // Comma-separated list of Redis addresses
	Password string `env:"PASSWORD" envDefault:""`
	Username string `env:"USERNAME" envDefault:""`
	DB       int    `env:"DB" envDefault:"0"`
}

// EngineConfig holds the matching engine tuning knobs.
type EngineConfig struct {
	// ResyncAfterFailures bounds the drift window between memory and the
	// store: after this many consecutive failed batch writes a self-heal
	// pass is scheduled.
	ResyncAfterFailures int `env:"RESYNC_AFTER_FAILURES" envDefault:"3"`

	// DefaultPrecision is assumed for a currency whose metadata lookup fails.
	DefaultPrecision int `env:"DEFAULT_PRECISION" envDefault:"8"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

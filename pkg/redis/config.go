package redis

import "time"

// Mode describes the Redis deployment topology.
type Mode string

const (
	// Standalone is a single-node Redis deployment.
	Standalone Mode = "standalone"
	// Cluster is a Redis cluster deployment.
	Cluster Mode = "cluster"
)

// Config holds the Redis client configuration.
type Config struct {
	Mode     Mode
	Addrs    []string
	Username string
	Password string
	DB       int

	ConnectTimeout  time.Duration
	PoolSize        int
	MinIdleConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	PoolTimeout     time.Duration

	MaxRetries          int
	MinRetryBackoff     time.Duration
	MaxRetryBackoff     time.Duration
	ReconnectMaxRetries int
}

// DefaultConfig returns a standalone configuration with sane pool defaults.
func DefaultConfig() *Config {
	return &Config{
		Mode:                Standalone,
		ConnectTimeout:      5 * time.Second,
		PoolSize:            10,
		MinIdleConns:        2,
		MaxIdleConns:        5,
		ConnMaxLifetime:     time.Hour,
		ConnMaxIdleTime:     30 * time.Minute,
		PoolTimeout:         5 * time.Second,
		MaxRetries:          3,
		MinRetryBackoff:     8 * time.Millisecond,
		MaxRetryBackoff:     512 * time.Millisecond,
		ReconnectMaxRetries: 10,
	}
}

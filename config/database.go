package config

import "time"

// DBConfig contains PostgreSQL database configuration.
type DBConfig struct {
	Host     string `env:"HOST"     envDefault:"localhost"`
	Port     int    `env:"PORT"     envDefault:"5432"`
	User     string `env:"USER"     envDefault:"marketplace"`
	Password string `env:"PASSWORD" envDefault:"marketplace"`
	Name     string `env:"NAME"     envDefault:"marketplace"`
	SSLMode  string `env:"SSL_MODE" envDefault:"disable"` // Use 'disable' for local dev, 'require' for production
	// RunMigrationsOnStart controls whether the application automatically applies migrations during startup.
	RunMigrationsOnStart bool `env:"RUN_MIGRATIONS_ON_START" envDefault:"true"`
}

// RedisConfig contains Redis configuration.
type RedisConfig struct {
	Addr     string `env:"ADDR"     envDefault:"localhost:6379"`
	Password string `env:"PASSWORD" envDefault:""`
	DB       int    `env:"DB"       envDefault:"0"`
}

// CacheConfig contains cache behavior configuration (Redis-backed).
type CacheConfig struct {
	// Enabled toggles the bid statistics cache; when off, stats are
	// recomputed on every discovery request.
	Enabled bool `env:"CACHE_ENABLED" envDefault:"true"`

	// BidStatsTTL is the TTL for memoized per-job bid statistics.
	BidStatsTTL time.Duration `env:"CACHE_BID_STATS_TTL" envDefault:"30s"`
}

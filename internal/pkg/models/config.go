package models

import "time"

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	NewRelic NewRelicConfig
	Logger   LoggerConfig
	Match    MatchConfig
	Session  SessionConfig
	Location LocationConfig
	Sweeper  SweeperConfig
	Stops    StopsConfig
	OSRM     OSRMConfig
	Limiter  RateLimitConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration.
// An empty URL disables cross-instance fanout.
type NATSConfig struct {
	URL string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// NewRelicConfig contains New Relic agent configuration
type NewRelicConfig struct {
	Enabled     bool
	LicenseKey  string
	AppName     string
	ForwardLogs bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

// MatchConfig contains matcher specific configuration
type MatchConfig struct {
	OriginRadiusM     float64       // origin proximity radius in meters
	PoolLimit         int           // candidate pool cap before scoring
	StopRadiusM       float64       // "same stop" radius in meters
	SameStopRecency   time.Duration // how recent a same-stop intent must be
	SameStopScore     float64       // fixed buddy score for same-stop candidates
	DefaultIntentTTL  time.Duration // intent lifetime when the request omits it
	MaxIntentLifetime time.Duration
}

// SessionConfig contains session coordinator configuration
type SessionConfig struct {
	DefaultMaxDurationMinutes int
	MinDurationMinutes        int
	MaxDurationMinutes        int
}

// LocationConfig contains live-location cache configuration
type LocationConfig struct {
	TTL time.Duration
}

// SweeperConfig contains auto-expiry sweeper configuration
type SweeperConfig struct {
	Interval time.Duration
}

// StopsConfig points at the transit stop catalog
type StopsConfig struct {
	FilePath string
}

// OSRMConfig contains walking-directions collaborator configuration
type OSRMConfig struct {
	BaseURL string
	Timeout time.Duration
}

// RateLimitConfig contains the per-user request limiter configuration
type RateLimitConfig struct {
	Enabled bool
	Limit   int
	Period  time.Duration
}

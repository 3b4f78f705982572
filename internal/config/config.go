package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Auth       AuthConfig       `yaml:"auth"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Pagination PaginationConfig `yaml:"pagination"`
	Storage    StorageConfig    `yaml:"storage"`
	Cache      CacheConfig      `yaml:"cache"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"true"`

	SlowQueryThreshold time.Duration `yaml:"slow_query_threshold" env:"DATABASE_SLOW_QUERY_THRESHOLD" env-default:"500ms"`
}

// AuthConfig holds access token settings.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"prier"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"1h"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-IP request limits for the REST API.
type RateLimitConfig struct {
	RequestsPerMinute int           `yaml:"requests_per_minute" env:"RATE_LIMIT_RPM"     env-default:"120"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"    env:"RATE_LIMIT_CLEANUP" env-default:"5m"`
}

// ScoringConfig controls comment scores and how a project's displayed score
// is derived from them.
type ScoringConfig struct {
	Strategy         string  `yaml:"strategy"           env:"SCORING_STRATEGY"           env-default:"mean"`
	MinScore         float64 `yaml:"min_score"          env:"SCORING_MIN_SCORE"          env-default:"0"`
	MaxScore         float64 `yaml:"max_score"          env:"SCORING_MAX_SCORE"          env-default:"5"`
	MaxContentLength int     `yaml:"max_content_length" env:"SCORING_MAX_CONTENT_LENGTH" env-default:"1000"`
	RebuildOnStart   bool    `yaml:"rebuild_on_start"   env:"SCORING_REBUILD_ON_START"   env-default:"false"`
}

// PaginationConfig holds page sizes for project listings.
type PaginationConfig struct {
	SearchPageSize int `yaml:"search_page_size" env:"PAGINATION_SEARCH_SIZE"  env-default:"8"`
	UserPageSize   int `yaml:"user_page_size"   env:"PAGINATION_USER_SIZE"    env-default:"5"`
	MaxExtendWeeks int `yaml:"max_extend_weeks" env:"PAGINATION_EXTEND_WEEKS" env-default:"4"`
}

// StorageConfig holds object storage settings for user media.
type StorageConfig struct {
	Bucket         string        `yaml:"bucket"           env:"STORAGE_BUCKET"`
	CDNDomain      string        `yaml:"cdn_domain"       env:"STORAGE_CDN_DOMAIN"`
	PublicBaseURL  string        `yaml:"public_base_url"  env:"STORAGE_PUBLIC_BASE_URL"`
	SignedURLs     bool          `yaml:"signed_urls"      env:"STORAGE_SIGNED_URLS"      env-default:"false"`
	GoogleAccessID string        `yaml:"google_access_id" env:"STORAGE_GOOGLE_ACCESS_ID"`
	PrivateKey     string        `yaml:"private_key"      env:"STORAGE_PRIVATE_KEY"`
	SignedURLTTL   time.Duration `yaml:"signed_url_ttl"   env:"STORAGE_SIGNED_URL_TTL"   env-default:"15m"`
	DefaultAvatar  string        `yaml:"default_avatar"   env:"STORAGE_DEFAULT_AVATAR"`
}

// CacheConfig holds Redis settings for the profile cache.
// An empty Addr disables caching.
type CacheConfig struct {
	Addr       string        `yaml:"addr"        env:"CACHE_REDIS_ADDR"`
	Password   string        `yaml:"password"    env:"CACHE_REDIS_PASSWORD"`
	DB         int           `yaml:"db"          env:"CACHE_REDIS_DB"       env-default:"0"`
	ProfileTTL time.Duration `yaml:"profile_ttl" env:"CACHE_PROFILE_TTL"    env-default:"10m"`
}

// Enabled reports whether a Redis address is configured.
func (c CacheConfig) Enabled() bool { return c.Addr != "" }

package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port        string        `env:"PORT,        default=8080"`
	Env         string        `env:"ENV,         default=development"`
	JWTSecret   string        `env:"JWT_SECRET"`
	JWTTTL      time.Duration `env:"JWT_TTL,     default=30m"`
	LogLevel    string        `env:"LOG_LEVEL,   default=info"`
	CORSOrigins []string      `env:"CORS_ORIGINS, default=*"`

	Mongo     MongoConfig
	Redis     RedisConfig
	Limits    LimitsConfig
	GeoServer GeoServerConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=cartowiki"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// LimitsConfig mirrors the column restrictions of the credential store.
type LimitsConfig struct {
	UsernameMaxLength int `env:"USERNAME_MAX_LENGTH, default=32"`
	EmailMaxLength    int `env:"EMAIL_MAX_LENGTH,    default=128"`
}

type GeoServerConfig struct {
	URL       string        `env:"GEOSERVER_URL,       default=http://localhost:8081/geoserver"`
	Workspace string        `env:"GEOSERVER_WORKSPACE, default=cartowiki"`
	CacheTTL  time.Duration `env:"GEO_CACHE_TTL,       default=1h"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

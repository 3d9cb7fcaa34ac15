package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port           string   `env:"PORT,            default=5000"`
	Env            string   `env:"ENV,             default=development"`
	JWTSecret      string   `env:"ACCESS_TOKEN_SECRET"`
	LogLevel       string   `env:"LOG_LEVEL,       default=info"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS, default=http://localhost:3000"`
	StaticDir      string   `env:"STATIC_DIR,      default=public"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=synchome"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

// Production reports whether the service runs with the production cookie
// and CORS policy.
func (c *Config) Production() bool {
	return c.Env == "production"
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

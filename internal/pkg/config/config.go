package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port       string `env:"PORT,        default=8080"`
	Env        string `env:"ENV,         default=development"`
	JWTSecret  string `env:"JWT_SECRET"`
	TokenTTL   string `env:"TOKEN_TTL,   default=1d"`
	LogLevel   string `env:"LOG_LEVEL,   default=info"`
	BcryptCost int    `env:"BCRYPT_COST, default=10"`

	Bootstrap BootstrapConfig
	Mongo     MongoConfig
	Redis     RedisConfig
	Activity  ActivityConfig
}

// BootstrapConfig seeds the initial super admin account. When the email or
// password is empty the bootstrap step is skipped.
type BootstrapConfig struct {
	AdminName     string `env:"BOOTSTRAP_ADMIN_NAME, default=Super Admin"`
	AdminEmail    string `env:"BOOTSTRAP_ADMIN_EMAIL"`
	AdminPassword string `env:"BOOTSTRAP_ADMIN_PASSWORD"`
}

// MongoConfig points at a replica set; transactions need one even in
// local development.
type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017/?replicaSet=rs0"`
	Database string `env:"MONGO_DB,  default=backoffice"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

// ActivityConfig tunes the audit trail pipeline.
type ActivityConfig struct {
	Workers int    `env:"ACTIVITY_WORKERS,       default=4"`
	Stream  string `env:"ACTIVITY_STREAM,        default=activity"`
	MaxLen  int64  `env:"ACTIVITY_STREAM_MAXLEN, default=100000"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

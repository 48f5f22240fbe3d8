package config

import (
	"flag"
	"time"

	"github.com/caarlos0/env/v6"
)

const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

type Config struct {
	Address         string        `env:"RUN_ADDRESS"              envDefault:"localhost:8080"`
	Database        string        `env:"DATABASE_URI"`
	LogLvl          string        `env:"LOG_LVL"                  envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT"               envDefault:"console"`
	SessionStore    string        `env:"SESSION_STORE"            envDefault:"memory"`
	RedisAddr       string        `env:"REDIS_ADDR"               envDefault:"localhost:6379"`
	SessionSecret   string        `env:"SESSION_SECRET"           envDefault:"atm-secret-key"`
	SessionTTL      time.Duration `env:"SESSION_TTL"              envDefault:"120s"`
	CleanupInterval time.Duration `env:"SESSION_CLEANUP_INTERVAL" envDefault:"1h"`
	CookieSecure    bool          `env:"COOKIE_SECURE"            envDefault:"false"`
	SeedDemo        bool          `env:"SEED_DEMO"                envDefault:"true"`
}

func New() *Config {
	cfg := &Config{}

	env.Parse(cfg)

	flag.StringVar(&cfg.Address, "a", cfg.Address, "address and port to run server")
	flag.StringVar(&cfg.Database, "d", cfg.Database, "database DSN, in-memory storage when empty")
	flag.StringVar(&cfg.LogLvl, "l", cfg.LogLvl, "log level")
	flag.StringVar(&cfg.SessionStore, "s", cfg.SessionStore, "session store: memory or redis")
	flag.DurationVar(&cfg.SessionTTL, "t", cfg.SessionTTL, "session inactivity window")
	flag.Parse()

	if cfg.SessionStore != SessionStoreRedis {
		cfg.SessionStore = SessionStoreMemory
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 120 * time.Second
	}

	return cfg
}

// UsesDatabase reports whether the ledger is backed by Postgres.
func (c *Config) UsesDatabase() bool {
	return c.Database != ""
}

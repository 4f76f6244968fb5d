package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv         string
	DataDir        string
	OpsAddr        string
	MySQLDSN       string
	RedisAddr      string
	RedisDB        int
	RedisPass      string
	CacheTTL       time.Duration
	SeedRate       int
	MigrateWorkers int
}

func Load() Config {
	// .env is a convenience for local runs; absence is normal.
	_ = godotenv.Load()

	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:         env("APP_ENV", "prod"),
		DataDir:        env("DATA_DIR", "."),
		OpsAddr:        env("OPS_ADDR", ""),
		MySQLDSN:       env("MYSQL_DSN", ""),
		RedisAddr:      env("REDIS_ADDR", ""),
		RedisDB:        atoi("REDIS_DB", 0),
		RedisPass:      env("REDIS_PASSWORD", ""),
		CacheTTL:       time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,
		SeedRate:       atoi("SEED_RATE", 50),
		MigrateWorkers: atoi("MIGRATE_WORKERS", 3),
	}
	if st, err := os.Stat(c.DataDir); err != nil || !st.IsDir() {
		log.Warn().Str("dir", c.DataDir).Msg("DATA_DIR is not an existing directory")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

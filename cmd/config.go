package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	LockModeRedis = "redis"
	LockModeLocal = "local"
)

type Config struct {
	HTTPPort        string        `env:"HTTP_PORT" envDefault:"8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`

	DBDriver         string        `env:"DB_DRIVER" envDefault:"postgres"`
	DBHost           string        `env:"DB_HOST" envDefault:"localhost"`
	DBPort           string        `env:"DB_PORT" envDefault:"5432"`
	DBUser           string        `env:"DB_USER" envDefault:"laundry"`
	DBPassword       string        `env:"DB_PASSWORD"`
	DBName           string        `env:"DB_NAME" envDefault:"laundry"`
	DBSslMode        string        `env:"DB_SSLMODE" envDefault:"disable"`
	DBDSN            string        `env:"DB_DSN"`
	DBConnectTimeout time.Duration `env:"DB_CONNECT_TIMEOUT" envDefault:"30s"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	LockMode string        `env:"LOCK_MODE" envDefault:"redis"`
	LockTTL  time.Duration `env:"LOCK_TTL" envDefault:"30s"`
	LockWait time.Duration `env:"LOCK_WAIT" envDefault:"5s"`

	QueueRedisAddr    string `env:"QUEUE_REDIS_ADDR"`
	WorkerConcurrency int    `env:"WORKER_CONCURRENCY" envDefault:"10"`

	KafkaBrokers           []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaOrderChangedTopic string   `env:"KAFKA_ORDER_CHANGED_TOPIC" envDefault:"laundry.order-changed"`

	JWTSecret string `env:"JWT_SECRET"`

	LogMode string `env:"LOG_MODE" envDefault:"release"`
	LogDir  string `env:"LOG_DIR" envDefault:"logs"`

	ReconcileSchedule string        `env:"RECONCILE_SCHEDULE" envDefault:"0 * * * * *"`
	SideEffectTimeout time.Duration `env:"SIDE_EFFECT_TIMEOUT" envDefault:"5s"`
}

// LoadConfig reads an optional .env file and then the process environment.
// Variables already set in the environment win over the file.
func LoadConfig(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var problems []error
	switch c.DBDriver {
	case DriverPostgres:
	case DriverSQLite:
		if c.DBDSN == "" {
			problems = append(problems, errors.New("DB_DSN must name the sqlite file when DB_DRIVER=sqlite"))
		}
	default:
		problems = append(problems, fmt.Errorf("DB_DRIVER %q is not one of postgres, sqlite", c.DBDriver))
	}
	switch c.LockMode {
	case LockModeRedis, LockModeLocal:
	default:
		problems = append(problems, fmt.Errorf("LOCK_MODE %q is not one of redis, local", c.LockMode))
	}
	if c.LockTTL <= 0 {
		problems = append(problems, errors.New("LOCK_TTL must be positive"))
	}
	return errors.Join(problems...)
}

// PostgresDSN prefers DB_DSN and otherwise builds a URL from the DB_* parts.
func (c Config) PostgresDSN() string {
	if c.DBDSN != "" {
		return c.DBDSN
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     c.DBHost + ":" + c.DBPort,
		Path:     c.DBName,
		RawQuery: url.Values{"sslmode": {c.DBSslMode}}.Encode(),
	}
	return u.String()
}

// QueueConnOpt points asynq at QUEUE_REDIS_ADDR, or at REDIS_ADDR when the
// queue shares the lock Redis.
func (c Config) QueueConnOpt() asynq.RedisClientOpt {
	addr := c.QueueRedisAddr
	if addr == "" {
		addr = c.RedisAddr
	}
	return asynq.RedisClientOpt{Addr: addr, Password: c.RedisPassword, DB: c.RedisDB}
}

func (c Config) Addr() string {
	return "0.0.0.0:" + c.HTTPPort
}

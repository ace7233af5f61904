package config

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

type Config struct {
	Port string

	StorageDriver    string
	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string

	// RedisAddress switches account locking to redis when set.
	RedisAddress  string
	RedisPassword string
	LockExpiry    time.Duration

	OperatorWorkers int
	LogLevel        logrus.Level
}

func ProcessEnvironmentVariables() (*Config, error) {
	v := viper.New()

	// In all cases the default behavior should be for the docker compose setup
	v.SetDefault("PORT", "9446")
	v.SetDefault("STORAGE_DRIVER", StorageDriverPostgres)
	v.SetDefault("POSTGRES_ADDRESS", "localhost")
	v.SetDefault("POSTGRES_PORT", "5433")
	v.SetDefault("POSTGRES_DB", "postgres")
	v.SetDefault("POSTGRES_USERNAME", "postgres")
	v.SetDefault("POSTGRES_PASSWORD", "testpassword")
	v.SetDefault("REDIS_ADDRESS", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("LOCK_EXPIRY", "10s")
	v.SetDefault("OPERATOR_WORKERS", 4)
	v.SetDefault("LOG_LEVEL", "info")
	v.AutomaticEnv()

	env := Config{
		Port:             v.GetString("PORT"),
		StorageDriver:    v.GetString("STORAGE_DRIVER"),
		PostgresAddress:  v.GetString("POSTGRES_ADDRESS"),
		PostgresPort:     v.GetString("POSTGRES_PORT"),
		PostgresDB:       v.GetString("POSTGRES_DB"),
		PostgresUsername: v.GetString("POSTGRES_USERNAME"),
		PostgresPassword: v.GetString("POSTGRES_PASSWORD"),
		RedisAddress:     v.GetString("REDIS_ADDRESS"),
		RedisPassword:    v.GetString("REDIS_PASSWORD"),
		LockExpiry:       v.GetDuration("LOCK_EXPIRY"),
		OperatorWorkers:  v.GetInt("OPERATOR_WORKERS"),
	}

	switch env.StorageDriver {
	case StorageDriverPostgres, StorageDriverMemory:
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q", env.StorageDriver)
	}

	if env.OperatorWorkers < 1 {
		return nil, fmt.Errorf("OPERATOR_WORKERS must be at least 1, got %d", env.OperatorWorkers)
	}

	if env.LockExpiry <= 0 {
		return nil, fmt.Errorf("LOCK_EXPIRY must be positive, got %q", v.GetString("LOCK_EXPIRY"))
	}

	level, err := logrus.ParseLevel(v.GetString("LOG_LEVEL"))
	if err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	env.LogLevel = level

	return &env, nil
}

// PostgresURL is the connection string shared by the server and the migration script.
func (c *Config) PostgresURL() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.PostgresUsername,
		c.PostgresPassword,
		c.PostgresAddress,
		c.PostgresPort,
		c.PostgresDB,
	)
}

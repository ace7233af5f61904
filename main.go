package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/pix-ledger/api"
	"github.com/carson-networks/pix-ledger/internal/config"
	"github.com/carson-networks/pix-ledger/internal/lock"
	"github.com/carson-networks/pix-ledger/internal/logging"
	"github.com/carson-networks/pix-ledger/internal/operator"
	"github.com/carson-networks/pix-ledger/internal/service"
	"github.com/carson-networks/pix-ledger/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logger.Info("pix-ledger starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logger.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}
	logger.SetLevel(envConfig.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbStorage, err := storage.Open(ctx, envConfig)
	if err != nil {
		logger.WithError(err).Fatal("storage.Open")
		return
	}
	defer dbStorage.Close()

	locker := newLocker(envConfig, logger)

	delegator := operator.NewOperatorDelegator(dbStorage, locker, logger, envConfig.OperatorWorkers)
	delegator.Start()
	defer delegator.Stop()

	httpRest := api.Rest{
		Logger:   logger,
		Port:     envConfig.Port,
		Operator: delegator,
		Service:  service.NewService(dbStorage),
	}
	if err := httpRest.Serve(ctx); err != nil {
		logger.WithError(err).Error("HttpServer.Serve")
	}
}

func newLocker(env *config.Config, logger *logrus.Logger) lock.Locker {
	if env.RedisAddress == "" {
		logger.Info("lock.NewLocalLocker")
		return lock.NewLocalLocker()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     env.RedisAddress,
		Password: env.RedisPassword,
	})
	logger.WithField("redisAddress", env.RedisAddress).Info("lock.NewRedisLocker")
	return lock.NewRedisLocker(client, lock.DefaultRedisOptions(env.LockExpiry), logger)
}

package main

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger-server/api"
	"github.com/carson-networks/ledger-server/internal/config"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/service"
	"github.com/carson-networks/ledger-server/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("counter-server starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	dbStorage := storage.NewStorage(envConfig)
	dbStorage.WaitReady(logger)

	if err := storage.Migrate(dbStorage.DB, "counter"); err != nil {
		logrus.WithError(err).Fatal("storage.Migrate")
		return
	}

	svc := service.NewCounterService(dbStorage)

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		httpRest := api.CounterRest{
			Logger:  logger,
			Port:    envConfig.Port,
			Service: svc,
		}
		httpRest.Serve()
	}()

	wg.Wait()
}

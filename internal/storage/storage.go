package storage

import (
	"database/sql"
	"log"
	"time"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger-server/internal/config"
	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
)

type Storage struct {
	DB           *sql.DB
	Transactions sqlconfig.ITransactionTable
	Counter      sqlconfig.ICounterTable
}

func NewStorage(env *config.Config) *Storage {
	db, err := sql.Open("postgres", env.ConnectionString())
	if err != nil {
		log.Fatal(err)
	}

	return &Storage{
		DB:           db,
		Transactions: sqlconfig.NewTransactionsTable(db),
		Counter:      sqlconfig.NewCounterTable(db),
	}
}

// WaitReady blocks until the database answers a ping, retrying every
// config.ReconnectInterval. Requests arriving before it returns fail rather
// than queue.
func (s *Storage) WaitReady(logger *logrus.Logger) {
	for {
		err := s.DB.Ping()
		if err == nil {
			logger.Info("Storage.WaitReady.connected")
			return
		}

		logger.WithError(err).Warn("Storage.WaitReady.retrying")
		time.Sleep(config.ReconnectInterval)
	}
}

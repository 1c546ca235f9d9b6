package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger-server/internal/handlers/status"
	"github.com/carson-networks/ledger-server/internal/handlers/transaction"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/service"
)

// LedgerRest serves the transaction ledger API.
type LedgerRest struct {
	Logger  *logrus.Logger
	Port    string
	Service *service.LedgerService
}

func (r *LedgerRest) Serve() {
	UseErrorModel()

	mux := http.NewServeMux()
	humaAPI := humago.New(mux, newConfig("Ledger API", "1.0.0"))

	status.NewHandler().Register(humaAPI)
	transaction.NewListTransactionsHandler(r.Service).Register(humaAPI)
	transaction.NewListByDateHandler(r.Service).Register(humaAPI)
	transaction.NewMonthlyAggregatesHandler(r.Service).Register(humaAPI)
	transaction.NewSummaryHandler(r.Service).Register(humaAPI)
	transaction.NewCreateTransactionHandler(r.Service).Register(humaAPI)
	transaction.NewUpdateTransactionHandler(r.Service).Register(humaAPI)
	transaction.NewDeleteTransactionHandler(r.Service).Register(humaAPI)

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           CORS(logging.RequestLogger(r.Logger, mux)),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}

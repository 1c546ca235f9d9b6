package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger-server/internal/handlers/counter"
	"github.com/carson-networks/ledger-server/internal/handlers/status"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/service"
)

// CounterRest serves the shared counter API.
type CounterRest struct {
	Logger  *logrus.Logger
	Port    string
	Service *service.CounterService
}

func (r *CounterRest) Serve() {
	UseErrorModel()

	mux := http.NewServeMux()
	humaAPI := humago.New(mux, newConfig("Counter API", "1.0.0"))

	status.NewHandler().Register(humaAPI)
	counter.NewHandler(r.Service).Register(humaAPI)

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

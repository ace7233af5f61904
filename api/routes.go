package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/pix-ledger/internal/handlers/v1/account"
	"github.com/carson-networks/pix-ledger/internal/handlers/v1/operation"
	"github.com/carson-networks/pix-ledger/internal/handlers/v1/person"
	"github.com/carson-networks/pix-ledger/internal/handlers/v1/status"
	"github.com/carson-networks/pix-ledger/internal/logging"
	"github.com/carson-networks/pix-ledger/internal/operator"
	"github.com/carson-networks/pix-ledger/internal/service"
)

type Rest struct {
	Logger   *logrus.Logger
	Port     string
	Operator *operator.OperatorDelegator
	Service  *service.Service
}

// Handler builds the router with every route registered.
func (r *Rest) Handler() http.Handler {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler()
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	api := humago.New(mux, huma.DefaultConfig("Pix Ledger", "1.0.0"))
	api.UseMiddleware(logging.Middleware(r.Logger))

	person.NewCreatePersonHandler(r.Operator).Register(api)
	person.NewGetPersonHandler(r.Service.Person).Register(api)
	account.NewCreateAccountHandler(r.Operator).Register(api)
	account.NewGetAccountHandler(r.Service.Account).Register(api)
	account.NewListAccountsHandler(r.Service.Account).Register(api)
	operation.NewDepositHandler(r.Operator).Register(api)
	operation.NewWithdrawalHandler(r.Operator).Register(api)
	operation.NewPixHandler(r.Operator).Register(api)

	return mux
}

// Serve listens until ctx is cancelled, then drains in-flight requests.
func (r *Rest) Serve(ctx context.Context) error {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Handler(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	shutdownErr := make(chan error, 1)
	go func() {
		<-ctx.Done()
		r.Logger.Info("HttpServer.Serve.shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		shutdownErr <- server.Shutdown(shutdownCtx)
	}()

	r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
		return err
	}

	return <-shutdownErr
}

package rest

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/oldmonad/ec2Inventory/internal/app"
	cerrors "github.com/oldmonad/ec2Inventory/pkg/errors"
	"github.com/oldmonad/ec2Inventory/pkg/logger"
	"github.com/oldmonad/ec2Inventory/pkg/ports/rest/handlers"
	"github.com/oldmonad/ec2Inventory/pkg/utils/validator"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

// Server starts the HTTP listener and blocks until it stops.
type Server interface {
	Start(port string) error
}

type HTTPServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

type standardHTTPServer struct {
	*http.Server
}

func (s *standardHTTPServer) ListenAndServe() error {
	return s.Server.ListenAndServe()
}

func (s *standardHTTPServer) Shutdown(ctx context.Context) error {
	return s.Server.Shutdown(ctx)
}

var NewHTTPServer = func(addr string, handler http.Handler) HTTPServer {
	return &standardHTTPServer{
		Server: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

type APIServer struct {
	app       app.AppRunner
	validator validator.Validator
}

func NewServer(app app.AppRunner, validator validator.Validator) *APIServer {
	return &APIServer{app: app, validator: validator}
}

// Routes returns the handler serving /instances and /healthz.
func (s *APIServer) Routes() http.Handler {
	inventory := handlers.NewInventoryHandler(s.app, s.validator)

	mux := http.NewServeMux()
	mux.HandleFunc("/instances", inventory.HandleInstances)
	mux.HandleFunc("/healthz", handlers.HandleHealth)
	return mux
}

// Start serves on the given port until SIGINT or SIGTERM, then shuts down
// gracefully.
func (s *APIServer) Start(port string) error {
	addr := ":" + port
	server := NewHTTPServer(addr, s.Routes())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Log.Info("Starting HTTP server", zap.String("addr", addr))

	errChan := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- cerrors.NewErrServerListen(addr, err)
		}
	}()

	select {
	case err := <-errChan:
		logger.Log.Error("HTTP server failed", zap.Error(err))
		return err
	case <-ctx.Done():
		logger.Log.Info("Received shutdown signal, stopping server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Log.Error("Server shutdown failed", zap.Error(err))
			return cerrors.NewErrServerShutdown(err)
		}

		logger.Log.Info("Server stopped successfully")
		return nil
	}
}

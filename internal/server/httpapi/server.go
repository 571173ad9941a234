package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/jobintake/internal/logging"
)

// Server runs the JSON API over plain HTTP and shuts down gracefully when
// the context is cancelled.
type Server struct {
	address  string
	handlers *Handlers
	logger   logging.Logger
}

func NewServer(address string, handlers *Handlers, logger logging.Logger) *Server {
	return &Server{
		address:  address,
		handlers: handlers,
		logger:   logger.With("module", "http_server"),
	}
}

func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: NewRouter(s.handlers),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "err", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

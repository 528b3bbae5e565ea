package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"
)

const shutdownTimeout = 30 * time.Second

func (app *application) newServer(addr string) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      app.routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelError),
	}
}

// serve runs the blog API on addr until SIGINT or SIGTERM, then drains
// in-flight requests for up to shutdownTimeout.
func (app *application) serve(addr string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return app.run(ctx, app.newServer(addr))
}

func (app *application) run(ctx context.Context, srv *http.Server) error {
	listenErr := make(chan error, 1)

	go func() {
		app.logger.Info("starting server", slog.String("addr", srv.Addr), slog.String("env", app.config.Environment), slog.String("database", app.store.DSN().Driver))

		var err error
		if app.config.Environment == "production" {
			err = srv.ListenAndServeTLS(app.config.TLSCertFile, app.config.TLSKeyFile)
		} else {
			err = srv.ListenAndServe()
		}
		listenErr <- err
	}()

	select {
	case err := <-listenErr:
		return err
	case <-ctx.Done():
	}

	app.logger.Info("shutting down server", slog.String("addr", srv.Addr))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if err := <-listenErr; !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	app.logger.Info("stopped server", slog.String("addr", srv.Addr))

	return nil
}

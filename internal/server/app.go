// Package server runs the demo collection API: an in-memory /users resource
// the console can talk to instead of the public demo service.
package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrijs2005/userconsole/internal/logging"
	"github.com/dmitrijs2005/userconsole/internal/netx"
	"github.com/dmitrijs2005/userconsole/internal/server/config"
	"github.com/dmitrijs2005/userconsole/internal/server/httpapi"
	"github.com/dmitrijs2005/userconsole/internal/server/users"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	handler http.Handler
}

func NewApp(c *config.Config) (*App, error) {
	logger, err := logging.New(c.LogLevel, os.Stderr)
	if err != nil {
		return nil, err
	}
	return newApp(c, logger)
}

func newApp(c *config.Config, logger logging.Logger) (*App, error) {
	seed := users.DefaultSeed()
	if c.SeedFile != "" {
		var err error
		if seed, err = users.LoadSeedFile(c.SeedFile); err != nil {
			return nil, fmt.Errorf("seed init error: %w", err)
		}
	}

	svc := users.NewService(users.NewMemoryRepository())
	if err := svc.Seed(context.Background(), seed); err != nil {
		return nil, fmt.Errorf("seed init error: %w", err)
	}

	h := httpapi.NewHandler(svc, logger)
	return &App{config: c, logger: logger, handler: h.Router()}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) server() *http.Server {
	return &http.Server{
		Handler:      app.handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// Run serves until SIGINT/SIGTERM or until ctx is cancelled.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()
	app.initSignalHandler(cancelFunc)

	ln, err := net.Listen("tcp", app.config.ListenAddr)
	if err != nil {
		return err
	}
	return app.serve(ctx, ln)
}

func (app *App) serve(ctx context.Context, ln net.Listener) error {
	app.logger.Info(ctx, "Starting demo API...", "addr", ln.Addr().String())
	err := netx.Serve(ctx, app.server(), ln)
	app.logger.Info(ctx, "demo API stopped")
	return err
}

// Package gateway wires the HTTP gateway together: configuration, the gRPC
// delegate client, the HTTP API, and graceful shutdown on OS signals. A
// gateway that cannot reach the authentication service still starts; it
// answers 503 until the service recovers.
package gateway

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/mkuznetsov/ssocore/internal/common"
	"github.com/mkuznetsov/ssocore/internal/gateway/client"
	"github.com/mkuznetsov/ssocore/internal/gateway/config"
	"github.com/mkuznetsov/ssocore/internal/gateway/httpapi"
	"github.com/mkuznetsov/ssocore/internal/logging"
	"github.com/mkuznetsov/ssocore/internal/obs"
	"github.com/mkuznetsov/ssocore/internal/server/auth"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	config *config.Config
	logger logging.Logger
	client client.Client
	api    *httpapi.API
}

func NewApp(cfg *config.Config) *App {

	logger := logging.NewJSONLogger()

	c := client.NewGRPCClient(cfg.AuthEndpointAddr, logger)

	// verify-only: the gateway never mints tokens, so the TTLs are unused
	tokens := auth.NewTokenService([]byte(cfg.SecretKey), 0, 0)

	api := httpapi.NewAPI(c, tokens, cfg.AppID, logger)

	return &App{config: cfg, logger: logger, client: c, api: api}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	srv := &http.Server{
		Addr:    app.config.EndpointAddrHTTP,
		Handler: app.api.Router(),
	}

	go func() {
		<-ctx.Done()
		app.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			app.logger.Error(ctx, "shutdown error", "error", err)
		}
	}()

	app.logger.Info(ctx, "Starting HTTP server", "address", app.config.EndpointAddrHTTP)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	obs.Init()

	app.initSignalHandler(cancelFunc)

	if err := app.client.WaitReady(ctx); err != nil {
		if !errors.Is(err, common.ErrorUnavailable) {
			app.logger.Error(ctx, "delegate client init error", "error", err)
			cancelFunc()
			if err := app.client.Close(); err != nil {
				app.logger.Error(ctx, "client close error", "error", err)
			}
			return
		}
		// degraded start: requests fail with 503 until the service comes up
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.client.Close(); err != nil {
		app.logger.Error(ctx, "client close error", "error", err)
	}
}

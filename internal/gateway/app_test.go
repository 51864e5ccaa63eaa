package gateway

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mkuznetsov/ssocore/internal/gateway/client"
	"github.com/mkuznetsov/ssocore/internal/gateway/config"
	"github.com/mkuznetsov/ssocore/internal/gateway/httpapi"
	"github.com/mkuznetsov/ssocore/internal/logging"
	"github.com/mkuznetsov/ssocore/internal/server/auth"
)

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

// fakeDelegate is a minimal client.Client for lifecycle tests.
type fakeDelegate struct {
	client.Client

	waitErr error
	closed  bool
}

func (f *fakeDelegate) Connect() error { return nil }

func (f *fakeDelegate) Close() error {
	f.closed = true
	return nil
}

func (f *fakeDelegate) WaitReady(ctx context.Context) error {
	return f.waitErr
}

func TestRun_ClosesClientWhenInitFails(t *testing.T) {
	cfg := &config.Config{
		EndpointAddrHTTP: "127.0.0.1:0",
		AuthEndpointAddr: "127.0.0.1:50051",
		SecretKey:        "secretKey",
		AppID:            "gateway",
	}

	f := &fakeDelegate{waitErr: context.Canceled}
	tokens := auth.NewTokenService([]byte(cfg.SecretKey), 0, 0)

	app := &App{
		config: cfg,
		logger: nopLogger{},
		client: f,
		api:    httpapi.NewAPI(f, tokens, cfg.AppID, nopLogger{}),
	}

	done := make(chan struct{})
	go func() {
		app.Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after a fatal init error")
	}

	assert.True(t, f.closed)
}

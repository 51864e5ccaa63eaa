// Package httpapi is the gateway's HTTP surface. It translates JSON requests
// into delegate calls against the remote authentication service and maps the
// shared error taxonomy onto HTTP statuses. The gateway verifies bearer
// tokens locally; it shares the signing secret with the remote service.
package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mkuznetsov/ssocore/internal/gateway/client"
	"github.com/mkuznetsov/ssocore/internal/logging"
	"github.com/mkuznetsov/ssocore/internal/obs"
	"github.com/mkuznetsov/ssocore/internal/server/auth"
)

type API struct {
	auth   client.Client
	tokens *auth.TokenService
	appID  string
	logger logging.Logger
}

func NewAPI(c client.Client, tokens *auth.TokenService, appID string, logger logging.Logger) *API {
	return &API{
		auth:   c,
		tokens: tokens,
		appID:  appID,
		logger: logger.With("module", "httpapi"),
	}
}

func (a *API) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(obs.Instrument)

	r.Get("/ping", a.ping)
	r.Handle("/metrics", obs.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", a.register)
		r.Post("/auth/login", a.login)
		r.Post("/auth/refresh", a.refresh)

		r.Group(func(r chi.Router) {
			r.Use(a.requireAuth)
			r.Post("/auth/password", a.updatePassword)
			r.Get("/users/{id}", a.userInfo)
			r.Delete("/users/{id}", a.removeUser)
		})
	})

	return r
}

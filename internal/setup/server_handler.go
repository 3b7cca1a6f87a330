package setup

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/bornholm/rentor/internal/authn"
	"github.com/bornholm/rentor/internal/authn/token"
	"github.com/bornholm/rentor/internal/config"
	"github.com/bornholm/rentor/internal/debug"
	"github.com/bornholm/rentor/internal/ratelimit"
	"github.com/bornholm/rentor/internal/site"
	"github.com/pkg/errors"

	sloghttp "github.com/samber/slog-http"
)

func NewHandlerFromConfig(ctx context.Context, conf *config.Config) (http.Handler, error) {
	mux := &http.ServeMux{}

	slogMiddleware := sloghttp.New(slog.Default())

	sessionStore, err := NewSessionStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	loader, err := NewLoaderFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	layout, err := NewLayoutFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	m, err := NewMetricsFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	rateLimiter := ratelimit.New(5, 10)

	siteHandler := site.NewHandler(
		loader,
		layout,
		sessionStore,
		site.WithSessionName(string(conf.HTTP.Session.Name)),
		site.WithTokenCookie(string(conf.Auth.Cookie)),
		site.WithPublicDir(string(conf.HTTP.PublicDir)),
		site.WithRecorder(m.Collector),
		site.WithToggleMiddleware(rateLimiter.Middleware(ratelimit.RemoteIP)),
	)

	siteAuth := authn.Chain(
		authn.WithAuthenticators(
			token.NewAuthenticator(string(conf.Auth.Cookie)),
		),
	)

	if conf.HTTP.Debug {
		mux.Handle("/debug/", slogMiddleware(debug.NewHandler("/debug", m.Registry)))
	}

	mux.Handle("/", siteAuth(slogMiddleware(siteHandler)))

	return mux, nil
}

package setup

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/bornholm/rentor/internal/config"
	"github.com/bornholm/rentor/internal/metrics"
	"github.com/bornholm/rentor/internal/rentor"
	"github.com/bornholm/rentor/pkg/log"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type Metrics struct {
	Registry  *prometheus.Registry
	Collector *metrics.Collector
}

var NewMetricsFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*Metrics, error) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Metrics{
		Registry:  reg,
		Collector: metrics.NewCollector(reg),
	}, nil
})

var NewAPIClientFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*rentor.Client, error) {
	m, err := NewMetricsFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	timeout := 10 * time.Second
	if conf.API.Timeout != nil {
		timeout = time.Duration(*conf.API.Timeout)
	}

	client, err := rentor.NewClient(
		string(conf.API.BaseURL),
		rentor.WithHTTPClient(&http.Client{Timeout: timeout}),
		rentor.WithUsersPath(string(conf.API.UsersPath)),
		rentor.WithRolePath(string(conf.API.RolePath)),
		rentor.WithUserAgent(string(conf.API.UserAgent)),
		rentor.WithRecorder(m.Collector),
	)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	slog.InfoContext(ctx, "using rentor api", log.ScrubbedURL("baseURL", string(conf.API.BaseURL)), slog.Duration("timeout", timeout))

	return client, nil
})

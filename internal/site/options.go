package site

import (
	"net/http"

	"github.com/bornholm/rentor/internal/metrics"
)

type Options struct {
	SessionName      string
	TokenCookie      string
	PublicDir        string
	Recorder         metrics.RenderRecorder
	ToggleMiddleware func(http.Handler) http.Handler
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		SessionName: "rentor_ui",
		TokenCookie: "accessToken",
		Recorder:    metrics.NoopRecorder{},
	}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

func WithSessionName(name string) OptionFunc {
	return func(opts *Options) {
		opts.SessionName = name
	}
}

func WithTokenCookie(name string) OptionFunc {
	return func(opts *Options) {
		opts.TokenCookie = name
	}
}

func WithPublicDir(dir string) OptionFunc {
	return func(opts *Options) {
		opts.PublicDir = dir
	}
}

func WithRecorder(recorder metrics.RenderRecorder) OptionFunc {
	return func(opts *Options) {
		opts.Recorder = recorder
	}
}

// WithToggleMiddleware wraps the dropdown and mobile nav toggle endpoints.
func WithToggleMiddleware(middleware func(http.Handler) http.Handler) OptionFunc {
	return func(opts *Options) {
		opts.ToggleMiddleware = middleware
	}
}

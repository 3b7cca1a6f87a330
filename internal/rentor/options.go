package rentor

import (
	"net/http"

	"github.com/bornholm/rentor/internal/metrics"
)

type Options struct {
	HTTPClient *http.Client
	UsersPath  string
	RolePath   string
	UserAgent  string
	Recorder   metrics.UpstreamRecorder
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		HTTPClient: http.DefaultClient,
		UsersPath:  "/user/all",
		RolePath:   "/auth/user",
		UserAgent:  "rentor-navbar",
		Recorder:   metrics.NoopRecorder{},
	}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

func WithHTTPClient(client *http.Client) OptionFunc {
	return func(opts *Options) {
		opts.HTTPClient = client
	}
}

func WithUsersPath(path string) OptionFunc {
	return func(opts *Options) {
		opts.UsersPath = path
	}
}

func WithRolePath(path string) OptionFunc {
	return func(opts *Options) {
		opts.RolePath = path
	}
}

func WithUserAgent(userAgent string) OptionFunc {
	return func(opts *Options) {
		opts.UserAgent = userAgent
	}
}

func WithRecorder(recorder metrics.UpstreamRecorder) OptionFunc {
	return func(opts *Options) {
		opts.Recorder = recorder
	}
}

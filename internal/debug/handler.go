package debug

import (
	"expvar"
	"fmt"
	"net/http"
	"net/http/pprof"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler serves profiling data and Prometheus metrics under a prefix.
type Handler struct {
	mux *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(prefix string, gatherer prometheus.Gatherer) *Handler {
	mux := &http.ServeMux{}

	mux.Handle(fmt.Sprintf("GET %s/metrics", prefix), promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	mux.Handle(fmt.Sprintf("GET %s/vars", prefix), expvar.Handler())

	mux.HandleFunc(fmt.Sprintf("%s/pprof/", prefix), pprof.Index)
	mux.HandleFunc(fmt.Sprintf("%s/pprof/cmdline", prefix), pprof.Cmdline)
	mux.HandleFunc(fmt.Sprintf("%s/pprof/profile", prefix), pprof.Profile)
	mux.HandleFunc(fmt.Sprintf("%s/pprof/symbol", prefix), pprof.Symbol)
	mux.HandleFunc(fmt.Sprintf("%s/pprof/trace", prefix), pprof.Trace)

	return &Handler{mux}
}

var _ http.Handler = &Handler{}

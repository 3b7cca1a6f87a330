package site

import (
	"fmt"
	"net/http"

	"github.com/bornholm/rentor/internal/metrics"
	"github.com/bornholm/rentor/internal/navbar"
	"github.com/gorilla/sessions"
)

type Handler struct {
	mux          *http.ServeMux
	loader       *navbar.Loader
	layout       *navbar.Layout
	sessionStore sessions.Store
	sessionName  string
	tokenCookie  string
	recorder     metrics.RenderRecorder
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(loader *navbar.Loader, layout *navbar.Layout, sessionStore sessions.Store, funcs ...OptionFunc) *Handler {
	opts := NewOptions(funcs...)

	h := &Handler{
		mux:          http.NewServeMux(),
		loader:       loader,
		layout:       layout,
		sessionStore: sessionStore,
		sessionName:  opts.SessionName,
		tokenCookie:  opts.TokenCookie,
		recorder:     opts.Recorder,
	}

	toggle := func(fn http.HandlerFunc) http.Handler {
		if opts.ToggleMiddleware == nil {
			return fn
		}

		return opts.ToggleMiddleware(fn)
	}

	h.mux.HandleFunc("GET /{$}", h.serveIndex)
	h.mux.HandleFunc(fmt.Sprintf("GET %s", layout.RefreshURL), h.serveNavbar)
	h.mux.Handle(fmt.Sprintf("POST %s", layout.DropdownToggleURL), toggle(h.handleToggleDropdown))
	h.mux.Handle(fmt.Sprintf("POST %s", layout.NavToggleURL), toggle(h.handleToggleNav))
	h.mux.HandleFunc(fmt.Sprintf("POST %s", layout.Logout.URL), h.handleLogout)

	if opts.PublicDir != "" {
		h.mux.Handle("GET /", http.FileServer(http.Dir(opts.PublicDir)))
	}

	return h
}

var _ http.Handler = &Handler{}

package site

import (
	"log/slog"
	"net/http"

	"github.com/bornholm/rentor/internal/authn/token"
	"github.com/bornholm/rentor/internal/navbar"
	"github.com/bornholm/rentor/internal/ui"
	"github.com/bornholm/rentor/pkg/log"
	"github.com/pkg/errors"
)

// serveIndex renders the full page. A full page load resets the navbar
// flags and is the only place the navbar state is loaded from the API.
func (h *Handler) serveIndex(w http.ResponseWriter, r *http.Request) {
	state := h.retrieveUIState(r)

	state.Flags.Reset()
	h.commitState(r, state)

	if err := h.storeUIState(w, r, state); err != nil {
		slog.ErrorContext(r.Context(), "could not store ui session", log.Error(errors.WithStack(err)))
	}

	h.renderPage(w, r, state)
}

func (h *Handler) serveNavbar(w http.ResponseWriter, r *http.Request) {
	state := h.retrieveUIState(r)

	if h.ensureCommitted(r, state) {
		if err := h.storeUIState(w, r, state); err != nil {
			slog.ErrorContext(r.Context(), "could not store ui session", log.Error(errors.WithStack(err)))
		}
	}

	h.renderNavbar(w, r, state)
}

func (h *Handler) commitState(r *http.Request, state *uiState) {
	sess, _ := token.ContextSession(r.Context())
	state.Committed = h.loader.Load(r.Context(), sess)
}

// ensureCommitted loads the navbar state when the session holds none for
// the current access token, and reports whether it did.
func (h *Handler) ensureCommitted(r *http.Request, state *uiState) bool {
	if state.matchesRequest(r) {
		return false
	}

	h.commitState(r, state)

	return true
}

func (h *Handler) viewState(state *uiState) *navbar.State {
	view := *state.Committed
	view.Flags = state.Flags

	h.recorder.RecordRender(view.Display())

	return &view
}

func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, state *uiState) {
	ctx := r.Context()

	data := IndexTemplateData{
		HeadTemplateData: ui.HeadTemplateData{
			PageTitle: "Home",
		},
		Navbar: navbar.NewTemplateData(h.viewState(state), h.layout),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if err := templates.ExecuteTemplate(w, "index", data); err != nil {
		slog.ErrorContext(ctx, "could not execute template", log.Error(errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) renderNavbar(w http.ResponseWriter, r *http.Request, state *uiState) {
	ctx := r.Context()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if err := templates.ExecuteTemplate(w, "navbar", navbar.NewTemplateData(h.viewState(state), h.layout)); err != nil {
		slog.ErrorContext(ctx, "could not execute navbar template", log.Error(errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
}

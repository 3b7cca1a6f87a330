package site

import (
	"log/slog"
	"net/http"

	"github.com/bornholm/rentor/internal/navbar"
	"github.com/bornholm/rentor/pkg/log"
	"github.com/pkg/errors"
)

func (h *Handler) handleToggleDropdown(w http.ResponseWriter, r *http.Request) {
	h.handleToggle(w, r, (*navbar.Flags).ToggleDropdown)
}

func (h *Handler) handleToggleNav(w http.ResponseWriter, r *http.Request) {
	h.handleToggle(w, r, (*navbar.Flags).ToggleNav)
}

// handleToggle flips one flag and renders from the committed navbar
// state, the navbar fragment for HTMX requests and the full page for
// plain form posts.
func (h *Handler) handleToggle(w http.ResponseWriter, r *http.Request, toggle func(*navbar.Flags)) {
	state := h.retrieveUIState(r)

	toggle(&state.Flags)
	h.ensureCommitted(r, state)

	if err := h.storeUIState(w, r, state); err != nil {
		slog.ErrorContext(r.Context(), "could not store ui session", log.Error(errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if r.Header.Get("HX-Request") == "true" {
		h.renderNavbar(w, r, state)
		return
	}

	h.renderPage(w, r, state)
}

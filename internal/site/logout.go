package site

import (
	"log/slog"
	"net/http"

	"github.com/bornholm/rentor/internal/authn/token"
	"github.com/bornholm/rentor/pkg/log"
	"github.com/pkg/errors"
)

// handleLogout expires the access token cookie and the UI session, then
// sends the browser back to a full page load.
func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	token.Clear(w, h.tokenCookie)

	if err := h.clearUIState(w, r); err != nil {
		slog.ErrorContext(r.Context(), "could not clear ui session", log.Error(errors.WithStack(err)))
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

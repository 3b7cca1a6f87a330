package site

import (
	"log/slog"
	"net/http"

	"github.com/bornholm/rentor/internal/authn/token"
	"github.com/bornholm/rentor/internal/navbar"
	"github.com/bornholm/rentor/internal/rentor"
	"github.com/bornholm/rentor/pkg/log"
	"github.com/gorilla/sessions"
	"github.com/pkg/errors"
)

const (
	sessionKeyDropdown  = "dropdown"
	sessionKeyNav       = "nav"
	sessionKeyCommitted = "committed"
	sessionKeyLoggedIn  = "loggedIn"
	sessionKeyEmail     = "email"
	sessionKeyRole      = "role"
	sessionKeyKnownUser = "knownUser"
	sessionKeyUserEmail = "userEmail"
	sessionKeyFirstName = "firstName"
)

// uiState is what the UI session carries between two full page loads:
// the toggle flags and the navbar state loaded by the last one.
type uiState struct {
	session *sessions.Session
	Flags   navbar.Flags
	// Committed is nil until a state has been loaded.
	Committed *navbar.State
}

// retrieveUIState reads the UI session. Undecodable sessions are logged
// and replaced by a fresh one.
func (h *Handler) retrieveUIState(r *http.Request) *uiState {
	sess, err := h.sessionStore.Get(r, h.sessionName)
	if err != nil {
		slog.WarnContext(r.Context(), "could not decode ui session, resetting it", log.Error(errors.WithStack(err)))
	}

	if sess == nil {
		sess = sessions.NewSession(h.sessionStore, h.sessionName)
		sess.Options = &sessions.Options{Path: "/"}
	}

	state := &uiState{session: sess}

	state.Flags.Dropdown, _ = sess.Values[sessionKeyDropdown].(bool)
	state.Flags.Nav, _ = sess.Values[sessionKeyNav].(bool)

	if committed, _ := sess.Values[sessionKeyCommitted].(bool); committed {
		state.Committed = decodeCommitted(sess.Values)
	}

	return state
}

func decodeCommitted(values map[any]any) *navbar.State {
	state := &navbar.State{}

	state.LoggedIn, _ = values[sessionKeyLoggedIn].(bool)
	state.Email, _ = values[sessionKeyEmail].(string)

	role, _ := values[sessionKeyRole].(string)
	state.Role = rentor.Role(role)

	if known, _ := values[sessionKeyKnownUser].(bool); known {
		user := &rentor.User{}
		user.Email, _ = values[sessionKeyUserEmail].(string)
		user.FirstName, _ = values[sessionKeyFirstName].(string)
		state.User = user
	}

	return state
}

func (h *Handler) storeUIState(w http.ResponseWriter, r *http.Request, state *uiState) error {
	values := state.session.Values

	values[sessionKeyDropdown] = state.Flags.Dropdown
	values[sessionKeyNav] = state.Flags.Nav
	values[sessionKeyCommitted] = state.Committed != nil

	if committed := state.Committed; committed != nil {
		values[sessionKeyLoggedIn] = committed.LoggedIn
		values[sessionKeyEmail] = committed.Email
		values[sessionKeyRole] = string(committed.Role)
		values[sessionKeyKnownUser] = committed.User != nil

		if committed.User != nil {
			values[sessionKeyUserEmail] = committed.User.Email
			values[sessionKeyFirstName] = committed.User.FirstName
		} else {
			delete(values, sessionKeyUserEmail)
			delete(values, sessionKeyFirstName)
		}
	}

	if err := state.session.Save(r, w); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (h *Handler) clearUIState(w http.ResponseWriter, r *http.Request) error {
	state := h.retrieveUIState(r)

	state.session.Options.MaxAge = -1
	state.session.Values = make(map[any]any)

	if err := state.session.Save(r, w); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// matchesRequest reports whether the committed state was loaded for the
// access token the request carries.
func (s *uiState) matchesRequest(r *http.Request) bool {
	if s.Committed == nil {
		return false
	}

	sess, loggedIn := token.ContextSession(r.Context())
	if s.Committed.LoggedIn != loggedIn {
		return false
	}

	email, _ := sess.Email()

	return s.Committed.Email == email
}

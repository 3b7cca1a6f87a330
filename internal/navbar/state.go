package navbar

import "github.com/bornholm/rentor/internal/rentor"

const (
	DisplayAnonymous     = "anonymous"
	DisplayAuthenticated = "authenticated"
)

// Flags are the view-local toggles of the navbar.
type Flags struct {
	Dropdown bool
	Nav      bool
}

func (f *Flags) ToggleDropdown() {
	f.Dropdown = !f.Dropdown
}

func (f *Flags) ToggleNav() {
	f.Nav = !f.Nav
}

func (f *Flags) Reset() {
	f.Dropdown = false
	f.Nav = false
}

// State is everything the navbar renders from. User and Role stay
// unset when LoggedIn is false.
type State struct {
	LoggedIn bool
	// Email is the unverified email claim of the token, empty if it
	// could not be decoded.
	Email string
	User  *rentor.User
	Role  rentor.Role
	Flags Flags
}

func (s *State) Display() string {
	if s.LoggedIn {
		return DisplayAuthenticated
	}

	return DisplayAnonymous
}

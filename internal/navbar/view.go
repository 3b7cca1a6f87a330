package navbar

import (
	"log/slog"

	"github.com/bornholm/rentor/internal/rentor"
	"github.com/bornholm/rentor/internal/ui"
	"github.com/bornholm/rentor/pkg/log"
	"github.com/pkg/errors"
)

const (
	PlaceholderUsername = "User"
	PlaceholderEmail    = "email@example.com"

	LabelSwitchToUser  = "Switch to User"
	LabelBecomeAnOwner = "Become an Owner"
)

// NewTemplateData builds the navbar render model of a state.
func NewTemplateData(state *State, layout *Layout) ui.NavbarTemplateData {
	data := ui.NavbarTemplateData{
		LoggedIn:          state.LoggedIn,
		LogoURL:           layout.LogoURL,
		Links:             toNavbarItems(layout.Links),
		Login:             toNavbarItem(layout.Login),
		ShowNav:           state.Flags.Nav,
		RefreshURL:        layout.RefreshURL,
		DropdownToggleURL: layout.DropdownToggleURL,
		NavToggleURL:      layout.NavToggleURL,
	}

	if !state.LoggedIn {
		return data
	}

	data.AvatarURL = layout.AvatarURL
	data.ShowDropdown = state.Flags.Dropdown
	data.Logout = toNavbarItem(layout.Logout)

	data.Username = PlaceholderUsername
	data.Email = PlaceholderEmail

	if state.User != nil {
		data.Username = state.User.FirstName
		data.Email = state.User.Email
	}

	data.RoleToggle = ui.NavbarItem{
		Label: RoleToggleLabel(state.Role),
		URL:   layout.RoleToggleURL,
	}

	env := RuleEnv(state)
	data.MenuItems = make([]ui.NavbarItem, 0, len(layout.Menu))

	for _, item := range layout.Menu {
		if item.When != nil {
			visible, err := item.When.Exec(env)
			if err != nil {
				slog.Error("could not evaluate menu item rule", log.Error(errors.WithStack(err)), slog.String("item", item.Label))
				continue
			}

			if !visible {
				continue
			}
		}

		data.MenuItems = append(data.MenuItems, toNavbarItem(item))
	}

	return data
}

func RoleToggleLabel(role rentor.Role) string {
	if role == rentor.RoleOwner {
		return LabelSwitchToUser
	}

	return LabelBecomeAnOwner
}

func toNavbarItem(item Item) ui.NavbarItem {
	return ui.NavbarItem{Label: item.Label, URL: item.URL}
}

func toNavbarItems(items []Item) []ui.NavbarItem {
	navbarItems := make([]ui.NavbarItem, 0, len(items))
	for _, item := range items {
		navbarItems = append(navbarItems, toNavbarItem(item))
	}

	return navbarItems
}

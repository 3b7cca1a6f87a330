package navbar

import (
	"github.com/bornholm/rentor/internal/ui"
	"github.com/pkg/errors"
)

type Item struct {
	Label string
	URL   string
	// When, if set, restricts the item to states matching the rule.
	When *Rule
}

// Layout is the static part of the navbar: assets, links and the
// dropdown entries with their visibility rules.
type Layout struct {
	LogoURL       string
	AvatarURL     string
	RoleToggleURL string
	Login         Item
	Logout        Item
	Links         []Item
	Menu          []Item

	RefreshURL        string
	DropdownToggleURL string
	NavToggleURL      string
}

// Validate compiles every item rule.
func (l *Layout) Validate() error {
	for _, item := range l.Menu {
		if item.When == nil {
			continue
		}

		if err := item.When.Validate(); err != nil {
			return errors.Wrapf(err, "invalid rule of menu item '%s'", item.Label)
		}
	}

	return nil
}

func NewDefaultLayout() *Layout {
	ownerOnly := `role == "owner"`

	return &Layout{
		LogoURL:       "/images/RentorLogo2 White.png",
		AvatarURL:     "/images/Host.jpg",
		RoleToggleURL: "/Contact-Details",
		Login:         Item{Label: "Login", URL: "/Login"},
		Logout:        Item{Label: ui.NavbarItemLogout.Label, URL: ui.NavbarItemLogout.URL},
		Links: []Item{
			{Label: "Home", URL: "/"},
			{Label: "Apartments", URL: "/Search"},
			{Label: "About", URL: "/About"},
			{Label: "Contact", URL: "/Contact"},
		},
		Menu: []Item{
			{Label: "Profile", URL: "/Host"},
			{Label: "Post Property", URL: "/Post", When: NewRule(ownerOnly)},
			{Label: "Dashboard", URL: "/Dashboard", When: NewRule(ownerOnly)},
			{Label: "Settings", URL: "#"},
		},
		RefreshURL:        "/navbar",
		DropdownToggleURL: "/navbar/dropdown",
		NavToggleURL:      "/navbar/nav",
	}
}

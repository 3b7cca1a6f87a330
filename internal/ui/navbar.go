package ui

type NavbarItem struct {
	Label string
	URL   string
}

// NavbarTemplateData is the render model of the navigation bar. It is
// built from the navbar state and holds no behaviour.
type NavbarTemplateData struct {
	LoggedIn bool

	LogoURL   string
	AvatarURL string

	Username string
	Email    string

	Links      []NavbarItem
	MenuItems  []NavbarItem
	RoleToggle NavbarItem
	Login      NavbarItem
	Logout     NavbarItem

	ShowDropdown bool
	ShowNav      bool

	RefreshURL        string
	DropdownToggleURL string
	NavToggleURL      string
}

var NavbarItemLogout = NavbarItem{
	Label: "Sign out",
	URL:   "/auth/logout",
}

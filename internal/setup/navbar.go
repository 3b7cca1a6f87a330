package setup

import (
	"context"

	"github.com/bornholm/rentor/internal/config"
	"github.com/bornholm/rentor/internal/navbar"
	"github.com/pkg/errors"
)

func NewLayoutFromConfig(ctx context.Context, conf *config.Config) (*navbar.Layout, error) {
	layout := navbar.NewDefaultLayout()

	layout.LogoURL = string(conf.Navbar.Logo)
	layout.AvatarURL = string(conf.Navbar.Avatar)
	layout.RoleToggleURL = string(conf.Navbar.RoleToggle)
	layout.Login = newNavbarItem(conf.Navbar.Login)

	layout.Links = make([]navbar.Item, 0, len(conf.Navbar.Links))
	for _, item := range conf.Navbar.Links {
		layout.Links = append(layout.Links, newNavbarItem(item))
	}

	layout.Menu = make([]navbar.Item, 0, len(conf.Navbar.Menu))
	for _, item := range conf.Navbar.Menu {
		layout.Menu = append(layout.Menu, newNavbarItem(item))
	}

	if err := layout.Validate(); err != nil {
		return nil, errors.WithStack(err)
	}

	return layout, nil
}

func newNavbarItem(item config.NavbarItem) navbar.Item {
	navbarItem := navbar.Item{
		Label: string(item.Label),
		URL:   string(item.URL),
	}

	if item.When != "" {
		navbarItem.When = navbar.NewRule(string(item.When))
	}

	return navbarItem
}

func NewLoaderFromConfig(ctx context.Context, conf *config.Config) (*navbar.Loader, error) {
	client, err := NewAPIClientFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return navbar.NewLoader(client), nil
}

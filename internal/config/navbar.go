package config

import "github.com/goccy/go-yaml"

type Navbar struct {
	Logo       InterpolatedString `yaml:"logo"`
	Avatar     InterpolatedString `yaml:"avatar"`
	Login      NavbarItem         `yaml:"login"`
	RoleToggle InterpolatedString `yaml:"roleToggle"`
	Links      []NavbarItem       `yaml:"links"`
	Menu       []NavbarItem       `yaml:"menu"`
}

type NavbarItem struct {
	Label InterpolatedString `yaml:"label"`
	URL   InterpolatedString `yaml:"url"`
	When  InterpolatedString `yaml:"when,omitempty"`
}

func NewDefaultNavbarConfig() Navbar {
	return Navbar{
		Logo:       "/images/RentorLogo2 White.png",
		Avatar:     "/images/Host.jpg",
		Login:      NavbarItem{Label: "Login", URL: "/Login"},
		RoleToggle: "/Contact-Details",
		Links: []NavbarItem{
			{Label: "Home", URL: "/"},
			{Label: "Apartments", URL: "/Search"},
			{Label: "About", URL: "/About"},
			{Label: "Contact", URL: "/Contact"},
		},
		Menu: []NavbarItem{
			{Label: "Profile", URL: "/Host"},
			{Label: "Post Property", URL: "/Post", When: `role == "owner"`},
			{Label: "Dashboard", URL: "/Dashboard", When: `role == "owner"`},
			{Label: "Settings", URL: "#"},
		},
	}
}

func NewNavbarConfigCommentMap() yaml.CommentMap {
	return yaml.CommentMap{
		"":            []*yaml.Comment{yaml.HeadComment(" Navigation bar configuration")},
		".logo":       []*yaml.Comment{yaml.HeadComment(" Logo image path")},
		".avatar":     []*yaml.Comment{yaml.HeadComment(" Avatar image path, shown for every authenticated user")},
		".roleToggle": []*yaml.Comment{yaml.HeadComment(" Target of the 'Switch to User' / 'Become an Owner' link")},
		".links":      []*yaml.Comment{yaml.HeadComment(" Main navigation links")},
		".menu": []*yaml.Comment{yaml.HeadComment(
			" Dropdown entries of authenticated users",
			" 'when' is an optional rule, see https://expr-lang.org/docs/language-definition",
			" Available variables: role, email, loggedIn",
		)},
	}
}

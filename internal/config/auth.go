package config

import "github.com/goccy/go-yaml"

type Auth struct {
	Cookie InterpolatedString `yaml:"cookie"`
}

func NewDefaultAuthConfig() Auth {
	return Auth{
		Cookie: "${RENTOR_AUTH_COOKIE:-accessToken}",
	}
}

func NewAuthConfigCommentMap() yaml.CommentMap {
	return yaml.CommentMap{
		"":        []*yaml.Comment{yaml.HeadComment(" Auth configuration")},
		".cookie": []*yaml.Comment{yaml.HeadComment(" Name of the cookie holding the access token set at login")},
	}
}

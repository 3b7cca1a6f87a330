package config

import (
	"time"

	"github.com/goccy/go-yaml"
)

type API struct {
	BaseURL   InterpolatedString    `yaml:"baseUrl"`
	UsersPath InterpolatedString    `yaml:"usersPath"`
	RolePath  InterpolatedString    `yaml:"rolePath"`
	Timeout   *InterpolatedDuration `yaml:"timeout"`
	UserAgent InterpolatedString    `yaml:"userAgent"`
}

func NewDefaultAPIConfig() API {
	return API{
		BaseURL:   "${RENTOR_API_BASE_URL:-https://rentor-b.onrender.com}",
		UsersPath: "/user/all",
		RolePath:  "/auth/user",
		Timeout:   NewInterpolatedDuration(10 * time.Second),
		UserAgent: "${RENTOR_API_USER_AGENT:-rentor-navbar}",
	}
}

func NewAPIConfigCommentMap() yaml.CommentMap {
	return yaml.CommentMap{
		"":           []*yaml.Comment{yaml.HeadComment(" Rentor API configuration")},
		".baseUrl":   []*yaml.Comment{yaml.HeadComment(" Rentor API base URL")},
		".usersPath": []*yaml.Comment{yaml.HeadComment(" Endpoint listing all users")},
		".rolePath":  []*yaml.Comment{yaml.HeadComment(" Endpoint returning the authenticated user's role")},
		".timeout":   []*yaml.Comment{yaml.HeadComment(" Timeout of each API request")},
		".userAgent": []*yaml.Comment{yaml.HeadComment(" User-Agent header sent to the API")},
	}
}

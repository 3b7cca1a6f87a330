package config

import (
	"time"

	"github.com/goccy/go-yaml"
)

type HTTP struct {
	Address   InterpolatedString `yaml:"address"`
	PublicDir InterpolatedString `yaml:"publicDir"`
	Debug     InterpolatedBool   `yaml:"debug"`
	Session   Session            `yaml:"session"`
}

type Session struct {
	Name   InterpolatedString      `yaml:"name"`
	Keys   InterpolatedStringSlice `yaml:"keys"`
	Cookie Cookie                  `yaml:"cookie"`
}

type Cookie struct {
	Path     InterpolatedString    `yaml:"path"`
	HTTPOnly InterpolatedBool      `yaml:"httpOnly"`
	Secure   InterpolatedBool      `yaml:"secure"`
	MaxAge   *InterpolatedDuration `yaml:"maxAge"`
}

func NewDefaultHTTPConfig() HTTP {
	return HTTP{
		Address:   "${RENTOR_HTTP_ADDRESS:-:8080}",
		PublicDir: "${RENTOR_HTTP_PUBLIC_DIR:-./public}",
		Debug:     false,
		Session: Session{
			Name: "${RENTOR_HTTP_SESSION_NAME:-rentor_ui}",
			Keys: InterpolatedStringSlice{"${RENTOR_HTTP_SESSION_KEY}"},
			Cookie: Cookie{
				Path:     "/",
				HTTPOnly: true,
				Secure:   false,
				MaxAge:   NewInterpolatedDuration(time.Hour),
			},
		},
	}
}

func NewHTTPConfigCommentMap() yaml.CommentMap {
	return yaml.CommentMap{
		"":                       []*yaml.Comment{yaml.HeadComment(" Webserver configuration")},
		".address":               []*yaml.Comment{yaml.HeadComment(" Webserver's listening address")},
		".publicDir":             []*yaml.Comment{yaml.HeadComment(" Directory of static assets (logo, avatar...)")},
		".debug":                 []*yaml.Comment{yaml.HeadComment(" Expose profiling and metrics endpoints under /debug")},
		".session":               []*yaml.Comment{yaml.HeadComment(" UI state cookie configuration")},
		".session.name":          []*yaml.Comment{yaml.HeadComment(" Name of the UI state cookie")},
		".session.keys":          []*yaml.Comment{yaml.HeadComment(" Cookie signing keys, a random key is generated if empty")},
		".session.cookie.maxAge": []*yaml.Comment{yaml.HeadComment(" UI state cookie lifetime")},
	}
}

package log

import (
	"log/slog"
	"net/url"
)

var sensitiveQueryParams = []string{"token", "access_token", "accessToken"}

// ScrubbedURL returns an attribute holding rawURL with its credentials
// and token query parameters redacted.
func ScrubbedURL(name string, rawURL string) slog.Attr {
	u, err := url.Parse(rawURL)
	if err != nil {
		return slog.String(name, rawURL)
	}

	copy := u.JoinPath()

	if copy.User != nil {
		copy.User = url.UserPassword("xxx", "xxx")
	}

	if copy.RawQuery != "" {
		query := copy.Query()
		for _, p := range sensitiveQueryParams {
			if query.Has(p) {
				query.Set(p, "xxx")
			}
		}
		copy.RawQuery = query.Encode()
	}

	return slog.String(name, copy.String())
}

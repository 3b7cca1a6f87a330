package rentor

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/bornholm/rentor/internal/metrics"
	"github.com/bornholm/rentor/pkg/log"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/rs/xid"
)

var ErrRequestFailed = errors.New("request failed")

const (
	EndpointUsers = "users"
	EndpointRole  = "role"
)

// maxBodySize bounds the size of decoded API responses.
const maxBodySize = 10 << 20

type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	usersPath  string
	rolePath   string
	userAgent  string
	recorder   metrics.UpstreamRecorder
}

// ListUsers returns the whole users collection.
func (c *Client) ListUsers(ctx context.Context, token string) ([]*User, error) {
	var raw []map[string]any

	if err := c.get(ctx, EndpointUsers, c.usersPath, token, &raw); err != nil {
		return nil, errors.WithStack(err)
	}

	users := make([]*User, 0, len(raw))
	for idx, r := range raw {
		user, err := decodeUser(r)
		if err != nil {
			return nil, errors.Wrapf(err, "could not decode user #%d", idx)
		}

		users = append(users, user)
	}

	return users, nil
}

// GetRole returns the role of the token's owner, as sent by the API.
func (c *Client) GetRole(ctx context.Context, token string) (Role, error) {
	var payload struct {
		Role string `json:"role"`
	}

	if err := c.get(ctx, EndpointRole, c.rolePath, token, &payload); err != nil {
		return "", errors.WithStack(err)
	}

	return Role(payload.Role), nil
}

func (c *Client) get(ctx context.Context, endpoint string, path string, token string, dest any) error {
	if token == "" {
		return errors.New("empty bearer token")
	}

	start := time.Now()
	outcome := metrics.OutcomeError

	defer func() {
		c.recorder.RecordUpstreamRequest(endpoint, outcome, time.Since(start))
	}()

	u := c.baseURL.JoinPath(path)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return errors.WithStack(err)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	requestID, ok := ContextRequestID(ctx)
	if !ok {
		requestID = xid.New().String()
	}

	req.Header.Set("X-Request-Id", requestID)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(ErrRequestFailed, "%s: %s", endpoint, err.Error())
	}

	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		outcome = metrics.OutcomeStatus
		// Drain the body to let the connection be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(res.Body, maxBodySize))
		return errors.Wrapf(ErrRequestFailed, "%s: unexpected status %d", endpoint, res.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, maxBodySize))
	if err != nil {
		return errors.Wrapf(ErrRequestFailed, "%s: %s", endpoint, err.Error())
	}

	slog.DebugContext(ctx, "api response received",
		slog.String("endpoint", endpoint),
		log.ScrubbedURL("url", u.String()),
		slog.String("requestID", requestID),
		slog.String("size", humanize.Bytes(uint64(len(body)))),
		slog.Duration("duration", time.Since(start)),
	)

	if err := json.Unmarshal(body, dest); err != nil {
		outcome = metrics.OutcomeDecode
		return errors.Wrapf(err, "could not decode %s response", endpoint)
	}

	outcome = metrics.OutcomeSuccess

	return nil
}

func NewClient(baseURL string, funcs ...OptionFunc) (*Client, error) {
	opts := NewOptions(funcs...)

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse api base url '%s'", baseURL)
	}

	if u.Scheme == "" || u.Host == "" {
		return nil, errors.Errorf("invalid api base url '%s'", baseURL)
	}

	return &Client{
		baseURL:    u,
		httpClient: opts.HTTPClient,
		usersPath:  opts.UsersPath,
		rolePath:   opts.RolePath,
		userAgent:  opts.UserAgent,
		recorder:   opts.Recorder,
	}, nil
}

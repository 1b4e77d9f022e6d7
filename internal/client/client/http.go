package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/userconsole/internal/client/models"
	"github.com/dmitrijs2005/userconsole/internal/common"
	"github.com/google/uuid"
)

// RequestIDHeaderName is set on every outbound request.
const RequestIDHeaderName = common.RequestIDHeaderName

const usersPath = "/users"

// HTTPClient talks JSON to a collection rooted at baseURL + "/users".
type HTTPClient struct {
	baseURL string
	timeout time.Duration
	http    *http.Client
}

type Option func(*HTTPClient)

// WithHTTPClient replaces the default *http.Client (e.g. httptest's).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.http = hc }
}

func NewHTTPClient(baseURL string, timeout time.Duration, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
		http:    &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *HTTPClient) Authenticate(ctx context.Context, creds models.Credentials) (map[string]any, error) {
	var out map[string]any
	if err := c.do(ctx, http.MethodPost, usersPath, creds, &out); err != nil {
		return nil, err
	}
	if out == nil {
		return nil, &Error{Method: http.MethodPost, Path: usersPath, Err: fmt.Errorf("invalid response body: expected a JSON object")}
	}
	return out, nil
}

func (c *HTTPClient) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.do(ctx, http.MethodGet, usersPath, nil, &users); err != nil {
		return nil, err
	}
	if users == nil {
		return nil, &Error{Method: http.MethodGet, Path: usersPath, Err: fmt.Errorf("invalid response body: expected a JSON array")}
	}
	return users, nil
}

func (c *HTTPClient) CreateUser(ctx context.Context, draft models.Draft) error {
	if draft == nil {
		draft = models.NewDraft()
	}
	return c.do(ctx, http.MethodPost, usersPath, draft, nil)
}

func (c *HTTPClient) UpdateUser(ctx context.Context, id string, draft models.Draft) error {
	path, err := recordPath(http.MethodPut, id)
	if err != nil {
		return err
	}
	if draft == nil {
		draft = models.NewDraft()
	}
	return c.do(ctx, http.MethodPut, path, draft, nil)
}

func (c *HTTPClient) DeleteUser(ctx context.Context, id string) error {
	path, err := recordPath(http.MethodDelete, id)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func recordPath(method, id string) (string, error) {
	if id == "" {
		return "", &Error{Method: method, Path: usersPath + "/", Err: errMissingID}
	}
	return usersPath + "/" + url.PathEscape(id), nil
}

// do performs one request. A nil out skips decoding; the body is still
// drained so the connection can be reused.
func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return &Error{Method: method, Path: path, Err: fmt.Errorf("encode request: %w", err)}
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &Error{Method: method, Path: path, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeaderName, uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Method: method, Path: path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &Error{Method: method, Path: path, StatusCode: resp.StatusCode}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{Method: method, Path: path, Err: fmt.Errorf("invalid response body: %w", err)}
	}
	return nil
}

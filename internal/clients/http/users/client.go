// Package users is the HTTP client the order service uses to reach the user
// registry.
package users

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/oapi-codegen/runtime"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/Apurer/user-order-services/internal/shared/option"
	"github.com/Apurer/user-order-services/internal/shared/requestid"
)

// User mirrors the user registry's JSON payload.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}

// HttpRequestDoer performs HTTP requests.
type HttpRequestDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// RequestEditorFn is the function signature for the RequestEditor callback function
type RequestEditorFn func(ctx context.Context, req *http.Request) error

// ClientOption allows setting custom parameters during construction
type ClientOption func(*Client) error

// Client fetches users from the registry. It never retries and reports every
// failure as absence.
type Client struct {
	server         string
	doer           HttpRequestDoer
	requestEditors []RequestEditorFn
	logger         *slog.Logger
}

// WithHTTPClient allows overriding the default Doer.
func WithHTTPClient(doer HttpRequestDoer) ClientOption {
	return func(c *Client) error {
		c.doer = doer
		return nil
	}
}

// WithRequestEditorFn allows setting up a callback function, which will be
// called right before sending the request.
func WithRequestEditorFn(fn RequestEditorFn) ClientOption {
	return func(c *Client) error {
		c.requestEditors = append(c.requestEditors, fn)
		return nil
	}
}

// WithLogger sets the logger used to report failed lookups.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) error {
		if logger != nil {
			c.logger = logger
		}
		return nil
	}
}

// NewHTTPClient returns a traced HTTP client. A zero timeout leaves the
// transport default in place.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
}

// NewClient instantiates the client for the registry at baseURL.
func NewClient(baseURL string, opts ...ClientOption) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("user service base URL is required")
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	client := &Client{
		server:         baseURL,
		requestEditors: []RequestEditorFn{forwardRequestID},
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(client); err != nil {
			return nil, err
		}
	}
	if client.doer == nil {
		client.doer = NewHTTPClient(0)
	}
	return client, nil
}

// FetchUser issues GET /api/users/{id}. Transport errors, non-200 statuses
// and undecodable bodies all yield None.
func (c *Client) FetchUser(ctx context.Context, userID int64) option.Option[User] {
	user, err := c.getUser(ctx, userID)
	if err != nil {
		c.logger.LogAttrs(ctx, slog.LevelWarn, "user lookup failed",
			slog.Int64("user.id", userID), slog.String("error", err.Error()))
		return option.None[User]()
	}
	return option.Some(user)
}

func (c *Client) getUser(ctx context.Context, userID int64) (User, error) {
	req, err := NewGetUserRequest(c.server, userID)
	if err != nil {
		return User{}, err
	}
	req = req.WithContext(ctx)
	if err := c.applyEditors(ctx, req); err != nil {
		return User{}, err
	}
	resp, err := c.doer.Do(req)
	if err != nil {
		return User{}, fmt.Errorf("call user service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return User{}, fmt.Errorf("user service returned %s", resp.Status)
	}
	var user User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return User{}, fmt.Errorf("decode user payload: %w", err)
	}
	return user, nil
}

func (c *Client) applyEditors(ctx context.Context, req *http.Request) error {
	for _, r := range c.requestEditors {
		if err := r(ctx, req); err != nil {
			return err
		}
	}
	return nil
}

// NewGetUserRequest generates requests for GET /api/users/{id}.
func NewGetUserRequest(server string, id int64) (*http.Request, error) {
	var pathParam0 string

	pathParam0, err := runtime.StyleParamWithLocation("simple", false, "id", runtime.ParamLocationPath, id)
	if err != nil {
		return nil, err
	}

	serverURL, err := url.Parse(server)
	if err != nil {
		return nil, err
	}

	operationPath := fmt.Sprintf("/api/users/%s", pathParam0)
	if operationPath[0] == '/' {
		operationPath = "." + operationPath
	}

	queryURL, err := serverURL.Parse(operationPath)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodGet, queryURL.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func forwardRequestID(ctx context.Context, req *http.Request) error {
	if id := requestid.FromContext(ctx); id != "" {
		req.Header.Set(requestid.Header, id)
	}
	return nil
}

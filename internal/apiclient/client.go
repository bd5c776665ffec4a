package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	um "user_management"
	"user_management/internal/logger"
	"user_management/internal/models"
)

// DefaultBaseURL is the public collection the service talks to out of the box.
const DefaultBaseURL = "https://jsonplaceholder.typicode.com"

const (
	jsonContentType = "application/json"
	usersPath       = "/users"

	// cap on how much of an error body is kept for the error message
	maxErrorBody = 1 << 10
)

// Operation names carried by FetchError.
const (
	OpListUsers  = "listUsers"
	OpCreateUser = "createUser"
	OpUpdateUser = "updateUser"
	OpDeleteUser = "deleteUser"
)

// Client talks to the remote users collection and maps its records onto the
// local User shape. Every call goes straight to the remote: no retries, no
// caching and no timeout beyond what the caller's context imposes.
type Client struct {
	baseURL   string
	http      *http.Client
	userAgent string
	log       *logger.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithUserAgent sets the User-Agent header as "app/version".
func WithUserAgent(app, version string) Option {
	return func(c *Client) {
		c.userAgent = fmt.Sprintf("%s/%s", app, version)
	}
}

// WithLogger attaches a logger for request tracing.
func WithLogger(log *logger.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// New creates a client for the collection rooted at baseURL.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListUsers fetches the remote collection and normalizes every record.
// Every record must be well formed and carry a unique positive id, otherwise
// the whole call fails.
func (c *Client) ListUsers(ctx context.Context) ([]um.User, error) {
	url := c.baseURL + usersPath

	var raw []models.RemoteUser
	if err := c.do(ctx, OpListUsers, http.MethodGet, url, nil, &raw); err != nil {
		return nil, err
	}

	malformed := func(err error) error {
		return &FetchError{Op: OpListUsers, Method: http.MethodGet, URL: url, Err: err}
	}
	if raw == nil {
		return nil, malformed(fmt.Errorf("%w: null body", ErrMalformedRecord))
	}

	users := make([]um.User, 0, len(raw))
	seen := make(map[int]struct{}, len(raw))
	for i, r := range raw {
		u, err := fromRemote(r)
		if err != nil {
			return nil, malformed(fmt.Errorf("record %d: %w", i, err))
		}
		if _, dup := seen[u.ID]; dup {
			return nil, malformed(fmt.Errorf("record %d: %w: duplicate id %d", i, ErrMalformedRecord, u.ID))
		}
		seen[u.ID] = struct{}{}
		users = append(users, u)
	}
	return users, nil
}

// CreateUser submits the fields and returns the remote echo, which carries
// the assigned id.
func (c *Client) CreateUser(ctx context.Context, data um.UserFields) (um.User, error) {
	return c.submit(ctx, OpCreateUser, http.MethodPost, c.baseURL+usersPath, data)
}

// UpdateUser submits the full record keyed by its id and returns the echo.
func (c *Client) UpdateUser(ctx context.Context, data um.User) (um.User, error) {
	return c.submit(ctx, OpUpdateUser, http.MethodPut, c.userURL(data.ID), data)
}

// DeleteUser asks the remote to remove the user. Any 2xx answer succeeds.
func (c *Client) DeleteUser(ctx context.Context, id int) error {
	return c.do(ctx, OpDeleteUser, http.MethodDelete, c.userURL(id), nil, nil)
}

func (c *Client) userURL(id int) string {
	return c.baseURL + usersPath + "/" + strconv.Itoa(id)
}

// submit sends body and converts the echoed record into a User.
func (c *Client) submit(ctx context.Context, op, method, url string, body any) (um.User, error) {
	var echo models.EchoUser
	if err := c.do(ctx, op, method, url, body, &echo); err != nil {
		return um.User{}, err
	}
	u, err := fromEcho(echo)
	if err != nil {
		return um.User{}, &FetchError{Op: op, Method: method, URL: url, Err: err}
	}
	return u, nil
}

// do performs one request. A nil out discards the response body.
func (c *Client) do(ctx context.Context, op, method, url string, body, out any) error {
	fail := func(status int, err error) error {
		return &FetchError{Op: op, Method: method, URL: url, StatusCode: status, Err: err}
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fail(0, fmt.Errorf("marshal body: %w", err))
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fail(0, fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Accept", jsonContentType)
	if body != nil {
		req.Header.Set("Content-Type", jsonContentType+"; charset=utf-8")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logFailure(op, method, url, err)
		return fail(0, err)
	}
	defer resp.Body.Close()

	if c.log != nil {
		c.log.Debugw("remote_request", "op", op, "method", method, "url", url,
			"status", resp.StatusCode, "latency", time.Since(start))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		err := fmt.Errorf("%w: %s", ErrUnexpectedStatus, strings.TrimSpace(string(msg)))
		c.logFailure(op, method, url, err)
		return fail(resp.StatusCode, err)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		err = fmt.Errorf("%w: decode body: %v", ErrMalformedRecord, err)
		c.logFailure(op, method, url, err)
		return fail(resp.StatusCode, err)
	}
	return nil
}

func (c *Client) logFailure(op, method, url string, err error) {
	if c.log != nil {
		c.log.Infow("remote_request_failed", "op", op, "method", method, "url", url, "err", err)
	}
}

// Package gateway is the shared HTTP client every remote data source talks through.
//
// It knows the backend base URL and credentials and exposes verb-shaped calls that
// produce exactly one decoded value or one *Error. It never retries or caches.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nu-student-clubs/clubs-admin/internal/adapters/oas"
	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/source"
)

// Config configures a Client.
type Config struct {
	// BaseURL is prepended to every request path, e.g. "http://localhost:8080".
	BaseURL string
	// Token, when set, is sent as "Authorization: Bearer <token>".
	Token string
	// Timeout bounds each request; zero means no timeout beyond the caller's context.
	Timeout time.Duration
	// HealthPath is requested by Ping. Defaults to "/healthz".
	HealthPath string
}

// Requester is the call surface remote sources depend on.
type Requester interface {
	Do(ctx context.Context, method, path string, body, out any) error
}

type Client struct {
	baseURL    string
	token      string
	timeout    time.Duration
	healthPath string

	http  *http.Client
	log   *zap.Logger
	newID func() string
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.log = l }
}

func New(cfg Config, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(cfg.BaseURL))
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid base url %q: scheme must be http or https", cfg.BaseURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("invalid base url %q: missing host", cfg.BaseURL)
	}
	hp := cfg.HealthPath
	if hp == "" {
		hp = "/healthz"
	}
	c := &Client{
		baseURL:    strings.TrimRight(u.String(), "/"),
		token:      cfg.Token,
		timeout:    cfg.Timeout,
		healthPath: hp,
		http:       http.DefaultClient,
		log:        zap.NewNop(),
		newID:      uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Do sends one request and decodes a 2xx JSON body into out (when out is non-nil).
// body, when non-nil, is encoded as JSON.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return &Error{Method: method, Path: path, Message: "encode request: " + err.Error(), kind: source.ErrValidation, cause: err}
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rdr)
	if err != nil {
		return &Error{Method: method, Path: path, Message: err.Error(), kind: source.ErrUnavailable, cause: err}
	}
	reqID := c.newID()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", reqID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method == http.MethodPost {
		req.Header.Set("Idempotency-Key", c.newID())
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug("request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.String("request_id", reqID),
			zap.Error(err),
		)
		return &Error{Method: method, Path: path, Message: err.Error(), kind: source.ErrUnavailable, cause: err}
	}
	defer resp.Body.Close()

	c.log.Debug("request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.String("request_id", reqID),
		zap.Duration("took", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(method, path, resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{Method: method, Path: path, Status: resp.StatusCode, Message: "decode response: " + err.Error(), kind: source.ErrUnavailable, cause: err}
	}
	return nil
}

// Ping checks backend liveness via the health endpoint.
func (c *Client) Ping(ctx context.Context) error {
	return c.Do(ctx, http.MethodGet, c.healthPath, nil, nil)
}

func decodeError(method, path string, resp *http.Response) error {
	e := &Error{
		Method: method,
		Path:   path,
		Status: resp.StatusCode,
		kind:   kindForStatus(resp.StatusCode),
	}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	var er oas.ErrorResponse
	if err := json.Unmarshal(raw, &er); err == nil && er.Error.Code != "" {
		e.Code = er.Error.Code
		e.Message = er.Error.Message
		if v, err := er.Error.RequestId.Get(); err == nil {
			e.RequestID = v
		}
		if v, err := er.Error.Details.Get(); err == nil {
			e.Details = v
		}
		return e
	}
	e.Message = strings.TrimSpace(string(raw))
	if e.Message == "" {
		e.Message = http.StatusText(resp.StatusCode)
	}
	return e
}

// Get issues a GET and decodes the response into T.
func Get[T any](ctx context.Context, r Requester, path string) (T, error) {
	var out T
	err := r.Do(ctx, http.MethodGet, path, nil, &out)
	return out, err
}

// Post issues a POST with a JSON body and decodes the response into T.
func Post[T any](ctx context.Context, r Requester, path string, body any) (T, error) {
	var out T
	err := r.Do(ctx, http.MethodPost, path, body, &out)
	return out, err
}

// Put issues a PUT with a JSON body and decodes the response into T.
func Put[T any](ctx context.Context, r Requester, path string, body any) (T, error) {
	var out T
	err := r.Do(ctx, http.MethodPut, path, body, &out)
	return out, err
}

// Delete issues a DELETE and discards any response body.
func Delete(ctx context.Context, r Requester, path string) error {
	return r.Do(ctx, http.MethodDelete, path, nil, nil)
}

// AsError extracts the *Error from err, if any.
func AsError(err error) (*Error, bool) {
	var ge *Error
	if errors.As(err, &ge) {
		return ge, true
	}
	return nil, false
}

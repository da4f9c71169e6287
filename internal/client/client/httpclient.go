package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/fitcoach/internal/common"
	"github.com/dmitrijs2005/fitcoach/internal/logging"
	"github.com/dmitrijs2005/fitcoach/internal/netx"
	"github.com/google/uuid"
)

const maxBodySize = 1 << 20

type HTTPClient struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

// NewHTTPClient returns a client for the backend at baseURL. timeout bounds
// every request; zero means no client-side limit.
func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     log.With("component", "api"),
	}
}

func (c *HTTPClient) Login(ctx context.Context, creds Credentials) (string, error) {
	return c.authenticate(ctx, "/auth/login", creds)
}

func (c *HTTPClient) Signup(ctx context.Context, creds Credentials) (string, error) {
	return c.authenticate(ctx, "/auth/signup", creds)
}

func (c *HTTPClient) authenticate(ctx context.Context, path string, creds Credentials) (string, error) {
	var resp tokenResponse
	if err := c.do(ctx, http.MethodPost, path, "", creds, &resp); err != nil {
		return "", err
	}
	if resp.AccessToken == "" {
		return "", &RejectedError{StatusCode: http.StatusOK, Err: fmt.Errorf("%w: no access_token", ErrMalformedResponse)}
	}
	return resp.AccessToken, nil
}

// Me confirms token against the identity endpoint. Only 200 counts as a
// valid token.
func (c *HTTPClient) Me(ctx context.Context, token string) (*User, error) {
	var u User
	if err := c.do(ctx, http.MethodGet, "/users/me", token, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, token string, upd ProfileUpdate) error {
	path := "/users/me"
	if q := upd.Query(); len(q) > 0 {
		path += "?" + q.Encode()
	}
	return c.do(ctx, http.MethodPut, path, token, nil, nil)
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", "", nil, nil)
}

func (c *HTTPClient) do(ctx context.Context, method, path, token string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, netx.JoinURL(c.baseURL, path), body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	reqID := uuid.NewString()
	req.Header.Set(common.RequestIDHeader, reqID)
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(common.AuthorizationHeader, common.BearerPrefix+token)
	}

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug(ctx, "request failed", "method", method, "path", path, "request_id", reqID, "err", err)
		if netx.IsTransportError(err) {
			return fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		return err
	}
	defer resp.Body.Close()

	c.log.Debug(ctx, "request done", "method", method, "path", path, "status", resp.StatusCode,
		"request_id", reqID, "elapsed", time.Since(started))

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		if netx.IsTransportError(err) {
			return fmt.Errorf("%w: read body: %v", ErrUnavailable, err)
		}
		return &RejectedError{StatusCode: resp.StatusCode, Err: fmt.Errorf("%w: %v", ErrMalformedResponse, err)}
	}

	if !successFor(method, resp.StatusCode) {
		return &RejectedError{StatusCode: resp.StatusCode, Detail: parseDetail(data)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &RejectedError{StatusCode: resp.StatusCode, Err: fmt.Errorf("%w: %v", ErrMalformedResponse, err)}
	}
	return nil
}

// successFor: reads must answer exactly 200, writes any 2xx.
func successFor(method string, status int) bool {
	if method == http.MethodGet {
		return status == http.StatusOK
	}
	return status >= 200 && status < 300
}

// parseDetail extracts the human-readable error from a rejection body. The
// backend sends {"detail": "..."}; validation failures carry a list of
// {"msg": "..."} objects instead.
func parseDetail(data []byte) string {
	var body struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(data, &body); err != nil || len(body.Detail) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(body.Detail, &s); err == nil {
		return s
	}

	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(body.Detail, &items); err != nil {
		return ""
	}
	msgs := make([]string, 0, len(items))
	for _, it := range items {
		if it.Msg != "" {
			msgs = append(msgs, it.Msg)
		}
	}
	return strings.Join(msgs, "; ")
}

var _ Client = (*HTTPClient)(nil)

// IsRejected reports whether err is an application-level rejection and
// returns it.
func IsRejected(err error) (*RejectedError, bool) {
	var rej *RejectedError
	if errors.As(err, &rej) {
		return rej, true
	}
	return nil, false
}

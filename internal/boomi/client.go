// Package boomi implements the client core for launching processes on the
// Boomi AtomSphere platform: name resolution, relationship checks, the
// execution request, and status polling.
package boomi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"boomictl/pkg/api"
)

// ConnectionContext addresses and authenticates every API request.
// It is immutable once resolved; each invocation owns its own value.
type ConnectionContext struct {
	BaseURL    string // "https://api.boomi.com"
	PathPrefix string // "/api/rest/v1/<account>"
	Username   string
	Password   string
}

// Client handles API calls to the Boomi platform.
type Client struct {
	conn       ConnectionContext
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger sets the logger used for request-level debug logging.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// NewClient creates a new client for the given connection.
func NewClient(conn ConnectionContext, opts ...Option) *Client {
	c := &Client{
		conn: conn,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) endpoint(resource string) string {
	return strings.TrimSuffix(c.conn.BaseURL, "/") + c.conn.PathPrefix + resource
}

// do performs one API request. The response body is decoded into out when
// out is non-nil and the response status is in accepted. Any failure to get
// a decodable answer surfaces as a *TransportError; callers translate empty
// query results into their own not-found outcomes.
func (c *Client) do(ctx context.Context, method, resource string, body, out any, accepted ...int) (int, error) {
	op := fmt.Sprintf("%s %s", method, resource)

	var reader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return 0, &TransportError{Op: op, Detail: "failed to marshal request", Err: err}
		}
		reader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(resource), reader)
	if err != nil {
		return 0, &TransportError{Op: op, Detail: "failed to create request", Err: err}
	}
	req.SetBasicAuth(c.conn.Username, c.conn.Password)
	req.Header.Add("Accept", "application/json")
	req.Header.Add("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, &TransportError{Op: op, Detail: "request failed", Err: err}
	}
	defer resp.Body.Close()

	c.logger.DebugContext(ctx, "api call", "method", method, "resource", resource, "status", resp.StatusCode)

	ok := false
	for _, code := range accepted {
		if resp.StatusCode == code {
			ok = true
			break
		}
	}
	if !ok {
		respBody, _ := io.ReadAll(resp.Body)
		return resp.StatusCode, &TransportError{Op: op, StatusCode: resp.StatusCode, Detail: strings.TrimSpace(string(respBody))}
	}

	if out != nil && resp.StatusCode != http.StatusAccepted {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, &TransportError{Op: op, Detail: "failed to parse response", Err: err}
		}
	}

	return resp.StatusCode, nil
}

// queryOne runs an object query expected to match exactly one record.
func (c *Client) queryOne(ctx context.Context, resource, entity, name string, filter api.QueryRequest) (*api.QueryResult, error) {
	var resp api.QueryResponse
	if _, err := c.do(ctx, http.MethodPost, resource, filter, &resp, http.StatusOK); err != nil {
		return nil, err
	}

	switch {
	case resp.NumberOfResults == 0 || len(resp.Result) == 0:
		return nil, &NotFoundError{Entity: entity, Name: name}
	case resp.NumberOfResults > 1:
		return nil, &AmbiguityError{Entity: entity, Name: name, Matches: resp.NumberOfResults}
	}

	return &resp.Result[0], nil
}

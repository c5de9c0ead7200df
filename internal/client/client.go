// Package client issues authenticated HTTP requests against the background
// service using resolved connection info.
package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/rudder-desktop/rudderctl/internal/config"
)

// requestTimeout bounds a single API call. The service answers on loopback,
// so anything longer means it is wedged.
const requestTimeout = 30 * time.Second

// Client talks to the background service's HTTP API.
type Client struct {
	base      string
	user      string
	password  string
	requestID string
	http      *http.Client
}

// New builds a Client from resolved connection info. Every request carries
// the same X-Request-Id so a CLI invocation can be correlated in the service
// logs.
func New(info *config.ConnectionInfo) *Client {
	return &Client{
		base:      fmt.Sprintf("http://%s:%s", info.Host, info.Port),
		user:      info.User,
		password:  info.Password,
		requestID: uuid.NewString(),
		http:      &http.Client{Timeout: requestTimeout},
	}
}

// Do performs one API call. endpoint must be absolute, e.g. "/v1/settings".
// The response body is returned for any status; a non-2xx status additionally
// yields an error, so callers can still print the body the service sent.
func (c *Client) Do(ctx context.Context, method, endpoint string, body io.Reader) ([]byte, error) {
	if !strings.HasPrefix(endpoint, "/") {
		return nil, fmt.Errorf("endpoint %q must start with /", endpoint)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+endpoint, body)
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(c.user, c.password)
	req.Header.Set("X-Request-Id", c.requestID)
	req.Header.Set("Content-Type", "application/json")

	logrus.Debugf("%s %s%s", method, c.base, endpoint)
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach the background service: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return payload, fmt.Errorf("%s %s returned %s", method, endpoint, resp.Status)
	}
	return payload, nil
}

// Get performs a GET request against endpoint.
func (c *Client) Get(ctx context.Context, endpoint string) ([]byte, error) {
	return c.Do(ctx, http.MethodGet, endpoint, nil)
}

// Put performs a PUT request against endpoint.
func (c *Client) Put(ctx context.Context, endpoint string, body io.Reader) ([]byte, error) {
	return c.Do(ctx, http.MethodPut, endpoint, body)
}

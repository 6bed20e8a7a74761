// Package mirror is the HTTP/WebSocket client for the remote mirror
// service. It classifies failures into ErrUnavailable and
// ErrUnauthorized so the orchestrator can decide retry behavior without
// inspecting transport details.
package mirror

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/iudanet/officesync/pkg/api"
)

// Client talks to one mirror server on behalf of one device.
type Client struct {
	httpClient *http.Client
	baseURL    string
	deviceID   string

	mu    sync.RWMutex
	token string
}

// NewClient builds a mirror client. baseURL has no trailing slash,
// e.g. "http://localhost:8080".
func NewClient(baseURL, deviceID string) *Client {
	return &Client{
		baseURL:  baseURL,
		deviceID: deviceID,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// SetToken installs the access token used on subsequent requests.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Client) accessToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Register creates a server-side account.
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error) {
	var resp api.RegisterResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/register", req, &resp); err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// GetSalt fetches the public salt for username.
func (c *Client) GetSalt(ctx context.Context, username string) (*api.SaltResponse, error) {
	var resp api.SaltResponse
	path := fmt.Sprintf("/api/v1/auth/salt/%s", username)
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("get salt request failed: %w", err)
	}
	return &resp, nil
}

// Login exchanges the derived auth key hash for a token pair.
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/login", req, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// Refresh trades a refresh token for a fresh token pair.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	req := api.RefreshRequest{RefreshToken: refreshToken}
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/refresh", req, &resp); err != nil {
		return nil, fmt.Errorf("refresh request failed: %w", err)
	}
	return &resp, nil
}

// Write upserts one record. Last writer wins on the server.
func (c *Client) Write(ctx context.Context, collection, id string, data json.RawMessage) error {
	path := fmt.Sprintf("/api/v1/collections/%s/%s", collection, id)
	req := api.WriteRequest{Data: data, DeviceID: c.deviceID}
	if err := c.doRequest(ctx, http.MethodPut, path, req, nil); err != nil {
		return fmt.Errorf("write %s/%s: %w", collection, id, err)
	}
	return nil
}

// Delete removes one record. A record already gone on the server is a
// success: the operation's goal state holds.
func (c *Client) Delete(ctx context.Context, collection, id string) error {
	path := fmt.Sprintf("/api/v1/collections/%s/%s", collection, id)
	err := c.doRequest(ctx, http.MethodDelete, path, nil, nil)
	if err != nil {
		var se *statusError
		if errors.As(err, &se) && se.code == http.StatusNotFound {
			return nil
		}
		return fmt.Errorf("delete %s/%s: %w", collection, id, err)
	}
	return nil
}

// ReadCollection fetches the full remote snapshot of one collection.
func (c *Client) ReadCollection(ctx context.Context, collection string) ([]api.Envelope, error) {
	var snap api.Snapshot
	path := fmt.Sprintf("/api/v1/collections/%s", collection)
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &snap); err != nil {
		return nil, fmt.Errorf("read collection %s: %w", collection, err)
	}
	return snap.Records, nil
}

// PutSyncMark records this device's last successful sync time.
func (c *Client) PutSyncMark(ctx context.Context, mark api.SyncMark) error {
	path := fmt.Sprintf("/api/v1/sync_metadata/%s", mark.DeviceID)
	if err := c.doRequest(ctx, http.MethodPut, path, mark, nil); err != nil {
		return fmt.Errorf("put sync mark: %w", err)
	}
	return nil
}

// GetSyncMark reads a device's last recorded sync time.
func (c *Client) GetSyncMark(ctx context.Context, deviceID string) (api.SyncMark, error) {
	var mark api.SyncMark
	path := fmt.Sprintf("/api/v1/sync_metadata/%s", deviceID)
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &mark); err != nil {
		return api.SyncMark{}, fmt.Errorf("get sync mark: %w", err)
	}
	return mark, nil
}

// statusError carries the HTTP status so callers can special-case
// codes; it always wraps one of the package sentinels for the rest.
type statusError struct {
	code    int
	message string
	wrapped error
}

func (e *statusError) Error() string {
	return fmt.Sprintf("server error (%d): %s", e.code, e.message)
}

func (e *statusError) Unwrap() error { return e.wrapped }

func classify(code int) error {
	switch {
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return ErrUnauthorized
	case code >= 500:
		return ErrUnavailable
	default:
		return nil
	}
}

func (c *Client) doRequest(ctx context.Context, method, path string, body, result any) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.accessToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := string(respBody)
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Message != "" {
			message = errResp.Message
		}
		se := &statusError{code: resp.StatusCode, message: message}
		if wrapped := classify(resp.StatusCode); wrapped != nil {
			se.wrapped = wrapped
		}
		return se
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

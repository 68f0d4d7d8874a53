// Package remote implements the HTTP client for the portfolio
// backend's project collection. Every operation is a single round
// trip: no retries, no caching, no batching. Failures of any kind
// surface as *Error so callers can treat them uniformly, while the
// status code stays available for display wording.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"portfolio/internal/domain/models"
	"portfolio/internal/httputil"
)

// DefaultTimeout is the HTTP timeout applied when none is configured.
// Timeouts are a transport concern; callers see them as any other
// failed call.
const DefaultTimeout = 30 * time.Second

// Error is the uniform failure signal for remote operations. A zero
// StatusCode means the request never produced a response (transport
// failure, timeout, cancelled context).
type Error struct {
	Op         string
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	return fmt.Sprintf("%s: %s (status %d)", e.Op, e.Message, e.StatusCode)
}

// NotFound reports whether the backend answered 404. Callers are not
// required to inspect this; it exists for views that want a distinct
// not-found wording.
func (e *Error) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// Client talks to one REST resource at {base}/projects. The base URL
// is fixed at construction and used unchanged for every call.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
}

// NewClientWithHTTPClient creates a client with a custom http.Client.
func NewClientWithHTTPClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// ListAll fetches the entire collection. Filtering and pagination are
// client-side concerns; the backend returns everything.
func (c *Client) ListAll(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	if err := c.do(ctx, "list projects", http.MethodGet, c.baseURL+"/projects", nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// GetByID fetches a single project. A missing record comes back as a
// *Error whose NotFound() is true.
func (c *Client) GetByID(ctx context.Context, id string) (*models.Project, error) {
	var project models.Project
	if err := c.do(ctx, "get project", http.MethodGet, c.baseURL+"/projects/"+id, nil, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// Create submits a draft; the backend assigns the ID and returns the
// full record.
func (c *Client) Create(ctx context.Context, draft models.ProjectDraft) (*models.Project, error) {
	var project models.Project
	if err := c.do(ctx, "create project", http.MethodPost, c.baseURL+"/projects", &draft, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// Update replaces all mutable fields of the record at id. The ID in
// the path is authoritative; the draft carries none.
func (c *Client) Update(ctx context.Context, id string, draft models.ProjectDraft) (*models.Project, error) {
	var project models.Project
	if err := c.do(ctx, "update project", http.MethodPut, c.baseURL+"/projects/"+id, &draft, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// Delete removes the record at id.
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, "delete project", http.MethodDelete, c.baseURL+"/projects/"+id, nil, nil)
}

// do performs one round trip and decodes the response into out when
// out is non-nil. Any non-2xx status or transport failure becomes a
// *Error carrying op and status.
func (c *Client) do(ctx context.Context, op, method, url string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return &Error{Op: op, Message: fmt.Sprintf("encode request: %v", err)}
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return &Error{Op: op, Message: fmt.Sprintf("build request: %v", err)}
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Error{Op: op, Message: err.Error()}
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Op: op, StatusCode: resp.StatusCode, Message: fmt.Sprintf("read response: %v", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{Op: op, StatusCode: resp.StatusCode, Message: errorMessage(respBody)}
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return &Error{Op: op, StatusCode: resp.StatusCode, Message: fmt.Sprintf("decode response: %v", err)}
		}
	}

	return nil
}

// errorMessage extracts the backend's error message when the body is
// a well-formed error payload, falling back to the raw body.
func errorMessage(body []byte) string {
	var errResp httputil.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
		return errResp.Message
	}
	if len(body) == 0 {
		return "request failed"
	}
	return string(body)
}

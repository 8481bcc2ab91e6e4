// Package api is the HTTP client for the remote task store.
package api

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

	"taskboard/internal/model"
)

// StatusError is any non-2xx response from the store. The UI does not
// distinguish error kinds beyond this.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api: unexpected status %d: %s", e.Code, e.Body)
}

type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a client for the task collection resource rooted at
// baseURL (for example http://localhost:8080/api).
func NewClient(baseURL string) *Client {
	return NewClientWithHTTP(baseURL, &http.Client{Timeout: 15 * time.Second})
}

func NewClientWithHTTP(baseURL string, hc *http.Client) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    hc,
	}
}

// createRequest is the POST /tasks payload; the store assigns the id and
// defaults for everything else.
type createRequest struct {
	Description string `json:"description"`
}

func (c *Client) ListTasks(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	if err := c.do(ctx, http.MethodGet, "/tasks", nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (c *Client) GetTask(ctx context.Context, id string) (model.Task, error) {
	var task model.Task
	err := c.do(ctx, http.MethodGet, "/tasks/"+url.PathEscape(id), nil, &task)
	return task, err
}

// CreateTask submits a new task. The description must already have passed
// client-side validation; it is sent untrimmed.
func (c *Client) CreateTask(ctx context.Context, description string) (model.Task, error) {
	if err := model.ValidateDescription(description); err != nil {
		return model.Task{}, err
	}
	var task model.Task
	err := c.do(ctx, http.MethodPost, "/tasks", createRequest{Description: description}, &task)
	return task, err
}

// UpdateTask sends the full record and returns the store's updated copy.
func (c *Client) UpdateTask(ctx context.Context, in model.Task) (model.Task, error) {
	var task model.Task
	err := c.do(ctx, http.MethodPut, "/tasks/"+url.PathEscape(in.ID), in, &task)
	return task, err
}

func (c *Client) DeleteTask(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/tasks/"+url.PathEscape(id), nil, nil)
}

func (c *Client) DailySummary(ctx context.Context) (model.DailySummary, error) {
	var summary model.DailySummary
	err := c.do(ctx, http.MethodGet, "/tasks/summary", nil, &summary)
	return summary, err
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("api: encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("api: build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("api: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("api: decode response: %w", err)
	}
	return nil
}

// Package client is the Go consumer of the tasklight HTTP API. It keeps
// the session cookie in a jar and caches fetched resources by logical
// key; every mutation invalidates the affected keys so the next read
// reflects server truth. No optimistic updates are performed.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"sync"
	"time"
)

type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

type Task struct {
	ID          string     `json:"id"`
	OwnerID     string     `json:"owner_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Completed   bool       `json:"completed"`
	Priority    string     `json:"priority"`
	Category    string     `json:"category"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

type CreateTaskInput struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Priority    string     `json:"priority,omitempty"`
	Category    string     `json:"category,omitempty"`
}

type UpdateTaskInput struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Completed   *bool      `json:"completed,omitempty"`
	Priority    *string    `json:"priority,omitempty"`
	Category    *string    `json:"category,omitempty"`
}

// APIError is the server's error taxonomy as seen by the client.
type APIError struct {
	StatusCode int
	Message    string            `json:"message"`
	Fields     map[string]string `json:"fields,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

const (
	cacheTasks        = "tasks"
	cacheMe           = "me"
	cacheQuoteDaily   = "quote:daily"
	cacheQuoteRefresh = "quote:daily:refresh"
)

type Client struct {
	baseURL string
	http    *http.Client

	mu    sync.Mutex
	cache map[string]interface{}
}

func New(baseURL string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Jar: jar},
		cache:   map[string]interface{}{},
	}, nil
}

func (c *Client) Register(ctx context.Context, username, password string) (*User, error) {
	var user User
	err := c.do(ctx, http.MethodPost, "/api/auth/register", map[string]string{
		"username": username,
		"password": password,
	}, &user)
	if err != nil {
		return nil, err
	}

	c.invalidate(cacheMe, cacheTasks)
	return &user, nil
}

func (c *Client) Login(ctx context.Context, username, password string) (*User, error) {
	var user User
	err := c.do(ctx, http.MethodPost, "/api/auth/login", map[string]string{
		"username": username,
		"password": password,
	}, &user)
	if err != nil {
		return nil, err
	}

	c.invalidate(cacheMe, cacheTasks)
	return &user, nil
}

func (c *Client) Logout(ctx context.Context) error {
	if err := c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil); err != nil {
		return err
	}

	c.invalidate(cacheMe, cacheTasks)
	return nil
}

func (c *Client) Me(ctx context.Context) (*User, error) {
	if cached, ok := c.get(cacheMe); ok {
		user := cached.(User)
		return &user, nil
	}

	var user User
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &user); err != nil {
		return nil, err
	}

	c.put(cacheMe, user)
	return &user, nil
}

func (c *Client) Tasks(ctx context.Context) ([]Task, error) {
	if cached, ok := c.get(cacheTasks); ok {
		return cached.([]Task), nil
	}

	var tasks []Task
	if err := c.do(ctx, http.MethodGet, "/api/tasks", nil, &tasks); err != nil {
		return nil, err
	}

	c.put(cacheTasks, tasks)
	return tasks, nil
}

func (c *Client) CreateTask(ctx context.Context, in CreateTaskInput) (*Task, error) {
	var task Task
	if err := c.do(ctx, http.MethodPost, "/api/tasks", in, &task); err != nil {
		return nil, err
	}

	c.invalidate(cacheTasks)
	return &task, nil
}

func (c *Client) UpdateTask(ctx context.Context, id string, in UpdateTaskInput) (*Task, error) {
	var task Task
	if err := c.do(ctx, http.MethodPatch, "/api/tasks/"+id, in, &task); err != nil {
		return nil, err
	}

	c.invalidate(cacheTasks)
	return &task, nil
}

func (c *Client) DeleteTask(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/api/tasks/"+id, nil, nil); err != nil {
		return err
	}

	c.invalidate(cacheTasks)
	return nil
}

func (c *Client) DailyQuote(ctx context.Context) (*Quote, error) {
	return c.quote(ctx, "/api/quotes/daily", cacheQuoteDaily)
}

// RefreshQuote re-fetches under a separate cache key. The server still
// serves the same quote until the day changes; refresh is cosmetic.
func (c *Client) RefreshQuote(ctx context.Context) (*Quote, error) {
	c.invalidate(cacheQuoteRefresh)
	return c.quote(ctx, "/api/quotes/daily/refresh", cacheQuoteRefresh)
}

func (c *Client) quote(ctx context.Context, path, key string) (*Quote, error) {
	if cached, ok := c.get(key); ok {
		quote := cached.(Quote)
		return &quote, nil
	}

	var quote Quote
	if err := c.do(ctx, http.MethodGet, path, nil, &quote); err != nil {
		return nil, err
	}

	c.put(key, quote)
	return &quote, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody *bytes.Buffer
	if body != nil {
		reqBody = &bytes.Buffer{}
		if err := json.NewEncoder(reqBody).Encode(body); err != nil {
			return err
		}
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: "request failed"}
		_ = json.NewDecoder(resp.Body).Decode(apiErr)
		return apiErr
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func (c *Client) get(key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.cache[key]
	return v, ok
}

func (c *Client) put(key string, v interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache[key] = v
}

func (c *Client) invalidate(keys ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, key := range keys {
		delete(c.cache, key)
	}
}

// Package client talks to the todo REST API over HTTP.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/xyz-asif/todoservice/internal/features/todos"
	apperrors "github.com/xyz-asif/todoservice/pkg/errors"
)

// Namespace selects which todo store the server uses.
type Namespace string

const (
	InMemory   Namespace = ""
	Persistent Namespace = "/jpa"
)

// APIError is returned for any non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%d %s: %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}

// Is lets errors.Is(err, apperrors.ErrNotFound) match a 404.
func (e *APIError) Is(target error) bool {
	return target == apperrors.ErrNotFound && e.StatusCode == http.StatusNotFound
}

type Client struct {
	BaseURL   string
	Username  string
	Namespace Namespace
	HTTP      *http.Client
}

func New(baseURL, username string, ns Namespace) *Client {
	return &Client{
		BaseURL:   strings.TrimSuffix(baseURL, "/"),
		Username:  username,
		Namespace: ns,
		HTTP:      &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) collectionURL() string {
	return c.BaseURL + string(c.Namespace) + "/users/" + url.PathEscape(c.Username) + "/todos"
}

func (c *Client) itemURL(id int64) string {
	return c.collectionURL() + "/" + strconv.FormatInt(id, 10)
}

func (c *Client) List(ctx context.Context) ([]todos.Todo, error) {
	var out []todos.Todo
	if _, err := c.do(ctx, http.MethodGet, c.collectionURL(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Get(ctx context.Context, id int64) (*todos.Todo, error) {
	var out todos.Todo
	if _, err := c.do(ctx, http.MethodGet, c.itemURL(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create posts a new todo and returns the id taken from the Location header.
func (c *Client) Create(ctx context.Context, todo todos.Todo) (int64, error) {
	resp, err := c.do(ctx, http.MethodPost, c.collectionURL(), todo, nil)
	if err != nil {
		return 0, err
	}
	loc := resp.Header.Get("Location")
	if loc == "" {
		return 0, fmt.Errorf("create: response has no Location header")
	}
	u, err := url.Parse(loc)
	if err != nil {
		return 0, fmt.Errorf("create: parse Location %q: %w", loc, err)
	}
	id, err := strconv.ParseInt(path.Base(u.Path), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("create: Location %q does not end in an id", loc)
	}
	return id, nil
}

func (c *Client) Update(ctx context.Context, todo todos.Todo) (*todos.Todo, error) {
	var out todos.Todo
	if _, err := c.do(ctx, http.MethodPut, c.itemURL(todo.ID), todo, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Delete(ctx context.Context, id int64) error {
	_, err := c.do(ctx, http.MethodDelete, c.itemURL(id), nil, nil)
	return err
}

func (c *Client) do(ctx context.Context, method, target string, in, out any) (*http.Response, error) {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	httpClient := c.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp, decodeError(resp)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp, fmt.Errorf("decode %s %s: %w", method, target, err)
		}
	}
	return resp, nil
}

func decodeError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var payload struct {
		Error string `json:"error"`
		Code  string `json:"code"`
	}
	if json.Unmarshal(data, &payload) == nil && payload.Error != "" {
		apiErr.Message = payload.Error
		apiErr.Code = payload.Code
	}
	return apiErr
}

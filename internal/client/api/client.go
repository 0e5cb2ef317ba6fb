// Package api is the HTTP client for the bulletin board service. It knows
// the wire contract and nothing about sessions or rendering.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Atgsasakazh5/bulletinboard-app/internal/models"
)

// StatusError is returned when the server answers with a status outside the
// range an operation accepts. Message carries the server's error detail when
// the body had one; callers decide whether to show it.
type StatusError struct {
	Op      string
	Code    int
	Status  string
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %s", e.Op, e.Status)
}

type Client struct {
	base string
	http *http.Client
}

// New builds a client for the service at serverURL. The /api prefix is
// appended here so callers pass plain host URLs.
func New(serverURL string, timeout time.Duration) *Client {
	return &Client{
		base: strings.TrimRight(serverURL, "/") + "/api",
		http: &http.Client{Timeout: timeout},
	}
}

// ListPosts fetches the feed. Order is whatever the server returns; the
// client never re-sorts.
func (c *Client) ListPosts(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	if err := c.do(ctx, http.MethodGet, "/posts", "", nil, &posts, anySuccess); err != nil {
		return nil, err
	}
	return posts, nil
}

func (c *Client) Login(ctx context.Context, username, password string) (models.Identity, error) {
	req := models.LoginRequest{Username: username, Password: password}
	var resp models.LoginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", req, &resp, anySuccess); err != nil {
		return models.Identity{}, err
	}
	return models.Identity{Token: resp.AccessToken, Username: resp.Username}, nil
}

func (c *Client) Signup(ctx context.Context, username, password string) error {
	req := models.SignupRequest{Username: username, Password: password}
	return c.do(ctx, http.MethodPost, "/auth/signup", "", req, nil, anySuccess)
}

func (c *Client) CreatePost(ctx context.Context, token, author, content string) error {
	req := models.PostRequest{Author: author, Content: content}
	return c.do(ctx, http.MethodPost, "/posts", token, req, nil, anySuccess)
}

// UpdatePost replaces the post wholesale; author and content are both sent
// even when only one changed.
func (c *Client) UpdatePost(ctx context.Context, token string, id int64, author, content string) error {
	req := models.PostRequest{Author: author, Content: content}
	path := fmt.Sprintf("/posts/%d", id)
	return c.do(ctx, http.MethodPut, path, token, req, nil, anySuccess)
}

// DeletePost accepts 204 and nothing else. A 2xx that is not 204 still
// counts as a failure so a half-working server never looks like success.
func (c *Client) DeletePost(ctx context.Context, token string, id int64) error {
	path := fmt.Sprintf("/posts/%d", id)
	return c.do(ctx, http.MethodDelete, path, token, nil, nil, func(code int) bool {
		return code == http.StatusNoContent
	})
}

func anySuccess(code int) bool {
	return code >= 200 && code < 300
}

func (c *Client) do(ctx context.Context, method, path, token string, body, out any, accept func(int) bool) error {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s %s: encode body: %w", method, path, err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	op := method + " " + path
	if !accept(resp.StatusCode) {
		se := &StatusError{Op: op, Code: resp.StatusCode, Status: resp.Status}
		var detail models.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&detail); err == nil {
			se.Message = detail.Message
		}
		return se
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%s: decode response: %w", op, err)
		}
	}
	return nil
}

// Package api is the HTTP client of the public posts API.
//
// Every failure is one of *ServerError, *NetworkError or *RequestError; their
// messages are meant to be shown to the user as is.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/postview/internal/client/models"
)

const DefaultBaseURL = "https://jsonplaceholder.typicode.com"

type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient returns a client for baseURL. Each request is bounded by timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Posts fetches GET /posts.
func (c *Client) Posts(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	if err := c.get(ctx, "/posts", &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// Post fetches GET /posts/{id}.
func (c *Client) Post(ctx context.Context, id int) (models.Post, error) {
	var p models.Post
	if err := c.get(ctx, fmt.Sprintf("/posts/%d", id), &p); err != nil {
		return models.Post{}, err
	}
	return p, nil
}

func (c *Client) get(ctx context.Context, path string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return &RequestError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newServerError(resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return &RequestError{Err: fmt.Errorf("decode %s: %w", path, err)}
	}
	return nil
}

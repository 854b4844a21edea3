// Package client is the Go client for the DeliveCROUS API. One Client is
// one authenticated session: Login or Register stores the bearer token,
// Logout drops it. There is no server-side revocation.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

// APIError carries the HTTP status and the server's message field.
type APIError struct {
	Status  int
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

type Client struct {
	baseURL string
	http    *http.Client

	mu    sync.RWMutex
	token string
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Client) setToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// Logout drops the credential client-side; the token itself stays valid
// until it expires.
func (c *Client) Logout() { c.setToken("") }

// do issues one request and decodes the response into out (ignored when
// nil). Non-2xx responses come back as *APIError.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		apiErr := &APIError{Status: res.StatusCode}
		if err := json.NewDecoder(res.Body).Decode(apiErr); err != nil || apiErr.Message == "" {
			apiErr.Message = http.StatusText(res.StatusCode)
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(res.Body).Decode(out)
}

// ----- Auth -----

func (c *Client) Register(ctx context.Context, email, password, name string) (*Session, error) {
	var s Session
	err := c.do(ctx, http.MethodPost, "/register", map[string]string{
		"email": email, "password": password, "name": name,
	}, &s)
	if err != nil {
		return nil, err
	}
	c.setToken(s.Token)
	return &s, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	var s Session
	err := c.do(ctx, http.MethodPost, "/login", map[string]string{
		"email": email, "password": password,
	}, &s)
	if err != nil {
		return nil, err
	}
	c.setToken(s.Token)
	return &s, nil
}

// ----- Profile & favorites -----

// UpdateProfile patches the allowed profile fields (phone, address,
// buildingInfo, accessCode, deliveryInstructions).
func (c *Client) UpdateProfile(ctx context.Context, userID uint, updates map[string]any) (*User, error) {
	var u User
	err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/users/%d", userID), updates, &u)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) Favorites(ctx context.Context, userID uint) ([]uint, error) {
	ids := make([]uint, 0)
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/users/%d/favorites", userID), nil, &ids)
	return ids, err
}

func (c *Client) AddFavorite(ctx context.Context, userID, mealID uint) (*User, error) {
	var u User
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/users/%d/favorites/%d", userID, mealID), nil, &u)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) RemoveFavorite(ctx context.Context, userID, mealID uint) (*User, error) {
	var u User
	err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/users/%d/favorites/%d", userID, mealID), nil, &u)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

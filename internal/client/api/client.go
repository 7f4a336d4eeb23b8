// Package api implements the HTTP client for the auth service
// endpoints. It decodes the server's JSON envelope and turns error
// responses into plain errors carrying the server message.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/authservice/internal/common"
)

const requestTimeout = 10 * time.Second

// Session is what a successful login returns.
type Session struct {
	Token     string
	ExpiresIn int
}

// Identity is the authenticated subject as reported by the server.
type Identity struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: requestTimeout},
	}
}

// envelope mirrors the server response format.
type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) Signup(ctx context.Context, username, password, email string) error {
	body := map[string]string{"username": username, "password": password, "email": email}
	_, err := c.do(ctx, http.MethodPost, "/auth/signup", body, "")
	return err
}

func (c *Client) Login(ctx context.Context, username, password string) (*Session, error) {
	body := map[string]string{"username": username, "password": password}
	data, err := c.do(ctx, http.MethodPost, "/auth/login", body, "")
	if err != nil {
		return nil, err
	}

	var s struct {
		Token     string `json:"token"`
		ExpiresIn int    `json:"expiresIn"`
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("error decoding response: %w", err)
	}

	return &Session{Token: s.Token, ExpiresIn: s.ExpiresIn}, nil
}

func (c *Client) WhoAmI(ctx context.Context, token string) (*Identity, error) {
	data, err := c.do(ctx, http.MethodGet, "/auth/me", nil, token)
	if err != nil {
		return nil, err
	}

	var id Identity
	if err := json.Unmarshal(data, &id); err != nil {
		return nil, fmt.Errorf("error decoding response: %w", err)
	}

	return &id, nil
}

func (c *Client) Ping(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodGet, "/ping", nil, "")
	return err
}

// do performs one request and unwraps the envelope. A non-success
// status becomes an error with the server-provided message.
func (c *Client) do(ctx context.Context, method, path string, body any, token string) (json.RawMessage, error) {
	var reqBody *bytes.Buffer
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(common.AuthHeaderName, common.BearerPrefix+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error performing request: %w", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("error decoding response: %w", err)
	}

	if env.Status != "success" {
		if env.Message != "" {
			return nil, errors.New(env.Message)
		}
		return nil, fmt.Errorf("server returned status %d", resp.StatusCode)
	}

	return env.Data, nil
}

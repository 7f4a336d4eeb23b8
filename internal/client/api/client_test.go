package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/signup", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "alice01", body["username"])
		assert.Equal(t, "a@b.com", body["email"])

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{"status": "success", "message": "User created successfully"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	err := c.Signup(context.Background(), "alice01", "Secret123", "a@b.com")
	assert.NoError(t, err)
}

func TestSignupConflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]any{"status": "error", "message": "username already exists"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	err := c.Signup(context.Background(), "alice01", "Secret123", "a@b.com")
	require.Error(t, err)
	assert.Equal(t, "username already exists", err.Error())
}

func TestLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/login", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"status": "success",
			"data":   map[string]any{"token": "signed.jwt.token", "expiresIn": 86400},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	session, err := c.Login(context.Background(), "alice01", "Secret123")
	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", session.Token)
	assert.Equal(t, 86400, session.ExpiresIn)
}

func TestLoginRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]any{"status": "error", "message": "invalid credentials"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.Login(context.Background(), "alice01", "WrongPass1")
	require.Error(t, err)
	assert.Equal(t, "invalid credentials", err.Error())
}

func TestWhoAmI(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/me", r.URL.Path)
		assert.Equal(t, "Bearer signed.jwt.token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"status": "success",
			"data":   map[string]any{"username": "alice01", "email": "a@b.com"},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	id, err := c.WhoAmI(context.Background(), "signed.jwt.token")
	require.NoError(t, err)
	assert.Equal(t, "alice01", id.Username)
	assert.Equal(t, "a@b.com", id.Email)
}

func TestPing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/ping", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"status": "success", "message": "pong"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	assert.NoError(t, c.Ping(context.Background()))
}

func TestServerUnreachable(t *testing.T) {
	c := NewClient("http://127.0.0.1:1")
	err := c.Ping(context.Background())
	assert.Error(t, err)
}

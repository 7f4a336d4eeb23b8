package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"

	"github.com/dmitrijs2005/authservice/internal/common"
)

const (
	msgMissingSignupFields = "Missing required fields: username, password, and email"
	msgMissingLoginFields  = "Missing username or password"
	msgInvalidCredentials  = "invalid credentials"
	msgAuthFailed          = "authentication failed"
	msgInternalError       = "An unexpected error occurred"
)

// Handler builds the route table. All routes answer with the JSON
// envelope from response.go.
func (s *Server) Handler() http.Handler {
	router := httprouter.New()

	router.HandlerFunc(http.MethodPost, "/auth/signup", s.signup)
	router.HandlerFunc(http.MethodPost, "/auth/login", s.login)
	router.HandlerFunc(http.MethodGet, "/auth/me", s.whoami)
	router.HandlerFunc(http.MethodGet, "/ping", s.ping)

	return router
}

type signupRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

func (s *Server) signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil ||
		req.Username == "" || req.Password == "" || req.Email == "" {
		writeError(w, http.StatusBadRequest, msgMissingSignupFields)
		return
	}

	_, err := s.users.Signup(r.Context(), req.Username, req.Password, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorInvalidUsername),
			errors.Is(err, common.ErrorInvalidEmail),
			errors.Is(err, common.ErrorWeakPassword):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, common.ErrorUsernameExists),
			errors.Is(err, common.ErrorEmailExists):
			writeError(w, http.StatusConflict, err.Error())
		default:
			s.logger.Error(r.Context(), "signup failed", "error", err)
			writeError(w, http.StatusInternalServerError, msgInternalError)
		}
		return
	}

	writeSuccess(w, http.StatusCreated, "User created successfully")
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil ||
		req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, msgMissingLoginFields)
		return
	}

	result, err := s.users.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			// same answer for unknown user and wrong password
			writeError(w, http.StatusUnauthorized, msgInvalidCredentials)
			return
		}
		s.logger.Error(r.Context(), "login failed", "error", err)
		writeError(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	writeData(w, http.StatusOK, map[string]any{
		"token":     result.AccessToken,
		"expiresIn": result.ExpiresIn,
	})
}

func (s *Server) whoami(w http.ResponseWriter, r *http.Request) {
	token, err := bearerToken(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, msgAuthFailed)
		return
	}

	user, err := s.users.WhoAmI(r.Context(), token)
	if err != nil {
		if errors.Is(err, common.ErrorInternal) {
			writeError(w, http.StatusInternalServerError, msgInternalError)
			return
		}
		// the precise failure goes to the log, the client gets one answer
		s.logger.Warn(r.Context(), "token rejected", "error", err)
		writeError(w, http.StatusUnauthorized, msgAuthFailed)
		return
	}

	writeData(w, http.StatusOK, map[string]any{
		"username": user.Username,
		"email":    user.Email,
	})
}

func (s *Server) ping(w http.ResponseWriter, _ *http.Request) {
	writeSuccess(w, http.StatusOK, "pong")
}

// bearerToken extracts the token from "Authorization: Bearer <token>".
func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get(common.AuthHeaderName)
	if header == "" || !strings.HasPrefix(header, common.BearerPrefix) {
		return "", common.ErrorInvalidAuthHeaderFormat
	}

	token := strings.TrimPrefix(header, common.BearerPrefix)
	if token == "" {
		return "", common.ErrorInvalidAuthHeaderFormat
	}

	return token, nil
}

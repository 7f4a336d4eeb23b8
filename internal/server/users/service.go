package users

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"github.com/dmitrijs2005/authservice/internal/common"
	"github.com/dmitrijs2005/authservice/internal/cryptox"
	"github.com/dmitrijs2005/authservice/internal/server/auth"
	"github.com/dmitrijs2005/authservice/internal/server/config"
)

// LoginResult is what a successful login hands to the transport layer:
// the signed token and its validity in whole seconds.
type LoginResult struct {
	AccessToken string
	ExpiresIn   int
}

// Service orchestrates the three auth operations on top of the
// repository, the hasher and the token signer. It holds no per-request
// state; the secret and TTL are fixed at construction.
type Service struct {
	repo                  Repository
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

func NewService(repo Repository, cfg *config.Config) *Service {
	return &Service{
		repo:                  repo,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// Signup validates the input, rejects taken usernames/emails and
// stores a new identity record with a freshly generated salt.
func (s *Service) Signup(ctx context.Context, username, password, email string) (*User, error) {
	if err := validateSignup(username, password, email); err != nil {
		return nil, err
	}

	exists, err := s.repo.Exists(ctx, username)
	if err != nil {
		return nil, common.ErrorInternal
	}
	if exists {
		return nil, common.ErrorUsernameExists
	}

	exists, err = s.repo.EmailExists(ctx, email)
	if err != nil {
		return nil, common.ErrorInternal
	}
	if exists {
		return nil, common.ErrorEmailExists
	}

	salt, err := cryptox.GenerateSalt(cryptox.SaltLength)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &User{
		Username:     username,
		PasswordHash: cryptox.HashPassword(password, salt),
		Salt:         salt,
		Email:        email,
	}

	// A concurrent signup can still win between the checks above and
	// the insert; the unique constraints report it as the same conflict
	// the checks would have caught.
	user, err = s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorUsernameExists) || errors.Is(err, common.ErrorEmailExists) {
			return nil, err
		}
		return nil, common.ErrorInternal
	}

	return user, nil
}

// Login verifies the password against the stored salted hash and, on
// success, issues a token. Unknown users and wrong passwords are
// indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	if !s.checkPassword(user, password) {
		return nil, common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.Username, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return &LoginResult{
		AccessToken: token,
		ExpiresIn:   int(s.tokenValidityDuration.Seconds()),
	}, nil
}

// WhoAmI verifies the presented token and resolves its subject back to
// the stored identity. A subject that no longer exists surfaces as
// common.ErrorNotFound; the transport treats it like any other token
// failure.
func (s *Service) WhoAmI(ctx context.Context, token string) (*User, error) {
	username, err := auth.GetUsernameFromToken(token, s.jwtSecret)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}

	return user, nil
}

func (s *Service) checkPassword(user *User, candidate string) bool {
	hash := cryptox.HashPassword(candidate, user.Salt)
	return subtle.ConstantTimeCompare([]byte(hash), []byte(user.PasswordHash)) == 1
}

package services

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"careerkit/internal/models"
)

const (
	// TokenLifeSpan token expiration time
	TokenLifeSpan = time.Hour * 24 * 7
	// KeyAuthIdentity identity in http context
	KeyAuthIdentity = "auth_identity"
)

var (
	rxEmail    = regexp.MustCompile("^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$")
	rxUsername = regexp.MustCompile("^[a-zA-Z][a-zA-Z0-9_-]{0,17}$")
)

type LoginOutput struct {
	Token     string          `json:"-"`
	ExpiresAt time.Time       `json:"-"`
	User      models.Identity `json:"user"`
}

// Register creates a new user with a bcrypt-hashed password.
func (s *Service) Register(ctx context.Context, username, email, password string) error {
	email = strings.TrimSpace(email)
	if !rxEmail.MatchString(email) {
		return errors.WithMessage(ErrInvalidInput, "bad email address")
	}

	username = strings.TrimSpace(username)
	if !rxUsername.MatchString(username) {
		return errors.WithMessage(ErrInvalidInput, "bad username")
	}

	if password == "" {
		return errors.WithMessage(ErrInvalidInput, "password is required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return errors.Wrap(err, "could not hash password")
	}

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}
	return s.Store.CreateUser(ctx, &user)
}

// Login checks the password and mints a session token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (LoginOutput, error) {
	var out LoginOutput

	user, err := s.Store.UserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return out, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return out, ErrInvalidCredentials
	}

	out.User = models.Identity{
		UserID:   user.ID,
		Email:    user.Email,
		Username: user.Username,
	}

	payload, err := json.Marshal(out.User)
	if err != nil {
		return out, errors.Wrap(err, "could not encode identity")
	}

	out.Token, err = s.Codec.EncodeToString(string(payload))
	if err != nil {
		return out, errors.Wrap(err, "could not generate token")
	}
	out.ExpiresAt = time.Now().Add(TokenLifeSpan)

	return out, nil
}

// ResolveIdentity decodes a session token. It fails silently: a missing,
// malformed, or expired token resolves to nil, which callers treat as
// anonymous, never as an error.
func (s *Service) ResolveIdentity(token string) *models.Identity {
	if token == "" {
		return nil
	}

	payload, err := s.Codec.DecodeToString(token)
	if err != nil {
		return nil
	}

	var identity models.Identity
	if err := json.Unmarshal([]byte(payload), &identity); err != nil {
		return nil
	}
	if identity.UserID.IsZero() {
		return nil
	}
	return &identity
}

// AuthUser echoes the identity of the current session.
func (s *Service) AuthUser(ctx context.Context) (models.Identity, error) {
	identity, ok := identityFromContext(ctx)
	if !ok {
		return models.Identity{}, ErrUnauthenticated
	}
	return identity, nil
}

func identityFromContext(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(KeyAuthIdentity).(models.Identity)
	return identity, ok
}

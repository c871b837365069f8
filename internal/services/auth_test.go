package services

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careerkit/internal/storage"
)

func TestRegisterAndLogin(t *testing.T) {
	s := testService(t)
	ctx := context.Background()

	err := s.Register(ctx, "alice", "alice@example.com", "hunter22")
	require.NoError(t, err)

	out, err := s.Login(ctx, "alice@example.com", "hunter22")
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "alice", out.User.Username)
	assert.Equal(t, "alice@example.com", out.User.Email)
	assert.False(t, out.User.UserID.IsZero())
	assert.False(t, out.ExpiresAt.IsZero())
}

func TestRegisterValidation(t *testing.T) {
	s := testService(t)
	ctx := context.Background()

	tt := []struct {
		name     string
		username string
		email    string
		password string
	}{
		{"bad email", "alice", "not-an-email", "hunter22"},
		{"bad username", "x y z", "alice@example.com", "hunter22"},
		{"empty password", "alice", "alice@example.com", ""},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			err := s.Register(ctx, tc.username, tc.email, tc.password)
			assert.True(t, errors.Is(err, ErrInvalidInput))
		})
	}
}

func TestRegisterDuplicate(t *testing.T) {
	s := testService(t)
	ctx := context.Background()

	require.NoError(t, s.Register(ctx, "alice", "alice@example.com", "hunter22"))

	err := s.Register(ctx, "alice2", "alice@example.com", "hunter22")
	assert.True(t, errors.Is(err, storage.ErrConflict))

	err = s.Register(ctx, "alice", "other@example.com", "hunter22")
	assert.True(t, errors.Is(err, storage.ErrConflict))
}

func TestLoginBadCredentials(t *testing.T) {
	s := testService(t)
	ctx := context.Background()

	require.NoError(t, s.Register(ctx, "alice", "alice@example.com", "hunter22"))

	// unknown email and wrong password look the same to the caller
	_, err := s.Login(ctx, "nobody@example.com", "hunter22")
	assert.Equal(t, ErrInvalidCredentials, err)

	_, err = s.Login(ctx, "alice@example.com", "wrong")
	assert.Equal(t, ErrInvalidCredentials, err)
}

func TestResolveIdentityRoundTrip(t *testing.T) {
	s := testService(t)
	ctx := context.Background()

	require.NoError(t, s.Register(ctx, "alice", "alice@example.com", "hunter22"))
	out, err := s.Login(ctx, "alice@example.com", "hunter22")
	require.NoError(t, err)

	identity := s.ResolveIdentity(out.Token)
	require.NotNil(t, identity)
	assert.Equal(t, out.User, *identity)
}

func TestResolveIdentityGarbage(t *testing.T) {
	s := testService(t)

	assert.Nil(t, s.ResolveIdentity(""))
	assert.Nil(t, s.ResolveIdentity("not-a-token"))
}

func TestAuthUser(t *testing.T) {
	s := testService(t)

	_, err := s.AuthUser(context.Background())
	assert.Equal(t, ErrUnauthenticated, err)

	identity := testIdentity("alice")
	got, err := s.AuthUser(asUser(identity))
	require.NoError(t, err)
	assert.Equal(t, identity, got)
}

package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/todocards/internal/common"
	"github.com/dmitrijs2005/todocards/internal/server/auth"
	"github.com/dmitrijs2005/todocards/internal/server/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService(t *testing.T, ttl time.Duration) (*UserService, *fakeStore) {
	t.Helper()
	db, _ := newSQLMockDB(t)
	store := newFakeStore()
	s := NewUserService(db, &fakeRepoManager{s: store}, &config.Config{SecretKey: "k", TokenTTL: ttl})
	s.newID = func() string { return "user-1" }
	return s, store
}

func TestSignup_IssuesTokenForStoredUser(t *testing.T) {
	s, store := newUserService(t, 0)

	token, err := s.Signup(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Contains(t, store.users, "user-1")

	userID, err := auth.GetUserIDFromToken(token, []byte("k"))
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestSignup_StoreFailure(t *testing.T) {
	s, store := newUserService(t, 0)
	store.fail["users.Create"] = errors.New("db error: down")

	_, err := s.Signup(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error creating user")
}

func TestSignup_DistinctUsersGetDistinctTokens(t *testing.T) {
	s, _ := newUserService(t, 0)
	ids := []string{"a", "b"}
	s.newID = func() string {
		id := ids[0]
		ids = ids[1:]
		return id
	}

	t1, err := s.Signup(context.Background())
	require.NoError(t, err)
	t2, err := s.Signup(context.Background())
	require.NoError(t, err)

	u1, err := s.Authenticate(context.Background(), t1)
	require.NoError(t, err)
	u2, err := s.Authenticate(context.Background(), t2)
	require.NoError(t, err)
	assert.NotEqual(t, u1, u2)
}

func TestAuthenticate(t *testing.T) {
	s, _ := newUserService(t, time.Hour)

	valid, err := auth.GenerateToken("user-1", []byte("k"), time.Hour)
	require.NoError(t, err)
	expired, err := auth.GenerateToken("user-1", []byte("k"), -time.Second)
	require.NoError(t, err)
	foreign, err := auth.GenerateToken("user-1", []byte("other"), time.Hour)
	require.NoError(t, err)

	userID, err := s.Authenticate(context.Background(), valid)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)

	tests := []struct {
		name    string
		token   string
		expired bool
	}{
		{name: "missing", token: ""},
		{name: "malformed", token: "garbage"},
		{name: "bad signature", token: foreign},
		{name: "expired", token: expired, expired: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Authenticate(context.Background(), tt.token)
			require.ErrorIs(t, err, common.ErrUnauthenticated)
			assert.Equal(t, tt.expired, errors.Is(err, common.ErrTokenExpired))
		})
	}
}

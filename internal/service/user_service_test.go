package service

import (
	"Board/internal/api/dto"
	"Board/internal/pkg/consts"
	"Board/internal/pkg/redis"
	"Board/internal/pkg/security"
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupAndLogin(t *testing.T) {
	store := newTestStore(t)
	svc := NewUserService(store.Users)
	ctx := context.Background()

	userID, err := svc.Signup(ctx, &dto.SignupDTO{LoginID: " alice ", Password: "pass1234", Username: "Alice"})
	require.NoError(t, err)
	assert.NotZero(t, userID)

	token, err := svc.Login(ctx, &dto.LoginDTO{LoginID: "alice", Password: "pass1234"})
	require.NoError(t, err)

	claims, err := security.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, []string{consts.RoleUser}, claims.Roles)

	me, err := svc.GetUserInfo(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "alice", me.LoginID)
	assert.Equal(t, "Alice", me.Username)
	assert.Equal(t, consts.RoleUser, me.Role)
}

func TestSignupConflicts(t *testing.T) {
	store := newTestStore(t)
	svc := NewUserService(store.Users)
	ctx := context.Background()

	_, err := svc.Signup(ctx, &dto.SignupDTO{LoginID: "bob", Password: "pass", Username: "Bob"})
	require.NoError(t, err)

	_, err = svc.Signup(ctx, &dto.SignupDTO{LoginID: "bob", Password: "pass", Username: "Other"})
	assert.ErrorIs(t, err, ErrLoginIDExists)

	_, err = svc.Signup(ctx, &dto.SignupDTO{LoginID: "bob2", Password: "pass", Username: "Bob"})
	assert.ErrorIs(t, err, ErrUsernameExists)
}

func TestSignupValidation(t *testing.T) {
	store := newTestStore(t)
	svc := NewUserService(store.Users)
	ctx := context.Background()

	cases := []dto.SignupDTO{
		{LoginID: "   ", Password: "pass", Username: "u"},
		{LoginID: "id", Password: "abc", Username: "u"},
		{LoginID: "id", Password: "pass", Username: ""},
	}
	for _, c := range cases {
		_, err := svc.Signup(ctx, &c)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}

func TestLoginFailures(t *testing.T) {
	store := newTestStore(t)
	svc := NewUserService(store.Users)
	ctx := context.Background()

	_, err := svc.Signup(ctx, &dto.SignupDTO{LoginID: "carol", Password: "pass", Username: "Carol"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &dto.LoginDTO{LoginID: "nobody", Password: "pass"})
	assert.ErrorIs(t, err, ErrLoginIDNotFound)

	_, err = svc.Login(ctx, &dto.LoginDTO{LoginID: "carol", Password: "wrong"})
	assert.ErrorIs(t, err, ErrPasswordIncorrect)

	_, err = svc.GetUserInfo(ctx, 999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestLogoutRevokesToken(t *testing.T) {
	mr := miniredis.RunT(t)
	redis.UseClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))

	store := newTestStore(t)
	svc := NewUserService(store.Users)
	ctx := context.Background()

	_, err := svc.Signup(ctx, &dto.SignupDTO{LoginID: "dave", Password: "pass", Username: "Dave"})
	require.NoError(t, err)
	token, err := svc.Login(ctx, &dto.LoginDTO{LoginID: "dave", Password: "pass"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, token))

	signature, err := security.ExtractSignature(token)
	require.NoError(t, err)
	revoked, err := redis.IsTokenRevoked(ctx, signature)
	require.NoError(t, err)
	assert.True(t, revoked)
	assert.Greater(t, mr.TTL(consts.TokenRevokedKey+signature).Seconds(), 0.0)

	assert.ErrorIs(t, svc.Logout(ctx, "garbage"), ErrUnauthorized)
}

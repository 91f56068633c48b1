package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Barento999/ecommerce-spa-sub001/database"
	"github.com/Barento999/ecommerce-spa-sub001/identity"
)

func newTestRepo(t *testing.T) identity.Repository {
	t.Helper()
	db, err := database.OpenInMemory()
	require.NoError(t, err)
	return NewGormIdentityRepo(db)
}

func TestGormIdentityCreateAndLookup(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.CreateAccount(ctx, identity.AccountToCreate{
		Email:         "Jane.Doe@example.com",
		Password:      "password123",
		DisplayName:   "Jane Doe",
		EmailVerified: true,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.UID)
	assert.Equal(t, "jane.doe@example.com", created.Email)
	assert.True(t, created.EmailVerified)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("password123")))

	found, err := repo.GetAccountByEmail(ctx, "jane.doe@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.UID, found.UID)
	assert.Equal(t, "Jane Doe", found.DisplayName)
}

func TestGormIdentityDuplicateEmail(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	req := identity.AccountToCreate{Email: "dup@example.com", Password: "password123"}

	_, err := repo.CreateAccount(ctx, req)
	require.NoError(t, err)

	_, err = repo.CreateAccount(ctx, req)
	assert.ErrorIs(t, err, identity.ErrEmailAlreadyExists)
}

func TestGormIdentityRejectsShortPassword(t *testing.T) {
	repo := newTestRepo(t)
	_, err := repo.CreateAccount(context.Background(), identity.AccountToCreate{Email: "a@example.com", Password: "123"})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, identity.ErrEmailAlreadyExists)
}

func TestGormIdentityNotFound(t *testing.T) {
	repo := newTestRepo(t)
	_, err := repo.GetAccountByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, identity.ErrAccountNotFound)
}

func TestGormIdentitySetCustomClaims(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	a, err := repo.CreateAccount(ctx, identity.AccountToCreate{Email: "admin@example.com", Password: "password123"})
	require.NoError(t, err)

	require.NoError(t, repo.SetCustomClaims(ctx, a.UID, map[string]interface{}{"admin": true}))

	found, err := repo.GetAccountByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, true, found.CustomClaims["admin"])

	err = repo.SetCustomClaims(ctx, "missing-uid", map[string]interface{}{"admin": true})
	assert.ErrorIs(t, err, identity.ErrAccountNotFound)
}

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adminpkg "github.com/Barento999/ecommerce-spa-sub001/admin"
	"github.com/Barento999/ecommerce-spa-sub001/entity"
	"github.com/Barento999/ecommerce-spa-sub001/identity"
)

type stubIdentity struct {
	accounts  map[string]*entity.Account
	claims    map[string]map[string]interface{}
	claimsErr error
}

func (s *stubIdentity) CreateAccount(context.Context, identity.AccountToCreate) (*entity.Account, error) {
	return nil, errors.New("not implemented")
}

func (s *stubIdentity) GetAccountByEmail(_ context.Context, email string) (*entity.Account, error) {
	a, ok := s.accounts[email]
	if !ok {
		return nil, identity.ErrAccountNotFound
	}
	return a, nil
}

func (s *stubIdentity) SetCustomClaims(_ context.Context, uid string, claims map[string]interface{}) error {
	if s.claimsErr != nil {
		return s.claimsErr
	}
	s.claims[uid] = claims
	return nil
}

func newStub() *stubIdentity {
	return &stubIdentity{
		accounts: map[string]*entity.Account{"jane@example.com": {UID: "u-jane", Email: "jane@example.com"}},
		claims:   map[string]map[string]interface{}{},
	}
}

func TestGrantAdmin(t *testing.T) {
	stub := newStub()
	svc := NewAdminService(stub)

	msg, err := svc.GrantAdmin(context.Background(), "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Success! jane@example.com has been made an admin.", msg)
	assert.Equal(t, map[string]interface{}{"admin": true}, stub.claims["u-jane"])
}

func TestGrantAdminErrors(t *testing.T) {
	stub := newStub()
	svc := NewAdminService(stub)
	ctx := context.Background()

	_, err := svc.GrantAdmin(ctx, "  ")
	assert.ErrorIs(t, err, adminpkg.ErrEmailRequired)

	_, err = svc.GrantAdmin(ctx, "ghost@example.com")
	assert.ErrorIs(t, err, identity.ErrAccountNotFound)
	assert.Empty(t, stub.claims)

	stub.claimsErr = errors.New("backend unavailable")
	_, err = svc.GrantAdmin(ctx, "jane@example.com")
	assert.EqualError(t, err, "backend unavailable")
}

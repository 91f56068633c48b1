package service

import (
	"context"
	"fmt"
	"strings"

	adminpkg "github.com/Barento999/ecommerce-spa-sub001/admin"
	"github.com/Barento999/ecommerce-spa-sub001/identity"
)

// adminService implements admin.Service.
type adminService struct {
	accounts identity.Repository
}

// NewAdminService constructs an admin.Service backed by the identity store.
func NewAdminService(accounts identity.Repository) adminpkg.Service {
	return &adminService{accounts: accounts}
}

// GrantAdmin replaces the account's custom claims with {"admin": true}.
func (s *adminService) GrantAdmin(ctx context.Context, email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", adminpkg.ErrEmailRequired
	}

	account, err := s.accounts.GetAccountByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if err := s.accounts.SetCustomClaims(ctx, account.UID, map[string]interface{}{adminpkg.ClaimAdmin: true}); err != nil {
		return "", err
	}
	return fmt.Sprintf("Success! %s has been made an admin.", email), nil
}

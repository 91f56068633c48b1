package identity

import (
	"context"
	"errors"

	"github.com/Barento999/ecommerce-spa-sub001/entity"
)

var (
	// ErrEmailAlreadyExists is returned by CreateAccount when the email is taken.
	ErrEmailAlreadyExists = errors.New("identity: email already exists")
	// ErrAccountNotFound is returned by lookups that match no account.
	ErrAccountNotFound = errors.New("identity: account not found")
)

// AccountToCreate carries the fields for a new identity account.
type AccountToCreate struct {
	Email         string
	Password      string
	DisplayName   string
	EmailVerified bool
}

// Repository specifies the identity store operations used by this application.
type Repository interface {
	CreateAccount(ctx context.Context, req AccountToCreate) (*entity.Account, error)
	GetAccountByEmail(ctx context.Context, email string) (*entity.Account, error)
	SetCustomClaims(ctx context.Context, uid string, claims map[string]interface{}) error
}

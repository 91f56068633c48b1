package admin

import (
	"context"
	"errors"
)

// ClaimAdmin is the custom claim that marks an administrator.
const ClaimAdmin = "admin"

// ErrEmailRequired is returned when GrantAdmin is called without an email.
var ErrEmailRequired = errors.New("email is required")

// Service exposes role-assignment operations.
type Service interface {
	// GrantAdmin sets the admin claim on the account registered with email
	// and returns a confirmation message.
	GrantAdmin(ctx context.Context, email string) (string, error)
}

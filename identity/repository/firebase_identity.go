package repository

import (
	"context"
	"fmt"
	"time"

	fbAuth "firebase.google.com/go/v4/auth"

	"github.com/Barento999/ecommerce-spa-sub001/entity"
	"github.com/Barento999/ecommerce-spa-sub001/identity"
)

// FirebaseIdentityRepo implements identity.Repository on Firebase Authentication.
type FirebaseIdentityRepo struct {
	client *fbAuth.Client
}

func NewFirebaseIdentityRepo(client *fbAuth.Client) identity.Repository {
	return &FirebaseIdentityRepo{client: client}
}

func (r *FirebaseIdentityRepo) CreateAccount(ctx context.Context, req identity.AccountToCreate) (*entity.Account, error) {
	params := (&fbAuth.UserToCreate{}).
		Email(req.Email).
		Password(req.Password).
		DisplayName(req.DisplayName).
		EmailVerified(req.EmailVerified)

	u, err := r.client.CreateUser(ctx, params)
	if err != nil {
		if fbAuth.IsEmailAlreadyExists(err) {
			return nil, fmt.Errorf("%w: %s", identity.ErrEmailAlreadyExists, req.Email)
		}
		return nil, err
	}
	return toAccount(u), nil
}

func (r *FirebaseIdentityRepo) GetAccountByEmail(ctx context.Context, email string) (*entity.Account, error) {
	u, err := r.client.GetUserByEmail(ctx, email)
	if err != nil {
		if fbAuth.IsUserNotFound(err) {
			return nil, fmt.Errorf("%w: %s", identity.ErrAccountNotFound, email)
		}
		return nil, err
	}
	return toAccount(u), nil
}

func (r *FirebaseIdentityRepo) SetCustomClaims(ctx context.Context, uid string, claims map[string]interface{}) error {
	err := r.client.SetCustomUserClaims(ctx, uid, claims)
	if fbAuth.IsUserNotFound(err) {
		return fmt.Errorf("%w: %s", identity.ErrAccountNotFound, uid)
	}
	return err
}

func toAccount(u *fbAuth.UserRecord) *entity.Account {
	a := &entity.Account{
		UID:           u.UID,
		Email:         u.Email,
		DisplayName:   u.DisplayName,
		EmailVerified: u.EmailVerified,
		CustomClaims:  u.CustomClaims,
	}
	if u.UserMetadata != nil && u.UserMetadata.CreationTimestamp > 0 {
		a.CreatedAt = time.UnixMilli(u.UserMetadata.CreationTimestamp)
	}
	return a
}

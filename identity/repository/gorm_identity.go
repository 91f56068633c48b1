package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Barento999/ecommerce-spa-sub001/entity"
	"github.com/Barento999/ecommerce-spa-sub001/identity"
)

// GormIdentityRepo implements identity.Repository on a SQL table for offline development.
type GormIdentityRepo struct {
	db *gorm.DB
}

func NewGormIdentityRepo(db *gorm.DB) identity.Repository {
	return &GormIdentityRepo{db: db}
}

func (r *GormIdentityRepo) CreateAccount(ctx context.Context, req identity.AccountToCreate) (*entity.Account, error) {
	email := normalizeEmail(req.Email)
	if email == "" {
		return nil, errors.New("email is required")
	}
	if len(req.Password) < 6 {
		return nil, errors.New("password must be at least 6 characters")
	}

	exists, err := r.emailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: %s", identity.ErrEmailAlreadyExists, email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	a := &entity.Account{
		UID:           strings.ReplaceAll(uuid.NewString(), "-", ""),
		Email:         email,
		DisplayName:   req.DisplayName,
		EmailVerified: req.EmailVerified,
		PasswordHash:  string(hash),
	}
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		return nil, err
	}
	return a, nil
}

func (r *GormIdentityRepo) GetAccountByEmail(ctx context.Context, email string) (*entity.Account, error) {
	var a entity.Account
	err := r.db.WithContext(ctx).First(&a, "email = ?", normalizeEmail(email)).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", identity.ErrAccountNotFound, email)
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// SetCustomClaims replaces the account's claims, matching Firebase semantics.
func (r *GormIdentityRepo) SetCustomClaims(ctx context.Context, uid string, claims map[string]interface{}) error {
	res := r.db.WithContext(ctx).Model(&entity.Account{}).Where("uid = ?", uid).
		Select("CustomClaims").Updates(&entity.Account{CustomClaims: claims})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", identity.ErrAccountNotFound, uid)
	}
	return nil
}

func (r *GormIdentityRepo) emailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.Account{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	customerpkg "github.com/Barento999/ecommerce-spa-sub001/customer"
	"github.com/Barento999/ecommerce-spa-sub001/entity"
)

// GormCustomerRepo implements customer.Repository using GORM.
type GormCustomerRepo struct {
	db *gorm.DB
}

func NewGormCustomerRepo(db *gorm.DB) customerpkg.Repository {
	return &GormCustomerRepo{db: db}
}

func (r *GormCustomerRepo) StoreProfile(ctx context.Context, p *entity.CustomerProfile) error {
	if p.ID == "" {
		return errors.New("profile uid is required")
	}
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *GormCustomerRepo) GetProfile(ctx context.Context, uid string) (*entity.CustomerProfile, error) {
	var p entity.CustomerProfile
	if err := r.db.WithContext(ctx).First(&p, "id = ?", uid).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

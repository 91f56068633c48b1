package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Barento999/ecommerce-spa-sub001/entity"
	orderpkg "github.com/Barento999/ecommerce-spa-sub001/order"
)

type GormOrderRepo struct{ db *gorm.DB }

func NewGormOrderRepo(db *gorm.DB) orderpkg.Repository { return &GormOrderRepo{db: db} }

func (r *GormOrderRepo) AddOrder(ctx context.Context, o *entity.Order) (string, error) {
	row := *o
	row.ID = uuid.NewString()
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return "", err
	}
	return row.ID, nil
}

func (r *GormOrderRepo) CountOrdersForUser(ctx context.Context, uid string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Order{}).Where("user_id = ?", uid).Count(&count).Error
	return count, err
}

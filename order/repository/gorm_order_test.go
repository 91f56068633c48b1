package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Barento999/ecommerce-spa-sub001/database"
	"github.com/Barento999/ecommerce-spa-sub001/entity"
)

func TestGormOrderAddAndCount(t *testing.T) {
	db, err := database.OpenInMemory()
	require.NoError(t, err)
	repo := NewGormOrderRepo(db)
	ctx := context.Background()

	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	tracking := "TRKABC123XYZ"
	o := &entity.Order{
		UserID:    "uid-1",
		UserEmail: "john.doe@example.com",
		Items: []entity.OrderItem{
			{ProductID: "1", Name: "Wireless Headphones", Price: 99.99, Quantity: 2, ProductRef: "products/1"},
		},
		Subtotal:       199.98,
		Shipping:       9.99,
		Tax:            20,
		Total:          229.97,
		Status:         entity.OrderDelivered,
		CreatedAt:      created,
		UpdatedAt:      created.Add(-48 * time.Hour),
		TrackingNumber: &tracking,
	}

	id1, err := repo.AddOrder(ctx, o)
	require.NoError(t, err)
	id2, err := repo.AddOrder(ctx, o)
	require.NoError(t, err)
	assert.NotEqual(t, id1, id2)
	assert.Empty(t, o.ID, "caller's order is not mutated")

	n, err := repo.CountOrdersForUser(ctx, "uid-1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	var stored entity.Order
	require.NoError(t, db.First(&stored, "id = ?", id1).Error)
	assert.Equal(t, o.Items, stored.Items)
	assert.True(t, stored.UpdatedAt.Before(stored.CreatedAt), "timestamps are stored as given")
	require.NotNil(t, stored.TrackingNumber)
	assert.Equal(t, tracking, *stored.TrackingNumber)

	n, err = repo.CountOrdersForUser(ctx, "someone-else")
	require.NoError(t, err)
	assert.Zero(t, n)
}

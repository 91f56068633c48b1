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

func TestGormCustomerStoreAndGet(t *testing.T) {
	db, err := database.OpenInMemory()
	require.NoError(t, err)
	repo := NewGormCustomerRepo(db)
	ctx := context.Background()

	addr := entity.Address{AddressLine1: "456 Oak Avenue", City: "Los Angeles", State: "CA", PostalCode: "90001", Country: "USA"}
	p := &entity.CustomerProfile{
		ID:              "uid-jane",
		Email:           "jane.smith@example.com",
		DisplayName:     "Jane Smith",
		ShippingAddress: addr,
		BillingAddress:  addr,
		Preferences:     entity.Preferences{Newsletter: true, Notifications: true},
		CreatedAt:       time.Now().Add(-72 * time.Hour),
		LastLogin:       time.Now().Add(-time.Hour),
	}
	require.NoError(t, repo.StoreProfile(ctx, p))

	got, err := repo.GetProfile(ctx, "uid-jane")
	require.NoError(t, err)
	assert.Equal(t, "Jane Smith", got.DisplayName)
	assert.Equal(t, addr, got.BillingAddress)
	assert.True(t, got.Preferences.Newsletter)
	assert.Nil(t, got.PhotoURL)

	p.DisplayName = "Jane S."
	require.NoError(t, repo.StoreProfile(ctx, p))
	got, err = repo.GetProfile(ctx, "uid-jane")
	require.NoError(t, err)
	assert.Equal(t, "Jane S.", got.DisplayName)

	assert.Error(t, repo.StoreProfile(ctx, &entity.CustomerProfile{}))
}

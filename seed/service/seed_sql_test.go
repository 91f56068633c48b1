package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	customerrepo "github.com/Barento999/ecommerce-spa-sub001/customer/repository"
	"github.com/Barento999/ecommerce-spa-sub001/database"
	identityrepo "github.com/Barento999/ecommerce-spa-sub001/identity/repository"
	orderrepo "github.com/Barento999/ecommerce-spa-sub001/order/repository"
	seedpkg "github.com/Barento999/ecommerce-spa-sub001/seed"
)

func TestRunOnSQLBackend(t *testing.T) {
	db, err := database.OpenInMemory()
	require.NoError(t, err)

	accounts := identityrepo.NewGormIdentityRepo(db)
	profiles := customerrepo.NewGormCustomerRepo(db)
	orders := orderrepo.NewGormOrderRepo(db)
	gen := seedpkg.NewGenerator(seedpkg.NewRand(11), time.Now, seedpkg.DefaultProducts())
	svc := NewSeedService(accounts, profiles, orders, gen, nil)
	ctx := context.Background()

	first := svc.Run(ctx, seedpkg.DefaultCustomers())
	require.Equal(t, 5, first.Count(seedpkg.OutcomeCreated))

	var total int64
	for _, r := range first.Results {
		p, err := profiles.GetProfile(ctx, r.UID)
		require.NoError(t, err)
		assert.Equal(t, r.Email, p.Email)
		assert.Equal(t, p.ShippingAddress, p.BillingAddress)

		n, err := orders.CountOrdersForUser(ctx, r.UID)
		require.NoError(t, err)
		assert.Equal(t, int64(len(r.OrderIDs)), n)
		total += n
	}
	assert.GreaterOrEqual(t, total, int64(10))
	assert.LessOrEqual(t, total, int64(25))

	second := svc.Run(ctx, seedpkg.DefaultCustomers())
	require.Equal(t, 5, second.Count(seedpkg.OutcomeReused))
	for i, r := range second.Results {
		assert.Equal(t, first.Results[i].UID, r.UID)
		n, err := orders.CountOrdersForUser(ctx, r.UID)
		require.NoError(t, err)
		added := n - int64(len(first.Results[i].OrderIDs))
		assert.GreaterOrEqual(t, added, int64(2))
		assert.LessOrEqual(t, added, int64(5))
	}
}

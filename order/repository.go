package order

import (
	"context"

	"github.com/Barento999/ecommerce-spa-sub001/entity"
)

// OrdersCollection is the document collection holding orders.
const OrdersCollection = "orders"

// Repository defines document store operations for orders.
type Repository interface {
	// AddOrder appends a new order document and returns its generated id.
	AddOrder(ctx context.Context, o *entity.Order) (string, error)
	CountOrdersForUser(ctx context.Context, uid string) (int64, error)
}

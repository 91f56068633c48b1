package repository

import (
	"context"

	"cloud.google.com/go/firestore"

	"github.com/Barento999/ecommerce-spa-sub001/entity"
	orderpkg "github.com/Barento999/ecommerce-spa-sub001/order"
)

type FirestoreOrderRepo struct{ client *firestore.Client }

func NewFirestoreOrderRepo(client *firestore.Client) orderpkg.Repository {
	return &FirestoreOrderRepo{client: client}
}

func (r *FirestoreOrderRepo) AddOrder(ctx context.Context, o *entity.Order) (string, error) {
	ref, _, err := r.client.Collection(orderpkg.OrdersCollection).Add(ctx, o)
	if err != nil {
		return "", err
	}
	return ref.ID, nil
}

// CountOrdersForUser runs an aggregation query over the user's orders.
func (r *FirestoreOrderRepo) CountOrdersForUser(ctx context.Context, uid string) (int64, error) {
	q := r.client.Collection(orderpkg.OrdersCollection).
		Where("userId", "==", uid)
	res, err := q.NewAggregationQuery().WithCount("count").
		Get(ctx)
	if err != nil {
		return 0, err
	}
	return aggregateInt(res["count"]), nil
}

func aggregateInt(v interface{}) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case interface{ GetIntegerValue() int64 }:
		return n.GetIntegerValue()
	}
	return 0
}

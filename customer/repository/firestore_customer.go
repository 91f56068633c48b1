package repository

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"

	customerpkg "github.com/Barento999/ecommerce-spa-sub001/customer"
	"github.com/Barento999/ecommerce-spa-sub001/entity"
)

// FirestoreCustomerRepo implements customer.Repository on Cloud Firestore.
type FirestoreCustomerRepo struct {
	client *firestore.Client
}

func NewFirestoreCustomerRepo(client *firestore.Client) customerpkg.Repository {
	return &FirestoreCustomerRepo{client: client}
}

func (r *FirestoreCustomerRepo) StoreProfile(ctx context.Context, p *entity.CustomerProfile) error {
	if p.ID == "" {
		return errors.New("profile uid is required")
	}
	_, err := r.client.Collection(customerpkg.ProfilesCollection).Doc(p.ID).Set(ctx, p)
	return err
}

func (r *FirestoreCustomerRepo) GetProfile(ctx context.Context, uid string) (*entity.CustomerProfile, error) {
	snap, err := r.client.Collection(customerpkg.ProfilesCollection).Doc(uid).Get(ctx)
	if err != nil {
		return nil, err
	}
	var p entity.CustomerProfile
	if err := snap.DataTo(&p); err != nil {
		return nil, err
	}
	p.ID = snap.Ref.ID
	return &p, nil
}

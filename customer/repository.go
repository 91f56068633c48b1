package customer

import (
	"context"

	"github.com/Barento999/ecommerce-spa-sub001/entity"
)

// ProfilesCollection is the document collection holding customer profiles.
const ProfilesCollection = "users"

// Repository specifies customer profile document operations.
type Repository interface {
	// StoreProfile writes the profile at its UID, replacing any existing document.
	StoreProfile(ctx context.Context, p *entity.CustomerProfile) error
	GetProfile(ctx context.Context, uid string) (*entity.CustomerProfile, error)
}

package entity

import (
	"time"
)

// Address is a postal address embedded in profiles and orders.
type Address struct {
	AddressLine1 string `json:"addressLine1" firestore:"addressLine1"`
	AddressLine2 string `json:"addressLine2" firestore:"addressLine2"`
	City         string `json:"city" firestore:"city"`
	State        string `json:"state" firestore:"state"`
	PostalCode   string `json:"postalCode" firestore:"postalCode"`
	Country      string `json:"country" firestore:"country"`
}

// CustomerSeed is the input record used to create a customer account and profile.
type CustomerSeed struct {
	Email           string
	Password        string
	DisplayName     string
	PhoneNumber     string
	ShippingAddress Address
}

// Preferences holds a customer's notification settings.
type Preferences struct {
	Newsletter    bool `json:"newsletter" firestore:"newsletter"`
	Notifications bool `json:"notifications" firestore:"notifications"`
}

// CustomerProfile is the profile document stored under users/<uid>.
// ID always equals the identity account UID.
type CustomerProfile struct {
	ID              string      `json:"uid" firestore:"uid" gorm:"type:text;primaryKey"`
	Email           string      `json:"email" firestore:"email" gorm:"type:text;index;not null"`
	DisplayName     string      `json:"displayName" firestore:"displayName" gorm:"type:text"`
	PhoneNumber     string      `json:"phoneNumber" firestore:"phoneNumber" gorm:"type:text"`
	ShippingAddress Address     `json:"shippingAddress" firestore:"shippingAddress" gorm:"type:text;serializer:json"`
	BillingAddress  Address     `json:"billingAddress" firestore:"billingAddress" gorm:"type:text;serializer:json"`
	PhotoURL        *string     `json:"photoURL" firestore:"photoURL" gorm:"type:text;default:null"`
	Preferences     Preferences `json:"preferences" firestore:"preferences" gorm:"type:text;serializer:json"`
	CreatedAt       time.Time   `json:"createdAt" firestore:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt" firestore:"updatedAt"`
	LastLogin       time.Time   `json:"lastLogin" firestore:"lastLogin"`
}

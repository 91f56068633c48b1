package entity

import (
	"time"
)

// Account is an identity-store user record.
type Account struct {
	UID           string                 `json:"uid" gorm:"type:text;primaryKey"`
	Email         string                 `json:"email" gorm:"type:text;uniqueIndex;not null"`
	DisplayName   string                 `json:"displayName" gorm:"type:text"`
	EmailVerified bool                   `json:"emailVerified" gorm:"default:false"`
	PasswordHash  string                 `json:"-" gorm:"type:text"`
	CustomClaims  map[string]interface{} `json:"customClaims,omitempty" gorm:"type:text;serializer:json"`
	CreatedAt     time.Time              `json:"createdAt"`
}

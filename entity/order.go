package entity

import (
	"time"
)

// OrderStatus enumerates the lifecycle of an order.
type OrderStatus string

const (
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
)

const (
	PaymentCompleted  = "completed"
	PaymentCreditCard = "Credit Card"
)

// OrderItem is a single line of an order.
type OrderItem struct {
	ProductID  string  `json:"productId" firestore:"productId"`
	Name       string  `json:"name" firestore:"name"`
	Price      float64 `json:"price" firestore:"price"`
	Quantity   int     `json:"quantity" firestore:"quantity"`
	Image      string  `json:"image" firestore:"image"`
	ProductRef string  `json:"productRef" firestore:"productRef"`
}

// Order captures a purchase by a customer. Customer identity fields are
// denormalized for read convenience.
type Order struct {
	ID              string      `json:"id" firestore:"-" gorm:"type:text;primaryKey"`
	UserID          string      `json:"userId" firestore:"userId" gorm:"type:text;index;not null"`
	UserEmail       string      `json:"userEmail" firestore:"userEmail" gorm:"type:text"`
	UserName        string      `json:"userName" firestore:"userName" gorm:"type:text"`
	Items           []OrderItem `json:"items" firestore:"items" gorm:"type:text;serializer:json"`
	Subtotal        float64     `json:"subtotal" firestore:"subtotal"`
	Shipping        float64     `json:"shipping" firestore:"shipping"`
	Tax             float64     `json:"tax" firestore:"tax"`
	Total           float64     `json:"total" firestore:"total"`
	Status          OrderStatus `json:"status" firestore:"status" gorm:"type:text;index;not null"`
	PaymentStatus   string      `json:"paymentStatus" firestore:"paymentStatus" gorm:"type:text"`
	PaymentMethod   string      `json:"paymentMethod" firestore:"paymentMethod" gorm:"type:text"`
	CreatedAt       time.Time   `json:"createdAt" firestore:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt" firestore:"updatedAt"`
	ShippingAddress Address     `json:"shippingAddress" firestore:"shippingAddress" gorm:"type:text;serializer:json"`
	TrackingNumber  *string     `json:"trackingNumber" firestore:"trackingNumber" gorm:"type:text;default:null"`
	Notes           string      `json:"notes" firestore:"notes" gorm:"type:text"`
}

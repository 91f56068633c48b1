package seed

import "github.com/Barento999/ecommerce-spa-sub001/entity"

// PlaceholderShippingAddress is attached to every generated order in place of
// the customer's own address.
var PlaceholderShippingAddress = entity.Address{
	AddressLine1: "123 Main St",
	AddressLine2: "Apt 4B",
	City:         "New York",
	State:        "NY",
	PostalCode:   "10001",
	Country:      "USA",
}

// DefaultCustomers returns the fixed development customer list.
func DefaultCustomers() []entity.CustomerSeed {
	return []entity.CustomerSeed{
		{
			Email:       "john.doe@example.com",
			Password:    "password123",
			DisplayName: "John Doe",
			PhoneNumber: "+1 (555) 123-4567",
			ShippingAddress: entity.Address{
				AddressLine1: "123 Main St",
				AddressLine2: "Apt 4B",
				City:         "New York",
				State:        "NY",
				PostalCode:   "10001",
				Country:      "USA",
			},
		},
		{
			Email:       "jane.smith@example.com",
			Password:    "password123",
			DisplayName: "Jane Smith",
			PhoneNumber: "+1 (555) 987-6543",
			ShippingAddress: entity.Address{
				AddressLine1: "456 Oak Avenue",
				City:         "Los Angeles",
				State:        "CA",
				PostalCode:   "90001",
				Country:      "USA",
			},
		},
		{
			Email:       "robert.johnson@example.com",
			Password:    "password123",
			DisplayName: "Robert Johnson",
			PhoneNumber: "+1 (555) 234-5678",
			ShippingAddress: entity.Address{
				AddressLine1: "789 Pine Road",
				AddressLine2: "Suite 100",
				City:         "Chicago",
				State:        "IL",
				PostalCode:   "60601",
				Country:      "USA",
			},
		},
		{
			Email:       "emily.davis@example.com",
			Password:    "password123",
			DisplayName: "Emily Davis",
			PhoneNumber: "+1 (555) 345-6789",
			ShippingAddress: entity.Address{
				AddressLine1: "321 Elm Street",
				City:         "Houston",
				State:        "TX",
				PostalCode:   "77001",
				Country:      "USA",
			},
		},
		{
			Email:       "michael.wilson@example.com",
			Password:    "password123",
			DisplayName: "Michael Wilson",
			PhoneNumber: "+1 (555) 456-7890",
			ShippingAddress: entity.Address{
				AddressLine1: "654 Maple Drive",
				AddressLine2: "Unit 12",
				City:         "Phoenix",
				State:        "AZ",
				PostalCode:   "85001",
				Country:      "USA",
			},
		},
	}
}

// DefaultProducts returns the static product catalog used for line items.
func DefaultProducts() []entity.Product {
	return []entity.Product{
		{ID: "1", Name: "Wireless Headphones", Price: 99.99, Image: "/images/headphones.jpg", Category: "Electronics", Stock: 50},
		{ID: "2", Name: "Smart Watch", Price: 199.99, Image: "/images/smartwatch.jpg", Category: "Electronics", Stock: 30},
		{ID: "3", Name: "Running Shoes", Price: 79.99, Image: "/images/shoes.jpg", Category: "Sports", Stock: 100},
		{ID: "4", Name: "Coffee Maker", Price: 49.99, Image: "/images/coffee-maker.jpg", Category: "Home", Stock: 25},
		{ID: "5", Name: "Backpack", Price: 39.99, Image: "/images/backpack.jpg", Category: "Accessories", Stock: 75},
		{ID: "6", Name: "Desk Lamp", Price: 29.99, Image: "/images/desk-lamp.jpg", Category: "Home", Stock: 40},
		{ID: "7", Name: "Yoga Mat", Price: 24.99, Image: "/images/yoga-mat.jpg", Category: "Sports", Stock: 60},
		{ID: "8", Name: "Bluetooth Speaker", Price: 59.99, Image: "/images/speaker.jpg", Category: "Electronics", Stock: 45},
	}
}

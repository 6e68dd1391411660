package repository

import "time"

type SupplyEntity struct {
	ID             string     `bson:"_id"`
	SupplyName     string     `bson:"supply_name"`
	Category       string     `bson:"category"`
	UnitPrice      float64    `bson:"unit_price"`
	Quantity       int64      `bson:"quantity"`
	ExpirationDate *string    `bson:"expiration_date"`
	Supplier       string     `bson:"supplier"`
	Location       string     `bson:"location"`
	CreatedAt      *time.Time `bson:"created_at,omitempty"`
	UpdatedAt      *time.Time `bson:"updated_at,omitempty"`
}

// Package supplyv1 holds the JSON shapes of the supplies HTTP API.
package supplyv1

import "time"

type Supply struct {
	ID             string     `json:"id"`
	SupplyName     string     `json:"supply_name"`
	Category       string     `json:"category"`
	UnitPrice      float64    `json:"unit_price"`
	Quantity       int64      `json:"quantity"`
	ExpirationDate *string    `json:"expiration_date"`
	Supplier       string     `json:"supplier"`
	Location       string     `json:"location"`
	CreatedAt      *time.Time `json:"created_at,omitempty"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}

// Error is the body of every non-2xx response.
type Error struct {
	Code    int      `json:"code"`
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"`
}

package model

import "time"

const (
	FieldSupplyName     = "supply_name"
	FieldCategory       = "category"
	FieldUnitPrice      = "unit_price"
	FieldQuantity       = "quantity"
	FieldExpirationDate = "expiration_date"
	FieldSupplier       = "supplier"
	FieldLocation       = "location"
)

// SupplyFields lists the client-writable fields in declaration order.
var SupplyFields = []string{
	FieldSupplyName,
	FieldCategory,
	FieldUnitPrice,
	FieldQuantity,
	FieldExpirationDate,
	FieldSupplier,
	FieldLocation,
}

// RequiredSupplyFields must all be present when a supply is created.
var RequiredSupplyFields = []string{
	FieldSupplyName,
	FieldCategory,
	FieldUnitPrice,
	FieldQuantity,
	FieldSupplier,
	FieldLocation,
}

type Supply struct {
	// Time-ordered identifier assigned by the store.
	ID string
	// Natural key; unique across all supplies, compared case-sensitively.
	SupplyName string `validate:"required"`
	Category   string `validate:"required"`
	// Price of a single unit.
	UnitPrice float64 `validate:"gte=0"`
	// Units in stock.
	Quantity int64 `validate:"gte=0"`
	// Canonical YYYY-MM-DD date, nil when the supply does not expire.
	ExpirationDate *string
	Supplier       string `validate:"required"`
	// Where the supply is kept.
	Location string `validate:"required"`

	CreatedAt *time.Time
	UpdatedAt *time.Time
}

// SupplyPayload is a decoded JSON request body before validation.
type SupplyPayload map[string]any

// SupplyPatch holds normalized supplied fields; nil means not supplied.
type SupplyPatch struct {
	SupplyName     *string  `validate:"omitnil,min=1"`
	Category       *string  `validate:"omitnil,min=1"`
	UnitPrice      *float64 `validate:"omitnil,gte=0"`
	Quantity       *int64   `validate:"omitnil,gte=0"`
	ExpirationDate *string
	// Set when the client sent an empty expiration_date.
	ClearExpirationDate bool
	Supplier            *string `validate:"omitnil,min=1"`
	Location            *string `validate:"omitnil,min=1"`
}

func (p SupplyPatch) Empty() bool {
	return p.SupplyName == nil &&
		p.Category == nil &&
		p.UnitPrice == nil &&
		p.Quantity == nil &&
		p.ExpirationDate == nil &&
		!p.ClearExpirationDate &&
		p.Supplier == nil &&
		p.Location == nil
}

// Apply merges the patch into s in place.
func (p SupplyPatch) Apply(s *Supply) {
	if p.SupplyName != nil {
		s.SupplyName = *p.SupplyName
	}
	if p.Category != nil {
		s.Category = *p.Category
	}
	if p.UnitPrice != nil {
		s.UnitPrice = *p.UnitPrice
	}
	if p.Quantity != nil {
		s.Quantity = *p.Quantity
	}
	if p.ClearExpirationDate {
		s.ExpirationDate = nil
	}
	if p.ExpirationDate != nil {
		date := *p.ExpirationDate
		s.ExpirationDate = &date
	}
	if p.Supplier != nil {
		s.Supplier = *p.Supplier
	}
	if p.Location != nil {
		s.Location = *p.Location
	}
}

// ToSupply builds a new supply from a fully populated patch.
func (p SupplyPatch) ToSupply() *Supply {
	s := &Supply{}
	p.Apply(s)
	return s
}

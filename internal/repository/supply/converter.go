package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/you-humble/emergency-supply/internal/model"
)

func EntityToModel(e *SupplyEntity) *model.Supply {
	if e == nil {
		return nil
	}

	return &model.Supply{
		ID:             e.ID,
		SupplyName:     e.SupplyName,
		Category:       e.Category,
		UnitPrice:      e.UnitPrice,
		Quantity:       e.Quantity,
		ExpirationDate: e.ExpirationDate,
		Supplier:       e.Supplier,
		Location:       e.Location,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func EntityFromModel(s *model.Supply) *SupplyEntity {
	if s == nil {
		return nil
	}

	return &SupplyEntity{
		ID:             s.ID,
		SupplyName:     s.SupplyName,
		Category:       s.Category,
		UnitPrice:      s.UnitPrice,
		Quantity:       s.Quantity,
		ExpirationDate: s.ExpirationDate,
		Supplier:       s.Supplier,
		Location:       s.Location,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

// BuildMongoUpdate turns a patch into a $set document, nulling the
// expiration date when the patch clears it.
func BuildMongoUpdate(p model.SupplyPatch, now time.Time) bson.M {
	set := bson.M{"updated_at": now}

	if p.SupplyName != nil {
		set["supply_name"] = *p.SupplyName
	}
	if p.Category != nil {
		set["category"] = *p.Category
	}
	if p.UnitPrice != nil {
		set["unit_price"] = *p.UnitPrice
	}
	if p.Quantity != nil {
		set["quantity"] = *p.Quantity
	}
	if p.ClearExpirationDate {
		set["expiration_date"] = nil
	}
	if p.ExpirationDate != nil {
		set["expiration_date"] = *p.ExpirationDate
	}
	if p.Supplier != nil {
		set["supplier"] = *p.Supplier
	}
	if p.Location != nil {
		set["location"] = *p.Location
	}

	return bson.M{"$set": set}
}

package converter

import (
	"github.com/samber/lo"

	"github.com/you-humble/emergency-supply/internal/model"
	supplyv1 "github.com/you-humble/emergency-supply/pkg/api/supply/v1"
)

func SupplyToAPI(s *model.Supply) supplyv1.Supply {
	return supplyv1.Supply{
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

func SuppliesToAPI(supplies []*model.Supply) []supplyv1.Supply {
	return lo.Map(supplies, func(s *model.Supply, _ int) supplyv1.Supply {
		return SupplyToAPI(s)
	})
}

package repository

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/you-humble/emergency-supply/internal/model"
)

func TestEntityRoundTrip(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	s := &model.Supply{
		ID:             gofakeit.UUID(),
		SupplyName:     gofakeit.ProductName(),
		Category:       gofakeit.ProductCategory(),
		UnitPrice:      gofakeit.Price(0, 100),
		Quantity:       int64(gofakeit.Number(0, 1000)),
		ExpirationDate: lo.ToPtr("2030-01-01"),
		Supplier:       gofakeit.Company(),
		Location:       gofakeit.City(),
		CreatedAt:      &now,
		UpdatedAt:      &now,
	}

	assert.Equal(t, s, EntityToModel(EntityFromModel(s)))
	assert.Nil(t, EntityToModel(nil))
	assert.Nil(t, EntityFromModel(nil))
}

func TestBuildMongoUpdate(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()

	tests := []struct {
		name  string
		patch model.SupplyPatch
		want  bson.M
	}{
		{
			name:  "only timestamp for empty patch",
			patch: model.SupplyPatch{},
			want:  bson.M{"updated_at": now},
		},
		{
			name: "supplied fields only",
			patch: model.SupplyPatch{
				Quantity: lo.ToPtr(int64(80)),
				Location: lo.ToPtr("Warehouse B"),
			},
			want: bson.M{"updated_at": now, "quantity": int64(80), "location": "Warehouse B"},
		},
		{
			name:  "clear expiration date",
			patch: model.SupplyPatch{ClearExpirationDate: true},
			want:  bson.M{"updated_at": now, "expiration_date": nil},
		},
		{
			name: "rename",
			patch: model.SupplyPatch{
				SupplyName:     lo.ToPtr("Canned Beans"),
				ExpirationDate: lo.ToPtr("2031-05-05"),
			},
			want: bson.M{"updated_at": now, "supply_name": "Canned Beans", "expiration_date": "2031-05-05"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, bson.M{"$set": tt.want}, BuildMongoUpdate(tt.patch, now))
		})
	}
}

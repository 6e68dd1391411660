package validation

import (
	"encoding/json"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/emergency-supply/internal/model"
)

func fullPayload() model.SupplyPayload {
	return model.SupplyPayload{
		model.FieldSupplyName: gofakeit.ProductName(),
		model.FieldCategory:   gofakeit.ProductCategory(),
		model.FieldUnitPrice:  json.Number("2.5"),
		model.FieldQuantity:   json.Number("100"),
		model.FieldSupplier:   gofakeit.Company(),
		model.FieldLocation:   gofakeit.City(),
	}
}

func TestValidateForCreate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		payload    func() model.SupplyPayload
		wantFields []string
	}{
		{
			name:    "all required fields present",
			payload: fullPayload,
		},
		{
			name: "expiration date is optional",
			payload: func() model.SupplyPayload {
				p := fullPayload()
				p[model.FieldExpirationDate] = ""
				return p
			},
		},
		{
			name:       "empty payload lists every required field",
			payload:    func() model.SupplyPayload { return model.SupplyPayload{} },
			wantFields: model.RequiredSupplyFields,
		},
		{
			name: "whitespace-only name counts as missing",
			payload: func() model.SupplyPayload {
				p := fullPayload()
				p[model.FieldSupplyName] = " \t "
				return p
			},
			wantFields: []string{model.FieldSupplyName},
		},
		{
			name: "null values count as missing",
			payload: func() model.SupplyPayload {
				p := fullPayload()
				p[model.FieldQuantity] = nil
				p[model.FieldLocation] = nil
				return p
			},
			wantFields: []string{model.FieldQuantity, model.FieldLocation},
		},
		{
			name: "zero numbers are present",
			payload: func() model.SupplyPayload {
				p := fullPayload()
				p[model.FieldUnitPrice] = json.Number("0")
				p[model.FieldQuantity] = float64(0)
				return p
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateForCreate(tt.payload())
			if tt.wantFields == nil {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, model.ErrValidation)

			var verr *model.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantFields, verr.Fields)
		})
	}
}

func TestValidateForUpdate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		payload model.SupplyPayload
		wantErr bool
	}{
		{name: "empty payload", payload: model.SupplyPayload{}, wantErr: true},
		{name: "nil payload", payload: nil, wantErr: true},
		{name: "only unrecognized keys", payload: model.SupplyPayload{"color": "red"}, wantErr: true},
		{name: "only null values", payload: model.SupplyPayload{model.FieldCategory: nil}, wantErr: true},
		{name: "single field", payload: model.SupplyPayload{model.FieldQuantity: json.Number("3")}},
		{name: "clearing expiration date", payload: model.SupplyPayload{model.FieldExpirationDate: ""}},
		{
			name:    "recognized field next to unknown",
			payload: model.SupplyPayload{"color": "red", model.FieldLocation: "Depot"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateForUpdate(tt.payload)
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, model.ErrValidation)
		})
	}
}

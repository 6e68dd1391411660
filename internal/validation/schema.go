package validation

import (
	"errors"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"

	"github.com/you-humble/emergency-supply/internal/model"
)

var fieldNames = map[string]string{
	"SupplyName":     model.FieldSupplyName,
	"Category":       model.FieldCategory,
	"UnitPrice":      model.FieldUnitPrice,
	"Quantity":       model.FieldQuantity,
	"ExpirationDate": model.FieldExpirationDate,
	"Supplier":       model.FieldSupplier,
	"Location":       model.FieldLocation,
}

var schema = newSchema()

func newSchema() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name, ok := fieldNames[f.Name]; ok {
			return name
		}
		return f.Name
	})
	return v
}

// CheckSupply enforces the constraints every stored supply must satisfy.
func CheckSupply(s *model.Supply) error {
	if s == nil {
		return model.NewValidationError("supply is empty")
	}
	return check(s)
}

// CheckPatch enforces the same constraints on the supplied subset of an update.
func CheckPatch(p model.SupplyPatch) error {
	return check(p)
}

func check(v any) error {
	err := schema.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := lo.Uniq(lo.Map(verrs, func(fe validator.FieldError, _ int) string {
			return fe.Field()
		}))
		return model.NewValidationError("violates supply constraints", fields...)
	}

	return err
}

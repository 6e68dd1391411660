package validation

import (
	"strings"

	"github.com/samber/lo"

	"github.com/you-humble/emergency-supply/internal/model"
)

// ValidateForCreate reports every required field that is missing, null or blank.
func ValidateForCreate(p model.SupplyPayload) error {
	missing := lo.Filter(model.RequiredSupplyFields, func(field string, _ int) bool {
		return !present(p, field)
	})
	if len(missing) > 0 {
		return model.NewValidationError("required field is missing", missing...)
	}

	return nil
}

// ValidateForUpdate requires at least one recognized field with a non-null value.
func ValidateForUpdate(p model.SupplyPayload) error {
	hasField := lo.SomeBy(model.SupplyFields, func(field string) bool {
		_, ok := supplied(p, field)
		return ok
	})
	if !hasField {
		return model.NewValidationError("at least one supply field must be provided")
	}

	return nil
}

// supplied returns the value of field when the key exists and is not null.
func supplied(p model.SupplyPayload, field string) (any, bool) {
	v, ok := p[field]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// present is supplied plus, for strings, non-blank after trimming.
func present(p model.SupplyPayload, field string) bool {
	v, ok := supplied(p, field)
	if !ok {
		return false
	}
	if s, isStr := v.(string); isStr {
		return strings.TrimSpace(s) != ""
	}
	return true
}

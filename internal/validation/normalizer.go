package validation

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/you-humble/emergency-supply/internal/model"
)

const dateFormatsHint = "invalid date, valid formats: YYYY/MM/DD, YYYY-MM-DD, YYYY.MM.DD"

// RE2 has no backreferences, so the separators are compared after matching.
var datePattern = regexp.MustCompile(`^(\d{4})([./-])(\d{2})([./-])(\d{2})$`)

// Normalize coerces the recognized fields of p into typed values.
// Fields that were not supplied stay nil. p is not modified.
func Normalize(p model.SupplyPayload) (model.SupplyPatch, error) {
	var (
		out model.SupplyPatch
		err error
	)

	if out.SupplyName, err = normalizeText(p, model.FieldSupplyName); err != nil {
		return model.SupplyPatch{}, err
	}
	if out.Category, err = normalizeText(p, model.FieldCategory); err != nil {
		return model.SupplyPatch{}, err
	}
	if out.UnitPrice, err = normalizePrice(p); err != nil {
		return model.SupplyPatch{}, err
	}
	if out.Quantity, err = normalizeQuantity(p); err != nil {
		return model.SupplyPatch{}, err
	}
	if out.ExpirationDate, out.ClearExpirationDate, err = normalizeDate(p); err != nil {
		return model.SupplyPatch{}, err
	}
	if out.Supplier, err = normalizeText(p, model.FieldSupplier); err != nil {
		return model.SupplyPatch{}, err
	}
	if out.Location, err = normalizeText(p, model.FieldLocation); err != nil {
		return model.SupplyPatch{}, err
	}

	return out, nil
}

func normalizeText(p model.SupplyPayload, field string) (*string, error) {
	v, ok := supplied(p, field)
	if !ok {
		return nil, nil
	}

	s, isStr := v.(string)
	if !isStr {
		return nil, model.NewValidationError("must be a string", field)
	}

	s = strings.TrimSpace(s)
	if s == "" {
		return nil, model.NewValidationError("must not be blank", field)
	}

	return &s, nil
}

func normalizePrice(p model.SupplyPayload) (*float64, error) {
	v, ok := supplied(p, model.FieldUnitPrice)
	if !ok {
		return nil, nil
	}

	f, ok := parseNumber(v)
	if !ok || f < 0 {
		return nil, model.NewValidationError("must be a non-negative number", model.FieldUnitPrice)
	}

	return &f, nil
}

func normalizeQuantity(p model.SupplyPayload) (*int64, error) {
	v, ok := supplied(p, model.FieldQuantity)
	if !ok {
		return nil, nil
	}

	f, ok := parseNumber(v)
	if !ok || f < 0 {
		return nil, model.NewValidationError("must be a non-negative number", model.FieldQuantity)
	}
	if f != math.Trunc(f) {
		return nil, model.NewValidationError("must be a whole number", model.FieldQuantity)
	}
	if f >= math.MaxInt64 {
		return nil, model.NewValidationError("is out of range", model.FieldQuantity)
	}

	q := int64(f)
	return &q, nil
}

// normalizeDate returns the canonical date, or clear=true for an empty string.
func normalizeDate(p model.SupplyPayload) (date *string, clearDate bool, err error) {
	v, ok := supplied(p, model.FieldExpirationDate)
	if !ok {
		return nil, false, nil
	}

	s, isStr := v.(string)
	if !isStr {
		return nil, false, model.NewValidationError(dateFormatsHint, model.FieldExpirationDate)
	}

	s = strings.TrimSpace(s)
	if s == "" {
		return nil, true, nil
	}

	m := datePattern.FindStringSubmatch(s)
	if m == nil || m[2] != m[4] {
		return nil, false, model.NewValidationError(dateFormatsHint, model.FieldExpirationDate)
	}

	month, _ := strconv.Atoi(m[3])
	day, _ := strconv.Atoi(m[5])
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return nil, false, model.NewValidationError(dateFormatsHint, model.FieldExpirationDate)
	}

	canonical := m[1] + "-" + m[3] + "-" + m[5]
	return &canonical, false, nil
}

// parseNumber accepts JSON numbers and numeric strings. NaN and infinities are rejected.
func parseNumber(v any) (float64, bool) {
	var (
		f   float64
		err error
	)

	switch n := v.(type) {
	case json.Number:
		f, err = strconv.ParseFloat(n.String(), 64)
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0, false
		}
		f, err = strconv.ParseFloat(s, 64)
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case int32:
		f = float64(n)
	default:
		return 0, false
	}

	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	if f == 0 {
		// drop negative zero
		f = 0
	}

	return f, true
}

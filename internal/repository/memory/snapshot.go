package memory

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/you-humble/emergency-supply/internal/model"
)

// snapshot is the on-disk layout of the store.
type snapshot struct {
	Supplies []supplyRecord `json:"emergency_supplies"`
}

type supplyRecord struct {
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

func recordFromModel(s *model.Supply) supplyRecord {
	return supplyRecord{
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

// toModel copies pointer fields so callers cannot reach the stored record.
func (r supplyRecord) toModel() *model.Supply {
	return &model.Supply{
		ID:             r.ID,
		SupplyName:     r.SupplyName,
		Category:       r.Category,
		UnitPrice:      r.UnitPrice,
		Quantity:       r.Quantity,
		ExpirationDate: clonePtr(r.ExpirationDate),
		Supplier:       r.Supplier,
		Location:       r.Location,
		CreatedAt:      clonePtr(r.CreatedAt),
		UpdatedAt:      clonePtr(r.UpdatedAt),
	}
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// readSnapshot returns nil when the file does not exist or is empty.
func readSnapshot(path string) (*snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

func writeSnapshot(path string, snap snapshot) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}
	temp := path + ".tmp"
	if err := os.WriteFile(temp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(temp, path)
}

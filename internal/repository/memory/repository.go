package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/you-humble/emergency-supply/internal/model"
	"github.com/you-humble/emergency-supply/internal/validation"
)

type repository struct {
	mu       sync.RWMutex
	supplies []supplyRecord // insertion order
	path     string
}

// NewSupplyRepository returns an in-memory store. When snapshotPath is set
// the store is loaded from it and rewritten after every mutation.
func NewSupplyRepository(snapshotPath string) (*repository, error) {
	const op = "memory.NewSupplyRepository"

	r := &repository{supplies: make([]supplyRecord, 0), path: snapshotPath}
	if snapshotPath == "" {
		return r, nil
	}

	snap, err := readSnapshot(snapshotPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if snap != nil {
		r.supplies = snap.Supplies
	}

	return r, nil
}

func (r *repository) FindAll(_ context.Context) ([]*model.Supply, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return lo.Map(r.supplies, func(rec supplyRecord, _ int) *model.Supply {
		return rec.toModel()
	}), nil
}

func (r *repository) FindByName(_ context.Context, name string) (*model.Supply, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(name)
	if i < 0 {
		return nil, model.ErrSupplyNotFound
	}

	return r.supplies[i].toModel(), nil
}

func (r *repository) Insert(_ context.Context, s *model.Supply) (*model.Supply, error) {
	const op = "memory.Insert"

	if err := validation.CheckSupply(s); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(s.SupplyName) >= 0 {
		return nil, fmt.Errorf("%s: %w", op, model.ErrSupplyConflict)
	}

	now := time.Now().UTC()
	rec := recordFromModel(s)
	rec.ID = uuid.Must(uuid.NewV7()).String()
	rec.CreatedAt = lo.ToPtr(now)
	rec.UpdatedAt = lo.ToPtr(now)

	next := append(slices.Clone(r.supplies), rec)
	if err := r.commit(next); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return rec.toModel(), nil
}

func (r *repository) UpdateByName(
	_ context.Context,
	name string,
	patch model.SupplyPatch,
) (*model.Supply, error) {
	const op = "memory.UpdateByName"

	if err := validation.CheckPatch(patch); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(name)
	if i < 0 {
		return nil, model.ErrSupplyNotFound
	}
	if patch.SupplyName != nil && *patch.SupplyName != name && r.indexOf(*patch.SupplyName) >= 0 {
		return nil, fmt.Errorf("%s: %w", op, model.ErrSupplyConflict)
	}

	merged := r.supplies[i].toModel()
	patch.Apply(merged)
	merged.UpdatedAt = lo.ToPtr(time.Now().UTC())

	next := slices.Clone(r.supplies)
	next[i] = recordFromModel(merged)
	if err := r.commit(next); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return merged, nil
}

func (r *repository) DeleteByName(_ context.Context, name string) (*model.Supply, error) {
	const op = "memory.DeleteByName"

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(name)
	if i < 0 {
		return nil, model.ErrSupplyNotFound
	}
	removed := r.supplies[i].toModel()

	next := slices.Delete(slices.Clone(r.supplies), i, i+1)
	if err := r.commit(next); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return removed, nil
}

// indexOf must be called with mu held.
func (r *repository) indexOf(name string) int {
	return slices.IndexFunc(r.supplies, func(rec supplyRecord) bool {
		return rec.SupplyName == name
	})
}

// commit persists next before swapping it in, so a failed write leaves the store unchanged.
func (r *repository) commit(next []supplyRecord) error {
	if r.path != "" {
		if err := writeSnapshot(r.path, snapshot{Supplies: next}); err != nil {
			return err
		}
	}
	r.supplies = next
	return nil
}

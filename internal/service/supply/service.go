package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/you-humble/emergency-supply/internal/model"
	"github.com/you-humble/emergency-supply/internal/validation"
	"github.com/you-humble/emergency-supply/platform/logger"
)

type SupplyRepository interface {
	FindAll(ctx context.Context) ([]*model.Supply, error)
	FindByName(ctx context.Context, name string) (*model.Supply, error)
	Insert(ctx context.Context, s *model.Supply) (*model.Supply, error)
	UpdateByName(ctx context.Context, name string, patch model.SupplyPatch) (*model.Supply, error)
	DeleteByName(ctx context.Context, name string) (*model.Supply, error)
}

type service struct {
	repo           SupplyRepository
	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
}

func NewSupplyService(
	repo SupplyRepository,
	readDBTimeout time.Duration,
	writeDBTimeout time.Duration,
) *service {
	return &service{
		repo:           repo,
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
	}
}

func (s *service) List(ctx context.Context) ([]*model.Supply, error) {
	const op = "supply.service.List"

	ctx, cancel := withTimeout(ctx, s.readDBTimeout)
	defer cancel()

	out, err := s.repo.FindAll(ctx)
	if err != nil {
		logger.Error(ctx, "repository find all", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(out) == 0 {
		return nil, model.ErrNoSupplies
	}

	return out, nil
}

func (s *service) Get(ctx context.Context, name string) (*model.Supply, error) {
	const op = "supply.service.Get"
	log := logger.With(logger.String("supply_name", name))

	name = strings.TrimSpace(name)
	if name == "" {
		log.Warn(ctx, "validation: empty supply name")
		return nil, model.NewValidationError("supply name is required", model.FieldSupplyName)
	}

	ctx, cancel := withTimeout(ctx, s.readDBTimeout)
	defer cancel()

	out, err := s.repo.FindByName(ctx, name)
	if err != nil {
		if !errors.Is(err, model.ErrSupplyNotFound) {
			log.Error(ctx, "repository find by name", logger.ErrorF(err))
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

func (s *service) Create(ctx context.Context, payload model.SupplyPayload) (*model.Supply, error) {
	const op = "supply.service.Create"

	if err := validation.ValidateForCreate(payload); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	patch, err := validation.Normalize(payload)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	supply := patch.ToSupply()
	log := logger.With(logger.String("supply_name", supply.SupplyName))

	if err := s.ensureNameFree(ctx, supply.SupplyName); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ctx, cancel := withTimeout(ctx, s.writeDBTimeout)
	defer cancel()

	out, err := s.repo.Insert(ctx, supply)
	if err != nil {
		if !isClientError(err) {
			log.Error(ctx, "repository insert", logger.ErrorF(err))
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info(ctx, "supply created")
	return out, nil
}

func (s *service) Update(ctx context.Context, name string, payload model.SupplyPayload) (*model.Supply, error) {
	const op = "supply.service.Update"
	log := logger.With(logger.String("supply_name", name))

	name = strings.TrimSpace(name)
	if name == "" {
		log.Warn(ctx, "validation: empty supply name")
		return nil, model.NewValidationError("supply name is required", model.FieldSupplyName)
	}

	if err := validation.ValidateForUpdate(payload); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	patch, err := validation.Normalize(payload)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if patch.SupplyName != nil && *patch.SupplyName != name {
		if err := s.ensureNameFree(ctx, *patch.SupplyName); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	ctx, cancel := withTimeout(ctx, s.writeDBTimeout)
	defer cancel()

	out, err := s.repo.UpdateByName(ctx, name, patch)
	if err != nil {
		if !isClientError(err) {
			log.Error(ctx, "repository update by name", logger.ErrorF(err))
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info(ctx, "supply updated", logger.String("new_supply_name", out.SupplyName))
	return out, nil
}

func (s *service) Delete(ctx context.Context, name string) error {
	const op = "supply.service.Delete"
	log := logger.With(logger.String("supply_name", name))

	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%s: %w", op, model.ErrSupplyNotFound)
	}

	ctx, cancel := withTimeout(ctx, s.writeDBTimeout)
	defer cancel()

	if _, err := s.repo.DeleteByName(ctx, name); err != nil {
		if !errors.Is(err, model.ErrSupplyNotFound) {
			log.Error(ctx, "repository delete by name", logger.ErrorF(err))
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info(ctx, "supply deleted")
	return nil
}

// ensureNameFree fails with ErrSupplyConflict when a supply already holds name.
func (s *service) ensureNameFree(ctx context.Context, name string) error {
	ctx, cancel := withTimeout(ctx, s.readDBTimeout)
	defer cancel()

	_, err := s.repo.FindByName(ctx, name)
	switch {
	case err == nil:
		return model.ErrSupplyConflict
	case errors.Is(err, model.ErrSupplyNotFound):
		return nil
	default:
		logger.Error(ctx, "repository find by name", logger.String("supply_name", name), logger.ErrorF(err))
		return err
	}
}

func isClientError(err error) bool {
	return errors.Is(err, model.ErrValidation) ||
		errors.Is(err, model.ErrSupplyConflict) ||
		errors.Is(err, model.ErrSupplyNotFound)
}

// withTimeout leaves ctx untouched when d is not positive.
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}

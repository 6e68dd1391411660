package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/you-humble/emergency-supply/internal/model"
	"github.com/you-humble/emergency-supply/internal/validation"
	"github.com/you-humble/emergency-supply/platform/logger"
)

type repository struct {
	coll *mongo.Collection
}

func NewSupplyRepository(collection *mongo.Collection) *repository {
	return &repository{coll: collection}
}

func (r *repository) FindAll(ctx context.Context) ([]*model.Supply, error) {
	const op = "repository.FindAll"

	// _id is a UUIDv7, so sorting by it keeps insertion order.
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		if cerr := cur.Close(ctx); cerr != nil {
			logger.Warn(ctx, "failed to close cursor", logger.String("op", op), logger.ErrorF(cerr))
		}
	}()

	out := make([]*model.Supply, 0)
	for cur.Next(ctx) {
		var ent SupplyEntity
		if err := cur.Decode(&ent); err != nil {
			return nil, fmt.Errorf("%s decode: %w", op, err)
		}
		out = append(out, EntityToModel(&ent))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%s cursor: %w", op, err)
	}

	return out, nil
}

func (r *repository) FindByName(ctx context.Context, name string) (*model.Supply, error) {
	const op = "repository.FindByName"

	var ent SupplyEntity
	err := r.coll.FindOne(ctx, bson.M{"supply_name": name}).Decode(&ent)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrSupplyNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return EntityToModel(&ent), nil
}

func (r *repository) Insert(ctx context.Context, s *model.Supply) (*model.Supply, error) {
	const op = "repository.Insert"

	if err := validation.CheckSupply(s); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	now := time.Now().UTC()
	ent := EntityFromModel(s)
	ent.ID = uuid.Must(uuid.NewV7()).String()
	ent.CreatedAt = lo.ToPtr(now)
	ent.UpdatedAt = lo.ToPtr(now)

	if _, err := r.coll.InsertOne(ctx, ent); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("%s: %w", op, model.ErrSupplyConflict)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return EntityToModel(ent), nil
}

func (r *repository) UpdateByName(
	ctx context.Context,
	name string,
	patch model.SupplyPatch,
) (*model.Supply, error) {
	const op = "repository.UpdateByName"

	if err := validation.CheckPatch(patch); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var ent SupplyEntity
	err := r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"supply_name": name},
		BuildMongoUpdate(patch, time.Now().UTC()),
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&ent)
	if err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			return nil, model.ErrSupplyNotFound
		case mongo.IsDuplicateKeyError(err):
			return nil, fmt.Errorf("%s: %w", op, model.ErrSupplyConflict)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return EntityToModel(&ent), nil
}

func (r *repository) DeleteByName(ctx context.Context, name string) (*model.Supply, error) {
	const op = "repository.DeleteByName"

	var ent SupplyEntity
	err := r.coll.FindOneAndDelete(ctx, bson.M{"supply_name": name}).Decode(&ent)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrSupplyNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return EntityToModel(&ent), nil
}

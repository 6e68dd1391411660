package app

import (
	"context"
	"fmt"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/you-humble/emergency-supply/internal/config"
	envconfig "github.com/you-humble/emergency-supply/internal/config/env"
	"github.com/you-humble/emergency-supply/internal/repository/cache"
	"github.com/you-humble/emergency-supply/internal/repository/memory"
	repository "github.com/you-humble/emergency-supply/internal/repository/supply"
	service "github.com/you-humble/emergency-supply/internal/service/supply"
	thttp "github.com/you-humble/emergency-supply/internal/transport/http/supply/v1"
	"github.com/you-humble/emergency-supply/platform/closer"
	"github.com/you-humble/emergency-supply/platform/logger"
)

type SupplyHandler interface {
	Routes(r chi.Router)
}

type di struct {
	mongo      *mongo.Client
	collection *mongo.Collection
	redis      redis.UniversalClient

	repository service.SupplyRepository
	service    thttp.SupplyService
	handler    SupplyHandler

	router *chi.Mux
}

func NewDI() *di { return &di{} }

func (d *di) MongoDB(ctx context.Context) *mongo.Client {
	if d.mongo == nil {
		cfg := config.C()

		mongoClient, err := mongo.Connect(
			options.Client().ApplyURI(cfg.Mongo.DSN()),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create mongodb client: %v\n", err))
		}
		closer.AddNamed("Mongo Client",
			func(ctx context.Context) error {
				return mongoClient.Disconnect(ctx)
			})

		if err := mongoClient.Ping(ctx, readpref.Primary()); err != nil {
			panic(fmt.Sprintf("failed to ping database: %v\n", err))
		}

		d.mongo = mongoClient
	}

	return d.mongo
}

func (d *di) SuppliesCollection(ctx context.Context) *mongo.Collection {
	if d.collection == nil {
		d.collection = d.MongoDB(ctx).
			Database(config.C().Mongo.DatabaseName()).
			Collection(config.C().Mongo.SuppliesCollection())

		if err := repository.EnsureIndexes(ctx, d.collection); err != nil {
			panic(fmt.Sprintf("failed to ensure indexes: %v\n", err))
		}
	}

	return d.collection
}

func (d *di) Redis(ctx context.Context) redis.UniversalClient {
	if d.redis == nil {
		cfg := config.C().Redis

		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Addr(),
			Password: cfg.Password(),
			DB:       cfg.DB(),
		})
		closer.AddNamed("Redis Client",
			func(ctx context.Context) error {
				return client.Close()
			})

		if err := client.Ping(ctx).Err(); err != nil {
			logger.Warn(ctx, "redis is unreachable, cache reads will fall through",
				logger.String("addr", cfg.Addr()),
				logger.ErrorF(err),
			)
		}

		d.redis = client
	}

	return d.redis
}

func (d *di) SupplyRepository(ctx context.Context) service.SupplyRepository {
	if d.repository == nil {
		cfg := config.C()

		var repo service.SupplyRepository
		switch cfg.Storage.Driver() {
		case envconfig.StorageDriverMemory:
			memRepo, err := memory.NewSupplyRepository(cfg.Storage.SnapshotPath())
			if err != nil {
				panic(fmt.Sprintf("failed to open memory storage: %v\n", err))
			}
			repo = memRepo
		default:
			repo = repository.NewSupplyRepository(d.SuppliesCollection(ctx))
		}

		if cfg.Redis.Enabled() {
			repo = cache.NewSupplyRepository(repo, d.Redis(ctx), cfg.Redis.CacheTTL())
		}

		d.repository = repo
	}

	return d.repository
}

func (d *di) SupplyService(ctx context.Context) thttp.SupplyService {
	if d.service == nil {
		d.service = service.NewSupplyService(
			d.SupplyRepository(ctx),
			config.C().Server.DBReadTimeout(),
			config.C().Server.DBWriteTimeout(),
		)
	}

	return d.service
}

func (d *di) SupplyHandler(ctx context.Context) SupplyHandler {
	if d.handler == nil {
		d.handler = thttp.NewSupplyHandler(d.SupplyService(ctx))
	}

	return d.handler
}

func (d *di) Router(_ context.Context) *chi.Mux {
	if d.router == nil {
		d.router = chi.NewRouter()
	}

	return d.router
}

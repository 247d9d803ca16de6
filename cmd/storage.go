package main

import (
	"context"

	"futuresbot/internal/repository"
	"futuresbot/internal/repository/mongo"
	"futuresbot/internal/repository/postgres"
)

func (a *App) initStorage(ctx context.Context) (repository.OrderRepo, error) {
	switch a.Config.StorageDriver {
	case StoragePostgres:
		if err := a.initDB(ctx); err != nil {
			return nil, err
		}

		orderRepo := postgres.NewOrderRepository(a.DB)
		if err := orderRepo.Migrate(ctx); err != nil {
			return nil, err
		}

		return orderRepo, nil
	default:
		if err := a.initMongo(ctx); err != nil {
			return nil, err
		}

		return mongo.NewOrderRepository(a.Mongo, a.Config.Mongo.Database, a.Config.Mongo.Collection), nil
	}
}

package main

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (a *App) initMongo(ctx context.Context) error {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(a.Config.Mongo.URI))
	if err != nil {
		return err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return err
	}

	a.Mongo = client

	return nil
}

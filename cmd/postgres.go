package main

import (
	"context"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

func (a *App) initDB(ctx context.Context) error {
	db, err := sqlx.ConnectContext(ctx, "postgres", a.Config.DB.DSN())
	if err != nil {
		return err
	}
	a.DB = db

	return nil
}

package repository

import (
	"context"

	"futuresbot/models"
)

//go:generate mockery --case=snake --name=OrderRepo

// OrderRepo is the storage collaborator. Records are written once and never updated.
type OrderRepo interface {
	// Insert writes m and returns the identifier the storage assigned to it.
	Insert(ctx context.Context, m *models.Order) (string, error)
	// ListByOwner returns at most limit orders of owner in the storage's natural order.
	ListByOwner(ctx context.Context, owner string, limit int64) ([]models.Order, error)
}

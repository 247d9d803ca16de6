package mongo

import (
	"context"
	"errors"
	"testing"
	"time"

	"futuresbot/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestOrderRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	defer mt.Close()

	createdAt := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	price := 30250.5

	mt.Run("Insert", func(mt *mtest.T) {
		repo := &OrderRepository{collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		id, err := repo.Insert(context.Background(), &models.Order{
			Symbol:    "BTCUSDT",
			Side:      models.SideBuy,
			Quantity:  0.5,
			OrderType: models.OrderTypeLimit,
			Status:    models.StatusPending,
			CreatedAt: createdAt,
			Owner:     "alice",
			Price:     &price,
		})
		require.NoError(t, err)

		_, err = primitive.ObjectIDFromHex(id)
		assert.NoError(t, err)
	})

	mt.Run("Insert error", func(mt *mtest.T) {
		repo := &OrderRepository{collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))

		_, err := repo.Insert(context.Background(), &models.Order{Symbol: "BTCUSDT", Owner: "alice"})
		assert.Error(t, err)
		assert.True(t, mongo.IsDuplicateKeyError(err))
	})

	mt.Run("ListByOwner", func(mt *mtest.T) {
		repo := &OrderRepository{collection: mt.Coll}

		limitID := primitive.NewObjectID()
		marketID := primitive.NewObjectID()
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()

		first := mtest.CreateCursorResponse(1, ns, mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: limitID},
				{Key: "symbol", Value: "BTCUSDT"},
				{Key: "side", Value: "BUY"},
				{Key: "quantity", Value: 0.5},
				{Key: "order_type", Value: "LIMIT"},
				{Key: "status", Value: "PENDING"},
				{Key: "created_at", Value: primitive.NewDateTimeFromTime(createdAt)},
				{Key: "user_id", Value: "alice"},
				{Key: "price", Value: price},
			},
		)
		next := mtest.CreateCursorResponse(0, ns, mtest.NextBatch,
			bson.D{
				{Key: "_id", Value: marketID},
				{Key: "symbol", Value: "ETHUSDT"},
				{Key: "side", Value: "SELL"},
				{Key: "quantity", Value: 2.0},
				{Key: "order_type", Value: "MARKET"},
				{Key: "status", Value: "PENDING"},
				{Key: "created_at", Value: primitive.NewDateTimeFromTime(createdAt)},
				{Key: "user_id", Value: "alice"},
			},
		)
		mt.AddMockResponses(first, next)

		orders, err := repo.ListByOwner(context.Background(), "alice", 100)
		require.NoError(t, err)
		require.Len(t, orders, 2)

		assert.Equal(t, limitID.Hex(), orders[0].ID)
		assert.Equal(t, models.OrderTypeLimit, orders[0].OrderType)
		assert.Equal(t, createdAt, orders[0].CreatedAt)
		require.NotNil(t, orders[0].Price)
		assert.Equal(t, price, *orders[0].Price)

		assert.Equal(t, marketID.Hex(), orders[1].ID)
		assert.Nil(t, orders[1].Price)
		assert.Equal(t, "alice", orders[1].Owner)
	})

	mt.Run("ListByOwner error", func(mt *mtest.T) {
		repo := &OrderRepository{collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Message: "bad query",
		}))

		_, err := repo.ListByOwner(context.Background(), "alice", 100)
		assert.Error(t, err)

		var cmdErr mongo.CommandError
		assert.True(t, errors.As(err, &cmdErr))
	})
}

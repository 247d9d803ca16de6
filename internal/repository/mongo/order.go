package mongo

import (
	"context"
	"errors"

	"futuresbot/internal/repository/mongo/structs"
	"futuresbot/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrUnexpectedID = errors.New("inserted id is not an ObjectID")

type OrderRepository struct {
	collection *mongo.Collection
}

func NewOrderRepository(conn *mongo.Client, database, collection string) *OrderRepository {
	return &OrderRepository{collection: conn.Database(database).Collection(collection)}
}

func (r *OrderRepository) Insert(ctx context.Context, m *models.Order) (string, error) {
	res, err := r.collection.InsertOne(ctx, structs.FromModel(m))
	if err != nil {
		return "", err
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", ErrUnexpectedID
	}

	return id.Hex(), nil
}

func (r *OrderRepository) ListByOwner(ctx context.Context, owner string, limit int64) ([]models.Order, error) {
	cursor, err := r.collection.Find(ctx, bson.D{{Key: "user_id", Value: owner}}, options.Find().SetLimit(limit))
	if err != nil {
		return nil, err
	}

	var docs []structs.Order
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	out := make([]models.Order, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].Model())
	}

	return out, nil
}

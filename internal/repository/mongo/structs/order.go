package structs

import (
	"time"

	"futuresbot/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order is the document layout of the orders collection. Fields a variant does not use are omitted.
type Order struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Symbol    string             `bson:"symbol"`
	Side      string             `bson:"side"`
	Quantity  float64            `bson:"quantity"`
	OrderType string             `bson:"order_type"`
	Status    string             `bson:"status"`
	CreatedAt time.Time          `bson:"created_at"`
	UserID    string             `bson:"user_id"`

	Price      *float64 `bson:"price,omitempty"`
	StopPrice  *float64 `bson:"stop_price,omitempty"`
	LimitPrice *float64 `bson:"limit_price,omitempty"`
	LowerPrice *float64 `bson:"lower_price,omitempty"`
	UpperPrice *float64 `bson:"upper_price,omitempty"`
	Duration   *int     `bson:"duration,omitempty"`
	Slices     *int     `bson:"slices,omitempty"`
	Grids      *int     `bson:"grids,omitempty"`
	OCOGroup   *float64 `bson:"oco_group,omitempty"`
}

func FromModel(m *models.Order) *Order {
	return &Order{
		Symbol:     m.Symbol,
		Side:       string(m.Side),
		Quantity:   m.Quantity,
		OrderType:  string(m.OrderType),
		Status:     string(m.Status),
		CreatedAt:  m.CreatedAt,
		UserID:     m.Owner,
		Price:      m.Price,
		StopPrice:  m.StopPrice,
		LimitPrice: m.LimitPrice,
		LowerPrice: m.LowerPrice,
		UpperPrice: m.UpperPrice,
		Duration:   m.Duration,
		Slices:     m.Slices,
		Grids:      m.Grids,
		OCOGroup:   m.OCOGroup,
	}
}

func (o *Order) Model() models.Order {
	return models.Order{
		ID:         o.ID.Hex(),
		Symbol:     o.Symbol,
		Side:       models.Side(o.Side),
		Quantity:   o.Quantity,
		OrderType:  models.OrderType(o.OrderType),
		Status:     models.Status(o.Status),
		CreatedAt:  o.CreatedAt.UTC(),
		Owner:      o.UserID,
		Price:      o.Price,
		StopPrice:  o.StopPrice,
		LimitPrice: o.LimitPrice,
		LowerPrice: o.LowerPrice,
		UpperPrice: o.UpperPrice,
		Duration:   o.Duration,
		Slices:     o.Slices,
		Grids:      o.Grids,
		OCOGroup:   o.OCOGroup,
	}
}

package models

import "time"

type OrderType string

const (
	OrderTypeMarket    OrderType = "MARKET"
	OrderTypeLimit     OrderType = "LIMIT"
	OrderTypeStopLimit OrderType = "STOP_LIMIT"
	OrderTypeOCO       OrderType = "OCO"
	OrderTypeTWAP      OrderType = "TWAP"
	OrderTypeGrid      OrderType = "GRID"
)

func (t OrderType) ToString() string {
	return string(t)
}

type Side string

const (
	SideBuy  Side = "BUY"
	SideSell Side = "SELL"
)

type Status string

// StatusPending is the only status an order ever has.
const StatusPending Status = "PENDING"

// Order is the stored record. Optional fields stay nil when the variant does not use them.
type Order struct {
	ID        string    `db:"id"`
	Symbol    string    `db:"symbol"`
	Side      Side      `db:"side"`
	Quantity  float64   `db:"quantity"`
	OrderType OrderType `db:"order_type"`
	Status    Status    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
	Owner     string    `db:"user_id"`

	Price      *float64 `db:"price"`
	StopPrice  *float64 `db:"stop_price"`
	LimitPrice *float64 `db:"limit_price"`
	LowerPrice *float64 `db:"lower_price"`
	UpperPrice *float64 `db:"upper_price"`
	Duration   *int     `db:"duration"`
	Slices     *int     `db:"slices"`
	Grids      *int     `db:"grids"`

	OCOGroup *float64 `db:"oco_group"`
}

// OrderResponse is the representation handed back to callers, every optional field present.
type OrderResponse struct {
	ID         string    `json:"id"`
	Symbol     string    `json:"symbol"`
	Side       string    `json:"side"`
	Quantity   float64   `json:"quantity"`
	OrderType  string    `json:"order_type"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	Price      *float64  `json:"price"`
	StopPrice  *float64  `json:"stop_price"`
	LimitPrice *float64  `json:"limit_price"`
	LowerPrice *float64  `json:"lower_price"`
	UpperPrice *float64  `json:"upper_price"`
	Duration   *int      `json:"duration"`
	Slices     *int      `json:"slices"`
	Grids      *int      `json:"grids"`
}

func (o *Order) Response() *OrderResponse {
	return &OrderResponse{
		ID:         o.ID,
		Symbol:     o.Symbol,
		Side:       string(o.Side),
		Quantity:   o.Quantity,
		OrderType:  string(o.OrderType),
		Status:     string(o.Status),
		CreatedAt:  o.CreatedAt,
		Price:      o.Price,
		StopPrice:  o.StopPrice,
		LimitPrice: o.LimitPrice,
		LowerPrice: o.LowerPrice,
		UpperPrice: o.UpperPrice,
		Duration:   o.Duration,
		Slices:     o.Slices,
		Grids:      o.Grids,
	}
}

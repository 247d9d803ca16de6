package structs

import "futuresbot/models"

// Numeric fields are pointers so that an absent field is told apart from a zero one:
// absence is a shape error, zero is a rule violation.

type MarketOrderRequest struct {
	Symbol    string   `json:"symbol" validate:"required"`
	Side      string   `json:"side" validate:"required,oneof=BUY SELL"`
	Quantity  *float64 `json:"quantity" validate:"required"`
	OrderType string   `json:"order_type" validate:"omitempty,eq=MARKET"`
}

func (r *MarketOrderRequest) Order() *models.Order {
	return &models.Order{
		Symbol:    r.Symbol,
		Side:      models.Side(r.Side),
		Quantity:  *r.Quantity,
		OrderType: models.OrderTypeMarket,
	}
}

type LimitOrderRequest struct {
	Symbol    string   `json:"symbol" validate:"required"`
	Side      string   `json:"side" validate:"required,oneof=BUY SELL"`
	Quantity  *float64 `json:"quantity" validate:"required"`
	Price     *float64 `json:"price" validate:"required"`
	OrderType string   `json:"order_type" validate:"omitempty,eq=LIMIT"`
}

func (r *LimitOrderRequest) Order() *models.Order {
	return &models.Order{
		Symbol:    r.Symbol,
		Side:      models.Side(r.Side),
		Quantity:  *r.Quantity,
		OrderType: models.OrderTypeLimit,
		Price:     float64Ptr(*r.Price),
	}
}

type StopLimitOrderRequest struct {
	Symbol    string   `json:"symbol" validate:"required"`
	Side      string   `json:"side" validate:"required,oneof=BUY SELL"`
	Quantity  *float64 `json:"quantity" validate:"required"`
	Price     *float64 `json:"price" validate:"required"`
	StopPrice *float64 `json:"stop_price" validate:"required"`
	OrderType string   `json:"order_type" validate:"omitempty,eq=STOP_LIMIT"`
}

func (r *StopLimitOrderRequest) Order() *models.Order {
	return &models.Order{
		Symbol:    r.Symbol,
		Side:      models.Side(r.Side),
		Quantity:  *r.Quantity,
		OrderType: models.OrderTypeStopLimit,
		Price:     float64Ptr(*r.Price),
		StopPrice: float64Ptr(*r.StopPrice),
	}
}

// OCOOrderRequest carries no side: both generated legs are SELL.
type OCOOrderRequest struct {
	Symbol         string   `json:"symbol" validate:"required"`
	Quantity       *float64 `json:"quantity" validate:"required"`
	LimitPrice     *float64 `json:"limit_price" validate:"required"`
	StopPrice      *float64 `json:"stop_price" validate:"required"`
	StopLimitPrice *float64 `json:"stop_limit_price" validate:"required"`
}

// Orders builds the limit leg and the stop-limit leg. Both share group.
func (r *OCOOrderRequest) Orders(group float64) (*models.Order, *models.Order) {
	limit := &models.Order{
		Symbol:    r.Symbol,
		Side:      models.SideSell,
		Quantity:  *r.Quantity,
		OrderType: models.OrderTypeLimit,
		Price:     float64Ptr(*r.LimitPrice),
		OCOGroup:  float64Ptr(group),
	}

	stop := &models.Order{
		Symbol:    r.Symbol,
		Side:      models.SideSell,
		Quantity:  *r.Quantity,
		OrderType: models.OrderTypeStopLimit,
		Price:     float64Ptr(*r.StopLimitPrice),
		StopPrice: float64Ptr(*r.StopPrice),
		OCOGroup:  float64Ptr(group),
	}

	return limit, stop
}

type OCOResponse struct {
	Message      string `json:"message"`
	LimitOrderID string `json:"limit_order_id"`
	StopOrderID  string `json:"stop_order_id"`
}

type TWAPOrderRequest struct {
	Symbol   string   `json:"symbol" validate:"required"`
	Side     string   `json:"side" validate:"required,oneof=BUY SELL"`
	Quantity *float64 `json:"quantity" validate:"required"`
	Price    *float64 `json:"price" validate:"required"`
	// Duration is in minutes.
	Duration  *int   `json:"duration" validate:"required"`
	Slices    *int   `json:"slices" validate:"required"`
	OrderType string `json:"order_type" validate:"omitempty,eq=TWAP"`
}

func (r *TWAPOrderRequest) Order() *models.Order {
	return &models.Order{
		Symbol:    r.Symbol,
		Side:      models.Side(r.Side),
		Quantity:  *r.Quantity,
		OrderType: models.OrderTypeTWAP,
		Price:     float64Ptr(*r.Price),
		Duration:  intPtr(*r.Duration),
		Slices:    intPtr(*r.Slices),
	}
}

type GridOrderRequest struct {
	Symbol     string   `json:"symbol" validate:"required"`
	Side       string   `json:"side" validate:"required,oneof=BUY SELL"`
	Quantity   *float64 `json:"quantity" validate:"required"`
	LowerPrice *float64 `json:"lower_price" validate:"required"`
	UpperPrice *float64 `json:"upper_price" validate:"required"`
	Grids      *int     `json:"grids" validate:"required"`
	OrderType  string   `json:"order_type" validate:"omitempty,eq=GRID"`
}

func (r *GridOrderRequest) Order() *models.Order {
	return &models.Order{
		Symbol:     r.Symbol,
		Side:       models.Side(r.Side),
		Quantity:   *r.Quantity,
		OrderType:  models.OrderTypeGrid,
		LowerPrice: float64Ptr(*r.LowerPrice),
		UpperPrice: float64Ptr(*r.UpperPrice),
		Grids:      intPtr(*r.Grids),
	}
}

func float64Ptr(v float64) *float64 {
	return &v
}

func intPtr(v int) *int {
	return &v
}

package usecasees

import (
	"context"
	"fmt"
	"time"

	"futuresbot/internal/events"
	"futuresbot/internal/repository"
	"futuresbot/internal/scheduler"
	"futuresbot/internal/usecasees/structs"
	"futuresbot/models"

	"github.com/sirupsen/logrus"
)

// ListLimit caps how many orders one list call returns.
const ListLimit = 100

const ocoPlacedMessage = "OCO order placed successfully"

type TaskScheduler interface {
	Submit(t scheduler.Task) error
}

type orderUseCase struct {
	orderRepo repository.OrderRepo
	scheduler TaskScheduler
	sink      events.Sink
	clock     Clock
	metrics   *structs.Metrics

	wait WaitFunc

	logger *logrus.Logger
}

func NewOrderUseCase(
	orderRepo repository.OrderRepo,
	scheduler TaskScheduler,
	sink events.Sink,
	clock Clock,
	metrics *structs.Metrics,
	logger *logrus.Logger,
) *orderUseCase {
	return &orderUseCase{
		orderRepo: orderRepo,
		scheduler: scheduler,
		sink:      sink,
		clock:     clock,
		metrics:   metrics,
		wait:      sleep,
		logger:    logger,
	}
}

func (u *orderUseCase) PlaceMarket(ctx context.Context, owner string, req *structs.MarketOrderRequest) (*models.OrderResponse, error) {
	if err := ValidateMarket(req); err != nil {
		return nil, err
	}

	return u.place(ctx, owner, req.Order())
}

func (u *orderUseCase) PlaceLimit(ctx context.Context, owner string, req *structs.LimitOrderRequest) (*models.OrderResponse, error) {
	if err := ValidateLimit(req); err != nil {
		return nil, err
	}

	return u.place(ctx, owner, req.Order())
}

func (u *orderUseCase) PlaceStopLimit(ctx context.Context, owner string, req *structs.StopLimitOrderRequest) (*models.OrderResponse, error) {
	if err := ValidateStopLimit(req); err != nil {
		return nil, err
	}

	return u.place(ctx, owner, req.Order())
}

func (u *orderUseCase) PlaceGrid(ctx context.Context, owner string, req *structs.GridOrderRequest) (*models.OrderResponse, error) {
	if err := ValidateGrid(req); err != nil {
		return nil, err
	}

	return u.place(ctx, owner, req.Order())
}

// PlaceTWAP persists the order and hands its slicing to the scheduler.
// A scheduling failure is logged only: the order is already stored.
func (u *orderUseCase) PlaceTWAP(ctx context.Context, owner string, req *structs.TWAPOrderRequest) (*models.OrderResponse, error) {
	if err := ValidateTWAP(req); err != nil {
		return nil, err
	}

	order := req.Order()

	resp, err := u.place(ctx, owner, order)
	if err != nil {
		return nil, err
	}

	plan, err := NewSlicePlan(order)
	if err == nil {
		err = u.scheduler.Submit(&twapTask{
			plan:    plan,
			wait:    u.wait,
			sink:    u.sink,
			metrics: u.metrics,
			clock:   u.clock,
			logger:  u.logger,
		})
	}

	if err != nil {
		u.emit(ctx, order, events.Event{
			Name:    events.TWAPFailed,
			Level:   events.LevelError,
			Message: fmt.Sprintf("TWAP order %s was not scheduled: %v", order.ID, err),
		})
	}

	return resp, nil
}

// PlaceOCO stores a SELL limit leg and a SELL stop-limit leg sharing one group key.
// The two writes are independent: when the second fails the first stays stored.
func (u *orderUseCase) PlaceOCO(ctx context.Context, owner string, req *structs.OCOOrderRequest) (*structs.OCOResponse, error) {
	if err := ValidateOCO(req); err != nil {
		return nil, err
	}

	now := u.now()
	group := float64(now.UnixNano()) / float64(time.Second)

	limit, stop := req.Orders(group)
	for _, o := range []*models.Order{limit, stop} {
		o.Status = models.StatusPending
		o.CreatedAt = now
		o.Owner = owner
	}

	if err := u.insert(ctx, limit); err != nil {
		return nil, u.failed(ctx, limit, models.OrderTypeOCO, "insert oco limit leg", err)
	}

	if err := u.insert(ctx, stop); err != nil {
		u.logger.
			WithField("method", "PlaceOCO").
			WithField("order_id", limit.ID).
			Warn("oco limit leg stored without its stop leg")

		return nil, u.failed(ctx, stop, models.OrderTypeOCO, "insert oco stop leg", err)
	}

	u.emit(ctx, limit, events.Event{
		Name:      events.OCOPlaced,
		Level:     events.LevelInfo,
		OrderType: models.OrderTypeOCO.ToString(),
		Message:   fmt.Sprintf("OCO order placed: limit %s and stop %s", limit.ID, stop.ID),
		Fields: map[string]interface{}{
			"oco_group":      group,
			"limit_order_id": limit.ID,
			"stop_order_id":  stop.ID,
		},
	})

	return &structs.OCOResponse{
		Message:      ocoPlacedMessage,
		LimitOrderID: limit.ID,
		StopOrderID:  stop.ID,
	}, nil
}

// List returns up to ListLimit orders of owner, every optional field present.
func (u *orderUseCase) List(ctx context.Context, owner string) ([]models.OrderResponse, error) {
	orders, err := u.orderRepo.ListByOwner(ctx, owner, ListLimit)
	if err != nil {
		u.logger.
			WithField("method", "List").
			WithField("owner", owner).
			WithError(err).
			Error("list orders")

		return nil, structs.NewInternalError("list orders", err)
	}

	out := make([]models.OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, *orders[i].Response())
	}

	return out, nil
}

func (u *orderUseCase) place(ctx context.Context, owner string, order *models.Order) (*models.OrderResponse, error) {
	order.Status = models.StatusPending
	order.CreatedAt = u.now()
	order.Owner = owner

	if err := u.insert(ctx, order); err != nil {
		return nil, u.failed(ctx, order, order.OrderType, "insert order", err)
	}

	u.emit(ctx, order, events.Event{
		Name:    events.OrderPlaced,
		Level:   events.LevelInfo,
		Message: fmt.Sprintf("%s order placed: %s %s %v", order.OrderType, order.Side, order.Symbol, order.Quantity),
	})

	return order.Response(), nil
}

func (u *orderUseCase) insert(ctx context.Context, order *models.Order) error {
	id, err := u.orderRepo.Insert(ctx, order)
	if err != nil {
		return err
	}

	order.ID = id
	u.metrics.OrdersPlaced.WithLabelValues(order.OrderType.ToString()).Inc()

	return nil
}

func (u *orderUseCase) failed(ctx context.Context, order *models.Order, orderType models.OrderType, op string, err error) error {
	u.metrics.OrdersFailed.WithLabelValues(orderType.ToString()).Inc()

	u.emit(ctx, order, events.Event{
		Name:      events.OrderFailed,
		Level:     events.LevelError,
		OrderType: orderType.ToString(),
		Message:   fmt.Sprintf("Error placing %s order: %v", orderType, err),
	})

	return structs.NewInternalError(op, err)
}

// now is millisecond precision so a stored timestamp reads back unchanged.
func (u *orderUseCase) now() time.Time {
	return u.clock.Now().UTC().Truncate(time.Millisecond)
}

func (u *orderUseCase) emit(ctx context.Context, order *models.Order, ev events.Event) {
	ev.OrderID = order.ID
	ev.Owner = order.Owner
	if ev.OrderType == "" {
		ev.OrderType = order.OrderType.ToString()
	}
	ev.Time = u.clock.Now()

	if err := u.sink.Emit(ctx, ev); err != nil {
		u.logger.
			WithField("method", "emit").
			WithField("event", ev.Name).
			Debug(err)
	}
}

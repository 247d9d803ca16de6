package usecasees

import (
	"context"
	"errors"
	"fmt"
	"time"

	"futuresbot/internal/events"
	"futuresbot/internal/usecasees/structs"
	"futuresbot/models"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var ErrInvalidSlicePlan = errors.New("twap order needs positive duration and slices")

// SlicePlan splits a TWAP order into Slices equal pieces, one every Interval.
type SlicePlan struct {
	OrderID       string
	Owner         string
	Slices        int
	SliceQuantity decimal.Decimal
	Interval      time.Duration
}

func NewSlicePlan(order *models.Order) (*SlicePlan, error) {
	if order.Slices == nil || order.Duration == nil || *order.Slices <= 0 || *order.Duration <= 0 {
		return nil, ErrInvalidSlicePlan
	}

	n := *order.Slices

	return &SlicePlan{
		OrderID:       order.ID,
		Owner:         order.Owner,
		Slices:        n,
		SliceQuantity: decimal.NewFromFloat(order.Quantity).Div(decimal.NewFromInt(int64(n))),
		Interval:      time.Duration(*order.Duration) * time.Minute / time.Duration(n),
	}, nil
}

// WaitFunc blocks for d or until ctx is done.
type WaitFunc func(ctx context.Context, d time.Duration) error

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

type twapTask struct {
	plan    *SlicePlan
	wait    WaitFunc
	sink    events.Sink
	metrics *structs.Metrics
	clock   Clock
	logger  *logrus.Logger
}

func (t *twapTask) Name() string {
	return "twap:" + t.plan.OrderID
}

// Run emits one event per slice, slice i strictly after slice i-1. No trade is sent.
func (t *twapTask) Run(ctx context.Context) error {
	p := t.plan

	for i := 1; i <= p.Slices; i++ {
		if err := t.wait(ctx, p.Interval); err != nil {
			if !errors.Is(err, context.Canceled) {
				t.emit(ctx, events.Event{
					Name:    events.TWAPFailed,
					Level:   events.LevelError,
					Message: fmt.Sprintf("TWAP order %s stopped before slice %d/%d: %v", p.OrderID, i, p.Slices, err),
					Fields:  map[string]interface{}{"slice": i, "slices": p.Slices},
				})
			}
			return err
		}

		t.emit(ctx, events.Event{
			Name:    events.TWAPSliceExecuted,
			Level:   events.LevelInfo,
			Message: fmt.Sprintf("Executing TWAP slice %d/%d for order %s", i, p.Slices, p.OrderID),
			Fields: map[string]interface{}{
				"slice":          i,
				"slices":         p.Slices,
				"slice_quantity": p.SliceQuantity.String(),
			},
		})
		t.metrics.TWAPSlices.Inc()
	}

	t.emit(ctx, events.Event{
		Name:    events.TWAPCompleted,
		Level:   events.LevelInfo,
		Message: fmt.Sprintf("TWAP order %s finished %d slices", p.OrderID, p.Slices),
		Fields:  map[string]interface{}{"slices": p.Slices},
	})

	return nil
}

func (t *twapTask) emit(ctx context.Context, ev events.Event) {
	ev.OrderID = t.plan.OrderID
	ev.Owner = t.plan.Owner
	ev.OrderType = models.OrderTypeTWAP.ToString()
	ev.Time = t.clock.Now()

	if err := t.sink.Emit(ctx, ev); err != nil {
		t.logger.
			WithField("method", "twapTask.emit").
			WithField("order_id", t.plan.OrderID).
			Debug(err)
	}
}

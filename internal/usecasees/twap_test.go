package usecasees

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"futuresbot/internal/events"
	"futuresbot/internal/usecasees/structs"
	"futuresbot/models"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordWait struct {
	mu    sync.Mutex
	waits []time.Duration
	err   error
	after int
}

func (w *recordWait) wait(ctx context.Context, d time.Duration) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.err != nil && len(w.waits) >= w.after {
		return w.err
	}
	w.waits = append(w.waits, d)

	return ctx.Err()
}

func twapOrder(id string, qty float64, duration, slices int) *models.Order {
	return &models.Order{
		ID:        id,
		Symbol:    "BTCUSDT",
		Side:      models.SideBuy,
		Quantity:  qty,
		OrderType: models.OrderTypeTWAP,
		Status:    models.StatusPending,
		Owner:     "alice",
		Price:     f64(30000),
		Duration:  intp(duration),
		Slices:    intp(slices),
	}
}

func newTWAPTask(t *testing.T, order *models.Order, w *recordWait) (*twapTask, *recordSink, *structs.Metrics) {
	t.Helper()

	plan, err := NewSlicePlan(order)
	require.NoError(t, err)

	logger, _ := test.NewNullLogger()
	sink := &recordSink{}
	metrics := structs.NewMetrics()

	return &twapTask{
		plan:    plan,
		wait:    w.wait,
		sink:    sink,
		metrics: metrics,
		clock:   fixedClock{now: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		logger:  logger,
	}, sink, metrics
}

func Test_NewSlicePlan(t *testing.T) {
	tests := []struct {
		name             string
		qty              float64
		duration, slices int
		sliceQty         string
		interval         time.Duration
	}{
		{name: "even split", qty: 10, duration: 10, slices: 5, sliceQty: "2", interval: 2 * time.Minute},
		{name: "single slice", qty: 0.5, duration: 1, slices: 1, sliceQty: "0.5", interval: time.Minute},
		{name: "sub second interval", qty: 1, duration: 1, slices: 120, sliceQty: "0.0083333333333333", interval: 500 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := NewSlicePlan(twapOrder("id", tt.qty, tt.duration, tt.slices))
			require.NoError(t, err)

			assert.Equal(t, tt.slices, plan.Slices)
			assert.Equal(t, tt.sliceQty, plan.SliceQuantity.String())
			assert.Equal(t, tt.interval, plan.Interval)
		})
	}

	t.Run("missing slices", func(t *testing.T) {
		order := twapOrder("id", 1, 1, 1)
		order.Slices = nil

		_, err := NewSlicePlan(order)
		assert.ErrorIs(t, err, ErrInvalidSlicePlan)
	})
}

func Test_TWAPTask_Run(t *testing.T) {
	w := &recordWait{}
	task, sink, metrics := newTWAPTask(t, twapOrder("abc", 10, 10, 5), w)

	require.NoError(t, task.Run(context.Background()))

	assert.Equal(t, []time.Duration{
		120 * time.Second, 120 * time.Second, 120 * time.Second, 120 * time.Second, 120 * time.Second,
	}, w.waits)

	require.Len(t, sink.got, 6)
	for i := 0; i < 5; i++ {
		ev := sink.got[i]
		assert.Equal(t, events.TWAPSliceExecuted, ev.Name)
		assert.Equal(t, fmt.Sprintf("Executing TWAP slice %d/5 for order abc", i+1), ev.Message)
		assert.Equal(t, i+1, ev.Fields["slice"])
		assert.Equal(t, "2", ev.Fields["slice_quantity"])
		assert.Equal(t, "abc", ev.OrderID)
		assert.Equal(t, "TWAP", ev.OrderType)
	}
	assert.Equal(t, events.TWAPCompleted, sink.got[5].Name)
	assert.Equal(t, 5.0, testutil.ToFloat64(metrics.TWAPSlices))
}

func Test_TWAPTask_Cancelled(t *testing.T) {
	w := &recordWait{err: context.Canceled, after: 2}
	task, sink, metrics := newTWAPTask(t, twapOrder("abc", 10, 10, 5), w)

	err := task.Run(context.Background())
	assert.ErrorIs(t, err, context.Canceled)

	assert.Equal(t, []string{events.TWAPSliceExecuted, events.TWAPSliceExecuted}, sink.names())
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.TWAPSlices))
}

func Test_TWAPTask_WaitFails(t *testing.T) {
	boom := errors.New("timer broken")
	w := &recordWait{err: boom, after: 1}
	task, sink, _ := newTWAPTask(t, twapOrder("abc", 10, 10, 5), w)

	err := task.Run(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{events.TWAPSliceExecuted, events.TWAPFailed}, sink.names())
}

func Test_Sleep(t *testing.T) {
	assert.NoError(t, sleep(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, sleep(ctx, time.Hour), context.Canceled)
}

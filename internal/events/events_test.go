package events_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"futuresbot/internal/controllers/mocks"
	"futuresbot/internal/events"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func sliceEvent() events.Event {
	return events.Event{
		Name:      events.TWAPSliceExecuted,
		Level:     events.LevelInfo,
		OrderID:   "65f1c0ffee",
		OrderType: "TWAP",
		Message:   "Executing TWAP slice 1/5 for order 65f1c0ffee",
		Fields:    map[string]interface{}{"slice": 1, "slices": 5},
		Time:      time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestLogSink(t *testing.T) {
	logger, hook := test.NewNullLogger()
	sink := events.NewLogSink(logger)

	t.Run("info", func(t *testing.T) {
		hook.Reset()
		require.NoError(t, sink.Emit(context.Background(), sliceEvent()))

		entry := hook.LastEntry()
		require.NotNil(t, entry)
		assert.Equal(t, logrus.InfoLevel, entry.Level)
		assert.Equal(t, "Executing TWAP slice 1/5 for order 65f1c0ffee", entry.Message)
		assert.Equal(t, "65f1c0ffee", entry.Data["order_id"])
		assert.Equal(t, 1, entry.Data["slice"])
		assert.Equal(t, events.TWAPSliceExecuted, entry.Data["event"])
	})

	t.Run("error", func(t *testing.T) {
		hook.Reset()
		ev := sliceEvent()
		ev.Level = events.LevelError
		require.NoError(t, sink.Emit(context.Background(), ev))

		assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
	})
}

func TestTgmSink(t *testing.T) {
	tgm := mocks.NewTgmCtrl(t)
	tgm.On("Send", "[ twap.slice.executed ]\nExecuting TWAP slice 1/5 for order 65f1c0ffee\nOrder:\t65f1c0ffee\nType:\tTWAP").
		Return(nil).Once()

	assert.NoError(t, events.NewTgmSink(tgm).Emit(context.Background(), sliceEvent()))
}

func TestKafkaSink(t *testing.T) {
	kafka := mocks.NewKafkaCtrl(t)
	kafka.On("Publish", mock.Anything, "65f1c0ffee", mock.MatchedBy(func(value []byte) bool {
		var ev events.Event
		if err := json.Unmarshal(value, &ev); err != nil {
			return false
		}
		return ev.Name == events.TWAPSliceExecuted && ev.OrderID == "65f1c0ffee"
	})).Return(nil).Once()

	assert.NoError(t, events.NewKafkaSink(kafka).Emit(context.Background(), sliceEvent()))
}

type recordSink struct {
	got []events.Event
	err error
}

func (s *recordSink) Emit(_ context.Context, ev events.Event) error {
	s.got = append(s.got, ev)
	return s.err
}

func TestMulti(t *testing.T) {
	logger, hook := test.NewNullLogger()

	broken := &recordSink{err: errors.New("telegram unavailable")}
	healthy := &recordSink{}

	multi := events.NewMulti(logger, broken)
	multi.Add(healthy)

	err := multi.Emit(context.Background(), sliceEvent())
	assert.EqualError(t, err, "telegram unavailable")

	assert.Len(t, broken.got, 1)
	assert.Len(t, healthy.got, 1)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
}

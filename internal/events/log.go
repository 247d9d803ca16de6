package events

import (
	"context"

	"github.com/sirupsen/logrus"
)

type LogSink struct {
	logger *logrus.Logger
}

func NewLogSink(logger *logrus.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Emit(_ context.Context, ev Event) error {
	entry := s.logger.
		WithField("event", ev.Name).
		WithFields(logrus.Fields(ev.Fields))

	if ev.OrderID != "" {
		entry = entry.WithField("order_id", ev.OrderID)
	}
	if ev.OrderType != "" {
		entry = entry.WithField("order_type", ev.OrderType)
	}
	if ev.Owner != "" {
		entry = entry.WithField("owner", ev.Owner)
	}

	switch ev.Level {
	case LevelError:
		entry.Error(ev.Message)
	default:
		entry.Info(ev.Message)
	}

	return nil
}

package events

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Multi hands every event to each sink in order. A failing sink does not stop the rest.
type Multi struct {
	sinks  []Sink
	logger *logrus.Logger
}

func NewMulti(logger *logrus.Logger, sinks ...Sink) *Multi {
	return &Multi{sinks: sinks, logger: logger}
}

func (m *Multi) Add(s Sink) {
	m.sinks = append(m.sinks, s)
}

// Emit returns the first sink error, after every sink had its turn.
func (m *Multi) Emit(ctx context.Context, ev Event) error {
	var first error

	for _, s := range m.sinks {
		if err := s.Emit(ctx, ev); err != nil {
			m.logger.
				WithField("method", "Multi.Emit").
				WithField("event", ev.Name).
				WithError(err).
				Warn("event sink failed")

			if first == nil {
				first = err
			}
		}
	}

	return first
}

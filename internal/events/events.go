// Package events carries lifecycle and slicer events to the configured sinks.
// Sinks are write-only: nothing in the service reads events back.
package events

import (
	"context"
	"time"
)

type Level string

const (
	LevelInfo  Level = "info"
	LevelError Level = "error"
)

const (
	OrderPlaced       = "order.placed"
	OCOPlaced         = "oco.placed"
	OrderFailed       = "order.failed"
	TWAPSliceExecuted = "twap.slice.executed"
	TWAPCompleted     = "twap.completed"
	TWAPFailed        = "twap.failed"
)

type Event struct {
	Name      string                 `json:"name"`
	Level     Level                  `json:"level"`
	OrderID   string                 `json:"order_id,omitempty"`
	Owner     string                 `json:"owner,omitempty"`
	OrderType string                 `json:"order_type,omitempty"`
	Message   string                 `json:"message"`
	Fields    map[string]interface{} `json:"fields,omitempty"`
	Time      time.Time              `json:"time"`
}

type Sink interface {
	Emit(ctx context.Context, ev Event) error
}

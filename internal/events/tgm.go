package events

import (
	"context"
	"fmt"

	"futuresbot/internal/controllers"
)

type TgmSink struct {
	tgmController controllers.TgmCtrl
}

func NewTgmSink(tgmController controllers.TgmCtrl) *TgmSink {
	return &TgmSink{tgmController: tgmController}
}

func (s *TgmSink) Emit(_ context.Context, ev Event) error {
	return s.tgmController.Send(Format(ev))
}

// Format renders ev as a chat message.
func Format(ev Event) string {
	msg := fmt.Sprintf("[ %s ]\n%s", ev.Name, ev.Message)

	if ev.OrderID != "" {
		msg += fmt.Sprintf("\nOrder:\t%s", ev.OrderID)
	}
	if ev.OrderType != "" {
		msg += fmt.Sprintf("\nType:\t%s", ev.OrderType)
	}

	return msg
}

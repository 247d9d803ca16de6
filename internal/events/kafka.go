package events

import (
	"context"
	"encoding/json"

	"futuresbot/internal/controllers"
)

type KafkaSink struct {
	kafkaController controllers.KafkaCtrl
}

func NewKafkaSink(kafkaController controllers.KafkaCtrl) *KafkaSink {
	return &KafkaSink{kafkaController: kafkaController}
}

func (s *KafkaSink) Emit(ctx context.Context, ev Event) error {
	value, err := json.Marshal(ev)
	if err != nil {
		return err
	}

	return s.kafkaController.Publish(ctx, ev.OrderID, value)
}

package controllers

import (
	"context"
	"errors"
	"time"

	"github.com/segmentio/kafka-go"
)

var ErrProducerClosed = errors.New("kafka producer not initialized")

type KafkaController struct {
	writer *kafka.Writer
}

func NewKafkaController(brokers []string, topic string) *KafkaController {
	return &KafkaController{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			BatchSize:              100,
			BatchTimeout:           50 * time.Millisecond,
			AllowAutoTopicCreation: true,
			RequiredAcks:           kafka.RequireOne,
			Async:                  true,
		},
	}
}

// Publish keys messages by order id so events of one order land on one partition.
func (c *KafkaController) Publish(ctx context.Context, key string, value []byte) error {
	if c == nil || c.writer == nil {
		return ErrProducerClosed
	}

	return c.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: value,
		Time:  time.Now(),
	})
}

func (c *KafkaController) Close() error {
	if c == nil || c.writer == nil {
		return nil
	}

	return c.writer.Close()
}

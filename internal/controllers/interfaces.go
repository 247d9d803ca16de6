package controllers

import "context"

//go:generate mockery --case=snake --name=TgmCtrl
//go:generate mockery --case=snake --name=KafkaCtrl

type TgmCtrl interface {
	Send(text string) error
}

type KafkaCtrl interface {
	Publish(ctx context.Context, key string, value []byte) error
}

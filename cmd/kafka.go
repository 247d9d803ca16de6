package main

import "futuresbot/internal/controllers"

func (a *App) initKafka() {
	a.Kafka = controllers.NewKafkaController(a.Config.KafkaBrokers, a.Config.KafkaTopic)
}

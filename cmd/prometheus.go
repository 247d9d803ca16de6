package main

import (
	"futuresbot/internal/usecasees/structs"

	"github.com/prometheus/client_golang/prometheus"
)

func (a *App) initMetrics() {
	metrics := structs.NewMetrics()
	prometheus.MustRegister(metrics.Collectors()...)

	a.Metrics = metrics
}

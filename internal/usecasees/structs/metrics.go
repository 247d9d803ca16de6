package structs

import "github.com/prometheus/client_golang/prometheus"

type MetricConst string

const (
	MetricOrdersPlaced       MetricConst = "orders_placed_total"
	MetricOrdersFailed       MetricConst = "orders_failed_total"
	MetricTWAPSlicesExecuted MetricConst = "twap_slices_executed_total"
)

func (m MetricConst) ToString() string {
	return string(m)
}

type Metrics struct {
	OrdersPlaced *prometheus.CounterVec
	OrdersFailed *prometheus.CounterVec
	TWAPSlices   prometheus.Counter
}

// NewMetrics builds unregistered collectors; cmd registers them.
func NewMetrics() *Metrics {
	return &Metrics{
		OrdersPlaced: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: MetricOrdersPlaced.ToString(),
			Help: "Orders persisted, by order type.",
		}, []string{"order_type"}),
		OrdersFailed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: MetricOrdersFailed.ToString(),
			Help: "Order placements that failed after validation, by order type.",
		}, []string{"order_type"}),
		TWAPSlices: prometheus.NewCounter(prometheus.CounterOpts{
			Name: MetricTWAPSlicesExecuted.ToString(),
			Help: MetricTWAPSlicesExecuted.ToString(),
		}),
	}
}

func (m *Metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{m.OrdersPlaced, m.OrdersFailed, m.TWAPSlices}
}

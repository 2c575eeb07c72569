package metrics

import "github.com/prometheus/client_golang/prometheus"

// NotifierMetrics counts outbound notification outcomes.
type NotifierMetrics struct {
	delivered *prometheus.CounterVec
	failed    *prometheus.CounterVec
}

// NewNotifierMetrics registers the notifier counters on the provided registerer.
func NewNotifierMetrics(reg prometheus.Registerer) *NotifierMetrics {
	if reg == nil {
		return &NotifierMetrics{}
	}
	delivered := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "notifier_delivered_total",
		Help: "Notifications delivered to the channel.",
	}, []string{"channel"})
	failed := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "notifier_failed_total",
		Help: "Notifications that failed to deliver.",
	}, []string{"channel"})
	reg.MustRegister(delivered, failed)
	return &NotifierMetrics{
		delivered: delivered,
		failed:    failed,
	}
}

// IncDelivered increments the delivered counter for the channel.
func (n *NotifierMetrics) IncDelivered(channel string) {
	if n == nil || n.delivered == nil {
		return
	}
	n.delivered.WithLabelValues(normalizeLabel(channel)).Inc()
}

// IncFailed increments the failed counter for the channel.
func (n *NotifierMetrics) IncFailed(channel string) {
	if n == nil || n.failed == nil {
		return
	}
	n.failed.WithLabelValues(normalizeLabel(channel)).Inc()
}

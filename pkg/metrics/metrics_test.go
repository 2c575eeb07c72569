package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestHTTPMetricsObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	m.Observe("GET", "/api/v1/cars", "200", 30*time.Millisecond)
	m.Observe("GET", "/api/v1/cars", "200", 10*time.Millisecond)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather failed: %v", err)
	}
	if got := counterValue(families, "http_requests_total"); got != 2 {
		t.Fatalf("expected 2 requests counted, got %v", got)
	}
}

func TestNilMetricsAreSafe(t *testing.T) {
	var h *HTTPMetrics
	h.Observe("GET", "/", "200", time.Millisecond)

	var n *NotifierMetrics
	n.IncDelivered("telegram")
	n.IncFailed("telegram")
}

func TestNotifierMetricsCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	n := NewNotifierMetrics(reg)

	n.IncDelivered("telegram")
	n.IncFailed("telegram")
	n.IncFailed("")

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather failed: %v", err)
	}
	if got := counterValue(families, "notifier_failed_total"); got != 2 {
		t.Fatalf("expected 2 failures counted, got %v", got)
	}
}

func counterValue(families []*dto.MetricFamily, name string) float64 {
	total := 0.0
	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		for _, metric := range family.GetMetric() {
			total += metric.GetCounter().GetValue()
		}
	}
	return total
}

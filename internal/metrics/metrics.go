// Package metrics exposes gateway measurements through prometheus.
package metrics

import (
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector is the prometheus-backed gateway.MetricsCollector.
type Collector struct {
	sends         *prometheus.CounterVec
	quotes        *prometheus.CounterVec
	feesCollected *prometheus.CounterVec
	withdrawals   *prometheus.CounterVec
	opDuration    *prometheus.HistogramVec
}

func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		sends: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "omnigate_sends_total",
				Help: "Total number of bridge send requests by result.",
			},
			[]string{"asset", "result"},
		),
		quotes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "omnigate_quotes_total",
				Help: "Total number of fee quotes served.",
			},
			[]string{"asset"},
		),
		feesCollected: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "omnigate_fees_collected_base_units_total",
				Help: "Collected fees in asset base units, by fee kind.",
			},
			[]string{"asset", "kind"},
		),
		withdrawals: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "omnigate_fee_withdrawals_base_units_total",
				Help: "Platform fees withdrawn in asset base units.",
			},
			[]string{"asset"},
		),
		opDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "omnigate_operation_duration_seconds",
				Help:    "Duration of gateway operations in seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}

	reg.MustRegister(c.sends, c.quotes, c.feesCollected, c.withdrawals, c.opDuration)
	return c
}

func (c *Collector) RecordSend(asset, result string) {
	c.sends.WithLabelValues(asset, result).Inc()
}

func (c *Collector) RecordQuote(asset string) {
	c.quotes.WithLabelValues(asset).Inc()
}

func (c *Collector) RecordFeeCollected(asset string, platformFee, callerFee uint64) {
	if platformFee > 0 {
		c.feesCollected.WithLabelValues(asset, "platform").Add(float64(platformFee))
	}
	if callerFee > 0 {
		c.feesCollected.WithLabelValues(asset, "caller").Add(float64(callerFee))
	}
}

func (c *Collector) RecordWithdrawal(asset string, amount uint64) {
	c.withdrawals.WithLabelValues(asset).Add(float64(amount))
}

func (c *Collector) RecordOperationDuration(operation string, d time.Duration) {
	c.opDuration.WithLabelValues(operation).Observe(d.Seconds())
}

// Serve exposes the registry on its own listener, apart from the API port.
func Serve(addr string, reg *prometheus.Registry) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	go func() {
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Printf("metrics listener stopped: %v", err)
		}
	}()
}

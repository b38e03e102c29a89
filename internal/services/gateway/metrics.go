package gateway

import "time"

// MetricsCollector receives gateway measurements. The prometheus-backed
// implementation lives in internal/metrics.
type MetricsCollector interface {
	RecordSend(asset, result string)
	RecordQuote(asset string)
	RecordFeeCollected(asset string, platformFee, callerFee uint64)
	RecordWithdrawal(asset string, amount uint64)
	RecordOperationDuration(operation string, d time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (n *NoopMetricsCollector) RecordSend(string, string)                     {}
func (n *NoopMetricsCollector) RecordQuote(string)                            {}
func (n *NoopMetricsCollector) RecordFeeCollected(string, uint64, uint64)     {}
func (n *NoopMetricsCollector) RecordWithdrawal(string, uint64)               {}
func (n *NoopMetricsCollector) RecordOperationDuration(string, time.Duration) {}

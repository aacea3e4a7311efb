package metrics

import (
	"encoding/json"
	"net/http"
	"sync/atomic"
	"time"
)

type Counter struct {
	value uint64
}

func (c *Counter) Inc() {
	atomic.AddUint64(&c.value, 1)
}

func (c *Counter) Add(n uint64) {
	atomic.AddUint64(&c.value, n)
}

func (c *Counter) Load() uint64 {
	return atomic.LoadUint64(&c.value)
}

type Timer struct {
	start time.Time
}

func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}

// PaymentMetrics counts payment outcomes and bank round trips for the
// lifetime of the process.
type PaymentMetrics struct {
	Authorized      Counter
	Declined        Counter
	Rejected        Counter
	BankUnavailable Counter
	Failed          Counter
	BankCalls       Counter
	BankLatencyMs   Counter
}

func NewPaymentMetrics() *PaymentMetrics {
	return &PaymentMetrics{}
}

// ObserveBankCall records one bank call started at t.
func (m *PaymentMetrics) ObserveBankCall(t *Timer) {
	m.BankCalls.Inc()
	m.BankLatencyMs.Add(uint64(t.Duration().Milliseconds()))
}

func (m *PaymentMetrics) Snapshot() map[string]uint64 {
	return map[string]uint64{
		"authorized":       m.Authorized.Load(),
		"declined":         m.Declined.Load(),
		"rejected":         m.Rejected.Load(),
		"bank_unavailable": m.BankUnavailable.Load(),
		"failed":           m.Failed.Load(),
		"bank_calls":       m.BankCalls.Load(),
		"bank_latency_ms":  m.BankLatencyMs.Load(),
	}
}

func (m *PaymentMetrics) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(m.Snapshot())
	}
}

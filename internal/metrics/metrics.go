// Package metrics holds the prometheus collectors for tool invocations.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for tool calls.
const (
	OutcomeOK       = "ok"
	OutcomeError    = "error"
	OutcomeDisabled = "disabled"
	OutcomeUnknown  = "unknown_tool"
)

type Metrics struct {
	ToolCalls    *prometheus.CounterVec
	ToolDuration *prometheus.HistogramVec
}

// New registers the collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ToolCalls: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "twilio_sms_mcp",
			Name:      "tool_calls_total",
			Help:      "Tool invocations by tool and outcome.",
		}, []string{"tool", "outcome"}),
		ToolDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "twilio_sms_mcp",
			Name:      "tool_call_duration_seconds",
			Help:      "Time spent handling a tool invocation, including the Twilio round trip.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"tool"}),
	}
}

// ObserveCall records one invocation. A nil receiver is a no-op.
func (m *Metrics) ObserveCall(tool, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.ToolCalls.WithLabelValues(tool, outcome).Inc()
	m.ToolDuration.WithLabelValues(tool).Observe(elapsed.Seconds())
}

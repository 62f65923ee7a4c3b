package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveCall(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveCall("list_sms", OutcomeOK, 10*time.Millisecond)
	m.ObserveCall("list_sms", OutcomeOK, 20*time.Millisecond)
	m.ObserveCall("get_sms", OutcomeError, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ToolCalls.WithLabelValues("list_sms", OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ToolCalls.WithLabelValues("get_sms", OutcomeError)))
	assert.Equal(t, 2, testutil.CollectAndCount(m.ToolDuration))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() { m.ObserveCall("list_sms", OutcomeOK, time.Second) })
}

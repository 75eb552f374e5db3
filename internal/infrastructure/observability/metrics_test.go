package observability

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_RecordsAndRegisters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics()
	require.NoError(t, m.Register(reg))
	require.NoError(t, m.Register(reg), "re-registering must be tolerated")

	m.ObserveRemote("add_component", nil, 10*time.Millisecond)
	m.ObserveRemote("add_component", errors.New("boom"), time.Millisecond)
	m.ObserveVerdict("blocking")
	m.StaleResponse("verdict")
	m.DegradedCall("list_components")
	m.Mutation("add", "processor")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.RemoteCalls.WithLabelValues("add_component", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RemoteCalls.WithLabelValues("add_component", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Verdicts.WithLabelValues("blocking")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.StaleResponses.WithLabelValues("verdict")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Degraded.WithLabelValues("list_components")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Mutations.WithLabelValues("add", "processor")))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveRemote("x", nil, 0)
		m.ObserveVerdict("clean")
		m.StaleResponse("snapshot")
		m.DegradedCall("x")
		m.Mutation("add", "processor")
		_ = m.Register(prometheus.NewRegistry())
	})
}

func TestNewLogger_InvalidLevelFallsBack(t *testing.T) {
	logger, err := NewLogger("not-a-level")
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(0))
	assert.False(t, logger.Core().Enabled(-1), "debug must be disabled at info level")
}

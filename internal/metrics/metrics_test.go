package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gather(t *testing.T, m *Metrics) map[string]*dto.MetricFamily {
	t.Helper()
	families, err := m.Registry().Gather()
	require.NoError(t, err)
	byName := make(map[string]*dto.MetricFamily, len(families))
	for _, f := range families {
		byName[f.GetName()] = f
	}
	return byName
}

func TestBrickCounters(t *testing.T) {
	m := New()
	m.Brick(OutcomeConverted, 3)
	m.Brick(OutcomeConverted, 1)
	m.Brick(OutcomeUnknown, 0)

	families := gather(t, m)

	bricks := families["blsconv_bricks_total"]
	require.NotNil(t, bricks)
	counts := make(map[string]float64)
	for _, metric := range bricks.GetMetric() {
		counts[metric.GetLabel()[0].GetValue()] = metric.GetCounter().GetValue()
	}
	assert.Equal(t, map[string]float64{OutcomeConverted: 2, OutcomeUnknown: 1}, counts)

	nodes := families["blsconv_nodes_emitted_total"]
	require.NotNil(t, nodes)
	assert.Equal(t, float64(4), nodes.GetMetric()[0].GetCounter().GetValue())
}

func TestCacheAndDuration(t *testing.T) {
	m := New()
	m.Cache(5, 2)
	m.Observe(20 * time.Millisecond)

	families := gather(t, m)
	assert.Equal(t, float64(5), families["blsconv_template_cache_hits_total"].GetMetric()[0].GetCounter().GetValue())
	assert.Equal(t, float64(2), families["blsconv_template_cache_misses_total"].GetMetric()[0].GetCounter().GetValue())
	h := families["blsconv_conversion_duration_seconds"].GetMetric()[0].GetHistogram()
	assert.Equal(t, uint64(1), h.GetSampleCount())
	assert.InDelta(t, 0.02, h.GetSampleSum(), 1e-9)
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.Brick(OutcomeConverted, 1)
		m.Cache(1, 1)
		m.Observe(time.Second)
	})
}

func TestWriteTextfile(t *testing.T) {
	m := New()
	m.Brick(OutcomeSpecial, 1)

	path := filepath.Join(t.TempDir(), "blsconv.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `blsconv_bricks_total{outcome="special"} 1`)
	assert.Contains(t, string(data), "# TYPE blsconv_nodes_emitted_total counter")
}

package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.trai.ch/brandlay/internal/adapters/metrics"
	"go.trai.ch/brandlay/internal/core/ports"
)

func TestRecorder_Counters(t *testing.T) {
	t.Parallel()

	r := metrics.NewRecorder()
	r.CacheLookup(ports.CacheBrands, false)
	r.CacheLookup(ports.CacheBrands, true)
	r.CacheLookup(ports.CacheBrands, true)
	r.CacheLookup(ports.CachePaths, false)
	r.Invalidation()
	r.Redirect("overlay")
	r.Redirect("bridge")
	r.Redirect("overlay")

	assert.Equal(t, 6, testutil.CollectAndCount(r.Registry()))

	samples, err := r.Summary()
	require.NoError(t, err)
	assert.Equal(t, []metrics.Sample{
		{Name: "brandlay_cache_invalidations_total", Value: 1},
		{Name: "brandlay_cache_lookups_total{cache=brands}{result=hit}", Value: 2},
		{Name: "brandlay_cache_lookups_total{cache=brands}{result=miss}", Value: 1},
		{Name: "brandlay_cache_lookups_total{cache=paths}{result=miss}", Value: 1},
		{Name: "brandlay_resolve_outcomes_total{kind=bridge}", Value: 1},
		{Name: "brandlay_resolve_outcomes_total{kind=overlay}", Value: 2},
	}, samples)
}

func TestRecorder_IsolatedRegistries(t *testing.T) {
	t.Parallel()

	first := metrics.NewRecorder()
	second := metrics.NewRecorder()
	first.Invalidation()

	samples, err := second.Summary()
	require.NoError(t, err)
	assert.Empty(t, samples)
}

func TestNop(t *testing.T) {
	t.Parallel()

	var m ports.Metrics = metrics.Nop{}
	m.CacheLookup(ports.CachePaths, true)
	m.Invalidation()
	m.Redirect("base")
}

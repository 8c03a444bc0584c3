package metrics

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/screw-puzzle/generator"
)

func TestGeneratorObserver_CountsStages(t *testing.T) {
	reg := prometheus.NewRegistry()
	obs := NewGeneratorObserver(reg)

	gen := generator.New(&generator.Options{
		Seed:     17,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Observer: obs,
	})
	for i := 0; i < 3; i++ {
		gen.Generate(4, 600, 600)
	}
	gen.Shuffle(25, 600, 600)

	assert.Equal(t, 3.0, testutil.ToFloat64(obs.stages.WithLabelValues("1-10", "true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(obs.stages.WithLabelValues("21-30", "true")))
	assert.Equal(t, 0.0, testutil.ToFloat64(obs.fallbacks))
	assert.Equal(t, 0.0, testutil.ToFloat64(obs.rejected))

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}

func TestGeneratorObserver_Fallback(t *testing.T) {
	reg := prometheus.NewRegistry()
	obs := NewGeneratorObserver(reg)

	obs.AttemptRejected(3, 1)
	obs.AttemptRejected(3, 2)
	obs.Generated(3, generator.Result{Attempts: 2, MaybeUnsolvable: true}, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(obs.rejected))
	assert.Equal(t, 1.0, testutil.ToFloat64(obs.fallbacks))
	assert.Equal(t, 1.0, testutil.ToFloat64(obs.stages.WithLabelValues("1-10", "false")))
}

func TestBand(t *testing.T) {
	assert.Equal(t, "0", band(0))
	assert.Equal(t, "1-10", band(1))
	assert.Equal(t, "1-10", band(10))
	assert.Equal(t, "11-20", band(11))
	assert.Equal(t, "91-100", band(100))
}

// Package metrics exports stage generation counters to Prometheus.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/lixenwraith/screw-puzzle/generator"
)

// GeneratorObserver implements generator.Observer
type GeneratorObserver struct {
	stages    *prometheus.CounterVec
	rejected  prometheus.Counter
	fallbacks prometheus.Counter
	attempts  prometheus.Histogram
	latency   prometheus.Histogram
}

var _ generator.Observer = (*GeneratorObserver)(nil)

// NewGeneratorObserver registers its collectors on reg
func NewGeneratorObserver(reg prometheus.Registerer) *GeneratorObserver {
	o := &GeneratorObserver{
		stages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "screw_stages_generated_total",
			Help: "Stages generated, by difficulty band and whether solvability was confirmed",
		}, []string{"band", "solvable"}),
		rejected: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "screw_generation_rejected_total",
			Help: "Candidates rejected for having no removable screw",
		}),
		fallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "screw_generation_fallback_total",
			Help: "Stages returned after exhausting attempts, possibly unsolvable",
		}),
		attempts: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "screw_generation_attempts",
			Help:    "Candidates built per generated stage",
			Buckets: []float64{1, 2, 3, 5, 10},
		}),
		latency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "screw_generation_seconds",
			Help:    "Wall time per generated stage",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
		}),
	}
	reg.MustRegister(o.stages, o.rejected, o.fallbacks, o.attempts, o.latency)
	return o
}

func (o *GeneratorObserver) AttemptRejected(_, _ int) {
	o.rejected.Inc()
}

func (o *GeneratorObserver) Generated(stageNumber int, res generator.Result, elapsed time.Duration) {
	o.stages.WithLabelValues(band(stageNumber), strconv.FormatBool(!res.MaybeUnsolvable)).Inc()
	if res.MaybeUnsolvable {
		o.fallbacks.Inc()
	}
	o.attempts.Observe(float64(res.Attempts))
	o.latency.Observe(elapsed.Seconds())
}

// band buckets stage numbers by tens to bound label cardinality
func band(stageNumber int) string {
	if stageNumber < 1 {
		return "0"
	}
	lo := (stageNumber-1)/10*10 + 1
	return strconv.Itoa(lo) + "-" + strconv.Itoa(lo+9)
}

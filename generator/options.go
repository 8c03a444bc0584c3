package generator

import (
	"log/slog"
	"time"

	"github.com/lixenwraith/screw-puzzle/parameter"
	"github.com/lixenwraith/screw-puzzle/vmath"
)

// Observer receives generation outcomes, e.g. for metrics
type Observer interface {
	// AttemptRejected fires for each candidate with no removable screw
	AttemptRejected(stageNumber, attempt int)
	// Generated fires once per Generate call
	Generated(stageNumber int, res Result, elapsed time.Duration)
}

// Options configures stage generation
type Options struct {
	MaxAttempts int          // Rejection-sampling bound (<= 0 uses default)
	Margin      float64      // Extra clearance between plate extent and bounds
	Seed        uint64       // Seed for Source when Source is nil (0 = time-based)
	Source      vmath.Source // Random source; overrides Seed
	Logger      *slog.Logger // nil uses slog.Default()
	Observer    Observer     // Optional
}

// DefaultOptions returns the stock generation settings
func DefaultOptions() *Options {
	return &Options{
		MaxAttempts: parameter.GenerationMaxAttempts,
		Margin:      parameter.PlateMargin,
	}
}

func (o *Options) source() vmath.Source {
	if o.Source != nil {
		return o.Source
	}
	seed := o.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return vmath.NewFastRand(seed)
}

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/screw-puzzle/config"
	"github.com/lixenwraith/screw-puzzle/coverage"
	"github.com/lixenwraith/screw-puzzle/generator"
	"github.com/lixenwraith/screw-puzzle/logging"
	"github.com/lixenwraith/screw-puzzle/metrics"
)

type rootFlags struct {
	configPath string
	debug      bool
	stage      int
	seed       uint64
	width      float64
	height     float64
}

func newRootCmd() *cobra.Command {
	f := &rootFlags{}
	var logFile *os.File

	root := &cobra.Command{
		Use:           "stagegen",
		Short:         "Generate and inspect screw-puzzle stages",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			logFile, err = logging.Setup(f.debug, "")
			return err
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if logFile != nil {
				logFile.Close()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "YAML config file")
	pf.BoolVar(&f.debug, "debug", false, "write debug log to logs/")
	pf.IntVarP(&f.stage, "stage", "s", 1, "stage number")
	pf.Uint64Var(&f.seed, "seed", 0, "random seed (0 = config or time-based)")
	pf.Float64Var(&f.width, "width", 0, "viewport width (0 = config)")
	pf.Float64Var(&f.height, "height", 0, "viewport height (0 = config)")

	root.AddCommand(newGenerateCmd(f), newParamsCmd(f), newRemovableCmd(f))
	return root
}

// resolve loads the config and applies flag overrides
func (f *rootFlags) resolve() (config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return cfg, err
	}
	if f.seed != 0 {
		cfg.Seed = f.seed
	}
	if f.width > 0 {
		cfg.Viewport.Width = f.width
	}
	if f.height > 0 {
		cfg.Viewport.Height = f.height
	}
	return cfg, cfg.Validate()
}

func newGenerateCmd(f *rootFlags) *cobra.Command {
	var count int
	var withMetrics bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate stages and print them as YAML",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := f.resolve()
			if err != nil {
				return err
			}

			opts := cfg.GeneratorOptions()
			opts.Logger = slog.Default()
			reg := prometheus.NewRegistry()
			if withMetrics {
				opts.Observer = metrics.NewGeneratorObserver(reg)
			}
			gen := generator.New(opts)

			out := cmd.OutOrStdout()
			for i := 0; i < max(count, 1); i++ {
				res := gen.Generate(f.stage, cfg.Viewport.Width, cfg.Viewport.Height)
				if err := writeYAML(out, dumpResult(res)); err != nil {
					return err
				}
			}

			if withMetrics {
				return writeMetrics(out, reg)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of stages")
	cmd.Flags().BoolVar(&withMetrics, "metrics", false, "print generation metrics after the stages")
	return cmd
}

func newParamsCmd(f *rootFlags) *cobra.Command {
	var to int

	cmd := &cobra.Command{
		Use:   "params",
		Short: "Print difficulty parameters for a stage range",
		RunE: func(cmd *cobra.Command, _ []string) error {
			last := max(to, f.stage)
			rows := make([]paramsDump, 0, last-f.stage+1)
			for n := f.stage; n <= last; n++ {
				rows = append(rows, dumpParams(n))
			}
			return writeYAML(cmd.OutOrStdout(), rows)
		},
	}
	cmd.Flags().IntVar(&to, "to", 0, "last stage of the range (default: --stage)")
	return cmd
}

func newRemovableCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "removable",
		Short: "Generate a stage and list its removable screws",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := f.resolve()
			if err != nil {
				return err
			}
			opts := cfg.GeneratorOptions()
			opts.Logger = slog.Default()
			res := generator.New(opts).Generate(f.stage, cfg.Viewport.Width, cfg.Viewport.Height)

			hits := coverage.FindRemovableScrews(res.Stage)
			rows := make([]removableDump, 0, len(hits))
			for _, h := range hits {
				rows = append(rows, removableDump{Screw: h.Screw.ID, Plate: h.Plate.ID, Z: h.Plate.ZOrder})
			}
			return writeYAML(cmd.OutOrStdout(), rows)
		},
	}
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

// writeMetrics prints counter and histogram summaries from reg
func writeMetrics(w io.Writer, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	fmt.Fprintln(w, "# metrics")
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			labels := ""
			for _, lp := range m.GetLabel() {
				labels += fmt.Sprintf(" %s=%s", lp.GetName(), lp.GetValue())
			}
			switch {
			case m.GetCounter() != nil:
				fmt.Fprintf(w, "# %s%s %g\n", mf.GetName(), labels, m.GetCounter().GetValue())
			case m.GetHistogram() != nil:
				h := m.GetHistogram()
				fmt.Fprintf(w, "# %s%s count=%d sum=%g\n", mf.GetName(), labels, h.GetSampleCount(), h.GetSampleSum())
			}
		}
	}
	return nil
}

// Command seamcarve shrinks pictures by removing minimum-energy seams.
//
//	seamcarve -x 50 photo.png
//	seamcarve --width 640 --height 400 --out-dir out *.jpg
//	seamcarve --config run.yaml
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/seamcarve/internal/config"
	"github.com/katalvlaran/seamcarve/internal/driver"
	"github.com/katalvlaran/seamcarve/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(os.Stderr).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

type flags struct {
	configPath string
	cfg        config.Config
}

func newRootCmd(logOut io.Writer) *cobra.Command {
	f := &flags{cfg: config.Default()}

	cmd := &cobra.Command{
		Use:          "seamcarve [flags] <input>...",
		Short:        "Content-aware picture shrinking by seam carving",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.resolve(cmd, args)
			if err != nil {
				return err
			}

			return run(cmd.Context(), cfg, logOut)
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&f.configPath, "config", "", "YAML config file; flags override its values")
	fs.StringVar(&f.cfg.OutDir, "out-dir", f.cfg.OutDir, "directory for results (default: next to each input)")
	fs.StringVar(&f.cfg.Suffix, "suffix", f.cfg.Suffix, "appended to the output base name")
	fs.StringVar(&f.cfg.Format, "format", f.cfg.Format, "output format extension (png, jpg, gif, bmp, tiff)")
	fs.IntVarP(&f.cfg.Vertical, "vertical", "x", f.cfg.Vertical, "vertical seams to remove")
	fs.IntVarP(&f.cfg.Horizontal, "horizontal", "y", f.cfg.Horizontal, "horizontal seams to remove")
	fs.IntVar(&f.cfg.Width, "width", f.cfg.Width, "target width (0 keeps the width)")
	fs.IntVar(&f.cfg.Height, "height", f.cfg.Height, "target height (0 keeps the height)")
	fs.IntVar(&f.cfg.Workers, "workers", f.cfg.Workers, "pictures carved in parallel (0: one per physical core)")
	fs.IntVar(&f.cfg.JPEGQuality, "jpeg-quality", f.cfg.JPEGQuality, "JPEG output quality (1-100)")
	fs.IntVar(&f.cfg.PDFDPI, "pdf-dpi", f.cfg.PDFDPI, "resolution PDF inputs are rendered at")
	fs.BoolVar(&f.cfg.EnergyDump, "energy-dump", f.cfg.EnergyDump, "also write the final energy map as grayscale PNG")
	fs.BoolVar(&f.cfg.FullRecompute, "full-recompute", f.cfg.FullRecompute, "recompute all energies after each seam")
	fs.StringVar(&f.cfg.Report, "report", f.cfg.Report, "write a YAML run report to this path")
	fs.StringVar(&f.cfg.Log.Level, "log-level", f.cfg.Log.Level, "debug, info, warn or error")
	fs.StringVar(&f.cfg.Log.Format, "log-format", f.cfg.Log.Format, "console or json")

	return cmd
}

// resolve layers defaults, then the config file, then explicitly set flags
// and positional inputs.
func (f *flags) resolve(cmd *cobra.Command, args []string) (config.Config, error) {
	cfg := f.cfg
	if f.configPath != "" {
		fileCfg, err := config.Load(f.configPath)
		if err != nil {
			return cfg, err
		}
		overlay(cmd, &fileCfg, f.cfg)
		cfg = fileCfg
	}
	if len(args) > 0 {
		cfg.Inputs = args
	}

	return cfg, cfg.Validate()
}

// overlay copies into dst every field whose flag was set on the command line.
func overlay(cmd *cobra.Command, dst *config.Config, src config.Config) {
	set := map[string]func(){
		"out-dir":        func() { dst.OutDir = src.OutDir },
		"suffix":         func() { dst.Suffix = src.Suffix },
		"format":         func() { dst.Format = src.Format },
		"vertical":       func() { dst.Vertical = src.Vertical },
		"horizontal":     func() { dst.Horizontal = src.Horizontal },
		"width":          func() { dst.Width = src.Width },
		"height":         func() { dst.Height = src.Height },
		"workers":        func() { dst.Workers = src.Workers },
		"jpeg-quality":   func() { dst.JPEGQuality = src.JPEGQuality },
		"pdf-dpi":        func() { dst.PDFDPI = src.PDFDPI },
		"energy-dump":    func() { dst.EnergyDump = src.EnergyDump },
		"full-recompute": func() { dst.FullRecompute = src.FullRecompute },
		"report":         func() { dst.Report = src.Report },
		"log-level":      func() { dst.Log.Level = src.Log.Level },
		"log-format":     func() { dst.Log.Format = src.Log.Format },
	}
	for name, apply := range set {
		if cmd.Flags().Changed(name) {
			apply()
		}
	}
}

func run(ctx context.Context, cfg config.Config, logOut io.Writer) error {
	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	log, err := logger.New(logOut, level, cfg.Log.Format)
	if err != nil {
		return err
	}

	if cfg.OutDir != "" {
		if err = os.MkdirAll(cfg.OutDir, 0o755); err != nil {
			return fmt.Errorf("create out dir: %w", err)
		}
	}

	reports, runErr := driver.RunBatch(ctx, driver.JobsFromConfig(cfg), cfg.Workers, log)
	if cfg.Report != "" {
		if err = driver.WriteReport(cfg.Report, reports); err != nil {
			log.Error("cli", err, nil)
			if runErr == nil {
				runErr = err
			}
		}
	}

	return runErr
}

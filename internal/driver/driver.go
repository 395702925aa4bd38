// Package driver runs carving jobs end to end: load, carve, save, report.
package driver

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/seamcarve/internal/imageio"
	"github.com/katalvlaran/seamcarve/internal/logger"
	"github.com/katalvlaran/seamcarve/seam"
)

const component = "driver"

// Report summarises one finished job.
type Report struct {
	Input           string        `yaml:"input"`
	Output          string        `yaml:"output,omitempty"`
	EnergyOutput    string        `yaml:"energy_output,omitempty"`
	Format          string        `yaml:"format"`
	SourceWidth     int           `yaml:"source_width"`
	SourceHeight    int           `yaml:"source_height"`
	Width           int           `yaml:"width"`
	Height          int           `yaml:"height"`
	VerticalSeams   int           `yaml:"vertical_seams"`
	HorizontalSeams int           `yaml:"horizontal_seams"`
	PatchMode       string        `yaml:"patch_mode"`
	Load            time.Duration `yaml:"load"`
	Carve           time.Duration `yaml:"carve"`
	Save            time.Duration `yaml:"save"`
}

// Run executes one job. The context is checked before every seam, so a
// cancelled run stops within one find+remove step and returns ctx.Err().
func Run(ctx context.Context, job Job, log *logger.Logger) (Report, error) {
	rep := Report{Input: job.Input, Output: job.Output, EnergyOutput: job.EnergyOutput}
	if job.Output == "" && job.EnergyOutput == "" {
		return rep, fmt.Errorf("%s: %w", job.Input, ErrNoOutput)
	}
	if err := ctx.Err(); err != nil {
		return rep, err
	}

	start := time.Now()
	pic, format, err := imageio.LoadWith(job.Input, job.IO)
	if err != nil {
		return rep, err
	}
	rep.Load = time.Since(start)
	rep.Format = format
	rep.SourceWidth, rep.SourceHeight = pic.Width(), pic.Height()

	vertical, horizontal, err := job.counts(pic.Width(), pic.Height())
	if err != nil {
		return rep, err
	}

	mode := seam.Incremental
	if job.FullRecompute {
		mode = seam.Full
	}
	rep.PatchMode = mode.String()

	c, err := seam.New(pic, seam.WithPatchMode(mode))
	if err != nil {
		return rep, fmt.Errorf("%s: %w", job.Input, err)
	}

	log.Debug(component, "carving", map[string]interface{}{
		"input":      job.Input,
		"source":     fmt.Sprintf("%dx%d", pic.Width(), pic.Height()),
		"vertical":   vertical,
		"horizontal": horizontal,
		"patch_mode": rep.PatchMode,
	})

	start = time.Now()
	rep.VerticalSeams, err = removeSeams(ctx, c, seam.Vertical, vertical)
	if err == nil {
		rep.HorizontalSeams, err = removeSeams(ctx, c, seam.Horizontal, horizontal)
	}
	rep.Carve = time.Since(start)
	rep.Width, rep.Height = c.Width(), c.Height()
	if err != nil {
		return rep, fmt.Errorf("%s: %w", job.Input, err)
	}

	start = time.Now()
	if job.Output != "" {
		if err = imageio.SavePicture(job.Output, c.Picture(), job.IO); err != nil {
			return rep, err
		}
	}
	if job.EnergyOutput != "" {
		if err = imageio.Save(job.EnergyOutput, EnergyImage(c.EnergyMatrix()), job.IO); err != nil {
			return rep, err
		}
	}
	rep.Save = time.Since(start)

	log.Info(component, "carved", map[string]interface{}{
		"input":  job.Input,
		"output": job.Output,
		"size":   fmt.Sprintf("%dx%d", rep.Width, rep.Height),
		"carve":  rep.Carve.String(),
	})

	return rep, nil
}

// removeSeams removes n seams in direction o, checking ctx before each one.
func removeSeams(ctx context.Context, c *seam.Carver, o seam.Orientation, n int) (int, error) {
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return i, err
		}
		s, _, err := c.FindSeam(o)
		if err != nil {
			return i, err
		}
		if err = c.RemoveSeam(o, s); err != nil {
			return i, err
		}
	}

	return n, nil
}

// RunBatch runs jobs with at most workers in flight, each on its own Carver.
// A workers value below 1 selects AutoWorkers. The first failure cancels the jobs that have not finished; reports of the
// jobs that did finish are kept at their input index.
func RunBatch(ctx context.Context, jobs []Job, workers int, log *logger.Logger) ([]Report, error) {
	if workers < 1 {
		workers = AutoWorkers()
	}
	reports := make([]Report, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range jobs {
		i := i
		g.Go(func() error {
			rep, err := Run(gctx, jobs[i], log)
			reports[i] = rep
			if err != nil {
				log.Error(component, err, map[string]interface{}{"input": jobs[i].Input})
			}

			return err
		})
	}
	err := g.Wait()

	log.Info(component, "batch finished", map[string]interface{}{
		"jobs":    len(jobs),
		"workers": workers,
		"failed":  err != nil,
	})

	return reports, err
}

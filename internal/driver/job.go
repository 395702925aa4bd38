package driver

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/seamcarve/internal/config"
	"github.com/katalvlaran/seamcarve/internal/imageio"
	"github.com/katalvlaran/seamcarve/seam"
)

// ErrNoOutput indicates a job that would neither save a picture nor dump energies.
var ErrNoOutput = errors.New("driver: job has no output and no energy output")

// Job describes the carving of a single picture. Either the seam counts or
// the target size is used; a target dimension of zero keeps that dimension.
type Job struct {
	Input        string
	Output       string
	EnergyOutput string

	Vertical   int
	Horizontal int
	Width      int
	Height     int

	FullRecompute bool
	IO            imageio.Options
}

// resizing reports whether the job targets a size rather than seam counts.
func (j Job) resizing() bool {
	return j.Width > 0 || j.Height > 0
}

// JobsFromConfig expands cfg into one job per input. Outputs go next to the
// input unless cfg.OutDir is set and are named <base><suffix>.<ext>, where ext
// is cfg.Format, else the input extension, else png when the input format
// cannot be written back.
func JobsFromConfig(cfg config.Config) []Job {
	jobs := make([]Job, 0, len(cfg.Inputs))
	for _, in := range cfg.Inputs {
		dir := filepath.Dir(in)
		if cfg.OutDir != "" {
			dir = cfg.OutDir
		}
		base := strings.TrimSuffix(filepath.Base(in), filepath.Ext(in))

		j := Job{
			Input:         in,
			Output:        filepath.Join(dir, base+cfg.Suffix+outputExt(in, cfg.Format)),
			FullRecompute: cfg.FullRecompute,
			IO:            imageio.Options{JPEGQuality: cfg.JPEGQuality, PDFDPI: cfg.PDFDPI},
		}
		if cfg.Resizing() {
			j.Width, j.Height = cfg.Width, cfg.Height
		} else {
			j.Vertical, j.Horizontal = cfg.Vertical, cfg.Horizontal
		}
		if cfg.EnergyDump {
			j.EnergyOutput = filepath.Join(dir, base+cfg.Suffix+"_energy.png")
		}
		jobs = append(jobs, j)
	}

	return jobs
}

func outputExt(input, format string) string {
	if format != "" {
		return "." + strings.TrimPrefix(strings.ToLower(format), ".")
	}
	ext := filepath.Ext(input)
	if _, err := imageio.FormatFromPath(input); err != nil {
		return ".png"
	}

	return strings.ToLower(ext)
}

// counts turns the job into the number of seams to remove for a picture of
// the given size.
func (j Job) counts(width, height int) (vertical, horizontal int, err error) {
	if !j.resizing() {
		return j.Vertical, j.Horizontal, nil
	}
	tw, th := j.Width, j.Height
	if tw == 0 {
		tw = width
	}
	if th == 0 {
		th = height
	}
	if tw > width || th > height {
		return 0, 0, fmt.Errorf("%s: %dx%d to %dx%d: %w", j.Input, width, height, tw, th, seam.ErrEnlarge)
	}

	return width - tw, height - th, nil
}

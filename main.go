// Command reliefmill converts a grayscale depthmap image into a
// watertight relief solid for CNC milling and writes it as STL.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"

	"github.com/chazu/reliefmill/pkg/export"
	"github.com/chazu/reliefmill/pkg/heightfield"
	"github.com/chazu/reliefmill/pkg/imageio"
	"github.com/chazu/reliefmill/pkg/job"
	"github.com/chazu/reliefmill/pkg/mesh"
	"github.com/chazu/reliefmill/pkg/relief"
)

func main() {
	var (
		jobPath   = flag.String("job", "", "TOML job file (overrides the other flags)")
		depthmap  = flag.String("in", "", "depthmap image path")
		output    = flag.String("out", "", "output STL path")
		width     = flag.Float64("width", 100, "design width in mm")
		carve     = flag.Float64("carve", 10, "maximum carve depth in mm")
		base      = flag.Float64("base", 5, "base thickness in mm")
		resWidth  = flag.Int("res-width", 0, "mesh columns (0 keeps image resolution)")
		resHeight = flag.Int("res-height", 0, "mesh rows (needs -res-width)")
		ascii     = flag.Bool("ascii", false, "write ASCII STL instead of binary")
		watch     = flag.Bool("watch", false, "rebuild whenever the depthmap changes")
		verbose   = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "reliefmill",
	})
	if *verbose {
		logger.SetLevel(log.DebugLevel)
	}

	j, err := assembleJob(*jobPath, *depthmap, *output, *width, *carve, *base, *resWidth, *resHeight, *ascii)
	if err != nil {
		logger.Fatal("bad invocation", "err", err)
	}

	if err := run(logger, j); err != nil {
		logger.Fatal("conversion failed", "err", err)
	}

	if *watch {
		if err := watchLoop(logger, j); err != nil {
			logger.Fatal("watch failed", "err", err)
		}
	}
}

// assembleJob builds the job from a TOML file or from flags.
func assembleJob(jobPath, depthmap, output string, width, carve, base float64, resWidth, resHeight int, ascii bool) (*job.Job, error) {
	if jobPath != "" {
		return job.Load(jobPath)
	}
	j := &job.Job{
		Depthmap: depthmap,
		Output:   output,
		Width:    width,
		Carve:    carve,
		Base:     base,
		ASCII:    ascii,
	}
	if resWidth > 0 {
		j.Resolution = &job.ResolutionSpec{Width: resWidth, Height: resHeight}
	}
	if err := j.Validate(); err != nil {
		return nil, err
	}
	return j, nil
}

// run executes one conversion: decode, resample, build, export.
func run(logger *log.Logger, j *job.Job) error {
	start := time.Now()

	intensity, err := imageio.LoadIntensityGrid(j.Depthmap)
	if err != nil {
		return err
	}
	logger.Debug("depthmap loaded", "path", j.Depthmap, "rows", intensity.Rows(), "cols", intensity.Cols())

	rows, cols, err := j.GridResolution().TargetShape(intensity.Rows(), intensity.Cols())
	if err != nil {
		return err
	}
	if rows != intensity.Rows() || cols != intensity.Cols() {
		intensity, err = heightfield.Resample(intensity, rows, cols)
		if err != nil {
			return err
		}
		logger.Debug("resampled", "rows", rows, "cols", cols)
	}

	solid, err := relief.FromIntensity(intensity, j.Spec())
	if err != nil {
		return err
	}
	if !mesh.IsWatertight(solid) {
		return fmt.Errorf("built mesh is not watertight; refusing to export")
	}

	if j.ASCII {
		name := filepath.Base(j.Output)
		err = export.SaveSTLAscii(j.Output, name, solid)
	} else {
		err = export.SaveSTL(j.Output, solid)
	}
	if err != nil {
		return err
	}

	logger.Info("solid written",
		"path", j.Output,
		"vertices", solid.VertexCount(),
		"triangles", solid.TriangleCount(),
		"took", time.Since(start).Round(time.Millisecond))
	return nil
}

// watchLoop rebuilds the solid whenever the depthmap file is rewritten.
// Editors often replace files via rename, so the watch covers the
// directory and filters on the depthmap name.
func watchLoop(logger *log.Logger, j *job.Job) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	target, err := filepath.Abs(j.Depthmap)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return err
	}
	logger.Info("watching for changes", "path", target)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			name, err := filepath.Abs(event.Name)
			if err != nil || name != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			logger.Debug("depthmap changed", "op", event.Op)
			if err := run(logger, j); err != nil {
				logger.Error("rebuild failed", "err", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watch error", "err", err)
		}
	}
}

package dispatch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/bozorth3/bozorth"
	"github.com/katalvlaran/bozorth3/minutia"
	"github.com/katalvlaran/bozorth3/pair"
	"github.com/katalvlaran/bozorth3/parsing"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// loadPrint reads a minutiae file, dispatching on its extension: ".xyt"
// (optionally paired with a sibling ".min") is parsed as text, ".fmr" and
// ".iso" are decoded as ISO/IEC 19794-2 templates, and any other extension
// (including a standalone ".min", which carries no coordinates) is an error.
func loadPrint(path string, strict bool) ([]minutia.Minutia, error) {
	var raw []minutia.Raw
	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xyt":
		raw, err = parsing.ParseCombined(path)
	case ".fmr", ".iso":
		f, openErr := os.Open(path)
		if openErr != nil {
			return nil, openErr
		}
		defer f.Close()
		raw, err = parsing.ParseISO19794_2(f)
	default:
		return nil, fmt.Errorf("dispatch: unrecognized minutiae file extension %q", filepath.Ext(path))
	}
	if err != nil {
		return nil, err
	}

	return minutia.Prune(raw, minutia.MaxMinutiae, strict), nil
}

// Run compares every Task's probe against its gallery concurrently across
// workers goroutines, each owning its own bozorth.State so no comparison
// shares scratch space with another. Results are returned in the same order
// as tasks; a Task-level failure populates Result.Err rather than aborting
// the run. Run itself only fails if ctx is canceled.
func Run(ctx context.Context, tasks []Task, workers int, cfg bozorth.Snapshot) ([]Result, error) {
	results := make([]Result, len(tasks))

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i, task := range tasks {
		i, task := i, task
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			results[i] = compare(task, cfg)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func compare(task Task, cfg bozorth.Snapshot) Result {
	probe, err := loadPrint(task.ProbePath, cfg.StrictMode)
	if err != nil {
		return Result{Task: task, Err: fmt.Errorf("dispatch: load probe %s: %w", task.ProbePath, err)}
	}
	gallery, err := loadPrint(task.GalleryPath, cfg.StrictMode)
	if err != nil {
		return Result{Task: task, Err: fmt.Errorf("dispatch: load gallery %s: %w", task.GalleryPath, err)}
	}

	st := bozorth.NewState()
	score, clusters, err := bozorth.MatchScore(probe, gallery, minutia.NistInternal, pair.DefaultScore, cfg, st)

	log.Info().
		Str("probe", task.ProbeID).
		Str("gallery", task.GalleryID).
		Uint32("score", score).
		Int("clusters", len(clusters)).
		Err(err).
		Msg("compared probe and gallery prints")

	if err != nil {
		return Result{Task: task, Err: err}
	}
	return Result{Task: task, Score: score, Clusters: clusters}
}

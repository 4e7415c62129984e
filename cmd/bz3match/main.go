// Command bz3match is the CLI surface over the bozorth3-go matcher: a
// single-pair "match" command, a parallel "batch" command over a pair-list
// file, and a "bench" command that repeats one comparison to report
// throughput.
package main

import (
	"bufio"
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/bozorth3/bozorth"
	"github.com/katalvlaran/bozorth3/dispatch"
	"github.com/katalvlaran/bozorth3/minutia"
	"github.com/katalvlaran/bozorth3/pair"
	"github.com/katalvlaran/bozorth3/parsing"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func init() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
}

func main() {
	app := &cli.App{
		Name:  "bz3match",
		Usage: "fingerprint-minutiae matching, Bozorth3-style",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "relaxed", Usage: "disable strict-mode bit-compatibility with the legacy matcher"},
			&cli.BoolFlag{Name: "ansi", Usage: "treat minutiae files as ANSI/INCITS 378 rather than NIST-internal (match and bench; batch always uses NIST-internal)"},
			&cli.Uint64Flag{Name: "score-threshold", Usage: "override the default score threshold"},
		},
		Commands: []*cli.Command{
			matchCommand,
			batchCommand,
			benchCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("bz3match failed")
	}
}

func configFromCLI(c *cli.Context) bozorth.Snapshot {
	cfg := bozorth.NewConfig()
	cfg.SetStrictMode(!c.Bool("relaxed"))
	if c.IsSet("score-threshold") {
		cfg.SetScoreThreshold(uint32(c.Uint64("score-threshold")))
	}
	return cfg.Snapshot()
}

func formatFromCLI(c *cli.Context) minutia.Format {
	if c.Bool("ansi") {
		return minutia.Ansi
	}
	return minutia.NistInternal
}

// loadPrint reads and prunes one minutiae file, dispatching on extension the
// way dispatch.Run's loader does.
func loadPrint(path string, strict bool) ([]minutia.Minutia, error) {
	var raw []minutia.Raw
	var err error

	switch strings.ToLower(extOf(path)) {
	case ".xyt":
		raw, err = parsing.ParseCombined(path)
	case ".fmr", ".iso":
		var f *os.File
		f, err = os.Open(path)
		if err == nil {
			defer f.Close()
			raw, err = parsing.ParseISO19794_2(f)
		}
	default:
		return nil, fmt.Errorf("bz3match: unrecognized minutiae file extension %q", extOf(path))
	}
	if err != nil {
		return nil, err
	}

	return minutia.Prune(raw, minutia.MaxMinutiae, strict), nil
}

func extOf(path string) string {
	i := strings.LastIndexByte(path, '.')
	if i < 0 {
		return ""
	}
	return path[i:]
}

var matchCommand = &cli.Command{
	Name:      "match",
	Usage:     "score one probe against one gallery minutiae file",
	ArgsUsage: "probe.xyt gallery.xyt",
	Action: func(c *cli.Context) error {
		if c.Args().Len() < 2 {
			return cli.Exit("match requires a probe and a gallery path", 1)
		}

		cfg := configFromCLI(c)
		format := formatFromCLI(c)

		probe, err := loadPrint(c.Args().Get(0), cfg.StrictMode)
		if err != nil {
			return fmt.Errorf("bz3match: load probe: %w", err)
		}
		gallery, err := loadPrint(c.Args().Get(1), cfg.StrictMode)
		if err != nil {
			return fmt.Errorf("bz3match: load gallery: %w", err)
		}

		st := bozorth.NewState()
		score, clusters, err := bozorth.MatchScore(probe, gallery, format, pair.DefaultScore, cfg, st)
		if err != nil {
			return fmt.Errorf("bz3match: %w", err)
		}

		fmt.Printf("%d\t%d\n", score, len(clusters))
		return nil
	},
}

var batchCommand = &cli.Command{
	Name:      "batch",
	Usage:     "score every probe/gallery pair listed in a pair-list file",
	ArgsUsage: "pairs.txt",
	Flags: []cli.Flag{
		&cli.IntFlag{Name: "workers", Value: 4, Usage: "number of concurrent comparisons"},
		&cli.StringFlag{Name: "out", Usage: "CSV output path (defaults to stdout)"},
		&cli.BoolFlag{Name: "dry-run", Usage: "list resolved probe/gallery path pairs without comparing them"},
	},
	Action: func(c *cli.Context) error {
		if c.Args().Len() < 1 {
			return cli.Exit("batch requires a pair-list file", 1)
		}

		tasks, err := readPairList(c.Args().Get(0))
		if err != nil {
			return fmt.Errorf("bz3match: read pair list: %w", err)
		}

		if c.Bool("dry-run") {
			for _, t := range tasks {
				fmt.Printf("%s\t%s\n", t.ProbePath, t.GalleryPath)
			}
			return nil
		}

		cfg := configFromCLI(c)
		results, err := dispatch.Run(context.Background(), tasks, c.Int("workers"), cfg)
		if err != nil {
			return fmt.Errorf("bz3match: batch run: %w", err)
		}

		out := os.Stdout
		if path := c.String("out"); path != "" {
			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("bz3match: create output: %w", err)
			}
			defer f.Close()
			out = f
		}

		w := csv.NewWriter(out)
		defer w.Flush()
		if err := w.Write([]string{"probe", "gallery", "score", "clusters", "error"}); err != nil {
			return err
		}
		for _, r := range results {
			errMsg := ""
			if r.Err != nil {
				errMsg = r.Err.Error()
			}
			row := []string{r.Task.ProbeID, r.Task.GalleryID, strconv.FormatUint(uint64(r.Score), 10),
				strconv.Itoa(len(r.Clusters)), errMsg}
			if err := w.Write(row); err != nil {
				return err
			}
		}
		return nil
	},
}

var benchCommand = &cli.Command{
	Name:      "bench",
	Usage:     "repeat one probe/gallery comparison N times and report throughput",
	ArgsUsage: "probe.xyt gallery.xyt",
	Flags: []cli.Flag{
		&cli.IntFlag{Name: "n", Value: 1000, Usage: "number of repeated comparisons"},
	},
	Action: func(c *cli.Context) error {
		if c.Args().Len() < 2 {
			return cli.Exit("bench requires a probe and a gallery path", 1)
		}

		cfg := configFromCLI(c)
		format := formatFromCLI(c)

		probe, err := loadPrint(c.Args().Get(0), cfg.StrictMode)
		if err != nil {
			return fmt.Errorf("bz3match: load probe: %w", err)
		}
		gallery, err := loadPrint(c.Args().Get(1), cfg.StrictMode)
		if err != nil {
			return fmt.Errorf("bz3match: load gallery: %w", err)
		}

		n := c.Int("n")
		st := bozorth.NewState()

		start := time.Now()
		var score uint32
		for i := 0; i < n; i++ {
			score, _, err = bozorth.MatchScore(probe, gallery, format, pair.DefaultScore, cfg, st)
			if err != nil {
				return fmt.Errorf("bz3match: %w", err)
			}
		}
		elapsed := time.Since(start)

		log.Info().
			Int("iterations", n).
			Dur("elapsed", elapsed).
			Float64("per_second", float64(n)/elapsed.Seconds()).
			Uint32("score", score).
			Msg("bench complete")
		return nil
	},
}

// readPairList reads "probe gallery" path pairs, one per line, blank lines
// and "#"-prefixed comments ignored.
func readPairList(path string) ([]dispatch.Task, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var tasks []dispatch.Task
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("bz3match: pair list line %d: expected 2 paths, got %d", lineNo, len(fields))
		}
		tasks = append(tasks, dispatch.Task{
			ProbeID:    fields[0],
			GalleryID:  fields[1],
			ProbePath:  fields[0],
			GalleryPath: fields[1],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return tasks, nil
}

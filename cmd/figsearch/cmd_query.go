package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"figsearch/internal/bitmap"
	"figsearch/internal/config"
	"figsearch/internal/render"
	"figsearch/internal/scan"
	"figsearch/internal/watch"
)

// queryKind selects one of the four core operations.
type queryKind int

const (
	queryValidate queryKind = iota
	queryHLine
	queryVLine
	querySquare
)

var testCmd = &cobra.Command{
	Use:   "test [bitmap]",
	Short: "Validate the bitmap file",
	Long:  `Loads the bitmap file and prints "Valid" when it is well-formed.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuery(queryValidate, args[0])
	},
}

var hlineCmd = &cobra.Command{
	Use:   "hline [bitmap]",
	Short: "Find the longest horizontal line",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuery(queryHLine, args[0])
	},
}

var vlineCmd = &cobra.Command{
	Use:   "vline [bitmap]",
	Short: "Find the longest vertical line",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuery(queryVLine, args[0])
	},
}

var squareCmd = &cobra.Command{
	Use:   "square [bitmap]",
	Short: "Find the largest fully-bordered square",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuery(querySquare, args[0])
	},
}

// runQuery executes one query, or keeps re-executing it under --watch
// until interrupted.
func runQuery(kind queryKind, path string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	if !watchMode {
		return executeQuery(kind, path, cfg, os.Stdout)
	}

	// Watch mode: run once up front, then on every debounced change.
	// Query failures are reported but do not end the watch; the next
	// write may fix the file.
	if err := executeQuery(kind, path, cfg, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal")
		cancel()
	}()

	w, err := watch.New(path, cfg.DebounceInterval(), logger, func() {
		if err := executeQuery(kind, path, cfg, os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	})
	if err != nil {
		return err
	}
	if err := w.Start(ctx); err != nil {
		return err
	}
	<-ctx.Done()
	w.Stop()

	st := w.Stats()
	logger.Debug("watch finished",
		zap.Int("events", st.Events),
		zap.Int("reruns", st.Reruns),
		zap.Int("errors", st.Errors))
	return nil
}

// executeQuery loads the bitmap and runs one operation against it,
// writing the result line to out.
func executeQuery(kind queryKind, path string, cfg *config.Config, out io.Writer) error {
	loader := bitmap.Loader{
		ChunkSize: cfg.Loader.ChunkSize,
		MaxPixels: cfg.Loader.MaxPixels,
	}

	bm, err := loader.Load(path)
	if kind == queryValidate {
		if err != nil {
			logger.Debug("bitmap validation failed", zap.Error(err))
			return errors.New("Invalid")
		}
		fmt.Fprintln(out, render.Valid)
		return nil
	}
	if err != nil {
		return err
	}

	var (
		shape bitmap.Shape
		ok    bool
		st    scan.Stats
	)
	switch {
	case showStats:
		shape, ok, st = scanWithStats(kind, bm)
	case cfg.Scan.Workers > 1 && kind != querySquare:
		shape, ok, err = scanParallel(kind, bm, cfg.Scan.Workers)
		if err != nil {
			return err
		}
	default:
		shape, ok = scanSequential(kind, bm)
	}

	fmt.Fprintln(out, render.Result(shape, ok))
	if showStats {
		fmt.Fprintln(os.Stderr, render.Stats(st))
	}
	return nil
}

func scanSequential(kind queryKind, bm *bitmap.Bitmap) (bitmap.Shape, bool) {
	switch kind {
	case queryHLine:
		return scan.LongestHorizontal(bm)
	case queryVLine:
		return scan.LongestVertical(bm)
	default:
		return scan.LargestSquare(bm)
	}
}

func scanWithStats(kind queryKind, bm *bitmap.Bitmap) (bitmap.Shape, bool, scan.Stats) {
	switch kind {
	case queryHLine:
		return scan.LongestHorizontalStats(bm)
	case queryVLine:
		return scan.LongestVerticalStats(bm)
	default:
		return scan.LargestSquareStats(bm)
	}
}

func scanParallel(kind queryKind, bm *bitmap.Bitmap, workers int) (bitmap.Shape, bool, error) {
	if kind == queryHLine {
		return scan.LongestHorizontalParallel(context.Background(), bm, workers)
	}
	return scan.LongestVerticalParallel(context.Background(), bm, workers)
}

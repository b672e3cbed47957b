package scan

import (
	"context"

	"golang.org/x/sync/errgroup"

	"figsearch/internal/bitmap"
)

// band is a half-open range of rows or columns assigned to one worker.
type band struct {
	from uint32
	to   uint32
}

// LongestHorizontalParallel partitions the rows across workers and
// reduces the per-band winners with the scanners' shared ordering, so
// the result is identical to LongestHorizontal regardless of
// scheduling. workers <= 1 degrades to the sequential scan. The square
// scan has no parallel variant: its remaining-area prune requires
// strictly increasing row order.
func LongestHorizontalParallel(ctx context.Context, bm *bitmap.Bitmap, workers int) (bitmap.Shape, bool, error) {
	return parallelScan(ctx, bm, workers, bm.Height(), scanRowsHorizontal, bitmap.Shape.HLength)
}

// LongestVerticalParallel partitions the columns across workers; see
// LongestHorizontalParallel.
func LongestVerticalParallel(ctx context.Context, bm *bitmap.Bitmap, workers int) (bitmap.Shape, bool, error) {
	return parallelScan(ctx, bm, workers, bm.Width(), scanColsVertical, bitmap.Shape.VLength)
}

func parallelScan(
	ctx context.Context,
	bm *bitmap.Bitmap,
	workers int,
	extent uint32,
	scanBand func(*bitmap.Bitmap, uint32, uint32, *Stats) (bitmap.Shape, bool),
	size sizeFunc,
) (bitmap.Shape, bool, error) {
	if workers <= 1 || extent < 2 {
		shape, ok := scanBand(bm, 0, extent, nil)
		return shape, ok, nil
	}

	bands := splitBands(extent, workers)
	type result struct {
		shape bitmap.Shape
		ok    bool
	}
	results := make([]result, len(bands))

	g, gctx := errgroup.WithContext(ctx)
	for i, b := range bands {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			shape, ok := scanBand(bm, b.from, b.to, nil)
			results[i] = result{shape: shape, ok: ok}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return bitmap.Shape{}, false, err
	}

	// Deterministic reduce: re-apply the comparator across bands in
	// order, never first-finished-wins.
	var best bitmap.Shape
	found := false
	for _, r := range results {
		if !r.ok {
			continue
		}
		if !found || better(r.shape, best, size) {
			best = r.shape
			found = true
		}
	}
	return best, found, nil
}

// splitBands divides [0, extent) into at most workers near-equal
// half-open ranges.
func splitBands(extent uint32, workers int) []band {
	if uint64(workers) > uint64(extent) {
		workers = int(extent)
	}
	step := (extent + uint32(workers) - 1) / uint32(workers)
	bands := make([]band, 0, workers)
	for from := uint32(0); from < extent; from += step {
		to := from + step
		if to > extent {
			to = extent
		}
		bands = append(bands, band{from: from, to: to})
	}
	return bands
}

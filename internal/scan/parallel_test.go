package scan

import (
	"context"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"figsearch/internal/bitmap"
)

// randomGrid builds a reproducible pseudo-random bitmap.
func randomGrid(t *testing.T, seed int64, height, width int, density float64) *bitmap.Bitmap {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))

	var b strings.Builder
	b.WriteString(strconv.Itoa(height))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(width))
	b.WriteByte('\n')
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			if rng.Float64() < density {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
		}
		b.WriteByte('\n')
	}
	return grid(t, b.String())
}

func TestParallel_MatchesSequential(t *testing.T) {
	defer goleak.VerifyNone(t)

	grids := []*bitmap.Bitmap{
		randomGrid(t, 42, 64, 37, 0.6),
		randomGrid(t, 7, 17, 128, 0.3),
		randomGrid(t, 99, 5, 5, 0.9),
		grid(t, "2 2\n00\n00\n"),
	}

	for _, bm := range grids {
		seqH, seqHOK := LongestHorizontal(bm)
		seqV, seqVOK := LongestVertical(bm)

		for _, workers := range []int{2, 3, 8, 64} {
			parH, parHOK, err := LongestHorizontalParallel(context.Background(), bm, workers)
			require.NoError(t, err)
			assert.Equal(t, seqHOK, parHOK)
			if diff := cmp.Diff(seqH, parH); diff != "" {
				t.Errorf("horizontal mismatch with %d workers (-seq +par):\n%s", workers, diff)
			}

			parV, parVOK, err := LongestVerticalParallel(context.Background(), bm, workers)
			require.NoError(t, err)
			assert.Equal(t, seqVOK, parVOK)
			if diff := cmp.Diff(seqV, parV); diff != "" {
				t.Errorf("vertical mismatch with %d workers (-seq +par):\n%s", workers, diff)
			}
		}
	}
}

func TestParallel_TieBreakAcrossBands(t *testing.T) {
	defer goleak.VerifyNone(t)

	// Equal-length runs in the first and last rows; with one band per
	// row the merge must still prefer the top run, not whichever band
	// finished first.
	bm := grid(t, "4 4\n1100\n0000\n0000\n0011\n")

	shape, ok, err := LongestHorizontalParallel(context.Background(), bm, 4)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, shapeAt(0, 0, 1, 0), shape)
}

func TestParallel_SingleWorkerDegradesToSequential(t *testing.T) {
	bm := grid(t, "2 3\n111\n010\n")

	shape, ok, err := LongestHorizontalParallel(context.Background(), bm, 1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, shapeAt(0, 0, 2, 0), shape)
}

func TestParallel_CancelledContext(t *testing.T) {
	defer goleak.VerifyNone(t)

	bm := randomGrid(t, 1, 32, 32, 0.5)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := LongestHorizontalParallel(ctx, bm, 4)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSplitBands(t *testing.T) {
	bands := splitBands(10, 3)
	require.Len(t, bands, 3)
	assert.Equal(t, band{from: 0, to: 4}, bands[0])
	assert.Equal(t, band{from: 4, to: 8}, bands[1])
	assert.Equal(t, band{from: 8, to: 10}, bands[2])

	// More workers than rows collapses to one band per row.
	bands = splitBands(2, 16)
	require.Len(t, bands, 2)
	assert.Equal(t, band{from: 0, to: 1}, bands[0])
	assert.Equal(t, band{from: 1, to: 2}, bands[1])
}

package bitmap

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, input string) (*Bitmap, error) {
	t.Helper()
	return Loader{}.Decode(strings.NewReader(input))
}

func mustDecode(t *testing.T, input string) *Bitmap {
	t.Helper()
	bm, err := decode(t, input)
	require.NoError(t, err)
	return bm
}

func TestDecode_WellFormed(t *testing.T) {
	bm := mustDecode(t, "2 3\n111\n010\n")

	assert.Equal(t, uint32(3), bm.Width())
	assert.Equal(t, uint32(2), bm.Height())
	assert.Equal(t, uint64(6), bm.Area())

	assert.True(t, bm.At(0, 0))
	assert.True(t, bm.At(0, 2))
	assert.False(t, bm.At(1, 0))
	assert.True(t, bm.At(1, 1))
	assert.False(t, bm.At(1, 2))
}

func TestDecode_WhitespaceInterspersed(t *testing.T) {
	// Whitespace between pixels is insignificant; only '0'/'1' count.
	bm := mustDecode(t, "2\t2\r\n1 0\n\n\t0\v1\f")

	assert.True(t, bm.At(0, 0))
	assert.False(t, bm.At(0, 1))
	assert.False(t, bm.At(1, 0))
	assert.True(t, bm.At(1, 1))
}

func TestDecode_HeightBeforeWidth(t *testing.T) {
	// "3 1" declares three rows of one column.
	bm := mustDecode(t, "3 1\n1\n0\n1\n")

	assert.Equal(t, uint32(1), bm.Width())
	assert.Equal(t, uint32(3), bm.Height())
}

func TestDecode_SinglePixel(t *testing.T) {
	bm := mustDecode(t, "1 1\n0\n")

	assert.Equal(t, uint64(1), bm.Area())
	assert.False(t, bm.At(0, 0))
}

func TestDecode_InvalidDimension(t *testing.T) {
	cases := map[string]string{
		"zero height":     "0 3\n",
		"zero width":      "3 0\n",
		"non-numeric":     "x 3\n111\n",
		"missing width":   "2\n",
		"empty input":     "",
		"negative height": "-2 3\n111010\n",
		"overflow":        "4294967295 1\n",
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := decode(t, input)
			assert.ErrorIs(t, err, ErrInvalidDimension)
		})
	}
}

func TestDecode_UnexpectedCharacter(t *testing.T) {
	_, err := decode(t, "2 2\n1x\n11\n")

	require.ErrorIs(t, err, ErrUnexpectedCharacter)
	assert.Contains(t, err.Error(), "'x'")
}

func TestDecode_TooFewPixels(t *testing.T) {
	// Declares 4 pixels but only 3 are present before EOF.
	_, err := decode(t, "2 2\n111\n")

	require.ErrorIs(t, err, ErrDimensionMismatch)
	assert.Contains(t, err.Error(), "found 3 pixels")
	assert.Contains(t, err.Error(), "4")
}

func TestDecode_TooManyPixels(t *testing.T) {
	_, err := decode(t, "2 2\n11111\n")

	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestDecode_PixelCap(t *testing.T) {
	l := Loader{MaxPixels: 8}

	_, err := l.Decode(strings.NewReader("3 3\n111\n111\n111\n"))
	assert.ErrorIs(t, err, ErrBitmapTooLarge)

	_, err = l.Decode(strings.NewReader("2 2\n11\n11\n"))
	assert.NoError(t, err)
}

func TestDecode_ChunkSizeIsNotFunctional(t *testing.T) {
	// The chunk size is a throughput knob; every size must parse the
	// same grid.
	input := "3 3\n111\n101\n111\n"
	want := mustDecode(t, input)

	for _, size := range []int{1, 2, 7, 512} {
		l := Loader{ChunkSize: size}
		bm, err := l.Decode(strings.NewReader(input))
		require.NoError(t, err)
		assert.Equal(t, want.Pixels(), bm.Pixels())
	}
}

func TestDecode_RoundTrip(t *testing.T) {
	// Re-serializing a loaded grid and reparsing it yields the same
	// grid.
	bm := mustDecode(t, "3 4\n1010\n0110\n1001\n")

	var b strings.Builder
	b.WriteString("3 4\n")
	for _, filled := range bm.Pixels() {
		if filled {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	again := mustDecode(t, b.String())

	assert.Equal(t, bm.Width(), again.Width())
	assert.Equal(t, bm.Height(), again.Height())
	assert.Equal(t, bm.Pixels(), again.Pixels())
}

func TestDecode_AreaInvariant(t *testing.T) {
	bm := mustDecode(t, "4 5\n11111\n00000\n10101\n01010\n")

	assert.Equal(t, uint64(bm.Width())*uint64(bm.Height()), bm.Area())
	assert.Len(t, bm.Pixels(), int(bm.Area()))
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.txt")
	require.NoError(t, os.WriteFile(path, []byte("2 2\n10\n01\n"), 0o644))

	bm, err := Load(path)
	require.NoError(t, err)
	assert.True(t, bm.At(0, 0))
	assert.True(t, bm.At(1, 1))
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))

	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestAt_OutOfBoundsPanics(t *testing.T) {
	bm := mustDecode(t, "2 2\n11\n11\n")

	assert.Panics(t, func() { bm.At(2, 0) })
	assert.Panics(t, func() { bm.At(0, 2) })
}

package bitmap

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
)

const (
	// DefaultChunkSize is the pixel-stream read buffer size. Purely a
	// throughput knob; the loader's behavior does not depend on it.
	DefaultChunkSize = 512

	// DefaultMaxPixels caps the declared area a loader will allocate
	// for. 2^28 booleans is a 256 MiB grid.
	DefaultMaxPixels = 1 << 28

	pixelFilled = '1'
	pixelEmpty  = '0'
)

// Loader reads the textual bitmap format: two whitespace-separated
// unsigned integers, height then width, followed by exactly
// width*height '0'/'1' characters with whitespace freely interspersed.
// The zero value uses the package defaults. A Loader holds no state
// between calls and may be reused for independent files.
type Loader struct {
	ChunkSize int
	MaxPixels uint64
}

// Load reads and validates the bitmap file at path. On any failure no
// partially-built Bitmap escapes; the error wraps one of the package's
// failure classes.
func (l Loader) Load(path string) (*Bitmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFileNotFound, path, err)
	}
	defer f.Close()
	return l.Decode(f)
}

// Load reads the bitmap file at path with a default-configured Loader.
func Load(path string) (*Bitmap, error) {
	return Loader{}.Load(path)
}

// Decode parses a bitmap from r. Split from Load so the format can be
// parsed from any stream.
func (l Loader) Decode(r io.Reader) (*Bitmap, error) {
	br := bufio.NewReader(r)

	// Header stores rows first: height, then width.
	height, err := readDimension(br)
	if err != nil {
		return nil, err
	}
	width, err := readDimension(br)
	if err != nil {
		return nil, err
	}

	maxPixels := l.MaxPixels
	if maxPixels == 0 {
		maxPixels = DefaultMaxPixels
	}
	area := uint64(width) * uint64(height)
	if area > maxPixels {
		return nil, fmt.Errorf("%w: %dx%d = %d pixels, limit is %d",
			ErrBitmapTooLarge, height, width, area, maxPixels)
	}

	pixels := make([]bool, area)
	count, err := l.readPixels(br, pixels)
	if err != nil {
		return nil, err
	}
	if count != area {
		return nil, fmt.Errorf("%w: found %d pixels, expected %dx%d = %d",
			ErrDimensionMismatch, count, height, width, area)
	}

	return &Bitmap{width: width, height: height, pixels: pixels}, nil
}

// readPixels streams the remainder of the file in fixed-size chunks,
// skipping whitespace and appending '0'/'1' pixels in file order. It
// fails as soon as a pixel would overflow the declared area or a
// foreign character appears.
func (l Loader) readPixels(br *bufio.Reader, pixels []bool) (uint64, error) {
	chunkSize := l.ChunkSize
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	chunk := make([]byte, chunkSize)

	var count uint64
	for {
		n, err := br.Read(chunk)
		for _, c := range chunk[:n] {
			switch {
			case isSpace(c):
				continue
			case c == pixelFilled || c == pixelEmpty:
				if count >= uint64(len(pixels)) {
					return count, fmt.Errorf("%w: found more pixels than the declared %d",
						ErrDimensionMismatch, len(pixels))
				}
				pixels[count] = c == pixelFilled
				count++
			default:
				return count, fmt.Errorf("%w: %q", ErrUnexpectedCharacter, c)
			}
		}
		if err == io.EOF {
			return count, nil
		}
		if err != nil {
			return count, fmt.Errorf("reading bitmap data: %w", err)
		}
	}
}

// readDimension skips leading whitespace and parses one unsigned
// decimal integer. The byte terminating the number is left unread for
// the pixel phase. Zero and values at or above the uint32 limit are
// rejected, so width*height can always be addressed and no legal
// coordinate collides with the legacy all-ones sentinel.
func readDimension(br *bufio.Reader) (uint32, error) {
	c, err := skipSpace(br)
	if err != nil {
		return 0, fmt.Errorf("%w: missing dimension", ErrInvalidDimension)
	}
	if c < '0' || c > '9' {
		return 0, fmt.Errorf("%w: %q is not an unsigned integer", ErrInvalidDimension, c)
	}

	value := uint64(c - '0')
	for {
		c, err = br.ReadByte()
		if err != nil {
			break
		}
		if c < '0' || c > '9' {
			if err := br.UnreadByte(); err != nil {
				return 0, fmt.Errorf("reading bitmap header: %w", err)
			}
			break
		}
		value = value*10 + uint64(c-'0')
		if value >= math.MaxUint32 {
			return 0, fmt.Errorf("%w: %d does not fit a 32-bit dimension", ErrInvalidDimension, value)
		}
	}

	if value == 0 {
		return 0, fmt.Errorf("%w: dimension cannot be zero", ErrInvalidDimension)
	}
	return uint32(value), nil
}

// skipSpace consumes whitespace and returns the first non-space byte.
func skipSpace(br *bufio.Reader) (byte, error) {
	for {
		c, err := br.ReadByte()
		if err != nil {
			return 0, err
		}
		if !isSpace(c) {
			return c, nil
		}
	}
}

// isSpace matches the standard C whitespace set the original file
// format was defined against.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
